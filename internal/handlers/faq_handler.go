package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/services"
)

// FAQHandler handles help center HTTP requests.
type FAQHandler struct {
	faqService services.FAQService
}

// NewFAQHandler creates a new FAQHandler.
func NewFAQHandler(faqService services.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

// ListFAQs handles GET /faqs?category=.
func (h *FAQHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.faqService.ListFAQs(c, c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get faqs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// GetFAQ handles GET /faqs/:id.
func (h *FAQHandler) GetFAQ(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	faq, err := h.faqService.GetFAQ(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}
	c.JSON(http.StatusOK, faq)
}

// CreateFAQ handles POST /admin/faqs.
func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var faq models.FAQ
	if err := c.ShouldBindJSON(&faq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.faqService.CreateFAQ(c, &faq); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create faq: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, faq)
}

// UpdateFAQ handles PUT /admin/faqs/:id.
func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var faq models.FAQ
	if err := c.ShouldBindJSON(&faq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	faq.ID = id

	if err := h.faqService.UpdateFAQ(c, &faq); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to update faq: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, faq)
}

// DeleteFAQ handles DELETE /admin/faqs/:id.
func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.faqService.DeleteFAQ(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete faq: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted"})
}
