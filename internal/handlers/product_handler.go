package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/services"
)

// ProductHandler handles shop catalog HTTP requests.
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts handles GET /products?category=&sort=.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	sortBy := models.ProductSort(c.DefaultQuery("sort", string(models.SortNewest)))
	switch sortBy {
	case models.SortNewest, models.SortPriceAsc, models.SortPriceDesc:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort: " + string(sortBy)})
		return
	}

	products, err := h.productService.ListProducts(c, c.Query("category"), sortBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get products: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	product, err := h.productService.GetProduct(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /admin/products.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.productService.CreateProduct(c, &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	product.ID = id

	if err := h.productService.UpdateProduct(c, &product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to update product: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.productService.DeleteProduct(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
