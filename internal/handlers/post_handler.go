package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/services"
)

// PostHandler handles blog post HTTP requests.
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) listOptions(c *gin.Context, publishedOnly bool) services.PostListOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return services.PostListOptions{
		Category:      c.Query("category"),
		Search:        c.Query("search"),
		PublishedOnly: publishedOnly,
		Page:          page,
		Limit:         limit,
	}
}

// ListPosts handles GET /posts (published entries only).
func (h *PostHandler) ListPosts(c *gin.Context) {
	opts := h.listOptions(c, true)
	posts, total, err := h.postService.ListPosts(c, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get posts: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": posts, "total": total, "page": opts.Page, "limit": opts.Limit})
}

// ListAllPosts handles GET /admin/posts (drafts included).
func (h *PostHandler) ListAllPosts(c *gin.Context) {
	opts := h.listOptions(c, false)
	posts, total, err := h.postService.ListPosts(c, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get posts: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": posts, "total": total, "page": opts.Page, "limit": opts.Limit})
}

// GetPost handles GET /posts/:id.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	post, err := h.postService.GetPost(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost handles POST /admin/posts.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var post models.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.postService.CreatePost(c, &post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost handles PUT /admin/posts/:id.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var post models.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	post.ID = id

	if err := h.postService.UpdatePost(c, &post); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to update post: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /admin/posts/:id.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.postService.DeletePost(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
