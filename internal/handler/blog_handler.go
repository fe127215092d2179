package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/philjones21/MyHomePageApp/internal/domain"
)

// BlogHandler handles the blog endpoints.
type BlogHandler struct {
	blogs domain.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogs domain.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// List handles GET /blogs.
func (h *BlogHandler) List(c *gin.Context) {
	entries, err := h.blogs.List()
	if err != nil {
		log.Printf("SessionId: %s get /blogs: %v", sessionID(c), err)
		c.String(http.StatusNotFound, "error")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create handles POST /blog.
func (h *BlogHandler) Create(c *gin.Context) {
	var req domain.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("SessionId: %s post /blog: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error: Invalid data entered")
		return
	}

	entry, err := h.blogs.Add(req, sessionUserName(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmbedURL) {
			log.Printf("SessionId: %s post /blog invalid embedURL.", sessionID(c))
			c.String(http.StatusBadRequest, "error: Invalid data entered")
			return
		}
		log.Printf("SessionId: %s post /blog: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error")
		return
	}
	log.Printf("SessionId: %s post /blog. Blog Article added.", sessionID(c))
	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /blog/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "error: Invalid data entered")
		return
	}

	if err := h.blogs.Delete(id, sessionUserName(c)); err != nil {
		log.Printf("SessionId: %s delete /blog/:id: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error")
		return
	}
	log.Printf("SessionId: %s delete /blog/:id. Blog article deleted.", sessionID(c))
	c.String(http.StatusOK, "ok")
}
