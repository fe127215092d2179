package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/philjones21/MyHomePageApp/internal/domain"
	"github.com/philjones21/MyHomePageApp/internal/service"
)

// AlbumHandler handles the photo-album endpoints.
type AlbumHandler struct {
	albums domain.AlbumService
}

// NewAlbumHandler creates a new AlbumHandler.
func NewAlbumHandler(albums domain.AlbumService) *AlbumHandler {
	return &AlbumHandler{albums: albums}
}

// List handles GET /photoalbums. The optional author query filters by owner.
func (h *AlbumHandler) List(c *gin.Context) {
	albums, err := h.albums.List(c.Query("author"))
	if err != nil {
		log.Printf("SessionId: %s get /photoalbums: %v", sessionID(c), err)
		c.String(http.StatusNotFound, "error")
		return
	}
	c.JSON(http.StatusOK, albums)
}

// Get handles GET /photoalbums/:id.
func (h *AlbumHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "error: Invalid data entered")
		return
	}
	album, err := h.albums.Get(id)
	if err != nil {
		log.Printf("SessionId: %s get /photoalbums/:id: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error")
		return
	}
	c.JSON(http.StatusOK, album)
}

// Create handles POST /photoalbums. The album author is always the session
// user.
func (h *AlbumHandler) Create(c *gin.Context) {
	var req domain.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("SessionId: %s post /photoalbums: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error: Invalid data entered")
		return
	}

	album, err := h.albums.Create(req, sessionUserName(c))
	if err != nil {
		log.Printf("SessionId: %s post /photoalbums: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error")
		return
	}
	log.Printf("SessionId: %s post /photoalbums. Album added.", sessionID(c))
	c.JSON(http.StatusOK, album)
}

// Delete handles DELETE /photoalbums/:id.
func (h *AlbumHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "error: Invalid data entered")
		return
	}

	if err := h.albums.Delete(id, sessionUserName(c)); err != nil {
		if errors.Is(err, domain.ErrAlbumHasOthersPhotos) {
			c.String(http.StatusBadRequest, "error message: "+err.Error())
			return
		}
		log.Printf("SessionId: %s delete /photoalbums/:id: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error")
		return
	}
	log.Printf("SessionId: %s delete /photoalbums/:id. Album deleted.", sessionID(c))
	c.String(http.StatusOK, "ok")
}

// DeletePhoto handles DELETE /photoalbums/:id/photos/:filename. Only names
// the server could have generated are accepted.
func (h *AlbumHandler) DeletePhoto(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "error: Invalid data entered")
		return
	}
	fileName := c.Param("filename")
	if !service.ValidatePhotoFileName(fileName) {
		c.String(http.StatusBadRequest, "error")
		return
	}

	if err := h.albums.DeletePhoto(id, fileName, sessionUserName(c)); err != nil {
		log.Printf("SessionId: %s delete /photoalbums/:id/photos/:filename: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error")
		return
	}
	log.Printf("SessionId: %s delete /photoalbums/:id/photos/:filename. albumId: %d photo: %s",
		sessionID(c), id, fileName)
	c.String(http.StatusOK, "ok")
}
