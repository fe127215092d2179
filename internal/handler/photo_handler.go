package handler

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/philjones21/MyHomePageApp/internal/service"
	"github.com/philjones21/MyHomePageApp/internal/storage"
)

// PhotoHandler handles photo upload and image serving.
type PhotoHandler struct {
	photos *service.PhotoService
	images *storage.ImageRepository
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(photos *service.PhotoService, images *storage.ImageRepository) *PhotoHandler {
	return &PhotoHandler{photos: photos, images: images}
}

// Upload handles POST /photos (multipart). Validation and file handling live
// in the photo service.
func (h *PhotoHandler) Upload(c *gin.Context) {
	photo, err := h.photos.AddPhoto(c.Request, sessionUserName(c))
	if err != nil {
		log.Printf("SessionId: %s post /photos: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error")
		return
	}
	log.Printf("SessionId: %s post /photos. photo added.", sessionID(c))
	c.JSON(http.StatusOK, photo)
}

// Serve handles GET /albumid/:id/photofilename/:filename. The file name
// must look like a server-generated one, which also rules out path
// traversal.
func (h *PhotoHandler) Serve(c *gin.Context) {
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

	path := h.images.PhotoPath(id, fileName)
	if _, err := os.Stat(path); err != nil {
		log.Printf("SessionId: %s get /albumid/:id/photofilename/:filename: %v", sessionID(c), err)
		c.String(http.StatusBadRequest, "error")
		return
	}
	log.Printf("SessionId: %s get photo. albumId: %d photo: %s", sessionID(c), id, fileName)
	c.File(path)
}
