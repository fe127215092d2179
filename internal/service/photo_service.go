package service

import (
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/tiff"

	"github.com/philjones21/MyHomePageApp/internal/config"
	"github.com/philjones21/MyHomePageApp/internal/domain"
	"github.com/philjones21/MyHomePageApp/internal/sanitize"
	"github.com/philjones21/MyHomePageApp/internal/storage"
)

// PhotoService turns a multipart upload into a normalized JPEG plus
// thumbnail in the album's folder and a photo record on the album. Image
// files are written before the album record is touched, so a failed resize
// or thumbnail never leaves a dangling photo reference.
type PhotoService struct {
	albums    domain.AlbumRepository
	images    *storage.ImageRepository
	sanitizer *sanitize.Sanitizer
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(albums domain.AlbumRepository, images *storage.ImageRepository, sanitizer *sanitize.Sanitizer) *PhotoService {
	return &PhotoService{albums: albums, images: images, sanitizer: sanitizer}
}

// parsedUpload carries the validated pieces of a multipart upload request.
type parsedUpload struct {
	file        multipart.File
	header      *multipart.FileHeader
	albumID     uint
	description string
}

// AddPhoto runs the upload pipeline: parse and validate the request, write
// the resized image and its thumbnail under the album folder, then commit
// the photo record and counter bump in one transaction. A failed commit
// rolls the files back.
func (s *PhotoService) AddPhoto(r *http.Request, userName string) (*domain.Photo, error) {
	up, err := s.parseUpload(r)
	if err != nil {
		return nil, err
	}
	defer up.file.Close()

	// the album must exist before any file is written
	if _, err := s.albums.GetByID(up.albumID); err != nil {
		return nil, err
	}

	fileName, thumbName := newPhotoFileNames()
	if err := s.writeImages(up.file, up.albumID, fileName, thumbName); err != nil {
		return nil, err
	}

	photo := &domain.Photo{
		PhotoFileName:          fileName,
		PhotoThumbnailFileName: thumbName,
		PhotoDescription:       up.description,
		FileSize:               up.header.Size,
		UploadDate:             time.Now(),
		UploadedByUser:         userName,
	}
	s.sanitizer.CleanStruct(photo)

	if err := s.albums.AddPhoto(up.albumID, photo); err != nil {
		s.images.RemovePhotoFiles(up.albumID, fileName)
		return nil, err
	}
	return photo, nil
}

// parseUpload enforces the upload size and field-count limits, pulls the
// image file and metadata fields out of the multipart body, and validates
// extension and declared MIME type against the allow-lists. The MIME check
// is independent of whatever the multipart parser accepted.
func (s *PhotoService) parseUpload(r *http.Request) (*parsedUpload, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, config.MaxPhotoFileSize)
	if err := r.ParseMultipartForm(config.MaxPhotoFileSize); err != nil {
		return nil, fmt.Errorf("failed to parse upload: %w", err)
	}
	if r.MultipartForm != nil && len(r.MultipartForm.Value) > config.MaxUploadFields {
		return nil, domain.ErrInvalidInput
	}

	idField := s.sanitizer.Clean(r.FormValue("_id"))
	if idField == "" || len(idField) > 100 {
		return nil, domain.ErrInvalidInput
	}
	albumID, err := strconv.ParseUint(idField, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// the albumName field is required and bounded, but the album id is what
	// identifies the target
	if n := len(strings.TrimSpace(r.FormValue("albumName"))); n < config.MinAlbumTitleChars || n > config.MaxAlbumTitleChars {
		return nil, domain.ErrInvalidInput
	}
	description := strings.TrimSpace(r.FormValue("photoDescription"))
	if len(description) > config.MaxPhotoDescChars {
		return nil, domain.ErrInvalidInput
	}

	file, header, err := r.FormFile("imageFile")
	if err != nil {
		return nil, fmt.Errorf("missing image file in request: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedFileType(ext) {
		file.Close()
		return nil, domain.ErrInvalidFileType
	}
	mimeType := strings.ToLower(header.Header.Get("Content-Type"))
	if !allowedMimeType(mimeType) {
		file.Close()
		return nil, domain.ErrInvalidMimeType
	}

	return &parsedUpload{
		file:        file,
		header:      header,
		albumID:     uint(albumID),
		description: description,
	}, nil
}

// writeImages decodes the upload, scales it to fit the photo bounding box,
// re-encodes as JPEG into the album folder and derives the thumbnail from
// the resized image. A failed thumbnail removes the full-size file again so
// the pipeline either produces both files or none.
func (s *PhotoService) writeImages(file multipart.File, albumID uint, fileName, thumbName string) error {
	src, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	resized := resize.Thumbnail(config.MaxPhotoWidth, config.MaxPhotoHeight, src, resize.Lanczos3)
	fullPath := s.images.PhotoPath(albumID, fileName)
	if err := writeJPEG(fullPath, resized); err != nil {
		return err
	}

	thumb := resize.Thumbnail(config.ThumbnailWidth, config.ThumbnailHeight, resized, resize.Lanczos3)
	if err := writeJPEG(s.images.PhotoPath(albumID, thumbName), thumb); err != nil {
		if rmErr := os.Remove(fullPath); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Printf("photo writeImages cleanup: %v", rmErr)
		}
		return err
	}
	return nil
}

func writeJPEG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// newPhotoFileNames generates the stored file names. They derive from a
// fresh UUID, never from user input, and uploads are always normalized to
// JPEG.
func newPhotoFileNames() (fileName, thumbName string) {
	id := uuid.New().String()
	return id + ".jpg", id + "_tn.jpg"
}

// ValidatePhotoFileName accepts only names the server itself generates: a
// UUID stem, optionally suffixed "_tn", with an allow-listed extension.
// Anything else, including path traversal attempts, is rejected.
func ValidatePhotoFileName(fileName string) bool {
	ext := filepath.Ext(fileName)
	if !allowedFileType(strings.ToLower(ext)) {
		return false
	}
	stem := strings.TrimSuffix(fileName, ext)
	stem = strings.TrimSuffix(stem, "_tn")
	if _, err := uuid.Parse(stem); err != nil {
		return false
	}
	return true
}

func allowedFileType(ext string) bool {
	for _, t := range config.ValidFileTypes {
		if ext == t {
			return true
		}
	}
	return false
}

func allowedMimeType(mimeType string) bool {
	for _, t := range config.ValidMimeTypes {
		if mimeType == t {
			return true
		}
	}
	return false
}
