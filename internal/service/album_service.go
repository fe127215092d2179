package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/philjones21/MyHomePageApp/internal/domain"
	"github.com/philjones21/MyHomePageApp/internal/sanitize"
	"github.com/philjones21/MyHomePageApp/internal/storage"
)

// albumService implements domain.AlbumService.
type albumService struct {
	albums    domain.AlbumRepository
	images    *storage.ImageRepository
	sanitizer *sanitize.Sanitizer
}

// NewAlbumService creates a new AlbumService.
func NewAlbumService(albums domain.AlbumRepository, images *storage.ImageRepository, sanitizer *sanitize.Sanitizer) domain.AlbumService {
	return &albumService{albums: albums, images: images, sanitizer: sanitizer}
}

// List returns all albums, or only those by author when author is set.
func (s *albumService) List(author string) ([]domain.PhotoAlbum, error) {
	if author != "" {
		return s.albums.ListByAuthor(author)
	}
	return s.albums.List()
}

// Get retrieves one album with its photos.
func (s *albumService) Get(id uint) (*domain.PhotoAlbum, error) {
	return s.albums.GetByID(id)
}

// Create persists a new album for author and provisions its image folder.
func (s *albumService) Create(req domain.CreateAlbumRequest, author string) (*domain.PhotoAlbum, error) {
	album := &domain.PhotoAlbum{
		OriginalAuthor:   author,
		AlbumName:        strings.TrimSpace(req.AlbumName),
		AlbumDescription: strings.TrimSpace(req.AlbumDescription),
		Photos:           []domain.Photo{},
	}
	s.sanitizer.CleanStruct(album)

	if err := s.albums.Create(album); err != nil {
		return nil, err
	}
	if err := s.images.CreateAlbumFolder(album.ID); err != nil {
		return nil, fmt.Errorf("album %d created but folder provisioning failed: %w", album.ID, err)
	}
	return album, nil
}

// Delete removes an album owned by requester. The ownership check lives in
// the delete query itself: a non-owner affects zero rows and the call still
// reports success, without revealing whether the id exists under another
// owner. An album holding photos uploaded by someone else is refused.
func (s *albumService) Delete(id uint, requester string) error {
	album, err := s.albums.GetByID(id)
	if err != nil {
		return err
	}
	for _, p := range album.Photos {
		if p.UploadedByUser != requester {
			return domain.ErrAlbumHasOthersPhotos
		}
	}

	deleted, err := s.albums.Delete(id, s.sanitizer.Clean(requester))
	if err != nil {
		return err
	}
	if deleted > 0 {
		if err := s.images.RemoveAlbumFolder(id); err != nil {
			log.Printf("album %d deleted but folder removal failed: %v", id, err)
		}
	}
	return nil
}

// DeletePhoto removes a photo record when requester is its uploader, then
// recomputes the album's file count. Files are unlinked only after the
// record was actually removed.
func (s *albumService) DeletePhoto(id uint, fileName, requester string) error {
	removed, err := s.albums.RemovePhoto(id, s.sanitizer.Clean(fileName), s.sanitizer.Clean(requester))
	if err != nil {
		return err
	}
	if err := s.albums.RecountPhotos(id); err != nil {
		return err
	}
	if removed > 0 {
		s.images.RemovePhotoFiles(id, fileName)
	}
	return nil
}
