package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/philjones21/MyHomePageApp/internal/domain"
)

// albumRepository implements domain.AlbumRepository using GORM.
type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository creates a new AlbumRepository with the given GORM DB instance.
func NewAlbumRepository(db *gorm.DB) domain.AlbumRepository {
	return &albumRepository{db: db}
}

// List returns all albums, newest first, with their photos loaded.
func (r *albumRepository) List() ([]domain.PhotoAlbum, error) {
	var albums []domain.PhotoAlbum
	if err := r.db.Preload("Photos").Order("created_date DESC").Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

// ListByAuthor returns the albums created by author, newest first.
func (r *albumRepository) ListByAuthor(author string) ([]domain.PhotoAlbum, error) {
	var albums []domain.PhotoAlbum
	if err := r.db.Preload("Photos").Where("original_author = ?", author).
		Order("created_date DESC").Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("failed to list albums by author: %w", err)
	}
	return albums, nil
}

// GetByID retrieves an album and its photos.
func (r *albumRepository) GetByID(id uint) (*domain.PhotoAlbum, error) {
	var album domain.PhotoAlbum
	if err := r.db.Preload("Photos").First(&album, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	return &album, nil
}

// Create inserts a new album with a zero file count and a fresh creation
// timestamp.
func (r *albumRepository) Create(album *domain.PhotoAlbum) error {
	album.NumberOfFiles = 0
	album.CreatedDate = time.Now()
	if err := r.db.Create(album).Error; err != nil {
		return fmt.Errorf("failed to create album: %w", err)
	}
	return nil
}

// AddPhoto appends a photo record to the album and bumps the file counter in
// the same transaction, keeping numberOfFiles equal to len(photos).
func (r *albumRepository) AddPhoto(albumID uint, photo *domain.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		photo.AlbumID = albumID
		if err := tx.Create(photo).Error; err != nil {
			return fmt.Errorf("failed to add photo record: %w", err)
		}
		res := tx.Model(&domain.PhotoAlbum{}).Where("id = ?", albumID).
			Update("number_of_files", gorm.Expr("number_of_files + 1"))
		if res.Error != nil {
			return fmt.Errorf("failed to update photo count: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlbumNotFound
		}
		return nil
	})
}

// RemovePhoto deletes the photo record matching file name and uploader and
// reports how many rows were affected. A non-uploader match affects zero
// rows.
func (r *albumRepository) RemovePhoto(albumID uint, fileName, uploader string) (int64, error) {
	res := r.db.Where("album_id = ? AND photo_file_name = ? AND uploaded_by_user = ?",
		albumID, fileName, uploader).Delete(&domain.Photo{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to remove photo record: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// RecountPhotos resets numberOfFiles to the actual number of photo rows.
func (r *albumRepository) RecountPhotos(albumID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Photo{}).Where("album_id = ?", albumID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count photos: %w", err)
		}
		if err := tx.Model(&domain.PhotoAlbum{}).Where("id = ?", albumID).
			Update("number_of_files", count).Error; err != nil {
			return fmt.Errorf("failed to update photo count: %w", err)
		}
		return nil
	})
}

// Delete removes the album only when both id and author match, so a
// non-owner request affects zero rows without revealing whether the id
// exists. Photo rows go with the album.
func (r *albumRepository) Delete(albumID uint, author string) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND original_author = ?", albumID, author).
			Delete(&domain.PhotoAlbum{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete album: %w", res.Error)
		}
		deleted = res.RowsAffected
		if deleted > 0 {
			if err := tx.Where("album_id = ?", albumID).Delete(&domain.Photo{}).Error; err != nil {
				return fmt.Errorf("failed to delete album photos: %w", err)
			}
		}
		return nil
	})
	return deleted, err
}
