package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/philjones21/MyHomePageApp/internal/domain"
)

// blogRepository implements domain.BlogRepository using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository with the given GORM DB instance.
func NewBlogRepository(db *gorm.DB) domain.BlogRepository {
	return &blogRepository{db: db}
}

// List returns all blog entries, newest first.
func (r *blogRepository) List() ([]domain.BlogEntry, error) {
	var entries []domain.BlogEntry
	if err := r.db.Order("created_date DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list blog entries: %w", err)
	}
	return entries, nil
}

// Create inserts a new blog entry, stamping its creation date.
func (r *blogRepository) Create(entry *domain.BlogEntry) error {
	entry.CreatedDate = time.Now()
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create blog entry: %w", err)
	}
	return nil
}

// Delete removes the entry only when both id and author match and reports
// how many rows were affected.
func (r *blogRepository) Delete(id uint, author string) (int64, error) {
	res := r.db.Where("id = ? AND original_author = ?", id, author).
		Delete(&domain.BlogEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete blog entry: %w", res.Error)
	}
	return res.RowsAffected, nil
}
