package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/philjones21/MyHomePageApp/internal/domain"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository with the given GORM DB instance.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByName retrieves every user whose lower-cased name matches nameSearch.
// More than one match indicates a data integrity problem the caller must
// surface.
func (r *userRepository) FindByName(nameSearch string) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.Where("name_search = ?", nameSearch).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to search users by name: %w", err)
	}
	return users, nil
}

// FindByEmail retrieves every user whose lower-cased email matches emailSearch.
func (r *userRepository) FindByEmail(emailSearch string) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.Where("email_search = ?", emailSearch).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to search users by email: %w", err)
	}
	return users, nil
}

// UpdateLoginAttempts records the number of failed logins for a user. A
// successful login writes 0.
func (r *userRepository) UpdateLoginAttempts(name string, attempts int) error {
	if err := r.db.Model(&domain.User{}).Where("name = ?", name).
		Update("login_attempts", attempts).Error; err != nil {
		return fmt.Errorf("failed to update login attempts: %w", err)
	}
	return nil
}
