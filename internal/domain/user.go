package domain

import "time"

// User is an account record. NameSearch and EmailSearch hold the lower-cased
// values so uniqueness checks and logins are case-insensitive. Uniqueness is
// enforced at the service layer, which is why lookups return slices and a
// multi-match is treated as an integrity fault.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	NameSearch    string    `json:"-" gorm:"index"`
	Email         string    `json:"email"`
	EmailSearch   string    `json:"-" gorm:"index"`
	Password      string    `json:"-"` // Hidden in JSON responses
	LoginAttempts int       `json:"loginAttempts"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserInfo is the projection returned to a client after a successful login.
type UserInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	LoginAttempts int    `json:"loginAttempts"`
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=40"`
	Email    string `json:"email" binding:"required,min=5,max=100,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,min=5,max=100,email"`
	Password string `json:"password" binding:"required"`
}

type UserRepository interface {
	Create(user *User) error
	FindByName(nameSearch string) ([]User, error)
	FindByEmail(emailSearch string) ([]User, error)
	UpdateLoginAttempts(name string, attempts int) error
}

type AuthService interface {
	Register(req RegisterRequest) error
	Authenticate(req LoginRequest) (*UserInfo, error)
}
