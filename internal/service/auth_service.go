package service

import (
	"fmt"
	"strings"

	"github.com/philjones21/MyHomePageApp/internal/domain"
	"github.com/philjones21/MyHomePageApp/internal/util"
)

// authService implements domain.AuthService using a UserRepository.
type authService struct {
	repo             domain.UserRepository
	maxLoginAttempts int
}

// NewAuthService creates a new AuthService with the given UserRepository.
func NewAuthService(repo domain.UserRepository, maxLoginAttempts int) domain.AuthService {
	return &authService{repo: repo, maxLoginAttempts: maxLoginAttempts}
}

// Register creates a new user account. The password policy runs before any
// lookup or hashing; name and email uniqueness are case-insensitive.
func (s *authService) Register(req domain.RegisterRequest) error {
	if !util.ValidPassword(req.Password) {
		return domain.ErrInvalidPassword
	}

	nameSearch := strings.ToLower(req.Name)
	users, err := s.repo.FindByName(nameSearch)
	if err != nil {
		return fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	if len(users) > 0 {
		return domain.ErrDuplicateUser
	}

	emailSearch := strings.ToLower(req.Email)
	users, err = s.repo.FindByEmail(emailSearch)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if len(users) > 0 {
		return domain.ErrDuplicateEmail
	}

	hashed, err := util.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:          req.Name,
		NameSearch:    nameSearch,
		Email:         req.Email,
		EmailSearch:   emailSearch,
		Password:      hashed,
		LoginAttempts: 0,
	}
	if err := s.repo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Authenticate verifies a login attempt. The lock check runs before the hash
// compare, so a locked account stays locked even when the password is right.
// A failed compare increments the attempt counter by exactly one; a success
// resets it to zero.
func (s *authService) Authenticate(req domain.LoginRequest) (*domain.UserInfo, error) {
	if req.Email == "" {
		return nil, domain.ErrMissingEmail
	}
	if !util.ValidPassword(req.Password) {
		return nil, domain.ErrInvalidPassword
	}

	users, err := s.repo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	if len(users) > 1 {
		// unique-field integrity fault; surfaced generically by the handler
		return nil, domain.ErrDuplicateUsers
	}

	user := users[0]
	if user.LoginAttempts >= s.maxLoginAttempts {
		return nil, domain.ErrAccountLocked
	}

	if err := util.CheckPassword(user.Password, req.Password); err != nil {
		if uerr := s.repo.UpdateLoginAttempts(user.Name, user.LoginAttempts+1); uerr != nil {
			return nil, fmt.Errorf("failed to record login attempt: %w", uerr)
		}
		return nil, domain.ErrIncorrectPassword
	}

	if err := s.repo.UpdateLoginAttempts(user.Name, 0); err != nil {
		return nil, fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return &domain.UserInfo{
		Name:          user.Name,
		Email:         user.Email,
		LoginAttempts: 0,
	}, nil
}
