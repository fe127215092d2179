package domain

import "errors"

// Sentinel errors for conditions the HTTP layer reports to the client with
// a specific message. Error text doubles as the response body, so the
// wording matters to the client.
var (
	ErrInvalidPassword   = errors.New("User password invalid")
	ErrDuplicateUser     = errors.New("User name is a duplicate")
	ErrDuplicateEmail    = errors.New("Email is a duplicate")
	ErrMissingEmail      = errors.New("User email is missing")
	ErrUserNotFound      = errors.New("User not found")
	ErrDuplicateUsers    = errors.New("Error: Duplicate Users")
	ErrAccountLocked     = errors.New("Account locked")
	ErrIncorrectPassword = errors.New("Incorrect Password")

	ErrAlbumNotFound        = errors.New("album not found")
	ErrAlbumHasOthersPhotos = errors.New("Album contains other user's photos and can't be deleted.")

	ErrInvalidInput    = errors.New("Invalid input data")
	ErrInvalidFileType = errors.New("Incorrect File Type.")
	ErrInvalidMimeType = errors.New("Incorrect Mime Type.")
	ErrInvalidEmbedURL = errors.New("invalid embed URL")
)
