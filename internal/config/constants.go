package config

// Field limits and upload rules shared by the validation and photo layers.
const (
	MaxPhotoFileSize = 5000000
	MaxUploadFields  = 3

	MinUserNameChars = 2
	MaxUserNameChars = 40

	MaxLoginAttempts = 8

	MinAlbumTitleChars = 1
	MaxAlbumTitleChars = 75

	MaxAlbumDescChars = 150
	MaxPhotoDescChars = 150

	MinBlogTitleChars   = 1
	MaxBlogTitleChars   = 75
	MaxBlogArticleChars = 2000
)

// Bounding boxes for the stored image and its thumbnail. Uploads are scaled
// down to fit, never scaled up.
const (
	MaxPhotoWidth  uint = 1200
	MaxPhotoHeight uint = 1200

	ThumbnailWidth  uint = 300
	ThumbnailHeight uint = 300
)

var (
	ValidFileTypes = []string{".jpg", ".jpeg", ".gif", ".png", ".tiff"}
	ValidMimeTypes = []string{"image/jpeg", "image/png", "image/gif", "image/tiff"}
	ValidEmbedURLs = []string{"https://www.youtube.com"}
)
