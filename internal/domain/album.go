package domain

import "time"

// PhotoAlbum owns an ordered list of photos. NumberOfFiles is denormalized
// and must equal len(Photos) after every successful add or delete.
type PhotoAlbum struct {
	ID               uint      `json:"_id" gorm:"primaryKey"`
	OriginalAuthor   string    `json:"originalAuthor"`
	AlbumName        string    `json:"albumName"`
	AlbumDescription string    `json:"albumDescription"`
	NumberOfFiles    int       `json:"numberOfFiles"`
	CreatedDate      time.Time `json:"createdDate"`
	Photos           []Photo   `json:"photos" gorm:"foreignKey:AlbumID"`
}

// Photo is embedded in exactly one album. File names are server-generated,
// never taken from user input.
type Photo struct {
	ID                     uint      `json:"-" gorm:"primaryKey"`
	AlbumID                uint      `json:"-" gorm:"index"`
	PhotoFileName          string    `json:"photoFileName"`
	PhotoThumbnailFileName string    `json:"photoThumbnailFileName"`
	PhotoDescription       string    `json:"photoDescription"`
	FileSize               int64     `json:"fileSize"`
	UploadDate             time.Time `json:"uploadDate"`
	UploadedByUser         string    `json:"uploadedByUser"`
}

// CreateAlbumRequest represents the album creation payload.
type CreateAlbumRequest struct {
	AlbumName        string `json:"albumName" binding:"required,min=1,max=75"`
	AlbumDescription string `json:"albumDescription" binding:"max=150"`
}

type AlbumRepository interface {
	List() ([]PhotoAlbum, error)
	ListByAuthor(author string) ([]PhotoAlbum, error)
	GetByID(id uint) (*PhotoAlbum, error)
	Create(album *PhotoAlbum) error
	AddPhoto(albumID uint, photo *Photo) error
	RemovePhoto(albumID uint, fileName, uploader string) (int64, error)
	RecountPhotos(albumID uint) error
	Delete(albumID uint, author string) (int64, error)
}

type AlbumService interface {
	List(author string) ([]PhotoAlbum, error)
	Get(id uint) (*PhotoAlbum, error)
	Create(req CreateAlbumRequest, author string) (*PhotoAlbum, error)
	Delete(id uint, requester string) error
	DeletePhoto(id uint, fileName, requester string) error
}
