package domain

import "time"

// BlogEntry is a published article. BlogEmbedURL, when present, must point
// at an allow-listed host.
type BlogEntry struct {
	ID             uint      `json:"_id" gorm:"primaryKey"`
	OriginalAuthor string    `json:"originalAuthor"`
	BlogTitle      string    `json:"blogTitle"`
	BlogArticle    string    `json:"blogArticle"`
	BlogEmbedURL   string    `json:"blogEmbedURL,omitempty"`
	CreatedDate    time.Time `json:"createdDate"`
}

// CreateBlogRequest represents the blog creation payload.
type CreateBlogRequest struct {
	BlogTitle    string `json:"blogTitle" binding:"required,min=1,max=75"`
	BlogArticle  string `json:"blogArticle" binding:"max=2000"`
	BlogEmbedURL string `json:"blogEmbedURL" binding:"omitempty,max=100"`
}

type BlogRepository interface {
	List() ([]BlogEntry, error)
	Create(entry *BlogEntry) error
	Delete(id uint, author string) (int64, error)
}

type BlogService interface {
	List() ([]BlogEntry, error)
	Add(req CreateBlogRequest, author string) (*BlogEntry, error)
	Delete(id uint, author string) error
}
