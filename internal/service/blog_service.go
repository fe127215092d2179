package service

import (
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/philjones21/MyHomePageApp/internal/config"
	"github.com/philjones21/MyHomePageApp/internal/domain"
)

// blogService implements domain.BlogService.
type blogService struct {
	repo   domain.BlogRepository
	policy *bluemonday.Policy
}

// NewBlogService creates a new BlogService. Article HTML goes through a
// bluemonday UGC policy before persistence.
func NewBlogService(repo domain.BlogRepository) domain.BlogService {
	return &blogService{repo: repo, policy: bluemonday.UGCPolicy()}
}

// List returns all blog entries, newest first.
func (s *blogService) List() ([]domain.BlogEntry, error) {
	return s.repo.List()
}

// Add persists a new blog entry for author, stamping the creation date.
func (s *blogService) Add(req domain.CreateBlogRequest, author string) (*domain.BlogEntry, error) {
	if req.BlogEmbedURL != "" && !validEmbedURL(req.BlogEmbedURL) {
		return nil, domain.ErrInvalidEmbedURL
	}

	entry := &domain.BlogEntry{
		OriginalAuthor: author,
		BlogTitle:      strings.TrimSpace(req.BlogTitle),
		BlogArticle:    s.policy.Sanitize(req.BlogArticle),
		BlogEmbedURL:   req.BlogEmbedURL,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes the entry only when author matches. A non-owner request
// affects zero rows and is still reported as success.
func (s *blogService) Delete(id uint, author string) error {
	_, err := s.repo.Delete(id, author)
	return err
}

// validEmbedURL accepts only well-formed URLs whose scheme and host match an
// allow-listed entry. The comparison is on the parsed host, so a host that
// merely starts with an allowed one ("www.youtube.com.evil.com") is rejected.
func validEmbedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	for _, allowed := range config.ValidEmbedURLs {
		a, err := url.Parse(allowed)
		if err != nil {
			continue
		}
		if u.Scheme == a.Scheme && u.Host == a.Host {
			return true
		}
	}
	return false
}
