package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/philjones21/MyHomePageApp/internal/domain"
	"github.com/philjones21/MyHomePageApp/internal/repository"
)

func newBlogFixture(t *testing.T) domain.BlogService {
	t.Helper()
	return NewBlogService(repository.NewBlogRepository(newTestDB(t)))
}

func TestAddBlogStampsDateAndAuthor(t *testing.T) {
	svc := newBlogFixture(t)

	entry, err := svc.Add(domain.CreateBlogRequest{
		BlogTitle:   "First post",
		BlogArticle: "hello world",
	}, "alice")
	if err != nil {
		t.Fatalf("add blog: %v", err)
	}
	if entry.CreatedDate.IsZero() {
		t.Error("CreatedDate not stamped")
	}
	if entry.OriginalAuthor != "alice" {
		t.Errorf("OriginalAuthor = %q, want alice", entry.OriginalAuthor)
	}
}

func TestAddBlogSanitizesArticleHTML(t *testing.T) {
	svc := newBlogFixture(t)

	entry, err := svc.Add(domain.CreateBlogRequest{
		BlogTitle:   "Scripts",
		BlogArticle: `<p>fine</p><script>alert("x")</script>`,
	}, "alice")
	if err != nil {
		t.Fatalf("add blog: %v", err)
	}
	if strings.Contains(entry.BlogArticle, "<script>") {
		t.Errorf("script tag survived sanitation: %q", entry.BlogArticle)
	}
	if !strings.Contains(entry.BlogArticle, "<p>fine</p>") {
		t.Errorf("benign markup stripped: %q", entry.BlogArticle)
	}
}

func TestAddBlogEmbedURLAllowList(t *testing.T) {
	svc := newBlogFixture(t)

	if _, err := svc.Add(domain.CreateBlogRequest{
		BlogTitle:    "Video",
		BlogEmbedURL: "https://www.youtube.com/watch?v=abc123",
	}, "alice"); err != nil {
		t.Errorf("allow-listed embed URL rejected: %v", err)
	}

	for _, bad := range []string{
		"https://evil.example.com/watch",
		"https://www.youtube.com.evil.com/watch", // allowed host as a prefix of a foreign one
		"http://www.youtube.com/watch",           // scheme must match too
		"not a url",
		"javascript:alert(1)",
	} {
		_, err := svc.Add(domain.CreateBlogRequest{
			BlogTitle:    "Video",
			BlogEmbedURL: bad,
		}, "alice")
		if !errors.Is(err, domain.ErrInvalidEmbedURL) {
			t.Errorf("embed URL %q: got %v, want ErrInvalidEmbedURL", bad, err)
		}
	}
}

func TestDeleteBlogOwnership(t *testing.T) {
	svc := newBlogFixture(t)

	entry, err := svc.Add(domain.CreateBlogRequest{BlogTitle: "Mine"}, "alice")
	if err != nil {
		t.Fatalf("add blog: %v", err)
	}

	// non-owner delete is a silent no-op
	if err := svc.Delete(entry.ID, "bob"); err != nil {
		t.Fatalf("delete as non-owner: %v", err)
	}
	entries, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entry removed by non-owner delete")
	}

	if err := svc.Delete(entry.ID, "alice"); err != nil {
		t.Fatalf("delete as owner: %v", err)
	}
	entries, err = svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entry still present after owner delete")
	}
}

func TestListBlogsNewestFirst(t *testing.T) {
	svc := newBlogFixture(t)

	if _, err := svc.Add(domain.CreateBlogRequest{BlogTitle: "older"}, "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(domain.CreateBlogRequest{BlogTitle: "newer"}, "alice"); err != nil {
		t.Fatal(err)
	}

	entries, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].CreatedDate.Before(entries[1].CreatedDate) {
		t.Error("entries not sorted by creation date descending")
	}
}
