package service

import (
	"errors"
	"os"
	"testing"

	"github.com/philjones21/MyHomePageApp/internal/domain"
	"github.com/philjones21/MyHomePageApp/internal/repository"
	"github.com/philjones21/MyHomePageApp/internal/sanitize"
	"github.com/philjones21/MyHomePageApp/internal/storage"
)

func newAlbumFixture(t *testing.T) (domain.AlbumService, domain.AlbumRepository, *storage.ImageRepository) {
	t.Helper()
	db := newTestDB(t)
	images, err := storage.NewImageRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewImageRepository: %v", err)
	}
	repo := repository.NewAlbumRepository(db)
	svc := NewAlbumService(repo, images, sanitize.New(sanitize.DefaultBlacklist))
	return svc, repo, images
}

func createTripAlbum(t *testing.T, svc domain.AlbumService, author string) *domain.PhotoAlbum {
	t.Helper()
	album, err := svc.Create(domain.CreateAlbumRequest{
		AlbumName:        "Trip",
		AlbumDescription: "summer trip",
	}, author)
	if err != nil {
		t.Fatalf("create album: %v", err)
	}
	return album
}

func addPhotoRecord(t *testing.T, repo domain.AlbumRepository, albumID uint, fileName, uploader string) {
	t.Helper()
	err := repo.AddPhoto(albumID, &domain.Photo{
		PhotoFileName:          fileName,
		PhotoThumbnailFileName: storage.ThumbnailName(fileName),
		UploadedByUser:         uploader,
	})
	if err != nil {
		t.Fatalf("add photo record: %v", err)
	}
}

func TestCreateAlbum(t *testing.T) {
	svc, _, images := newAlbumFixture(t)

	album := createTripAlbum(t, svc, "alice")
	if album.NumberOfFiles != 0 {
		t.Errorf("NumberOfFiles = %d, want 0", album.NumberOfFiles)
	}
	if album.CreatedDate.IsZero() {
		t.Error("CreatedDate not stamped")
	}
	if album.OriginalAuthor != "alice" {
		t.Errorf("OriginalAuthor = %q, want alice", album.OriginalAuthor)
	}
	if _, err := os.Stat(images.AlbumDir(album.ID)); err != nil {
		t.Errorf("album folder not provisioned: %v", err)
	}
}

func TestCreateAlbumSanitizesFields(t *testing.T) {
	svc, _, _ := newAlbumFixture(t)

	album, err := svc.Create(domain.CreateAlbumRequest{
		AlbumName:        "Trip ${2024}",
		AlbumDescription: "note$",
	}, "alice")
	if err != nil {
		t.Fatalf("create album: %v", err)
	}
	if album.AlbumName != "Trip 2024" {
		t.Errorf("AlbumName = %q, want %q", album.AlbumName, "Trip 2024")
	}
	if album.AlbumDescription != "note" {
		t.Errorf("AlbumDescription = %q, want %q", album.AlbumDescription, "note")
	}
}

func TestAddPhotoKeepsCountInvariant(t *testing.T) {
	svc, repo, _ := newAlbumFixture(t)
	album := createTripAlbum(t, svc, "alice")

	addPhotoRecord(t, repo, album.ID, "11111111-1111-1111-1111-111111111111.jpg", "alice")

	got, err := svc.Get(album.ID)
	if err != nil {
		t.Fatalf("get album: %v", err)
	}
	if got.NumberOfFiles != 1 || len(got.Photos) != 1 {
		t.Errorf("NumberOfFiles = %d, len(Photos) = %d, want 1 and 1", got.NumberOfFiles, len(got.Photos))
	}
}

func TestDeletePhotoAsNonUploaderIsNoOp(t *testing.T) {
	svc, repo, _ := newAlbumFixture(t)
	album := createTripAlbum(t, svc, "alice")
	addPhotoRecord(t, repo, album.ID, "11111111-1111-1111-1111-111111111111.jpg", "alice")

	if err := svc.DeletePhoto(album.ID, "11111111-1111-1111-1111-111111111111.jpg", "bob"); err != nil {
		t.Fatalf("delete photo as non-uploader: %v", err)
	}

	got, err := svc.Get(album.ID)
	if err != nil {
		t.Fatalf("get album: %v", err)
	}
	if got.NumberOfFiles != 1 || len(got.Photos) != 1 {
		t.Errorf("album mutated by non-uploader delete: count=%d photos=%d", got.NumberOfFiles, len(got.Photos))
	}
}

func TestDeletePhotoAsUploaderRecountsAndUnlinks(t *testing.T) {
	svc, repo, images := newAlbumFixture(t)
	album := createTripAlbum(t, svc, "alice")

	const fileName = "11111111-1111-1111-1111-111111111111.jpg"
	addPhotoRecord(t, repo, album.ID, fileName, "alice")
	for _, name := range []string{fileName, storage.ThumbnailName(fileName)} {
		if err := os.WriteFile(images.PhotoPath(album.ID, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := svc.DeletePhoto(album.ID, fileName, "alice"); err != nil {
		t.Fatalf("delete photo: %v", err)
	}

	got, err := svc.Get(album.ID)
	if err != nil {
		t.Fatalf("get album: %v", err)
	}
	if got.NumberOfFiles != 0 || len(got.Photos) != 0 {
		t.Errorf("count=%d photos=%d after delete, want 0 and 0", got.NumberOfFiles, len(got.Photos))
	}
	for _, name := range []string{fileName, storage.ThumbnailName(fileName)} {
		if _, err := os.Stat(images.PhotoPath(album.ID, name)); !os.IsNotExist(err) {
			t.Errorf("%s still on disk after delete", name)
		}
	}
}

func TestDeleteAlbumAsNonOwnerIsNoOp(t *testing.T) {
	svc, _, images := newAlbumFixture(t)
	album := createTripAlbum(t, svc, "alice")

	if err := svc.Delete(album.ID, "bob"); err != nil {
		t.Fatalf("delete as non-owner: %v", err)
	}
	if _, err := svc.Get(album.ID); err != nil {
		t.Errorf("album gone after non-owner delete: %v", err)
	}
	if _, err := os.Stat(images.AlbumDir(album.ID)); err != nil {
		t.Errorf("album folder gone after non-owner delete: %v", err)
	}
}

func TestDeleteAlbumAsOwnerRemovesRowsAndFolder(t *testing.T) {
	svc, repo, images := newAlbumFixture(t)
	album := createTripAlbum(t, svc, "alice")
	addPhotoRecord(t, repo, album.ID, "11111111-1111-1111-1111-111111111111.jpg", "alice")

	if err := svc.Delete(album.ID, "alice"); err != nil {
		t.Fatalf("delete as owner: %v", err)
	}
	if _, err := svc.Get(album.ID); !errors.Is(err, domain.ErrAlbumNotFound) {
		t.Errorf("get after delete: got %v, want ErrAlbumNotFound", err)
	}
	if _, err := os.Stat(images.AlbumDir(album.ID)); !os.IsNotExist(err) {
		t.Error("album folder still present after owner delete")
	}
}

func TestDeleteAlbumWithOtherUsersPhotosRefused(t *testing.T) {
	svc, repo, _ := newAlbumFixture(t)
	album := createTripAlbum(t, svc, "alice")
	addPhotoRecord(t, repo, album.ID, "11111111-1111-1111-1111-111111111111.jpg", "bob")

	err := svc.Delete(album.ID, "alice")
	if !errors.Is(err, domain.ErrAlbumHasOthersPhotos) {
		t.Errorf("got %v, want ErrAlbumHasOthersPhotos", err)
	}
	if _, err := svc.Get(album.ID); err != nil {
		t.Errorf("album gone after refused delete: %v", err)
	}
}

func TestListSortsNewestFirstAndFiltersByAuthor(t *testing.T) {
	svc, _, _ := newAlbumFixture(t)

	first := createTripAlbum(t, svc, "alice")
	second, err := svc.Create(domain.CreateAlbumRequest{AlbumName: "Hiking"}, "bob")
	if err != nil {
		t.Fatalf("create second album: %v", err)
	}

	all, err := svc.List("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	if all[0].CreatedDate.Before(all[1].CreatedDate) {
		t.Error("albums not sorted by creation date descending")
	}

	mine, err := svc.List("alice")
	if err != nil {
		t.Fatalf("list by author: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != first.ID {
		t.Errorf("list by author returned %d albums", len(mine))
	}
	_ = second
}
