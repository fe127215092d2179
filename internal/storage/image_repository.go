// Package storage manages the on-disk image repository: one folder per
// album, created with the album and removed with it.
package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type ImageRepository struct {
	baseDir string
}

// NewImageRepository ensures the base directory exists and returns a
// repository rooted there.
func NewImageRepository(baseDir string) (*ImageRepository, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image repository dir: %w", err)
	}
	return &ImageRepository{baseDir: baseDir}, nil
}

// AlbumDir returns the folder holding an album's images.
func (r *ImageRepository) AlbumDir(albumID uint) string {
	return filepath.Join(r.baseDir, strconv.FormatUint(uint64(albumID), 10))
}

// PhotoPath returns the full path of a stored image or thumbnail.
func (r *ImageRepository) PhotoPath(albumID uint, fileName string) string {
	return filepath.Join(r.AlbumDir(albumID), fileName)
}

// CreateAlbumFolder provisions the per-album folder when an album is added.
func (r *ImageRepository) CreateAlbumFolder(albumID uint) error {
	if err := os.MkdirAll(r.AlbumDir(albumID), 0o755); err != nil {
		return fmt.Errorf("failed to create album folder: %w", err)
	}
	return nil
}

// RemoveAlbumFolder recursively removes the per-album folder.
func (r *ImageRepository) RemoveAlbumFolder(albumID uint) error {
	if err := os.RemoveAll(r.AlbumDir(albumID)); err != nil {
		return fmt.Errorf("failed to remove album folder: %w", err)
	}
	return nil
}

// RemovePhotoFiles unlinks the full-size image and its thumbnail. The two
// removals are independent best-effort operations: failing to remove one
// file must not block removing the other.
func (r *ImageRepository) RemovePhotoFiles(albumID uint, fileName string) {
	full := r.PhotoPath(albumID, fileName)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Printf("storage RemovePhotoFiles: %v", err)
	}
	thumb := r.PhotoPath(albumID, ThumbnailName(fileName))
	if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
		log.Printf("storage RemovePhotoFiles: %v", err)
	}
}

// ThumbnailName derives the thumbnail file name from a stored image name,
// e.g. "abc.jpg" -> "abc_tn.jpg".
func ThumbnailName(fileName string) string {
	ext := filepath.Ext(fileName)
	return strings.TrimSuffix(fileName, ext) + "_tn" + ext
}
