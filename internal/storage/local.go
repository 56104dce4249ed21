package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage keeps tool images on the local filesystem. Keys are generated
// server-side so clients can never influence the stored path.
type LocalStorage struct {
	imagesDir string
}

func NewLocalStorage(uploadDir string) (*LocalStorage, error) {
	imagesDir := filepath.Join(uploadDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalStorage{imagesDir: imagesDir}, nil
}

// NewKey returns a fresh storage key carrying the original file extension.
func (s *LocalStorage) NewKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return uuid.New().String() + ext
}

// Save writes the file under key, replacing any previous content.
func (s *LocalStorage) Save(key string, reader io.Reader) error {
	if !validKey(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	f, err := os.Create(filepath.Join(s.imagesDir, key))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Open returns a reader for the file stored under key.
func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	if !validKey(key) {
		return nil, fmt.Errorf("invalid storage key %q", key)
	}
	return os.Open(filepath.Join(s.imagesDir, key))
}

// Delete removes the file stored under key. Missing files are not an error.
func (s *LocalStorage) Delete(key string) error {
	if !validKey(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	err := os.Remove(filepath.Join(s.imagesDir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// validKey rejects anything that could escape the images directory.
func validKey(key string) bool {
	return key != "" && !strings.Contains(key, "/") && !strings.Contains(key, "\\") && !strings.Contains(key, "..")
}
