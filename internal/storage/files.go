// Package storage persists uploaded picture files under a local directory
// that the server also serves statically.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore writes uploaded files into a single directory with generated
// names, so client-supplied filenames never touch the filesystem.
type FileStore struct {
	dir string
}

// NewFileStore creates the upload directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save streams src to a new file and returns the stored filename and its
// path relative to the upload dir's parent.
func (s *FileStore) Save(src io.Reader) (filename, path string, err error) {
	filename = uuid.NewString()
	path = filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("writing upload file: %w", err)
	}

	return filename, path, nil
}

// Remove deletes a stored file. Missing files are not an error: the record
// is the source of truth, the file a cache of it.
func (s *FileStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the upload directory path.
func (s *FileStore) Dir() string {
	return s.dir
}
