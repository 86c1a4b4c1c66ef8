package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore keeps uploaded files on the local filesystem under a single
// root directory. Stored names are random so originals never collide.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes the reader's content under a random name, keeping the
// original extension, and returns the stored name.
func (s *DiskStore) Save(reader io.Reader, originalName string) (string, error) {
	storedName := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(s.root, storedName)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(out, reader); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close file: %w", err)
	}
	return storedName, nil
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *DiskStore) Remove(storedName string) error {
	err := os.Remove(filepath.Join(s.root, storedName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func (s *DiskStore) Path(storedName string) string {
	return filepath.Join(s.root, storedName)
}
