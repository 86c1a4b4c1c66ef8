package service

import (
	"fmt"
	"io"
)

const (
	maxAttachmentSize = 20 * 1024 * 1024
	maxEvidenceSize   = 10 * 1024 * 1024
)

// FileStore abstracts the physical file storage used for evidence and
// attachment uploads.
type FileStore interface {
	Save(reader io.Reader, originalName string) (string, error)
	Remove(storedName string) error
	Path(storedName string) string
}

// FileUpload carries an inbound multipart file without tying services to
// the HTTP layer.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// FileResult is a generated or stored file ready to be sent to the client.
type FileResult struct {
	FileName string
	MimeType string
	Content  []byte
}

// StoredFile points at a file on disk so the transport layer can stream it
// without loading it into memory.
type StoredFile struct {
	FileName string
	MimeType string
	Path     string
}

func validateUpload(file FileUpload, maxSize int64) error {
	if file.Size == 0 {
		return fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	if file.Size > maxSize {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, maxSize)
	}
	return nil
}
