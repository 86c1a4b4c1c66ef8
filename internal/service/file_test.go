package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	upload := func(size int64) FileUpload {
		return FileUpload{Name: "doc.pdf", ContentType: "application/pdf", Size: size, Reader: strings.NewReader("")}
	}

	t.Run("rejects empty files", func(t *testing.T) {
		err := validateUpload(upload(0), maxEvidenceSize)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		err := validateUpload(upload(maxEvidenceSize+1), maxEvidenceSize)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("accepts files at the limit", func(t *testing.T) {
		assert.NoError(t, validateUpload(upload(maxEvidenceSize), maxEvidenceSize))
		assert.NoError(t, validateUpload(upload(maxAttachmentSize), maxAttachmentSize))
	})
}
