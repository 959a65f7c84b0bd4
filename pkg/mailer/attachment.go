package mailer

import (
	"fmt"
	"os"
	"path/filepath"
)

// AttachFile reads the file at path into an Attachment named after its base name.
func AttachFile(path, contentType string) (Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("%w: %s: %w", ErrAttachmentMissing, path, err)
	}
	return Attachment{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Content:     content,
	}, nil
}
