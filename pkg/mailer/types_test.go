package mailer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipient_WithName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Jane Analyst <jane@example.com>", Recipient("Jane Analyst", "jane@example.com"))
}

func TestRecipient_WithoutName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "jane@example.com", Recipient("", "jane@example.com"))
}

func TestAttachFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "acme-corp.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 data"), 0o600))

	a, err := AttachFile(path, ContentTypePDF)
	require.NoError(t, err)
	require.Equal(t, "acme-corp.pdf", a.Filename)
	require.Equal(t, "application/pdf", a.ContentType)
	require.Equal(t, []byte("%PDF-1.4 data"), a.Content)
}

func TestAttachFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := AttachFile(filepath.Join(t.TempDir(), "missing.pdf"), ContentTypePDF)
	require.ErrorIs(t, err, ErrAttachmentMissing)
	require.ErrorIs(t, err, os.ErrNotExist)
}
