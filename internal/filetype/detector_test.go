package filetype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPDF(t *testing.T) {
	dir := t.TempDir()

	pdfPath := filepath.Join(dir, "deck.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"), 0o644))

	// Extension lies; magic bytes decide.
	textPath := filepath.Join(dir, "notes.pdf")
	require.NoError(t, os.WriteFile(textPath, []byte("just some notes\n"), 0o644))

	ok, mime, err := IsPDF(pdfPath)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, mime, "application/pdf")

	ok, _, err = IsPDF(textPath)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestIsPDFMissingFile(t *testing.T) {
	_, _, err := IsPDF(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
