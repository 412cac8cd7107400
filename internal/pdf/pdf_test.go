package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCountMissingFile(t *testing.T) {
	_, err := PageCount(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDocumentRead))
}

func TestWriteNoPagesSelected(t *testing.T) {
	dir := t.TempDir()
	err := Write(filepath.Join(dir, "in.pdf"), nil, filepath.Join(dir, "out.pdf"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDocumentWrite))
}

func TestWriteCorruptSourceLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	assert.NoError(t, os.WriteFile(src, []byte("not a pdf"), 0o644))

	err := Write(src, []int{0}, out)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDocumentWrite))

	// A failed write must not leave anything at the final path, and the
	// temp file must be cleaned up.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
	entries, readErr := os.ReadDir(dir)
	assert.NoError(t, readErr)
	assert.Len(t, entries, 1)
}
