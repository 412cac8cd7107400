package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rs/zerolog/log"
)

// Write assembles a new PDF at outPath containing exactly the pages of
// srcPath named by keptIndices (0-based, ascending), preserving their
// original visual content and relative order. The document is built in a
// temp file in the destination directory and renamed into place, so a
// failed write never leaves a truncated file at the final path.
func Write(srcPath string, keptIndices []int, outPath string) error {
	if len(keptIndices) == 0 {
		return fmt.Errorf("%w: no pages selected", ErrDocumentWrite)
	}

	// pdfcpu page selections are 1-based.
	selected := make([]string, len(keptIndices))
	for i, idx := range keptIndices {
		selected[i] = strconv.Itoa(idx + 1)
	}

	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, ".slidetrim-*.pdf")
	if err != nil {
		return fmt.Errorf("%w: create temp output in %s: %v", ErrDocumentWrite, dir, err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}

	if err := api.CollectFile(srcPath, tmpPath, selected, nil); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: collect pages into %s: %v", ErrDocumentWrite, outPath, err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: move output to %s: %v", ErrDocumentWrite, outPath, err)
	}

	log.Debug().Str("out", outPath).Int("pages", len(keptIndices)).Msg("wrote cleaned pdf")
	return nil
}
