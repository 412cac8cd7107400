package filetype

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
)

// IsPDF reports whether the file at path is a PDF, detected from magic
// bytes rather than the filename. The detected MIME type is returned for
// error messages.
func IsPDF(path string) (bool, string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false, "", fmt.Errorf("failed to detect file type: %w", err)
	}

	log.Debug().Str("mime", mtype.String()).Str("file", path).Msg("detected file type")
	return mtype.Is("application/pdf"), mtype.String(), nil
}
