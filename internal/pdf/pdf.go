package pdf

import (
	"fmt"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rs/zerolog/log"
)

// Page is one extracted document page: its 0-based index in document order
// and its raw extracted text. Text may be empty for image-only or scanned
// pages; that is not an error.
type Page struct {
	Index int
	Text  string
}

// Open extracts the text of every page of the PDF at path, in document
// order, using go-fitz (MuPDF). A page whose extraction fails is kept with
// empty text so downstream decisions still cover every page.
func Open(path string) ([]Page, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDocumentRead, path, err)
	}
	defer doc.Close()

	total := doc.NumPage()
	pages := make([]Page, 0, total)
	for i := 0; i < total; i++ {
		text, err := doc.Text(i)
		if err != nil {
			log.Warn().Err(err).Int("page", i+1).Msg("failed to extract text from page")
			text = ""
		}
		pages = append(pages, Page{Index: i, Text: text})
	}

	log.Debug().Str("pdf", path).Int("pages", total).Msg("extracted page texts")
	return pages, nil
}

// PageCount returns the page count via pdfcpu, independent of the MuPDF
// open path used for extraction.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: page count for %s: %v", ErrDocumentRead, path, err)
	}
	return n, nil
}
