package pdf

import "errors"

// ErrDocumentRead marks failures opening or reading the source document.
var ErrDocumentRead = errors.New("document read failed")

// ErrDocumentWrite marks failures producing the output document.
var ErrDocumentWrite = errors.New("document write failed")
