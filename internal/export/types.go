// Package export produces downloadable artifacts from the content
// collections: a JSON export of a single service category and a rendered
// PDF of the full price list.
package export

import "errors"

// Result contains the export output
type Result struct {
	Data     []byte
	Filename string
	MimeType string
}

var (
	// ErrPDFDependencyMissing indicates PDF export runtime dependencies are unavailable.
	ErrPDFDependencyMissing = errors.New("export pdf dependency missing")
)
