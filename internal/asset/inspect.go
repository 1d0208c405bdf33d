package asset

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Info describes a PDF asset.
type Info struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
}

// Inspect opens the PDF at path and reports its page count.
// It returns an error if the file cannot be read as a PDF.
func Inspect(path string) (info Info, err error) {
	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading %s: malformed pdf: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages < 1 {
		return Info{}, fmt.Errorf("reading %s: no pages", path)
	}
	return Info{Path: path, Pages: pages}, nil
}
