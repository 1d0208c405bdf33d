// Package asset resolves companion files (paper and slide PDFs) of
// bibliography entries to public URLs.
package asset

import (
	"os"
	"path/filepath"
)

// Resolver maps file names in a local assets directory to URLs.
type Resolver struct {
	dir       string
	urlPrefix string
}

// NewResolver creates a resolver for files under dir, published at urlPrefix.
// A resolver with an empty dir resolves nothing.
func NewResolver(dir, urlPrefix string) *Resolver {
	return &Resolver{
		dir:       dir,
		urlPrefix: urlPrefix,
	}
}

// Path returns the local path of filename inside the assets directory.
func (r *Resolver) Path(filename string) string {
	return filepath.Join(r.dir, filename)
}

// Resolve returns "{prefix}/{filename}" if filename exists in the assets
// directory. A missing file is not an error; ok is simply false.
func (r *Resolver) Resolve(filename string) (url string, ok bool) {
	if r == nil || r.dir == "" {
		return "", false
	}
	if _, err := os.Stat(r.Path(filename)); err != nil {
		return "", false
	}
	return r.urlPrefix + "/" + filename, true
}

// PaperFile is the asset name of an entry's paper PDF.
func PaperFile(id string) string {
	return id + ".pdf"
}

// SlidesFile is the asset name of an entry's slide deck.
func SlidesFile(id string) string {
	return id + "-slides.pdf"
}
