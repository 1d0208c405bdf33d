// Package bib loads BibTeX bibliographies into plain field maps and writes
// them back out in canonical form.
package bib

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Entry is a single bibliography record.
type Entry struct {
	ID     string            // Citation key
	Type   string            // Lower-cased entry type (article, inproceedings, ...)
	Fields map[string]string // Lower-cased field name -> value without outer delimiters
}

// Get returns the value of a field and whether the field is present.
func (e Entry) Get(name string) (string, bool) {
	v, ok := e.Fields[name]
	return v, ok
}

// Without returns a deep copy of the entry with the named fields removed.
func (e Entry) Without(names ...string) Entry {
	fields := make(map[string]string, len(e.Fields))
	for k, v := range e.Fields {
		fields[k] = v
	}
	for _, name := range names {
		delete(fields, name)
	}
	return Entry{ID: e.ID, Type: e.Type, Fields: fields}
}

// FieldNames returns the entry's field names in sorted order.
func (e Entry) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads every entry from a BibTeX source, preserving file order.
// Text outside entries and lines starting with % are ignored, @comment and
// @preamble blocks are skipped, and @string macros (plus the month macros
// jan..dec) are expanded. Macro names are case-insensitive.
func Parse(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bibtex: %w", err)
	}

	p := newParser(string(data))
	entries, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("parsing bibtex: %w", err)
	}
	return entries, nil
}

// Load parses the BibTeX file at path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bibliography: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
