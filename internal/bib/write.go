package bib

import (
	"fmt"
	"strings"
)

// Write renders entries as BibTeX text.
//
// Fields are written in alphabetical order, one per line with a single space
// of indentation, every value wrapped in braces:
//
//	@inproceedings{Doe2024,
//	 author = {Jane Doe and John Roe},
//	 title = {A Title}
//	}
//
// Each entry is followed by a blank line.
func Write(entries ...Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("@%s{%s", e.Type, e.ID))
		for _, name := range e.FieldNames() {
			b.WriteString(fmt.Sprintf(",\n %s = {%s}", name, e.Fields[name]))
		}
		b.WriteString("\n}\n\n")
	}
	return b.String()
}
