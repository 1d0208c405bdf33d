// Package render serializes publication records for the website.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/uranus-web/uranus-bib/internal/paper"
	"github.com/uranus-web/uranus-bib/internal/people"
)

// Format is an output format.
type Format string

const (
	// FormatJSON renders the papers as a JSON array.
	FormatJSON Format = "json"
	// FormatTS renders papers and people as exported TypeScript constants.
	FormatTS Format = "ts"
)

// Names of the constants exported by FormatTS, in output order.
const (
	PapersConst = "papers"
	PeopleConst = "people"
)

const indent = "    "

// ErrUnknownFormat is returned for a format other than json or ts.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatTS}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: %s, %s)", ErrUnknownFormat, s, FormatJSON, FormatTS)
}

// Render serializes papers, and for FormatTS also persons, as text.
func Render(f Format, papers []paper.Paper, persons []people.Person) (string, error) {
	switch f {
	case FormatJSON:
		return JSON(papers)
	case FormatTS:
		return TypeScript(papers, persons)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
}

// JSON renders papers as a JSON array indented by four spaces.
func JSON(papers []paper.Paper) (string, error) {
	if papers == nil {
		papers = []paper.Paper{}
	}
	return marshal(papers)
}

// TypeScript renders two exported constants, papers first and people second,
// separated by a blank line. A nil persons slice renders as an empty array.
func TypeScript(papers []paper.Paper, persons []people.Person) (string, error) {
	if papers == nil {
		papers = []paper.Paper{}
	}
	if persons == nil {
		persons = []people.Person{}
	}

	papersJSON, err := marshal(papers)
	if err != nil {
		return "", err
	}
	peopleJSON, err := marshal(persons)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "export const %s = %s\n", PapersConst, papersJSON)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export const %s = %s\n", PeopleConst, peopleJSON)
	return b.String(), nil
}

// marshal encodes v with four-space indentation and without HTML escaping,
// so URLs keep their literal "&".
func marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
