package bib

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is wrapped by every error caused by malformed BibTeX.
var ErrSyntax = errors.New("bibtex syntax error")

// SyntaxError reports malformed input at a line of the source.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// monthStrings are the predefined month macros, so that `month = oct`
// resolves to the full month name.
var monthStrings = map[string]string{
	"jan": "January",
	"feb": "February",
	"mar": "March",
	"apr": "April",
	"may": "May",
	"jun": "June",
	"jul": "July",
	"aug": "August",
	"sep": "September",
	"oct": "October",
	"nov": "November",
	"dec": "December",
}

type parser struct {
	src    string
	pos    int
	macros map[string]string // lower-cased name -> expanded value
}

func newParser(src string) *parser {
	macros := make(map[string]string, len(monthStrings))
	for name, value := range monthStrings {
		macros[name] = value
	}
	return &parser{src: src, macros: macros}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{
		Line: 1 + strings.Count(p.src[:p.pos], "\n"),
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) consume(c byte) bool {
	if p.eof() || p.peek() != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.peek()) {
		p.pos++
	}
}

func (p *parser) skipLine() {
	if i := strings.IndexByte(p.src[p.pos:], '\n'); i >= 0 {
		p.pos += i + 1
		return
	}
	p.pos = len(p.src)
}

// ident reads a run of name characters (entry types, field and macro names).
func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isNameChar(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) parse() ([]Entry, error) {
	entries := []Entry{}
	for {
		for !p.eof() && p.peek() != '@' {
			if p.peek() == '%' {
				p.skipLine()
				continue
			}
			p.pos++
		}
		if p.eof() {
			return entries, nil
		}
		p.pos++

		p.skipSpace()
		kind := strings.ToLower(p.ident())
		if kind == "" {
			return nil, p.errorf("expected entry type after @")
		}
		p.skipSpace()

		if kind == "comment" && (p.eof() || (p.peek() != '{' && p.peek() != '(')) {
			continue
		}
		closing, err := p.open(kind)
		if err != nil {
			return nil, err
		}

		switch kind {
		case "comment", "preamble":
			if err := p.skipBlock(closing); err != nil {
				return nil, err
			}
		case "string":
			if err := p.stringDef(closing); err != nil {
				return nil, err
			}
		default:
			e, err := p.entry(kind, closing)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	}
}

// open consumes the opening delimiter of a block and returns its closing one.
func (p *parser) open(kind string) (byte, error) {
	switch {
	case p.consume('{'):
		return '}', nil
	case p.consume('('):
		return ')', nil
	default:
		return 0, p.errorf("expected { or ( after @%s", kind)
	}
}

func (p *parser) skipBlock(closing byte) error {
	depth := 0
	for ; !p.eof(); p.pos++ {
		switch c := p.peek(); {
		case c == '{':
			depth++
		case c == '}' && depth > 0:
			depth--
		case c == closing && depth == 0:
			p.pos++
			return nil
		}
	}
	return p.errorf("unterminated block")
}

func (p *parser) stringDef(closing byte) error {
	p.skipSpace()
	name := p.ident()
	if name == "" {
		return p.errorf("expected macro name in @string")
	}
	p.skipSpace()
	if !p.consume('=') {
		return p.errorf("expected = after @string name %q", name)
	}
	value, err := p.value()
	if err != nil {
		return err
	}
	p.skipSpace()
	if !p.consume(closing) {
		return p.errorf("expected %c to close @string %q", closing, name)
	}
	p.macros[strings.ToLower(name)] = value
	return nil
}

func (p *parser) entry(kind string, closing byte) (Entry, error) {
	i := strings.IndexAny(p.src[p.pos:], ","+string(closing))
	if i < 0 {
		return Entry{}, p.errorf("unterminated @%s entry", kind)
	}
	id := strings.TrimSpace(p.src[p.pos : p.pos+i])
	if id == "" {
		return Entry{}, p.errorf("missing citation key in @%s entry", kind)
	}
	p.pos += i

	fields := make(map[string]string)
	for {
		p.skipSpace()
		if p.eof() {
			return Entry{}, p.errorf("unterminated entry %q", id)
		}
		switch p.peek() {
		case closing:
			p.pos++
			return Entry{ID: id, Type: kind, Fields: fields}, nil
		case ',':
			p.pos++
			continue
		}

		name := strings.ToLower(p.ident())
		if name == "" {
			return Entry{}, p.errorf("unexpected %q in entry %q", p.peek(), id)
		}
		p.skipSpace()
		if !p.consume('=') {
			return Entry{}, p.errorf("expected = after field %q in entry %q", name, id)
		}
		value, err := p.value()
		if err != nil {
			return Entry{}, err
		}
		fields[name] = value

		p.skipSpace()
		if p.eof() {
			return Entry{}, p.errorf("unterminated entry %q", id)
		}
		if c := p.peek(); c != ',' && c != closing {
			return Entry{}, p.errorf("expected , or %c after field %q in entry %q", closing, name, id)
		}
	}
}

// value reads a field value: one or more operands joined by #.
func (p *parser) value() (string, error) {
	var b strings.Builder
	for {
		p.skipSpace()
		s, err := p.operand()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		p.skipSpace()
		if !p.consume('#') {
			return b.String(), nil
		}
	}
}

func (p *parser) operand() (string, error) {
	if p.eof() {
		return "", p.errorf("unexpected end of input, expected a value")
	}
	switch c := p.peek(); {
	case c == '{':
		p.pos++
		return p.delimited('}')
	case c == '"':
		p.pos++
		return p.delimited('"')
	case isDigit(c):
		start := p.pos
		for !p.eof() && isDigit(p.peek()) {
			p.pos++
		}
		return p.src[start:p.pos], nil
	default:
		name := p.ident()
		if name == "" {
			return "", p.errorf("expected a value, got %q", c)
		}
		value, ok := p.macros[strings.ToLower(name)]
		if !ok {
			return "", p.errorf("undefined string macro %q", name)
		}
		return value, nil
	}
}

// delimited returns the text up to the closing delimiter at brace depth 0.
// Inner braces are kept as written.
func (p *parser) delimited(closing byte) (string, error) {
	start := p.pos
	depth := 0
	for ; !p.eof(); p.pos++ {
		switch c := p.peek(); {
		case c == closing && depth == 0:
			s := p.src[start:p.pos]
			p.pos++
			return s, nil
		case c == '{':
			depth++
		case c == '}':
			if depth == 0 {
				return "", p.errorf("unbalanced } in value")
			}
			depth--
		}
	}
	p.pos = start
	return "", p.errorf("unterminated value")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameChar(c byte) bool {
	if isSpace(c) {
		return false
	}
	return !strings.ContainsRune(`{}()",=#%@'`, rune(c))
}
