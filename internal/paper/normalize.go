package paper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/uranus-web/uranus-bib/internal/asset"
	"github.com/uranus-web/uranus-bib/internal/bib"
)

const (
	githubPrefix = "https://github.com/"

	// AuthorSeparator joins author names in a BibTeX author field.
	AuthorSeparator = " and "
)

// RequiredFields lists the entry fields every publication must carry.
var RequiredFields = []string{"title", "author", "booktitle"}

// ErrMissingField is wrapped by MissingFieldError.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError reports an entry lacking a required field.
type MissingFieldError struct {
	ID    string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("entry %s: %s %q", e.ID, ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// AssetResolver looks up an entry's companion file by name.
type AssetResolver interface {
	Resolve(filename string) (url string, ok bool)
}

// Normalize converts a bibliography entry into a Paper.
func Normalize(e bib.Entry, assets AssetResolver) (Paper, error) {
	title, err := required(e, "title")
	if err != nil {
		return Paper{}, err
	}
	authors, err := required(e, "author")
	if err != nil {
		return Paper{}, err
	}
	booktitle, err := required(e, "booktitle")
	if err != nil {
		return Paper{}, err
	}

	p := Paper{
		Name:        StripGrouping(title),
		Authors:     SplitAuthors(authors),
		AuthorExtra: "",
		PublicAt:    booktitle,
	}

	if v, ok := e.Get("abstract"); ok {
		p.Abstract = strPtr(v)
	}
	if url, ok := resolve(assets, asset.PaperFile(e.ID)); ok {
		p.PaperLink = strPtr(url)
	}
	if v, ok := e.Get("month"); ok {
		p.Month = strPtr(v)
	}
	if v, ok := e.Get("year"); ok {
		p.Year = strPtr(v)
	}
	if v, ok := e.Get("www-url"); ok && v != "" {
		p.GithubLink = strPtr(v)
		if badge, ok := GithubStarsBadge(v); ok {
			p.GithubStarsSvgLink = strPtr(badge)
		}
	}
	if url, ok := resolve(assets, asset.SlidesFile(e.ID)); ok {
		p.SlideLink = strPtr(url)
	}

	p.Bibtex = bib.Write(e.Without("abstract"))
	return p, nil
}

// NormalizeAll converts every entry, stopping at the first error.
func NormalizeAll(entries []bib.Entry, assets AssetResolver) ([]Paper, error) {
	papers := make([]Paper, 0, len(entries))
	for _, e := range entries {
		p, err := Normalize(e, assets)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// StripGrouping removes one layer of BibTeX grouping from each end of s.
// A layer is a run of spaces holding at most one brace, so "{ Title }"
// becomes "Title" and "{{Title}}" becomes "{Title}".
func StripGrouping(s string) string {
	s = strings.TrimLeft(s, " ")
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimLeft(s, " ")

	s = strings.TrimRight(s, " ")
	s = strings.TrimSuffix(s, "}")
	return strings.TrimRight(s, " ")
}

// SplitAuthors splits a BibTeX author field into authors, keeping each name
// verbatim.
func SplitAuthors(field string) []Author {
	names := strings.Split(field, AuthorSeparator)
	authors := make([]Author, 0, len(names))
	for _, name := range names {
		authors = append(authors, Author{Name: name})
	}
	return authors
}

// GithubStarsBadge returns the shields.io star badge URL for a GitHub
// repository URL. ok is false if url does not point at github.com.
func GithubStarsBadge(url string) (badge string, ok bool) {
	idx := strings.Index(url, githubPrefix)
	if idx == -1 {
		return "", false
	}
	repo := url[idx+len(githubPrefix):]
	return fmt.Sprintf("https://img.shields.io/github/stars/%s.svg?style=social&label=Star&maxAge=2592000", repo), true
}

func required(e bib.Entry, field string) (string, error) {
	v, ok := e.Get(field)
	if !ok {
		return "", &MissingFieldError{ID: e.ID, Field: field}
	}
	return v, nil
}

func resolve(assets AssetResolver, filename string) (string, bool) {
	if assets == nil {
		return "", false
	}
	return assets.Resolve(filename)
}
