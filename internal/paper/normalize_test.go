package paper

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uranus-web/uranus-bib/internal/bib"
)

// fakeAssets resolves only the names it holds.
type fakeAssets map[string]string

func (f fakeAssets) Resolve(filename string) (string, bool) {
	url, ok := f[filename]
	return url, ok
}

func entry(fields map[string]string) bib.Entry {
	base := map[string]string{
		"title":     "{Some Title}",
		"author":    "A and B and C",
		"booktitle": "Proc. of Things",
	}
	for k, v := range fields {
		base[k] = v
	}
	return bib.Entry{ID: "doe2024", Type: "inproceedings", Fields: base}
}

func TestNormalize_RequiredFields(t *testing.T) {
	p, err := Normalize(entry(nil), nil)
	require.NoError(t, err)

	assert.Equal(t, "Some Title", p.Name)
	assert.Equal(t, []Author{{Name: "A"}, {Name: "B"}, {Name: "C"}}, p.Authors)
	assert.Equal(t, "", p.AuthorExtra)
	assert.Equal(t, "Proc. of Things", p.PublicAt)

	assert.Nil(t, p.Abstract)
	assert.Nil(t, p.Month)
	assert.Nil(t, p.Year)
	assert.Nil(t, p.PaperLink)
	assert.Nil(t, p.SlideLink)
	assert.Nil(t, p.GithubLink)
	assert.Nil(t, p.GithubStarsSvgLink)
	assert.NotEmpty(t, p.Bibtex)
}

func TestNormalize_MissingRequired(t *testing.T) {
	for _, field := range RequiredFields {
		t.Run(field, func(t *testing.T) {
			e := entry(nil)
			delete(e.Fields, field)

			_, err := Normalize(e, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingField))

			var mfe *MissingFieldError
			require.ErrorAs(t, err, &mfe)
			assert.Equal(t, "doe2024", mfe.ID)
			assert.Equal(t, field, mfe.Field)
		})
	}
}

func TestNormalize_OptionalFieldsCopiedVerbatim(t *testing.T) {
	p, err := Normalize(entry(map[string]string{
		"abstract": "We study things.",
		"month":    "October",
		"year":     "",
	}), nil)
	require.NoError(t, err)

	require.NotNil(t, p.Abstract)
	assert.Equal(t, "We study things.", *p.Abstract)
	require.NotNil(t, p.Month)
	assert.Equal(t, "October", *p.Month)
	require.NotNil(t, p.Year, "a present but empty field is kept")
	assert.Equal(t, "", *p.Year)
}

func TestNormalize_Github(t *testing.T) {
	tests := []struct {
		name      string
		wwwURL    *string
		wantLink  *string
		wantBadge *string
	}{
		{
			name:      "github repository",
			wwwURL:    strPtr("https://github.com/acme/widget"),
			wantLink:  strPtr("https://github.com/acme/widget"),
			wantBadge: strPtr("https://img.shields.io/github/stars/acme/widget.svg?style=social&label=Star&maxAge=2592000"),
		},
		{
			name:     "other site",
			wwwURL:   strPtr("https://example.com"),
			wantLink: strPtr("https://example.com"),
		},
		{
			name:   "empty value",
			wwwURL: strPtr(""),
		},
		{
			name: "absent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]string{}
			if tt.wwwURL != nil {
				fields["www-url"] = *tt.wwwURL
			}
			p, err := Normalize(entry(fields), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLink, p.GithubLink)
			assert.Equal(t, tt.wantBadge, p.GithubStarsSvgLink)
		})
	}
}

func TestNormalize_Assets(t *testing.T) {
	assets := fakeAssets{
		"doe2024.pdf":        "/assets/pp/doe2024.pdf",
		"doe2024-slides.pdf": "/assets/pp/doe2024-slides.pdf",
	}
	p, err := Normalize(entry(nil), assets)
	require.NoError(t, err)
	require.NotNil(t, p.PaperLink)
	assert.Equal(t, "/assets/pp/doe2024.pdf", *p.PaperLink)
	require.NotNil(t, p.SlideLink)
	assert.Equal(t, "/assets/pp/doe2024-slides.pdf", *p.SlideLink)

	p, err = Normalize(entry(nil), fakeAssets{"doe2024.pdf": "/pp/doe2024.pdf"})
	require.NoError(t, err)
	assert.NotNil(t, p.PaperLink)
	assert.Nil(t, p.SlideLink)
}

func TestNormalize_BibtexDropsAbstract(t *testing.T) {
	e := entry(map[string]string{"abstract": "secret", "year": "2024"})

	p, err := Normalize(e, nil)
	require.NoError(t, err)
	assert.NotContains(t, p.Bibtex, "abstract")
	assert.NotContains(t, p.Bibtex, "secret")
	assert.True(t, strings.HasPrefix(p.Bibtex, "@inproceedings{doe2024,"))

	// Source entry is untouched.
	assert.Equal(t, "secret", e.Fields["abstract"])

	again, err := bib.Parse(strings.NewReader(p.Bibtex))
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, e.Without("abstract").Fields, again[0].Fields)
}

func TestNormalize_JSONKeys(t *testing.T) {
	p, err := Normalize(entry(map[string]string{"www-url": "https://example.com"}), nil)
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "authorExtra")
	assert.Contains(t, m, "bibtex")
	assert.Contains(t, m, "githubLink")
	assert.NotContains(t, m, "githubStarsSvgLink")
	assert.NotContains(t, m, "abstract")
	assert.NotContains(t, m, "paperLink")
}

func TestStripGrouping(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"{Some Title}", "Some Title"},
		{"{ Title Text }", "Title Text"},
		{"Plain", "Plain"},
		{"{{Nested}}", "{Nested}"},
		{"  {Padded}  ", "Padded"},
		{"{Deep {Learning}}", "Deep {Learning}"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripGrouping(tt.in))
		})
	}
}

func TestSplitAuthors_Verbatim(t *testing.T) {
	got := SplitAuthors(" Jane Doe and John Q. Public ")
	assert.Equal(t, []Author{{Name: " Jane Doe"}, {Name: "John Q. Public "}}, got)
}

func TestNormalizeAll_StopsAtFirstError(t *testing.T) {
	bad := entry(nil)
	delete(bad.Fields, "booktitle")

	papers, err := NormalizeAll([]bib.Entry{entry(nil), bad}, nil)
	assert.Error(t, err)
	assert.Nil(t, papers)

	papers, err = NormalizeAll([]bib.Entry{entry(nil), entry(nil)}, nil)
	require.NoError(t, err)
	assert.Len(t, papers, 2)
}
