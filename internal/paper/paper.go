// Package paper defines the publication records rendered for the website and
// builds them from bibliography entries.
package paper

// Author is a paper author as shown on the publication page.
type Author struct {
	Name string `json:"name"`
	Link string `json:"link,omitempty"` // Profile URL, set by author link resolution
}

// Paper is one publication record.
//
// Optional attributes are pointers: nil omits the key from the output, while
// a pointer to "" keeps the key with an empty value.
type Paper struct {
	Name               string   `json:"name"`
	Authors            []Author `json:"authors"`
	AuthorExtra        string   `json:"authorExtra"` // Reserved, always empty
	PublicAt           string   `json:"publicAt"`
	Abstract           *string  `json:"abstract,omitempty"`
	PaperLink          *string  `json:"paperLink,omitempty"`
	Month              *string  `json:"month,omitempty"`
	Year               *string  `json:"year,omitempty"`
	GithubLink         *string  `json:"githubLink,omitempty"`
	GithubStarsSvgLink *string  `json:"githubStarsSvgLink,omitempty"`
	SlideLink          *string  `json:"slideLink,omitempty"`
	Bibtex             string   `json:"bibtex"`
}

func strPtr(s string) *string {
	return &s
}
