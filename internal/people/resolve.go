package people

import "github.com/uranus-web/uranus-bib/internal/paper"

// ResolveAuthors sets the profile link of every author in papers.
//
// Authors found in reg with a non-empty link get that link; all others,
// including every author when reg is nil, get FallbackLink of their name.
func ResolveAuthors(papers []paper.Paper, reg *Registry) {
	for i := range papers {
		for j := range papers[i].Authors {
			a := &papers[i].Authors[j]
			if p, ok := reg.Lookup(a.Name); ok && p.Link != "" {
				a.Link = p.Link
				continue
			}
			a.Link = FallbackLink(a.Name)
		}
	}
}

// Unmatched returns author names that have no roster entry, once each, in
// order of first appearance.
func Unmatched(papers []paper.Paper, reg *Registry) []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range papers {
		for _, a := range p.Authors {
			if seen[a.Name] {
				continue
			}
			seen[a.Name] = true
			if _, ok := reg.Lookup(a.Name); !ok {
				names = append(names, a.Name)
			}
		}
	}
	return names
}
