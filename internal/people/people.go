// Package people loads the roster of known authors and attaches profile
// links to paper authors.
package people

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// scholarSearchURL is the Google Scholar author search used when no profile
// link is known.
const scholarSearchURL = "https://scholar.google.com/citations?view_op=search_authors&mauthors="

// Person is a roster entry.
type Person struct {
	Name   string   `yaml:"name" json:"name"`
	Link   string   `yaml:"link" json:"link"`
	Avatar string   `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Group  string   `yaml:"group,omitempty" json:"group,omitempty"`
	Desc   []string `yaml:"desc,omitempty" json:"desc,omitempty"`
}

// roster is the on-disk layout of the people file.
type roster struct {
	People []Person `yaml:"people"`
}

// Registry is the ordered roster with a name index.
type Registry struct {
	persons []Person
	byName  map[string]int
}

// NewRegistry indexes persons by exact name. The first person with a given
// name wins lookups; later duplicates are kept in order but unreachable.
// Missing links are filled with FallbackLink.
func NewRegistry(persons []Person) *Registry {
	r := &Registry{
		persons: make([]Person, len(persons)),
		byName:  make(map[string]int, len(persons)),
	}
	copy(r.persons, persons)

	for i := range r.persons {
		if r.persons[i].Link == "" {
			r.persons[i].Link = FallbackLink(r.persons[i].Name)
		}
		if _, exists := r.byName[r.persons[i].Name]; !exists {
			r.byName[r.persons[i].Name] = i
		}
	}
	return r
}

// Load reads a people file. An empty path means no registry and returns nil.
func Load(path string) (*Registry, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading people file: %w", err)
	}

	var r roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing people file: %w", err)
	}

	return NewRegistry(r.People), nil
}

// Persons returns the roster in file order. A nil registry has no persons.
func (r *Registry) Persons() []Person {
	if r == nil {
		return []Person{}
	}
	out := make([]Person, len(r.persons))
	copy(out, r.persons)
	return out
}

// Lookup finds a person by exact, case-sensitive name.
func (r *Registry) Lookup(name string) (Person, bool) {
	if r == nil {
		return Person{}, false
	}
	i, ok := r.byName[name]
	if !ok {
		return Person{}, false
	}
	return r.persons[i], true
}

// Duplicates returns names that appear more than once, in roster order.
func (r *Registry) Duplicates() []string {
	if r == nil {
		return nil
	}
	counts := make(map[string]int, len(r.persons))
	var dups []string
	for _, p := range r.persons {
		counts[p.Name]++
		if counts[p.Name] == 2 {
			dups = append(dups, p.Name)
		}
	}
	return dups
}

// Len returns the number of persons in the roster.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.persons)
}

// FallbackLink builds the Google Scholar author search URL for name.
// Spaces become "+"; nothing else is encoded.
func FallbackLink(name string) string {
	return scholarSearchURL + strings.ReplaceAll(name, " ", "+")
}
