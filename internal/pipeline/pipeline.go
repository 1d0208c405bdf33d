// Package pipeline turns a bibliography and an optional people roster into
// the publication page data file.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/uranus-web/uranus-bib/internal/asset"
	"github.com/uranus-web/uranus-bib/internal/bib"
	"github.com/uranus-web/uranus-bib/internal/paper"
	"github.com/uranus-web/uranus-bib/internal/people"
	"github.com/uranus-web/uranus-bib/internal/render"
)

// Options configures a build.
type Options struct {
	BibPath         string
	AssetsDir       string
	AssetsURLPrefix string
	PeoplePath      string // Optional
	Format          render.Format
	Logger          *zerolog.Logger // Optional, defaults to a no-op logger
}

// Build runs the whole conversion and returns the rendered text.
// Every entry is normalized before anything is rendered, so a bad entry
// fails the run without producing output.
func Build(opts Options) (string, error) {
	log := opts.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	entries, err := bib.Load(opts.BibPath)
	if err != nil {
		return "", err
	}
	log.Info().Str("path", opts.BibPath).Int("entries", len(entries)).Msg("loaded bibliography")

	resolver := asset.NewResolver(opts.AssetsDir, opts.AssetsURLPrefix)
	papers, err := paper.NormalizeAll(entries, resolver)
	if err != nil {
		return "", err
	}
	for _, p := range papers {
		if p.PaperLink != nil {
			log.Debug().Str("paper", p.Name).Str("url", *p.PaperLink).Msg("resolved paper pdf")
		}
		if p.SlideLink != nil {
			log.Debug().Str("paper", p.Name).Str("url", *p.SlideLink).Msg("resolved slides")
		}
	}

	reg, err := people.Load(opts.PeoplePath)
	if err != nil {
		return "", err
	}
	if reg != nil {
		log.Info().Str("path", opts.PeoplePath).Int("people", reg.Len()).Msg("loaded people")
		for _, name := range reg.Duplicates() {
			log.Warn().Str("name", name).Msg("duplicate person, first entry wins")
		}
	}

	people.ResolveAuthors(papers, reg)

	return render.Render(opts.Format, papers, reg.Persons())
}

// WriteOutput writes content to path, creating the parent directory if needed.
func WriteOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
