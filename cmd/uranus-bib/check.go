package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uranus-web/uranus-bib/internal/asset"
	"github.com/uranus-web/uranus-bib/internal/bib"
	"github.com/uranus-web/uranus-bib/internal/paper"
	"github.com/uranus-web/uranus-bib/internal/people"
)

// humanOutput controls whether check prints a readable report instead of JSON
var humanOutput bool

func init() {
	checkCmd.Flags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <bib>",
	Short: "Report problems in a bibliography without writing output",
	Long: `Check a bibliography before publishing it.

Reports entries missing title, author or booktitle, asset PDFs that cannot be
opened, duplicate names in the people roster and, when --people is given,
authors that have no roster entry.

Exits with status 3 when issues are found.

Examples:
  uranus-bib check papers.bib --bib-assets-dir src/assets/pp --people people.yml
  uranus-bib check papers.bib --human`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// Issue types reported by check.
const (
	IssueMissingField    = "missing_field"
	IssueUnreadableAsset = "unreadable_asset"
	IssueDuplicatePerson = "duplicate_person"
	IssueUnmatchedAuthor = "unmatched_author"
)

// CheckResult is the response for the check command.
type CheckResult struct {
	Status  string       `json:"status"`
	Entries int          `json:"entries"`
	People  int          `json:"people"`
	Assets  []asset.Info `json:"assets"`
	Issues  []CheckIssue `json:"issues"`
}

// CheckIssue represents a single issue found during check.
type CheckIssue struct {
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
	Field  string `json:"field,omitempty"`
	Name   string `json:"name,omitempty"`
	Path   string `json:"path,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, s)
	if err != nil {
		return err
	}

	entries, err := bib.Load(args[0])
	if err != nil {
		return err
	}
	reg, err := people.Load(s.People)
	if err != nil {
		return err
	}
	log.Debug().Int("entries", len(entries)).Int("people", reg.Len()).Msg("checking bibliography")

	resolver := asset.NewResolver(s.AssetsDir, s.AssetsURLPrefix)
	result, papers := checkBibliography(entries, resolver, reg)

	out := cmd.OutOrStdout()
	if humanOutput {
		printCheckHuman(out, result, paper.GroupByYear(papers))
	} else if err := outputJSON(out, result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	if len(result.Issues) > 0 {
		os.Exit(ExitDataError)
	}
	return nil
}

// checkBibliography collects issues for every entry and returns the papers
// built from the entries that have all required fields.
func checkBibliography(entries []bib.Entry, resolver *asset.Resolver, reg *people.Registry) (CheckResult, []paper.Paper) {
	result := CheckResult{
		Entries: len(entries),
		People:  reg.Len(),
		Assets:  []asset.Info{},
		Issues:  []CheckIssue{},
	}
	var papers []paper.Paper

	for _, e := range entries {
		complete := true
		for _, field := range paper.RequiredFields {
			if _, ok := e.Get(field); !ok {
				complete = false
				result.Issues = append(result.Issues, CheckIssue{
					Type:  IssueMissingField,
					ID:    e.ID,
					Field: field,
				})
			}
		}

		for _, name := range []string{asset.PaperFile(e.ID), asset.SlidesFile(e.ID)} {
			if _, ok := resolver.Resolve(name); !ok {
				continue
			}
			info, err := asset.Inspect(resolver.Path(name))
			if err != nil {
				result.Issues = append(result.Issues, CheckIssue{
					Type:   IssueUnreadableAsset,
					ID:     e.ID,
					Path:   resolver.Path(name),
					Reason: err.Error(),
				})
				continue
			}
			result.Assets = append(result.Assets, info)
		}

		if !complete {
			continue
		}
		p, err := paper.Normalize(e, resolver)
		if err != nil {
			continue // Reported above
		}
		papers = append(papers, p)
	}

	for _, name := range reg.Duplicates() {
		result.Issues = append(result.Issues, CheckIssue{
			Type: IssueDuplicatePerson,
			Name: name,
		})
	}

	if reg != nil {
		for _, name := range people.Unmatched(papers, reg) {
			result.Issues = append(result.Issues, CheckIssue{
				Type: IssueUnmatchedAuthor,
				Name: name,
			})
		}
	}

	result.Status = "ok"
	if len(result.Issues) > 0 {
		result.Status = "issues"
	}
	return result, papers
}
