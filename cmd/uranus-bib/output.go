package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/uranus-web/uranus-bib/internal/paper"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCheckHuman writes the check report followed by the papers that would
// be published, grouped by year.
func printCheckHuman(w io.Writer, result CheckResult, groups []paper.YearGroup) {
	if len(result.Issues) == 0 {
		fmt.Fprintf(w, "Bibliography check: OK\n\n")
	} else {
		fmt.Fprintf(w, "Bibliography check: %d issues found\n\n", len(result.Issues))
		for _, issue := range result.Issues {
			switch issue.Type {
			case IssueMissingField:
				fmt.Fprintf(w, "  [ERROR] %s: missing %s\n", issue.ID, issue.Field)
			case IssueUnreadableAsset:
				fmt.Fprintf(w, "  [WARN] %s: unreadable asset %s\n", issue.ID, issue.Path)
				fmt.Fprintf(w, "         %s\n", issue.Reason)
			case IssueDuplicatePerson:
				fmt.Fprintf(w, "  [WARN] Duplicate person %q (first entry wins)\n", issue.Name)
			case IssueUnmatchedAuthor:
				fmt.Fprintf(w, "  [INFO] Author %q not in people roster\n", issue.Name)
			}
		}
		fmt.Fprintln(w)
	}

	for _, g := range groups {
		fmt.Fprintf(w, "%s (%d)\n", g.Year, len(g.Papers))
		for _, p := range g.Papers {
			fmt.Fprintf(w, "  %s\n", truncateString(p.Name, TitleMaxLen))
		}
	}
	fmt.Fprintf(w, "\n%d entries, %d people, %d assets checked\n", result.Entries, result.People, len(result.Assets))
}

// TitleMaxLen is the title width in the human-readable report.
const TitleMaxLen = 70

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
