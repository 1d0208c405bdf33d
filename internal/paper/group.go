package paper

import (
	"sort"
	"strconv"
	"strings"
)

// UnknownYear labels the group of papers without a year.
const UnknownYear = "unknown"

var monthNumbers = map[string]int{
	"January":   1,
	"February":  2,
	"March":     3,
	"April":     4,
	"May":       5,
	"June":      6,
	"July":      7,
	"August":    8,
	"September": 9,
	"October":   10,
	"November":  11,
	"December":  12,
}

// YearGroup is a set of papers published in the same year.
type YearGroup struct {
	Year   string  `json:"year"`
	Papers []Paper `json:"papers"`
}

// GroupByYear groups papers the way the publication page lists them:
// newest year first, papers within a year ordered by month descending, and
// papers without a year collected last under UnknownYear.
func GroupByYear(papers []Paper) []YearGroup {
	byYear := make(map[string][]Paper)
	var years []string
	var unknown []Paper

	for _, p := range papers {
		if p.Year == nil || *p.Year == "" {
			unknown = append(unknown, p)
			continue
		}
		year := *p.Year
		if _, seen := byYear[year]; !seen {
			years = append(years, year)
		}
		byYear[year] = append(byYear[year], p)
	}

	sort.SliceStable(years, func(i, j int) bool {
		return yearNumber(years[i]) > yearNumber(years[j])
	})

	groups := make([]YearGroup, 0, len(years)+1)
	for _, year := range years {
		ps := byYear[year]
		sort.SliceStable(ps, func(i, j int) bool {
			return monthNumber(ps[i].Month) > monthNumber(ps[j].Month)
		})
		groups = append(groups, YearGroup{Year: year, Papers: ps})
	}
	if len(unknown) > 0 {
		groups = append(groups, YearGroup{Year: UnknownYear, Papers: unknown})
	}
	return groups
}

func yearNumber(year string) int {
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0
	}
	return n
}

// monthNumber maps a month name to 1-12. Ranges such as "May-June" use their
// first month. A missing month sorts last.
func monthNumber(month *string) int {
	if month == nil || *month == "" {
		return -1
	}
	name, _, _ := strings.Cut(*month, "-")
	return monthNumbers[name]
}
