package projects

import (
	"net/url"
	"strings"
)

// Filter is the normalized, optional-filter description of a list query.
// Zero value means "match all rows". Whitespace-only input never activates
// a filter.
type Filter struct {
	Search      string // matched against id (as text), name and applicant
	ProjectID   string
	Applicant   string
	ProjectName string
	Statuses    []string
	Places      []string
	Users       []string
}

// ParseFilter builds a Filter from raw query parameters. Multi-select
// fields accept either a repeated parameter or a single value; blank
// elements are dropped. Malformed input degrades to "absent", never errors.
func ParseFilter(values url.Values) Filter {
	return Filter{
		Search:      strings.TrimSpace(values.Get("search")),
		ProjectID:   strings.TrimSpace(values.Get("projectId")),
		Applicant:   strings.TrimSpace(values.Get("applicant")),
		ProjectName: strings.TrimSpace(values.Get("projectName")),
		Statuses:    multiValue(values["status"]),
		Places:      multiValue(values["place"]),
		Users:       multiValue(values["user"]),
	}
}

// Active reports whether at least one filter condition would be emitted.
func (f Filter) Active() bool {
	return f.Search != "" ||
		f.ProjectID != "" ||
		f.Applicant != "" ||
		f.ProjectName != "" ||
		len(f.Statuses) > 0 ||
		len(f.Places) > 0 ||
		len(f.Users) > 0
}

func multiValue(raw []string) []string {
	var out []string
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
