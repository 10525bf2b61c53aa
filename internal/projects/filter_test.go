package projects

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter_Empty(t *testing.T) {
	f := ParseFilter(url.Values{})

	assert.False(t, f.Active())
	assert.Empty(t, f.Search)
	assert.Empty(t, f.Statuses)
}

func TestParseFilter_TrimsWhitespace(t *testing.T) {
	f := ParseFilter(url.Values{
		"search":      {"  Acme  "},
		"projectId":   {" 12 "},
		"applicant":   {"\tBob\n"},
		"projectName": {" Road "},
	})

	assert.Equal(t, "Acme", f.Search)
	assert.Equal(t, "12", f.ProjectID)
	assert.Equal(t, "Bob", f.Applicant)
	assert.Equal(t, "Road", f.ProjectName)
	assert.True(t, f.Active())
}

func TestParseFilter_WhitespaceOnlyIsAbsent(t *testing.T) {
	f := ParseFilter(url.Values{
		"search": {"   "},
		"status": {"  ", "\t"},
	})

	assert.False(t, f.Active())
	assert.Empty(t, f.Search)
	assert.Empty(t, f.Statuses)
}

func TestParseFilter_MultiSelectRepeated(t *testing.T) {
	f := ParseFilter(url.Values{
		"status": {"Approved", "Pending"},
		"place":  {"Metropolis"},
		"user":   {"jdoe", " ", "asmith "},
	})

	assert.Equal(t, []string{"Approved", "Pending"}, f.Statuses)
	assert.Equal(t, []string{"Metropolis"}, f.Places)
	assert.Equal(t, []string{"jdoe", "asmith"}, f.Users)
}

func TestParseFilter_MultiSelectSingleValue(t *testing.T) {
	f := ParseFilter(url.Values{"status": {"Approved"}})

	assert.Equal(t, []string{"Approved"}, f.Statuses)
	assert.True(t, f.Active())
}

func TestFilterActive(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero value", Filter{}, false},
		{"search", Filter{Search: "x"}, true},
		{"project id", Filter{ProjectID: "1"}, true},
		{"applicant", Filter{Applicant: "a"}, true},
		{"project name", Filter{ProjectName: "n"}, true},
		{"statuses", Filter{Statuses: []string{"s"}}, true},
		{"places", Filter{Places: []string{"p"}}, true},
		{"users", Filter{Users: []string{"u"}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Active())
		})
	}
}
