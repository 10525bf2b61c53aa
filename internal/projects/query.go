package projects

import (
	"fmt"
	"strings"
)

const selectColumns = `SELECT
	"project id",
	"project name",
	status,
	applicant,
	"submission date",
	place,
	"user"
FROM projects`

// conditionSet accumulates WHERE conditions and their bound values.
// bind appends a value and returns its placeholder, so numbering always
// matches emission order and no value can end up interpolated into the text.
type conditionSet struct {
	conds []string
	args  []any
}

func (c *conditionSet) bind(v any) string {
	c.args = append(c.args, v)
	return fmt.Sprintf("$%d", len(c.args))
}

func (c *conditionSet) add(cond string) {
	c.conds = append(c.conds, cond)
}

func (c *conditionSet) whereClause() string {
	if len(c.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.conds, " AND ")
}

// BuildListQuery renders a Filter into a parameterized SELECT over the
// projects table. All active filters are ANDed; an empty filter yields no
// WHERE clause. Rows always come back ordered by "project id" descending so
// repeated reads are deterministic.
func BuildListQuery(f Filter) (string, []any) {
	cs := &conditionSet{}

	if f.Search != "" {
		// One bound parameter shared by all three legs of the OR.
		p := cs.bind("%" + f.Search + "%")
		cs.add(fmt.Sprintf(
			`(CAST("project id" AS TEXT) ILIKE %s OR "project name" ILIKE %s OR applicant ILIKE %s)`,
			p, p, p,
		))
	}

	if f.ProjectID != "" {
		cs.add(fmt.Sprintf(`CAST("project id" AS TEXT) ILIKE %s`, cs.bind("%"+f.ProjectID+"%")))
	}

	if f.Applicant != "" {
		cs.add(fmt.Sprintf(`applicant ILIKE %s`, cs.bind("%"+f.Applicant+"%")))
	}

	if f.ProjectName != "" {
		cs.add(fmt.Sprintf(`"project name" ILIKE %s`, cs.bind("%"+f.ProjectName+"%")))
	}

	cs.addInCondition(`status`, f.Statuses)
	cs.addInCondition(`place`, f.Places)
	cs.addInCondition(`"user"`, f.Users)

	query := selectColumns + cs.whereClause() + ` ORDER BY "project id" DESC`
	return query, cs.args
}

// addInCondition emits `col IN ($i..$j)` with one parameter per element.
// An empty set emits nothing, matching "filter absent".
func (c *conditionSet) addInCondition(column string, values []string) {
	if len(values) == 0 {
		return
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = c.bind(v)
	}
	c.add(fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")))
}
