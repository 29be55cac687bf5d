// ABOUTME: Safe SQL query builder for content store reads
// ABOUTME: Validates identifiers and keeps every value parameterized

package sqlite

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var safeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

var allowedOperators = map[string]bool{
	"=":  true,
	"!=": true,
	">":  true,
	"<":  true,
	">=": true,
	"<=": true,
}

// likeEscaper escapes LIKE wildcards so user input matches literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QueryBuilder builds a SELECT with parameterized conditions.
// The first invalid identifier is recorded and reported by Build.
type QueryBuilder struct {
	columns []string
	table   string
	where   []string
	order   []string
	limit   int
	params  []interface{}
	orderP  []interface{}
	err     error
}

// NewQueryBuilder creates a new query builder instance
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func validateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if !safeNamePattern.MatchString(name) {
		return fmt.Errorf("invalid name: %s (only alphanumeric and underscore allowed)", name)
	}
	if len(name) > 64 {
		return fmt.Errorf("name too long: %s (max 64 characters)", name)
	}
	return nil
}

func (qb *QueryBuilder) check(names ...string) bool {
	if qb.err != nil {
		return false
	}
	for _, name := range names {
		if err := validateName(name); err != nil {
			qb.err = err
			return false
		}
	}
	return true
}

// Select sets the result columns
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	if qb.check(columns...) {
		qb.columns = columns
	}
	return qb
}

// From sets the table
func (qb *QueryBuilder) From(table string) *QueryBuilder {
	if qb.check(table) {
		qb.table = table
	}
	return qb
}

// Where adds "column operator ?"
func (qb *QueryBuilder) Where(column, operator string, value interface{}) *QueryBuilder {
	if !qb.check(column) {
		return qb
	}
	if !allowedOperators[operator] {
		qb.err = fmt.Errorf("invalid operator: %s", operator)
		return qb
	}
	qb.where = append(qb.where, column+" "+operator+" ?")
	qb.params = append(qb.params, value)
	return qb
}

// WhereIn adds "column IN (?, ...)". An empty values list matches nothing.
func (qb *QueryBuilder) WhereIn(column string, values ...interface{}) *QueryBuilder {
	if !qb.check(column) {
		return qb
	}
	if len(values) == 0 {
		qb.where = append(qb.where, "0")
		return qb
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	qb.where = append(qb.where, column+" IN ("+placeholders+")")
	qb.params = append(qb.params, values...)
	return qb
}

// WhereNotNull adds "column IS NOT NULL"
func (qb *QueryBuilder) WhereNotNull(column string) *QueryBuilder {
	if qb.check(column) {
		qb.where = append(qb.where, column+" IS NOT NULL")
	}
	return qb
}

// WhereContains adds a case-insensitive substring match of text on column.
// LIKE wildcards in text match literally.
func (qb *QueryBuilder) WhereContains(column, text string) *QueryBuilder {
	if qb.check(column) {
		qb.where = append(qb.where, column+` LIKE ? ESCAPE '\'`)
		qb.params = append(qb.params, ContainsPattern(text))
	}
	return qb
}

// OrderBy adds a sort key
func (qb *QueryBuilder) OrderBy(column string, desc bool) *QueryBuilder {
	if !qb.check(column) {
		return qb
	}
	if desc {
		qb.order = append(qb.order, column+" DESC")
	} else {
		qb.order = append(qb.order, column+" ASC")
	}
	return qb
}

// OrderByContainsFirst sorts rows whose column contains text before the others
func (qb *QueryBuilder) OrderByContainsFirst(column, text string) *QueryBuilder {
	if qb.check(column) {
		qb.order = append(qb.order, "CASE WHEN "+column+` LIKE ? ESCAPE '\' THEN 0 ELSE 1 END`)
		qb.orderP = append(qb.orderP, ContainsPattern(text))
	}
	return qb
}

// Limit caps the number of rows; zero or less means no limit
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.limit = n
	return qb
}

// Build returns the query and its parameters in placeholder order
func (qb *QueryBuilder) Build() (string, []interface{}, error) {
	if qb.err != nil {
		return "", nil, qb.err
	}
	if qb.table == "" {
		return "", nil, errors.New("table is required")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if len(qb.columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(qb.columns, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(qb.table)
	if len(qb.where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(qb.where, " AND "))
	}
	if len(qb.order) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(qb.order, ", "))
	}
	if qb.limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(qb.limit))
	}

	params := make([]interface{}, 0, len(qb.params)+len(qb.orderP))
	params = append(params, qb.params...)
	params = append(params, qb.orderP...)
	return b.String(), params, nil
}

// ContainsPattern returns a LIKE pattern matching text anywhere, lowercased
func ContainsPattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
}
