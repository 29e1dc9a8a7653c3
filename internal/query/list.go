package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies how a filter parameter narrows the result set.
type Kind int

const (
	Exact Kind = iota
	Substring
	Boolean
	Min
	Max
)

// Field binds one request parameter to a column and a filter kind.
// Ignore, when non-empty, names a sentinel value treated as "no filter"
// (the service catalog uses category=All that way).
type Field struct {
	Column string
	Kind   Kind
	Ignore string
}

// Spec is the allow-listed filter configuration for one entity. Parameters
// not present here never reach the database.
type Spec struct {
	Fields        map[string]Field
	SearchColumns []string
	SortColumns   map[string]string
	DefaultSort   string
	DefaultLimit  int // 0 means unbounded
}

type Condition struct {
	Column string
	Kind   Kind
	Value  interface{}
}

// Query is the parsed, deterministic form of a list request: an AND of
// conditions, an optional OR-search, one sort column and a page window.
type Query struct {
	Conditions    []Condition
	Search        string
	SearchColumns []string
	OrderColumn   string
	Descending    bool
	Page          int
	Limit         int
	Offset        int
}

// Parse builds a Query from raw request parameters. Supplied filters narrow
// by AND; omitted parameters impose no constraint. Unparsable numeric input
// is treated as absent rather than rejected.
func Parse(values url.Values, spec Spec) Query {
	q := Query{SearchColumns: spec.SearchColumns}

	for name, field := range spec.Fields {
		if !values.Has(name) {
			continue
		}
		raw := values.Get(name)
		if raw == "" || (field.Ignore != "" && raw == field.Ignore) {
			continue
		}
		switch field.Kind {
		case Exact, Substring:
			q.Conditions = append(q.Conditions, Condition{Column: field.Column, Kind: field.Kind, Value: raw})
		case Boolean:
			q.Conditions = append(q.Conditions, Condition{Column: field.Column, Kind: Boolean, Value: raw == "true"})
		case Min, Max:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			q.Conditions = append(q.Conditions, Condition{Column: field.Column, Kind: field.Kind, Value: n})
		}
	}

	q.Search = strings.TrimSpace(values.Get("search"))

	q.OrderColumn, q.Descending = parseSort(values.Get("sort"), spec)
	q.Page = parsePositive(values.Get("page"), 1)
	q.Limit = parsePositive(values.Get("limit"), spec.DefaultLimit)
	if q.Limit > 0 {
		q.Offset = (q.Page - 1) * q.Limit
	}

	return q
}

func parseSort(raw string, spec Spec) (string, bool) {
	for _, candidate := range []string{raw, spec.DefaultSort} {
		field := strings.TrimSpace(candidate)
		if field == "" {
			continue
		}
		desc := strings.HasPrefix(field, "-")
		field = strings.TrimPrefix(field, "-")
		if column, ok := spec.SortColumns[field]; ok {
			return column, desc
		}
	}
	return "", false
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// ApplyFilters adds the WHERE clauses to a gorm query. The same predicate is
// used for both the page query and the total count.
func (q Query) ApplyFilters(db *gorm.DB) *gorm.DB {
	for _, c := range q.Conditions {
		switch c.Kind {
		case Exact, Boolean:
			db = db.Where(c.Column+" = ?", c.Value)
		case Substring:
			db = db.Where(c.Column+" ILIKE ?", "%"+c.Value.(string)+"%")
		case Min:
			db = db.Where(c.Column+" >= ?", c.Value)
		case Max:
			db = db.Where(c.Column+" <= ?", c.Value)
		}
	}
	if q.Search != "" && len(q.SearchColumns) > 0 {
		clauses := make([]string, len(q.SearchColumns))
		args := make([]interface{}, len(q.SearchColumns))
		for i, col := range q.SearchColumns {
			clauses[i] = col + " ILIKE ?"
			args[i] = "%" + q.Search + "%"
		}
		db = db.Where(strings.Join(clauses, " OR "), args...)
	}
	return db
}

// ApplyOrder adds the ORDER BY clause. Ties fall back to id so paging is
// stable across requests.
func (q Query) ApplyOrder(db *gorm.DB) *gorm.DB {
	if q.OrderColumn != "" {
		dir := "ASC"
		if q.Descending {
			dir = "DESC"
		}
		db = db.Order(q.OrderColumn + " " + dir)
	}
	return db.Order("id ASC")
}

// ApplyWindow adds OFFSET/LIMIT. A zero limit leaves the query unbounded.
func (q Query) ApplyWindow(db *gorm.DB) *gorm.DB {
	if q.Limit > 0 {
		db = db.Offset(q.Offset).Limit(q.Limit)
	}
	return db
}

// Pages reports ceil(total/limit); an unbounded query is a single page.
func Pages(total int64, limit int) int {
	if limit <= 0 {
		return 1
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
