package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SearchParams are the raw list-endpoint query parameters. Field names are
// only ever used after allowlist validation; the search term itself is
// always passed as a bound parameter.
type SearchParams struct {
	SearchTerm string
	FilterBy   string
	SortBy     string
	SortOrder  string
}

// listQuery describes how one list endpoint may be filtered and sorted.
// Values map request field names to column expressions, so a field name is
// never spliced into SQL without passing through the map first.
type listQuery struct {
	filterable    map[string]string
	searchDefault []string
	sortable      map[string]string
	defaultOrder  string
}

// whereClause returns a SQL predicate without the leading WHERE/AND and
// appends the bound pattern to args. Empty string means match all.
func (q listQuery) whereClause(p SearchParams, args *[]any) string {
	term := strings.TrimSpace(p.SearchTerm)
	if term == "" {
		return ""
	}

	pattern := "%" + term + "%"
	*args = append(*args, pattern)
	n := len(*args)

	if col, ok := q.filterable[p.FilterBy]; ok {
		return fmt.Sprintf("%s ILIKE $%d", col, n)
	}

	// No usable filter field: case-insensitive match across the defaults
	parts := make([]string, 0, len(q.searchDefault))
	for _, col := range q.searchDefault {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, n))
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// orderClause returns the ORDER BY expression, falling back to the
// endpoint default when the sort field or order is not allowlisted.
func (q listQuery) orderClause(p SearchParams) string {
	order := strings.ToUpper(p.SortOrder)
	if col, ok := q.sortable[p.SortBy]; ok && (order == "ASC" || order == "DESC") {
		return col + " " + order
	}
	return q.defaultOrder
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). The unique indexes on users.email,
// stores.email and ratings(user_id, store_id) are the correctness
// backstop for concurrent duplicate writes.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
