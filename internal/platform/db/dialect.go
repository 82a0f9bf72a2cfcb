package db

import (
	"strconv"
	"strings"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect string

const (
	Postgres Dialect = DriverPostgres
	SQLite   Dialect = DriverSQLite
)

// Rebind rewrites "?" placeholders to "$1, $2, ..." for Postgres.
// Queries must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Placeholders returns "?, ?, ..." with n entries for an IN (...) list.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
