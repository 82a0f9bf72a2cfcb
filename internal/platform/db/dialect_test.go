package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE x = ? AND y IN (?, ?)"
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y IN ($2, $3)", Postgres.Rebind(q))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "?", Placeholders(1))
	assert.Equal(t, "?, ?, ?", Placeholders(3))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "dsn")
	assert.ErrorContains(t, err, "unsupported driver")
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_pragma=foreign_keys(1)", sqliteDSN(":memory:"))
	assert.Equal(t, "app.db?mode=rwc&_pragma=foreign_keys(1)", sqliteDSN("app.db?mode=rwc"))
}

func TestOpenSQLiteEnforcesForeignKeys(t *testing.T) {
	conn, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var enabled int
	require.NoError(t, conn.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}
