package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DBConfig{Host: "db", Port: 5433, User: "levi", Password: "p@ss word", Database: "cards"}.DSN()

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db:5433", u.Host)
	assert.Equal(t, "/cards", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss word", pw)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))

	secure := DBConfig{Host: "db", Port: 5432, SSLMode: "require"}.DSN()
	assert.Contains(t, secure, "sslmode=require")
}

func TestResetOrder(t *testing.T) {
	got := resetOrder(tableNames, []string{"users", "cards", "trades", "unrelated"})
	assert.Equal(t, []string{`"trades"`, `"users"`, `"cards"`}, got)
	assert.Empty(t, resetOrder(tableNames, nil))
}

func TestTablesMatchNames(t *testing.T) {
	assert.Len(t, tableNames, len(tables))
}
