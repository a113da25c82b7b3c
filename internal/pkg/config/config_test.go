//go:build unit

package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBConfig_BuildDSN(t *testing.T) {
	cfg := DBConfig{
		Host:     "db.internal",
		Port:     "6432",
		User:     "resq",
		Password: "p@ss:w/rd",
		DBName:   "resqcart",
		SSLMode:  "require",
		TimeZone: "UTC",
	}

	u, err := url.Parse(cfg.BuildDSN())
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:6432", u.Host)
	assert.Equal(t, "/resqcart", u.Path)
	pw, ok := u.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss:w/rd", pw)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Equal(t, "UTC", u.Query().Get("timezone"))
}

func TestDBConfig_BuildDSN_OmitsEmptyTimeZone(t *testing.T) {
	cfg := DBConfig{Host: "localhost", Port: "5432", User: "u", Password: "p", DBName: "d", SSLMode: "disable"}

	u, err := url.Parse(cfg.BuildDSN())
	require.NoError(t, err)
	assert.False(t, u.Query().Has("timezone"))
}
