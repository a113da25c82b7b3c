//go:build unit

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{file: "001_initial_schema.sql", want: "001"},
		{file: "012_add_store_index.sql", want: "012"},
		{file: "noversion.sql", want: "noversion.sql"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, migrationVersion(tt.file))
		})
	}
}
