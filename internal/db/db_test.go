package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		url    string
		name   string
		server bool
	}{
		{"postgres://u:p@localhost:5432/foodtime", "postgres", true},
		{"postgresql://u:p@localhost:5432/foodtime", "postgres", true},
		{"mysql://u:p@tcp(localhost:3306)/foodtime?parseTime=true", "mysql", true},
		{"foodtime.db", "sqlite", false},
		{"sqlite://./foodtime.db", "sqlite", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			d, server, err := dialectorFor(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
			assert.Equal(t, tt.server, server)
		})
	}
}

func TestDialectorFor_Empty(t *testing.T) {
	_, _, err := dialectorFor("  ")
	assert.Error(t, err)
}

func TestOpen_SQLiteMemory(t *testing.T) {
	gdb, err := Open(":memory:", Options{})
	require.NoError(t, err)

	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestMigrateAndReset(t *testing.T) {
	gdb, err := Open(":memory:", Options{})
	require.NoError(t, err)

	require.NoError(t, Migrate(gdb))
	for _, table := range []string{"users", "meals", "food_analyses"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}

	require.NoError(t, Reset(gdb))
	assert.False(t, gdb.Migrator().HasTable("meals"))
}
