package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/jsonsql/internal/testutil"
	"github.com/leapstack-labs/jsonsql/pkg/core"
)

func TestBuild(t *testing.T) {
	c, err := Build([]string{"a.json", "B-c.json"}, Options{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Count())
	assert.Equal(t, []core.TableID{"A", "B_C"}, c.Tables())

	path, ok := c.Resolve("A")
	assert.True(t, ok)
	assert.Equal(t, "a.json", path)

	path, ok = c.Resolve("B_C")
	assert.True(t, ok)
	assert.Equal(t, "B-c.json", path)

	_, ok = c.Resolve("b-c")
	assert.False(t, ok, "raw names must not resolve")
}

func TestBuild_Empty(t *testing.T) {
	c, err := Build(nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.Entries())
}

func TestCatalog_Register(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantTable core.TableID
		wantErr   bool
	}{
		{name: "plain file", path: "orders.json", wantTable: "ORDERS"},
		{name: "nested path", path: "data/2024/line-items.json", wantTable: "LINE_ITEMS"},
		{name: "absolute path", path: "/tmp/Customers.JSON", wantTable: "CUSTOMERS"},
		{name: "no extension", path: "data/orders", wantTable: "ORDERS"},
		{name: "double extension", path: "orders.backup.json", wantTable: "ORDERS.BACKUP"},
		{name: "trailing dot", path: "orders.", wantTable: "ORDERS"},
		{name: "dotfile", path: "conf/.json", wantTable: ".JSON"},
		{name: "empty path", path: "", wantErr: true},
		{name: "trailing separator", path: "data/", wantErr: true},
		{name: "dot", path: ".", wantErr: true},
		{name: "dot dot", path: "data/..", wantErr: true},
		{name: "root", path: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog(Options{})
			table, err := c.Register(tt.path)

			if tt.wantErr {
				require.Error(t, err)
				var nameErr *core.InvalidTableNameError
				require.True(t, errors.As(err, &nameErr), "expected *core.InvalidTableNameError, got %T", err)
				assert.Equal(t, tt.path, nameErr.Path)
				assert.Equal(t, 0, c.Count())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTable, table)
			assert.True(t, c.Has(tt.wantTable))
		})
	}
}

func TestBuild_InvalidPathStopsBuild(t *testing.T) {
	_, err := Build([]string{"a.json", "dir/", "b.json"}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dir/")
}

func TestCatalog_DuplicateLastWins(t *testing.T) {
	c, err := Build([]string{"x/orders.json", "a.json", "y/ORDERS.json"}, Options{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Count())
	path, ok := c.Resolve("ORDERS")
	require.True(t, ok)
	assert.Equal(t, "y/ORDERS.json", path)

	// Position of the first registration is kept.
	assert.Equal(t, []Entry{
		{Table: "ORDERS", Path: "y/ORDERS.json"},
		{Table: "A", Path: "a.json"},
	}, c.Entries())
}

func TestCatalog_DuplicateStrict(t *testing.T) {
	_, err := Build([]string{"x/line-items.json", "y/LINE_ITEMS.json"}, Options{Strict: true})
	require.Error(t, err)

	var dupErr *core.DuplicateTableError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, core.TableID("LINE_ITEMS"), dupErr.Table)
	assert.Equal(t, "x/line-items.json", dupErr.Previous)
	assert.Equal(t, "y/LINE_ITEMS.json", dupErr.Path)
}

func TestCatalog_TablesIsACopy(t *testing.T) {
	c, err := Build([]string{"a.json"}, Options{})
	require.NoError(t, err)

	tables := c.Tables()
	tables[0] = "Z"
	assert.Equal(t, []core.TableID{"A"}, c.Tables())
}
