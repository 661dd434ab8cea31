package commands

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/jsonsql/internal/cli/config"
	"github.com/leapstack-labs/jsonsql/internal/cli/testutil"
	"github.com/leapstack-labs/jsonsql/internal/registry"
	sharedtest "github.com/leapstack-labs/jsonsql/internal/testutil"
	"github.com/leapstack-labs/jsonsql/pkg/core"
)

func catalogFiles(t *testing.T) []string {
	t.Helper()
	return sharedtest.WriteFiles(t, []string{"orders.json", "line-items.json"}, map[string]string{
		"orders.json":     `not even json`,
		"line-items.json": `[]`,
	})
}

func TestTablesCommand_Table(t *testing.T) {
	cfg := config.Default()
	cfg.Files = catalogFiles(t)

	cmd, out, _ := newTestCommand(t, cfg)
	require.NoError(t, runTables(cmd))

	got := out.String()
	testutil.AssertNoANSI(t, got)
	assert.Contains(t, got, "TABLE")
	assert.Contains(t, got, "ORDERS")
	assert.Contains(t, got, "LINE_ITEMS")
	assert.Contains(t, got, cfg.Files[1])
	assert.Contains(t, got, "(2 tables)")
	assert.Less(t, strings.Index(got, "ORDERS"), strings.Index(got, "LINE_ITEMS"), "catalog order is kept")
}

func TestTablesCommand_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.Files = catalogFiles(t)
	cfg.Format = config.FormatJSON

	cmd, out, _ := newTestCommand(t, cfg)
	require.NoError(t, runTables(cmd))

	var entries []registry.Entry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	assert.Equal(t, []registry.Entry{
		{Table: "ORDERS", Path: cfg.Files[0]},
		{Table: "LINE_ITEMS", Path: cfg.Files[1]},
	}, entries)
}

func TestTablesCommand_YAML(t *testing.T) {
	cfg := config.Default()
	cfg.Files = catalogFiles(t)
	cfg.Format = config.FormatYAML

	cmd, out, _ := newTestCommand(t, cfg)
	require.NoError(t, runTables(cmd))

	var entries []registry.Entry
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, core.TableID("ORDERS"), entries[0].Table)
	assert.Equal(t, cfg.Files[1], entries[1].Path)
}

func TestTablesCommand_Strict(t *testing.T) {
	files := sharedtest.WriteFiles(t, []string{"x/orders.json", "y/ORDERS.json"}, map[string]string{
		"x/orders.json": `{}`,
		"y/ORDERS.json": `{}`,
	})

	cfg := config.Default()
	cfg.Files = files
	cmd, out, _ := newTestCommand(t, cfg)
	require.NoError(t, runTables(cmd))
	assert.Contains(t, out.String(), "(1 tables)")

	cfg.StrictTables = true
	cmd, _, _ = newTestCommand(t, cfg)
	var dupErr *core.DuplicateTableError
	assert.ErrorAs(t, runTables(cmd), &dupErr)
}

func TestTablesCommand_NoFiles(t *testing.T) {
	cmd, _, _ := newTestCommand(t, config.Default())
	assert.ErrorIs(t, runTables(cmd), core.ErrNoInputFiles)
}

func TestRenderEntries_Empty(t *testing.T) {
	tr := testutil.NewTestRenderer(false)
	require.NoError(t, renderEntries(tr.Renderer, nil, config.FormatTable))
	assert.Equal(t, "(0 tables)\n", tr.Output())

	tr.Reset()
	require.NoError(t, renderEntries(tr.Renderer, nil, config.FormatJSON))
	assert.Equal(t, "[]\n", tr.Output())

	tr.Reset()
	require.Error(t, renderEntries(tr.Renderer, nil, "csv"))
}

func TestNewTablesCommand(t *testing.T) {
	cmd := NewTablesCommand()
	assert.Equal(t, "tables", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("format"))
}
