// Package registry provides the table catalog of a run.
// It maps the table identifier derived from each input file's name to the
// file's path, and checks the tables referenced in SQL against it.
package registry

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/jsonsql/pkg/core"
)

// Options controls how a Catalog treats its input.
type Options struct {
	// Strict turns a second file with the same table identifier into a
	// *core.DuplicateTableError instead of replacing the first one.
	Strict bool
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Entry is one catalog row.
type Entry struct {
	Table core.TableID `json:"table" yaml:"table"`
	Path  string       `json:"path" yaml:"path"`
}

// Catalog maps table identifiers to the files backing them.
// It is built once per run and only read afterwards.
type Catalog struct {
	strict bool
	logger *slog.Logger

	// byTable maps identifiers to file paths: "LINE_ITEMS" → "data/line-items.json"
	byTable map[core.TableID]string

	// order holds identifiers in the position of their first registration
	order []core.TableID
}

// NewCatalog creates an empty catalog.
func NewCatalog(opts Options) *Catalog {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{
		strict:  opts.Strict,
		logger:  logger,
		byTable: make(map[core.TableID]string),
	}
}

// Build registers every path in order. No file content is read.
// An empty list produces an empty catalog.
func Build(paths []string, opts Options) (*Catalog, error) {
	c := NewCatalog(opts)
	for _, path := range paths {
		if _, err := c.Register(path); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds path under the identifier derived from its file stem.
// If another path already holds that identifier it is replaced, unless the
// catalog is strict.
func (c *Catalog) Register(path string) (core.TableID, error) {
	stem, ok := fileStem(path)
	if !ok {
		return "", &core.InvalidTableNameError{Path: path}
	}

	table := core.NormalizeTableName(stem)

	if previous, exists := c.byTable[table]; exists {
		if c.strict {
			return "", &core.DuplicateTableError{Table: table, Path: path, Previous: previous}
		}
		c.logger.Warn("table provided by more than one file, keeping the last",
			"table", table, "previous", previous, "path", path)
		c.byTable[table] = path
		return table, nil
	}

	c.byTable[table] = path
	c.order = append(c.order, table)
	c.logger.Debug("registered table", "table", table, "path", path)

	return table, nil
}

// Resolve returns the path backing table.
func (c *Catalog) Resolve(table core.TableID) (string, bool) {
	path, ok := c.byTable[table]
	return path, ok
}

// Has reports whether table is cataloged.
func (c *Catalog) Has(table core.TableID) bool {
	_, ok := c.byTable[table]
	return ok
}

// Tables returns all identifiers in registration order.
func (c *Catalog) Tables() []core.TableID {
	out := make([]core.TableID, len(c.order))
	copy(out, c.order)
	return out
}

// Entries returns all rows in registration order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, table := range c.order {
		entries = append(entries, Entry{Table: table, Path: c.byTable[table]})
	}
	return entries
}

// Count returns the number of cataloged tables.
func (c *Catalog) Count() int {
	return len(c.order)
}

// fileStem returns the file name of path without its last extension.
// Paths with no usable file name (empty, ending in a separator, "." or "..")
// report false. A dotfile such as ".json" keeps its whole name.
func fileStem(path string) (string, bool) {
	if path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return "", false
	}

	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", false
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		stem = name
	}
	return stem, true
}
