// Package engine runs a SELECT statement against a set of JSON files.
// It resolves the tables a statement names to the files backing them, loads
// every file, and writes either one merged document or one document per
// referenced table.
package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/xwb1989/sqlparser"

	"github.com/leapstack-labs/jsonsql/internal/lineage"
	"github.com/leapstack-labs/jsonsql/internal/loader"
	"github.com/leapstack-labs/jsonsql/internal/registry"
)

// DefaultIndent is the indentation of pretty output.
const DefaultIndent = "  "

// Engine orchestrates a single run.
type Engine struct {
	// Structured logger
	logger *slog.Logger

	pretty bool
	indent string
	strict bool
	loader *loader.Loader
}

// Config holds engine configuration.
type Config struct {
	// Pretty writes indented multi-line documents instead of single lines
	Pretty bool
	// Indent is the indentation unit of pretty output (DefaultIndent if empty)
	Indent string
	// StrictTables rejects two files that map to the same table identifier
	StrictTables bool
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	indent := cfg.Indent
	if indent == "" {
		indent = DefaultIndent
	}

	return &Engine{
		logger: logger,
		pretty: cfg.Pretty,
		indent: indent,
		strict: cfg.StrictTables,
		loader: loader.New(logger),
	}
}

// Select runs sel against files and writes the result documents to w.
//
// The stages run strictly in order and the first error ends the run:
// every referenced table is checked against the catalog before any file is
// read, and every file is read before anything is written.
func (e *Engine) Select(ctx context.Context, sel *sqlparser.Select, files []string, w io.Writer) error {
	e.logger.DebugContext(ctx, "starting select", "files", len(files))

	catalog, err := registry.Build(files, registry.Options{Strict: e.strict, Logger: e.logger})
	if err != nil {
		return err
	}

	tables, err := lineage.ExtractTables(sel)
	if err != nil {
		return err
	}
	e.logger.DebugContext(ctx, "extracted referenced tables", "tables", tables.IDs())

	if err := catalog.Verify(tables); err != nil {
		return err
	}

	data, err := e.loader.Load(catalog)
	if err != nil {
		return err
	}

	emitter := NewEmitter(w, EmitOptions{Pretty: e.pretty, Indent: e.indent})
	mode := SelectMode(tables)
	e.logger.DebugContext(ctx, "emitting result", "mode", mode, "loaded", data.Len())

	return emitter.Emit(data, tables)
}
