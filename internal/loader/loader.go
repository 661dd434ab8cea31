// Package loader reads the JSON documents backing cataloged tables.
package loader

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/leapstack-labs/jsonsql/internal/registry"
	"github.com/leapstack-labs/jsonsql/pkg/core"
)

var (
	errEmptyDocument = errors.New("file contains no JSON document")
	errTrailingData  = errors.New("unexpected data after the top-level JSON value")
	errInvalidUTF8   = errors.New("file content is not valid UTF-8")
	errMalformed     = errors.New("file content is not well-formed JSON")
)

// Dataset holds one parsed document per table, in catalog order.
type Dataset struct {
	docs  map[core.TableID]any
	order []core.TableID
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{docs: make(map[core.TableID]any)}
}

// Set stores doc under table. Re-setting a table keeps its position.
func (d *Dataset) Set(table core.TableID, doc any) {
	if _, ok := d.docs[table]; !ok {
		d.order = append(d.order, table)
	}
	d.docs[table] = doc
}

// Get returns the document of table.
func (d *Dataset) Get(table core.TableID) (any, bool) {
	doc, ok := d.docs[table]
	return doc, ok
}

// Tables returns the loaded tables in load order.
func (d *Dataset) Tables() []core.TableID {
	out := make([]core.TableID, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of loaded tables.
func (d *Dataset) Len() int {
	return len(d.order)
}

// Loader reads cataloged files.
type Loader struct {
	logger *slog.Logger
}

// New creates a loader. A nil logger discards output.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{logger: logger}
}

// Load reads every file in the catalog, whether or not a statement
// references it. Files are read one at a time; the first failure aborts the
// load and no partial dataset is returned.
func (l *Loader) Load(catalog *registry.Catalog) (*Dataset, error) {
	data := NewDataset()

	for _, entry := range catalog.Entries() {
		doc, err := LoadFile(entry.Path)
		if err != nil {
			return nil, err
		}
		data.Set(entry.Table, doc)
		l.logger.Debug("loaded table", "table", entry.Table, "path", entry.Path)
	}

	return data, nil
}

// LoadFile reads path and parses its content as exactly one JSON document.
// Numbers are kept as json.Number so they re-encode unchanged.
func LoadFile(path string) (any, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, &core.FileOpenError{Path: path, Err: err}
	}

	doc, err := decode(content)
	if err != nil {
		return nil, &core.JSONParseError{Path: path, Err: err}
	}
	return doc, nil
}

// readFile opens path, reads it fully and releases the handle before returning.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // paths come from the command line
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return io.ReadAll(f)
}

// decode parses content as exactly one JSON document.
// The goccy decoder accepts some inputs that RFC 8259 rejects (a NUL after
// the value, raw control bytes inside strings), so the grammar is checked
// strictly first.
func decode(content []byte) (any, error) {
	if !utf8.Valid(content) {
		return nil, errInvalidUTF8
	}
	if len(bytes.Trim(content, " \t\r\n")) == 0 {
		return nil, errEmptyDocument
	}
	if !stdjson.Valid(content) {
		return nil, invalidDocument(content)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyDocument
		}
		return nil, err
	}

	var rest any
	if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return doc, nil
}

// invalidDocument classifies content rejected by the strict grammar check.
// A leading value that decodes on its own means trailing data; anything
// else is malformed.
func invalidDocument(content []byte) error {
	dec := stdjson.NewDecoder(bytes.NewReader(content))
	var first stdjson.RawMessage
	if err := dec.Decode(&first); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	return errTrailingData
}
