package engine

// emit.go - Result selection and serialization

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"

	"github.com/leapstack-labs/jsonsql/internal/loader"
	"github.com/leapstack-labs/jsonsql/pkg/core"
)

// Mode is the output shape of a run.
type Mode int

const (
	// ModeMerge writes every loaded document folded into one.
	ModeMerge Mode = iota
	// ModeSelective writes one document per referenced table.
	ModeSelective
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMerge:
		return "merge"
	case ModeSelective:
		return "selective"
	default:
		return "unknown"
	}
}

// SelectMode picks merge mode when the statement named no table and
// selective mode otherwise.
func SelectMode(tables *core.TableSet) Mode {
	if tables.IsEmpty() {
		return ModeMerge
	}
	return ModeSelective
}

// EmitOptions controls document formatting.
type EmitOptions struct {
	Pretty bool
	Indent string
}

// Emitter writes result documents. Each document is followed by a newline,
// so compact output is newline-delimited JSON.
type Emitter struct {
	w    io.Writer
	opts EmitOptions
}

// NewEmitter creates an emitter writing to w.
func NewEmitter(w io.Writer, opts EmitOptions) *Emitter {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	return &Emitter{w: w, opts: opts}
}

// Emit writes data according to the mode tables selects.
func (e *Emitter) Emit(data *loader.Dataset, tables *core.TableSet) error {
	if SelectMode(tables) == ModeMerge {
		return e.emitMerged(data)
	}
	return e.emitSelected(data, tables)
}

func (e *Emitter) emitMerged(data *loader.Dataset) error {
	docs := make([]any, 0, data.Len())
	for _, table := range data.Tables() {
		doc, _ := data.Get(table)
		docs = append(docs, doc)
	}
	return e.write("", Merge(docs...))
}

// emitSelected writes the referenced tables in statement order. All lookups
// happen before the first write so a missing table produces no output.
func (e *Emitter) emitSelected(data *loader.Dataset, tables *core.TableSet) error {
	ids := tables.IDs()
	docs := make([]any, len(ids))
	for i, table := range ids {
		doc, ok := data.Get(table)
		if !ok {
			return &core.TableNotFoundError{Table: table}
		}
		docs[i] = doc
	}

	for i, table := range ids {
		if err := e.write(table, docs[i]); err != nil {
			return err
		}
	}
	return nil
}

// write encodes doc fully before handing it to the writer.
func (e *Emitter) write(table core.TableID, doc any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if e.opts.Pretty {
		enc.SetIndent("", e.opts.Indent)
	}

	if err := enc.Encode(doc); err != nil {
		return &core.SerializationError{Table: table, Err: err}
	}
	if _, err := e.w.Write(buf.Bytes()); err != nil {
		return &core.SerializationError{Table: table, Err: err}
	}
	return nil
}
