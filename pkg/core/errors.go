package core

import (
	"errors"
	"fmt"
)

// ErrNoInputFiles is returned when a run is started without any input file.
var ErrNoInputFiles = errors.New("no input files provided")

// InvalidTableNameError is returned when no table name can be derived from a path.
type InvalidTableNameError struct {
	Path string
}

func (e *InvalidTableNameError) Error() string {
	return fmt.Sprintf("could not extract a valid table name from %q", e.Path)
}

// DuplicateTableError is returned in strict mode when two input files
// normalize to the same table identifier.
type DuplicateTableError struct {
	Table    TableID
	Path     string
	Previous string
}

func (e *DuplicateTableError) Error() string {
	return fmt.Sprintf("table %q is provided by both %q and %q", e.Table, e.Previous, e.Path)
}

// UnsupportedRelationError is returned when a FROM item is not a bare table name.
type UnsupportedRelationError struct {
	// Relation is the SQL text of the offending FROM item.
	Relation string
}

func (e *UnsupportedRelationError) Error() string {
	return fmt.Sprintf("unsupported relation in FROM clause: %s (only plain table names are supported)", e.Relation)
}

// TableNotFoundError is returned when a referenced table has no backing file.
type TableNotFoundError struct {
	Table TableID
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table %q not found in the provided files", e.Table)
}

// FileOpenError is returned when a cataloged file cannot be opened or read.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// JSONParseError is returned when a cataloged file is not a single valid JSON document.
type JSONParseError struct {
	Path string
	Err  error
}

func (e *JSONParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON in %q: %v", e.Path, e.Err)
}

func (e *JSONParseError) Unwrap() error {
	return e.Err
}

// SerializationError is returned when a document cannot be written to the output.
type SerializationError struct {
	Table TableID // empty for the merged document
	Err   error
}

func (e *SerializationError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("failed to write merged document: %v", e.Err)
	}
	return fmt.Sprintf("failed to write table %q: %v", e.Table, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
