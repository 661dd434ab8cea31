// Package parser turns SQL text into the single SELECT statement a run operates on.
// Lexing and grammar are delegated to github.com/xwb1989/sqlparser; this package
// only enforces that the input is exactly one plain SELECT.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xwb1989/sqlparser"
)

// Errors returned by ParseSelect.
var (
	ErrEmptyQuery         = errors.New("empty SQL query provided")
	ErrMultipleStatements = errors.New("expected exactly one SQL statement")
	ErrNotSelect          = errors.New("the provided SQL statement is not a SELECT query")
)

// SyntaxError wraps a grammar error reported by the SQL parser.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("failed to parse SQL: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ParseSelect parses sql and returns its only statement as a SELECT.
// A single trailing semicolon is accepted.
func ParseSelect(sql string) (*sqlparser.Select, error) {
	if strings.TrimSpace(sql) == "" {
		return nil, ErrEmptyQuery
	}

	tokens := sqlparser.NewTokenizer(strings.NewReader(sql))

	stmt, err := sqlparser.ParseNext(tokens)
	if err == io.EOF {
		return nil, ErrEmptyQuery
	}
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}

	// Anything after the first statement must be empty.
	next, err := sqlparser.ParseNext(tokens)
	switch {
	case err == io.EOF:
	case err != nil:
		return nil, &SyntaxError{Err: err}
	case next != nil:
		return nil, ErrMultipleStatements
	}

	sel, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, fmt.Errorf("%w (got %s)", ErrNotSelect, describe(stmt))
	}
	return sel, nil
}

func describe(stmt sqlparser.Statement) string {
	switch stmt.(type) {
	case *sqlparser.Union:
		return "UNION"
	case *sqlparser.ParenSelect:
		return "parenthesized SELECT"
	case *sqlparser.Insert:
		return "INSERT"
	case *sqlparser.Update:
		return "UPDATE"
	case *sqlparser.Delete:
		return "DELETE"
	case *sqlparser.DDL:
		return "DDL"
	default:
		return fmt.Sprintf("%T", stmt)
	}
}
