package core

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// =============================================================================
// Table identity
// =============================================================================

// TableID is the canonical identifier of a logical table.
// Values are only ever produced by NormalizeTableName; raw file stems and SQL
// names are never compared directly.
type TableID string

// String returns the identifier text.
func (id TableID) String() string {
	return string(id)
}

// NormalizeTableName maps a file stem or SQL table name to its TableID.
// Every character is upper-cased (full Unicode case mapping, so "ß" becomes
// "SS") and every hyphen becomes an underscore. Nothing else is touched:
// whitespace and punctuation survive as-is.
func NormalizeTableName(raw string) TableID {
	// cases.Caser is stateful, one per call.
	upper := cases.Upper(language.Und).String(raw)
	return TableID(strings.ReplaceAll(upper, "-", "_"))
}

// =============================================================================
// TableSet
// =============================================================================

// TableSet is a set of table identifiers that remembers insertion order.
// Adding an identifier twice keeps its first position. The zero value is an
// empty set ready to use.
type TableSet struct {
	order []TableID
	index map[TableID]struct{}
}

// NewTableSet creates a set holding ids in the given order.
func NewTableSet(ids ...TableID) *TableSet {
	s := &TableSet{index: make(map[TableID]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was not already present.
func (s *TableSet) Add(id TableID) bool {
	if s.index == nil {
		s.index = make(map[TableID]struct{})
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Has reports whether id is in the set.
func (s *TableSet) Has(id TableID) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Len returns the number of identifiers.
func (s *TableSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// IsEmpty reports whether no table was referenced.
func (s *TableSet) IsEmpty() bool {
	return s.Len() == 0
}

// IDs returns the identifiers in insertion order.
func (s *TableSet) IDs() []TableID {
	if s == nil {
		return nil
	}
	out := make([]TableID, len(s.order))
	copy(out, s.order)
	return out
}

// Sorted returns the identifiers in lexical order.
func (s *TableSet) Sorted() []TableID {
	out := s.IDs()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
