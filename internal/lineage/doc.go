// Package lineage provides table-level lineage for a SELECT statement.
//
// It walks the FROM clause of a statement produced by internal/parser and
// returns the set of tables the statement reads, normalized with
// core.NormalizeTableName so they can be matched against the file catalog.
//
// Only bare table names are understood. Joins, subqueries, parenthesized
// table lists, aliases and index hints are reported as
// *core.UnsupportedRelationError rather than silently ignored.
//
// # Basic Usage
//
//	sel, err := parser.ParseSelect("SELECT * FROM orders, line_items")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tables, err := lineage.ExtractTables(sel)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(tables.IDs()) // [ORDERS LINE_ITEMS]
package lineage
