package lineage

import (
	"strings"

	"github.com/xwb1989/sqlparser"

	"github.com/leapstack-labs/jsonsql/pkg/core"
)

// dualTable is the placeholder the MySQL grammar puts in the FROM clause of a
// SELECT that has none.
const dualTable = "dual"

// ExtractTables returns the tables named in the FROM clause of sel, in
// clause order with duplicates collapsed. An empty FROM clause (or the lone
// dual placeholder) yields an empty set, meaning no table was singled out.
func ExtractTables(sel *sqlparser.Select) (*core.TableSet, error) {
	tables := core.NewTableSet()
	if sel == nil || isDual(sel.From) {
		return tables, nil
	}

	for _, expr := range sel.From {
		name, err := tableName(expr)
		if err != nil {
			return nil, err
		}
		tables.Add(core.NormalizeTableName(name))
	}

	return tables, nil
}

// tableName returns the raw name of a bare table reference, qualified as
// "qualifier.name" when a qualifier is present.
func tableName(expr sqlparser.TableExpr) (string, error) {
	aliased, ok := expr.(*sqlparser.AliasedTableExpr)
	if !ok {
		// *JoinTableExpr, *ParenTableExpr
		return "", unsupported(expr)
	}

	name, ok := aliased.Expr.(sqlparser.TableName)
	if !ok || name.Name.IsEmpty() || !aliased.As.IsEmpty() {
		return "", unsupported(expr)
	}

	// Partitions and index hints only show up in the formatted form.
	if sqlparser.String(aliased) != sqlparser.String(name) {
		return "", unsupported(expr)
	}

	if name.Qualifier.IsEmpty() {
		return identText(name.Name), nil
	}
	return identText(name.Qualifier) + "." + identText(name.Name), nil
}

// isDual reports whether from is the implicit FROM of a table-less SELECT.
func isDual(from sqlparser.TableExprs) bool {
	if len(from) != 1 {
		return false
	}
	aliased, ok := from[0].(*sqlparser.AliasedTableExpr)
	if !ok || !aliased.As.IsEmpty() {
		return false
	}
	name, ok := aliased.Expr.(sqlparser.TableName)
	if !ok || !name.Qualifier.IsEmpty() {
		return false
	}
	return strings.EqualFold(identText(name.Name), dualTable)
}

// identText returns an identifier without the backquotes the formatter adds
// to names that need quoting.
func identText(id sqlparser.TableIdent) string {
	s := id.String()
	if len(s) >= 2 && s[0] == '`' && s[len(s)-1] == '`' {
		return strings.ReplaceAll(s[1:len(s)-1], "``", "`")
	}
	return s
}

func unsupported(expr sqlparser.TableExpr) error {
	return &core.UnsupportedRelationError{Relation: sqlparser.String(expr)}
}
