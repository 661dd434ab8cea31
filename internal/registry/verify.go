package registry

import "github.com/leapstack-labs/jsonsql/pkg/core"

// Verify checks that every referenced table is cataloged.
// Identifiers are checked in sorted order so the reported table is stable;
// the first one missing is returned as a *core.TableNotFoundError.
func (c *Catalog) Verify(refs *core.TableSet) error {
	for _, table := range refs.Sorted() {
		if !c.Has(table) {
			return &core.TableNotFoundError{Table: table}
		}
	}
	return nil
}
