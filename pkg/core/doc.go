// Package core defines the shared language of the jsonsql system.
//
// This package contains:
//   - Table identity (TableID, NormalizeTableName)
//   - The ordered set of tables a statement references (TableSet)
//   - The error taxonomy shared by every stage of a run
//
// The Golden Rule: pkg/core imports ONLY golang.org/x/text and stdlib.
// All other packages depend on core, not the reverse.
package core
