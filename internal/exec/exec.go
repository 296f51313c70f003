// Package exec is the execution engine: it dispatches on a parsed
// parser.Statement, owns constraint checking and index maintenance for the
// write path, and owns join evaluation, WHERE filtering, ORDER BY/LIMIT and
// projection for the read path (spec §4.4/§4.5).
//
// What: Execute takes a catalog and a single parsed statement and returns an
// Outcome — either projected rows or an affected-row count plus message.
// How: One file per statement kind, mirroring package parser's layout;
// shared read-path machinery (joins, conditions, ordering) lives in its own
// files since SELECT is the one statement that composes all of it.
// Why: Keeping constraint checking and index maintenance colocated with the
// statement that triggers them is what makes the invariants in spec §3
// (I1-I6) auditable file-by-file rather than scattered across a generic
// row-mutation helper.
package exec

import (
	"fmt"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
)

// Row is a single result row: a column name to cell value mapping. It is an
// alias for catalog.Row since join evaluation produces the same shape
// (qualified and unqualified keys in one map) that a base table row already
// is — no separate "joined row" type is needed.
type Row = catalog.Row

// Outcome is the execution result before it crosses the package boundary
// into the root Engine's public Result shape (spec §6).
type Outcome struct {
	Rows         []Row  // set by SELECT
	Message      string // set by CREATE/INSERT/UPDATE/DELETE/DROP
	AffectedRows int
}

// Execute dispatches stmt to its statement handler against cat.
func Execute(cat *catalog.Catalog, stmt parser.Statement) (*Outcome, error) {
	switch s := stmt.(type) {
	case *parser.CreateTable:
		return execCreateTable(cat, s)
	case *parser.Insert:
		return execInsert(cat, s)
	case *parser.Select:
		return execSelect(cat, s)
	case *parser.Update:
		return execUpdate(cat, s)
	case *parser.Delete:
		return execDelete(cat, s)
	case *parser.DropTable:
		return execDropTable(cat, s)
	default:
		return nil, fmt.Errorf("exec: unknown statement type %T", stmt)
	}
}

// StatementKind names a statement for logging and result shaping without exposing
// the parser.Statement type itself to callers outside the engine boundary.
func StatementKind(stmt parser.Statement) string {
	switch stmt.(type) {
	case *parser.CreateTable:
		return "CREATE TABLE"
	case *parser.Insert:
		return "INSERT"
	case *parser.Select:
		return "SELECT"
	case *parser.Update:
		return "UPDATE"
	case *parser.Delete:
		return "DELETE"
	case *parser.DropTable:
		return "DROP TABLE"
	default:
		return "UNKNOWN"
	}
}

// StatementTable returns the table name a statement targets, for logging.
func StatementTable(stmt parser.Statement) string {
	switch s := stmt.(type) {
	case *parser.CreateTable:
		return s.Table
	case *parser.Insert:
		return s.Table
	case *parser.Select:
		return s.Table
	case *parser.Update:
		return s.Table
	case *parser.Delete:
		return s.Table
	case *parser.DropTable:
		return s.Table
	default:
		return ""
	}
}
