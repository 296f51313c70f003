package catalog

import (
	"github.com/gridsql/gridsql/internal/index"
	"github.com/gridsql/gridsql/internal/value"
)

// Row maps a column name to its cell value. Row position (its index into
// Table.Rows) is the row's identity for the duration of its life; it is not
// stable across deletion (spec §4.5).
type Row map[string]value.Value

// Table holds one table's live state: its schema, its row vector, one index
// per unique-constrained column, and the auto-increment counter for an
// integer primary key.
//
// Table is not internally synchronized: the engine's concurrency model
// (spec §5) is single-threaded and cooperative, so unlike the teacher
// lineage's storage.DB (which guards table state with a sync.RWMutex for a
// multi-tenant, multi-goroutine host) Table trusts its single caller to
// serialize access.
type Table struct {
	Schema        Schema
	Rows          []Row
	Indexes       map[string]*index.Tree // column name -> index, one per unique column
	AutoIncrement int64
}

// NewTable creates an empty table for schema, with one index per
// unique-constrained column and the auto-increment counter initialized to 1.
func NewTable(schema Schema) *Table {
	t := &Table{
		Schema:        schema,
		Indexes:       make(map[string]*index.Tree),
		AutoIncrement: 1,
	}
	for _, name := range schema.UniqueColumns() {
		t.Indexes[name] = index.NewTree(true)
	}
	return t
}

// IndexFor returns the index for column, or nil if that column has no
// uniqueness constraint (and therefore no index).
func (t *Table) IndexFor(column string) *index.Tree {
	return t.Indexes[column]
}

// RebuildIndexes reconstructs every index from the current row vector. DELETE
// uses this after row positions shift (spec §4.5); it is the mechanism that
// restores I2 in one step rather than patching each index incrementally.
func (t *Table) RebuildIndexes() {
	for col, idx := range t.Indexes {
		postings := make([]index.Posting, 0, len(t.Rows))
		for pos, row := range t.Rows {
			postings = append(postings, index.Posting{Value: row[col], Position: pos})
		}
		idx.Rebuild(postings)
	}
}

// NextAutoIncrement returns the value to assign to a missing integer
// primary key and advances the counter. It never decreases (I6).
func (t *Table) NextAutoIncrement() int64 {
	v := t.AutoIncrement
	t.AutoIncrement++
	return v
}

// ReserveAutoIncrement bumps the counter so that it stays strictly greater
// than an explicitly-provided primary key value (I6 also binds when the
// caller supplies their own integer primary key rather than relying on
// auto-assignment).
func (t *Table) ReserveAutoIncrement(pk int64) {
	if pk >= t.AutoIncrement {
		t.AutoIncrement = pk + 1
	}
}
