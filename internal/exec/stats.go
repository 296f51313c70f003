package exec

import "github.com/gridsql/gridsql/internal/catalog"

// IndexStats describes one index's current shape, for the introspection
// boundary (spec §6 already requires get_row_count; this generalizes to the
// index level without adding a mutation path).
type IndexStats struct {
	Column  string
	Entries int // distinct values currently indexed (null counts as one when present)
	Depth   int // node levels from root to leaf
}

// TableStats bundles a table's row count with per-index shape.
type TableStats struct {
	RowCount int
	Indexes  []IndexStats
}

// Stats gathers TableStats for the named table.
func Stats(cat *catalog.Catalog, table string) (TableStats, error) {
	t, ok := cat.Get(table)
	if !ok {
		return TableStats{}, schemaErrf("no such table %q", table)
	}
	stats := TableStats{RowCount: len(t.Rows)}
	for _, col := range t.Schema.UniqueColumns() {
		idx := t.IndexFor(col)
		stats.Indexes = append(stats.Indexes, IndexStats{
			Column:  col,
			Entries: idx.Count(),
			Depth:   idx.Depth(),
		})
	}
	return stats, nil
}
