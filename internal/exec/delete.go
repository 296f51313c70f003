package exec

import (
	"fmt"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
)

// execDelete implements spec §4.5 DELETE: collect matching positions,
// remove them from the row vector in descending order (so earlier positions
// stay valid while later ones are removed), then rebuild every index from
// scratch since positions shift under the survivors (spec §4.2 Rebuild,
// §4.5). DELETE has no failure mode of its own (no constraint can be
// violated by removing rows), so there is nothing to roll back.
func execDelete(cat *catalog.Catalog, s *parser.Delete) (*Outcome, error) {
	t, ok := cat.Get(s.Table)
	if !ok {
		return nil, schemaErrf("no such table %q", s.Table)
	}

	var positions []int
	for pos, row := range t.Rows {
		if matchConditions(row, s.Where) {
			positions = append(positions, pos)
		}
	}

	for i := len(positions) - 1; i >= 0; i-- {
		pos := positions[i]
		t.Rows = append(t.Rows[:pos], t.Rows[pos+1:]...)
	}
	t.RebuildIndexes()

	return &Outcome{
		Message:      fmt.Sprintf("%d row(s) deleted from %q", len(positions), s.Table),
		AffectedRows: len(positions),
	}, nil
}
