package exec

import (
	"sort"

	"github.com/samber/lo"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
	"github.com/gridsql/gridsql/internal/value"
)

// execSelect implements the read path of spec §4.4: base rows or join
// result, index-assisted equality filtering, the general WHERE filter,
// ORDER BY, LIMIT, then projection.
func execSelect(cat *catalog.Catalog, s *parser.Select) (*Outcome, error) {
	t, ok := cat.Get(s.Table)
	if !ok {
		return nil, schemaErrf("no such table %q", s.Table)
	}

	joined := len(s.Joins) > 0
	rows := evalJoins(cat, s.Table, t.Rows)
	for _, j := range s.Joins {
		var err error
		rows, err = applyJoin(cat, rows, j)
		if err != nil {
			return nil, err
		}
	}

	rows = indexAssistedRows(t, rows, s.Where, joined)

	filtered := lo.Filter(rows, func(r Row, _ int) bool {
		return matchConditions(r, s.Where)
	})

	if s.OrderBy != nil {
		sortRows(filtered, s.OrderBy.Column, s.OrderBy.Desc)
	}

	if s.Limit != nil {
		n := *s.Limit
		if n < len(filtered) {
			filtered = filtered[:n]
		}
	}

	projected := project(filtered, s)
	return &Outcome{Rows: projected, AffectedRows: len(projected)}, nil
}

// sortRows stable-sorts by the single ordering column under the total order
// of value.Compare; reversing the comparator for DESC also flips which end
// nulls land on, matching B2 (nulls first ASC, last DESC) with no special
// casing.
func sortRows(rows []Row, col string, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][col], rows[j][col]
		cmp := value.Compare(a, b)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// project reduces each row to the requested columns (spec §4.4.4): `*`
// passes rows through unchanged; otherwise an absent requested name simply
// produces no key in the output row rather than a null.
func project(rows []Row, s *parser.Select) []Row {
	if s.Star {
		return lo.Map(rows, func(r Row, _ int) Row { return r })
	}
	return lo.Map(rows, func(r Row, _ int) Row {
		pr := make(Row, len(s.Columns))
		for _, name := range s.Columns {
			if v, ok := r[name]; ok {
				pr[name] = v
			}
		}
		return pr
	})
}
