package exec

import (
	"fmt"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
	"github.com/gridsql/gridsql/internal/value"
)

type resolvedAssignment struct {
	column string
	value  value.Value
}

// execUpdate implements spec §4.5 UPDATE. The SET clause's literals are
// fixed for the whole statement (no per-row expressions), so they are
// resolved and type-checked once; the affected-row set is then walked in
// increasing-position order, checking and applying each indexed column's
// new-value uniqueness one row at a time exactly as spec §4.5 describes.
// A conflict partway through unwinds every index mutation already applied
// in this call before returning, preserving (P3) — no partial UPDATE.
func execUpdate(cat *catalog.Catalog, s *parser.Update) (*Outcome, error) {
	t, ok := cat.Get(s.Table)
	if !ok {
		return nil, schemaErrf("no such table %q", s.Table)
	}

	assigns := make([]resolvedAssignment, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		col, ok := t.Schema.Column(a.Column)
		if !ok {
			return nil, schemaErrf("UPDATE %s: unknown column %q", s.Table, a.Column)
		}
		v, err := literalValue(a.Value)
		if err != nil {
			return nil, err
		}
		if err := checkColumnType(*col, v); err != nil {
			return nil, err
		}
		if col.NotNull && v.IsNull() {
			return nil, constraintErrf("UPDATE %s: column %q is not-null", s.Table, a.Column)
		}
		assigns = append(assigns, resolvedAssignment{column: a.Column, value: v})
	}

	var positions []int
	for pos, row := range t.Rows {
		if matchConditions(row, s.Where) {
			positions = append(positions, pos)
		}
	}

	var undo []func()
	rollback := func() {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	}

	for _, pos := range positions {
		row := t.Rows[pos]
		for _, a := range assigns {
			old := row[a.column]
			if value.Equal(old, a.value) {
				continue
			}
			column, newVal := a.column, a.value
			if idx := t.IndexFor(column); idx != nil {
				if !newVal.IsNull() {
					if postings := idx.Search(newVal); len(postings) > 0 {
						rollback()
						return nil, constraintErrf("UPDATE %s: duplicate value for unique column %q", s.Table, column)
					}
				}
				idx.Remove(old, pos)
				if err := idx.Insert(newVal, pos); err != nil {
					rollback()
					return nil, fmt.Errorf("exec: update: %w", err)
				}
				undo = append(undo, func() {
					idx.Remove(newVal, pos)
					_ = idx.Insert(old, pos)
					row[column] = old
				})
			} else {
				undo = append(undo, func() {
					row[column] = old
				})
			}
			row[column] = newVal
		}
	}

	return &Outcome{
		Message:      fmt.Sprintf("%d row(s) updated in %q", len(positions), s.Table),
		AffectedRows: len(positions),
	}, nil
}
