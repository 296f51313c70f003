package exec

import (
	"fmt"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
	"github.com/gridsql/gridsql/internal/value"
)

// execInsert implements spec §4.5 INSERT: build the candidate row, assign an
// auto-increment primary key when one is due, pre-validate every indexed
// column's uniqueness before touching any index (spec §9 — the source's
// sequential per-index insert leaves earlier indexes with a stale posting
// when a later one rejects; this implementation validates first and mutates
// only after every index would accept), then append.
func execInsert(cat *catalog.Catalog, s *parser.Insert) (*Outcome, error) {
	t, ok := cat.Get(s.Table)
	if !ok {
		return nil, schemaErrf("no such table %q", s.Table)
	}
	if len(s.Columns) != len(s.Values) {
		return nil, valueErrf("INSERT INTO %s: %d columns but %d values", s.Table, len(s.Columns), len(s.Values))
	}

	row := make(catalog.Row, len(t.Schema.Columns))
	for i, colName := range s.Columns {
		col, ok := t.Schema.Column(colName)
		if !ok {
			return nil, schemaErrf("INSERT INTO %s: unknown column %q", s.Table, colName)
		}
		v, err := literalValue(s.Values[i])
		if err != nil {
			return nil, err
		}
		if err := checkColumnType(*col, v); err != nil {
			return nil, err
		}
		row[colName] = v
	}

	for i := range t.Schema.Columns {
		col := &t.Schema.Columns[i]
		if _, provided := row[col.Name]; provided {
			continue
		}
		row[col.Name] = value.NullValue()
		if col.NotNull && !col.PrimaryKey {
			return nil, constraintErrf("INSERT INTO %s: column %q is not-null", s.Table, col.Name)
		}
	}

	if t.Schema.PrimaryKey != "" {
		pk, _ := t.Schema.Column(t.Schema.PrimaryKey)
		if pk.Type == catalog.IntType {
			cur := row[pk.Name]
			if cur.IsNull() {
				row[pk.Name] = value.IntValue(t.NextAutoIncrement())
			} else {
				t.ReserveAutoIncrement(cur.I)
			}
		}
	}

	for _, col := range t.Schema.Columns {
		if col.NotNull && row[col.Name].IsNull() {
			return nil, constraintErrf("INSERT INTO %s: column %q is not-null", s.Table, col.Name)
		}
	}

	pos := len(t.Rows)
	uniqueCols := t.Schema.UniqueColumns()
	for _, colName := range uniqueCols {
		v := row[colName]
		if v.IsNull() {
			continue
		}
		idx := t.IndexFor(colName)
		if postings := idx.Search(v); len(postings) > 0 {
			return nil, constraintErrf("INSERT INTO %s: duplicate value for unique column %q", s.Table, colName)
		}
	}

	for _, colName := range uniqueCols {
		v := row[colName]
		if err := t.IndexFor(colName).Insert(v, pos); err != nil {
			return nil, fmt.Errorf("exec: insert: %w", err)
		}
	}

	t.Rows = append(t.Rows, row)

	return &Outcome{
		Message:      fmt.Sprintf("1 row inserted into %q", s.Table),
		AffectedRows: 1,
	}, nil
}
