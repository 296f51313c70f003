package exec

import (
	"github.com/samber/lo"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
	"github.com/gridsql/gridsql/internal/value"
)

// evalJoins builds the starting row sequence for join evaluation (spec
// §4.4.1): the base table's rows with every column also exposed under its
// `table.column` qualified name. It applies no join itself; execSelect runs
// each join spec left-to-right over this sequence via applyJoin.
func evalJoins(cat *catalog.Catalog, baseTable string, baseRows []catalog.Row) []Row {
	baseTableSchema, _ := cat.Schema(baseTable)
	current := make([]Row, len(baseRows))
	for i, r := range baseRows {
		current[i] = qualify(r, baseTable, baseTableSchema.Columns)
	}
	return current
}

func qualify(row catalog.Row, table string, cols []catalog.Column) Row {
	out := make(Row, len(row)+len(cols))
	for k, v := range row {
		out[k] = v
	}
	for _, c := range cols {
		out[table+"."+c.Name] = row[c.Name]
	}
	return out
}

func applyJoin(cat *catalog.Catalog, current []Row, j parser.Join) ([]Row, error) {
	rightTable, ok := cat.Get(j.Table)
	if !ok {
		return nil, schemaErrf("no such table %q", j.Table)
	}
	joinKey := j.JoinKey()
	qualifier := j.Alias
	if qualifier == "" {
		qualifier = j.Table
	}

	var newColumn, oldQualified string
	if j.LeftTable == qualifier {
		newColumn = j.LeftColumn
		oldQualified = j.RightTable + "." + j.RightColumn
	} else {
		newColumn = j.RightColumn
		oldQualified = j.LeftTable + "." + j.LeftColumn
	}

	rightCols := lo.Map(rightTable.Schema.Columns, func(c catalog.Column, _ int) string { return c.Name })

	switch j.Kind {
	case parser.LeftJoin:
		return leftJoin(current, rightTable.Rows, oldQualified, newColumn, joinKey, rightCols), nil
	case parser.RightJoin:
		return rightJoin(current, rightTable.Rows, oldQualified, newColumn, joinKey, rightCols), nil
	default:
		return innerJoin(current, rightTable.Rows, oldQualified, newColumn, joinKey, rightCols), nil
	}
}

func innerJoin(left []Row, right []catalog.Row, leftKey, rightCol, joinKey string, rightCols []string) []Row {
	var out []Row
	for _, l := range left {
		lv, ok := l[leftKey]
		if !ok || lv.IsNull() {
			continue
		}
		for _, r := range right {
			rv := r[rightCol]
			if rv.IsNull() || !value.Equal(lv, rv) {
				continue
			}
			out = append(out, combine(l, r, joinKey, rightCols))
		}
	}
	return out
}

// leftJoin: a left row that matched no right row is emitted once with every
// `joined_table.column` slot set to null (spec §4.4.1).
func leftJoin(left []Row, right []catalog.Row, leftKey, rightCol, joinKey string, rightCols []string) []Row {
	var out []Row
	for _, l := range left {
		lv, hasLV := l[leftKey]
		matched := false
		if hasLV && !lv.IsNull() {
			for _, r := range right {
				rv := r[rightCol]
				if rv.IsNull() || !value.Equal(lv, rv) {
					continue
				}
				out = append(out, combine(l, r, joinKey, rightCols))
				matched = true
			}
		}
		if !matched {
			out = append(out, combineNullRight(l, joinKey, rightCols))
		}
	}
	return out
}

// rightJoin implements the true symmetric of LEFT (spec §9 open question,
// resolved in favor of real RIGHT semantics rather than the source's
// INNER-equivalent behavior): every right row appears at least once, with
// the accumulated left-side qualified columns nulled out when unmatched.
func rightJoin(left []Row, right []catalog.Row, leftKey, rightCol, joinKey string, rightCols []string) []Row {
	leftQualifiedKeys := qualifiedKeysOf(left)

	var out []Row
	for _, r := range right {
		rv := r[rightCol]
		matched := false
		if !rv.IsNull() {
			for _, l := range left {
				lv, ok := l[leftKey]
				if !ok || lv.IsNull() || !value.Equal(lv, rv) {
					continue
				}
				out = append(out, combine(l, r, joinKey, rightCols))
				matched = true
			}
		}
		if !matched {
			out = append(out, combineNullLeft(r, joinKey, rightCols, leftQualifiedKeys))
		}
	}
	return out
}

// combine merges a right row onto a copy of the left row: every key from
// left is kept, every key from right is added both as `joinKey.column` and
// as the unqualified column name — unqualified names on the right overwrite
// unqualified names on the left only when absent on the left (spec §4.4.1:
// "left-side unqualified names win on collision").
func combine(left Row, right catalog.Row, joinKey string, rightCols []string) Row {
	out := make(Row, len(left)+2*len(rightCols))
	for k, v := range left {
		out[k] = v
	}
	for _, c := range rightCols {
		v := right[c]
		out[joinKey+"."+c] = v
		if _, exists := out[c]; !exists {
			out[c] = v
		}
	}
	return out
}

func combineNullRight(left Row, joinKey string, rightCols []string) Row {
	out := make(Row, len(left)+len(rightCols))
	for k, v := range left {
		out[k] = v
	}
	for _, c := range rightCols {
		out[joinKey+"."+c] = value.NullValue()
	}
	return out
}

func combineNullLeft(right catalog.Row, joinKey string, rightCols []string, leftQualifiedKeys []string) Row {
	out := make(Row, len(rightCols)*2+len(leftQualifiedKeys))
	for _, c := range rightCols {
		v := right[c]
		out[joinKey+"."+c] = v
		out[c] = v
	}
	for _, k := range leftQualifiedKeys {
		if _, exists := out[k]; !exists {
			out[k] = value.NullValue()
		}
	}
	return out
}

// qualifiedKeysOf collects the set of `table.column` keys the accumulated
// row set carries, sampled from its first row (every row in a join result
// carries the same key set by construction). Used only by rightJoin to know
// which qualified slots to null out for an unmatched right row.
func qualifiedKeysOf(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}
	var keys []string
	for k := range rows[0] {
		if containsDot(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

func containsDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}
