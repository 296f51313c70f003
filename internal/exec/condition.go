package exec

import (
	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
	"github.com/gridsql/gridsql/internal/value"
)

// foldCaser backs LIKE's case-insensitive matching (spec §4.4.2) with a
// locale-neutral Unicode case fold. Package value's total order uses a
// separate mechanism (a case-insensitive collator behind FoldCompare); LIKE
// does not go through it.
var foldCaser = cases.Fold()

// matchConditions evaluates the flat AND/OR sequence against row, folding
// strictly left-to-right with no operator precedence (spec §4.4.2): each
// non-first condition combines with the running result via its own
// connective, so `A OR B AND C` means `(A OR B) AND C`.
func matchConditions(row Row, conds []parser.Condition) bool {
	if len(conds) == 0 {
		return true
	}
	result := evalCondition(row, conds[0])
	for _, c := range conds[1:] {
		this := evalCondition(row, c)
		switch c.Connective {
		case parser.And:
			result = result && this
		case parser.Or:
			result = result || this
		default:
			result = this
		}
	}
	return result
}

func evalCondition(row Row, c parser.Condition) bool {
	lhs, ok := lookupColumn(row, c.Column)
	if !ok {
		return false
	}
	rhs, err := literalValue(c.Value)
	if err != nil {
		return false
	}

	switch c.Op {
	case parser.Eq:
		return value.Equal(lhs, rhs)
	case parser.Neq:
		return !value.Equal(lhs, rhs)
	case parser.Lt, parser.Gt, parser.Le, parser.Ge:
		if lhs.IsNull() || rhs.IsNull() || !comparableKinds(lhs, rhs) {
			return false
		}
		cmp := value.Compare(lhs, rhs)
		switch c.Op {
		case parser.Lt:
			return cmp < 0
		case parser.Gt:
			return cmp > 0
		case parser.Le:
			return cmp <= 0
		default:
			return cmp >= 0
		}
	case parser.Like:
		if lhs.Kind != value.String || rhs.Kind != value.String {
			return false
		}
		return likeMatch(lhs.S, rhs.S)
	default:
		return false
	}
}

// comparableKinds restricts ordering operators to operands whose kinds
// share a natural order (spec §4.4.2: "comparable under the natural order
// of their shared kind"). Cross-kind falls through to Compare's string
// fallback for ORDER BY and index ordering, but relational operators require
// same-kind operands so `age > 'x'` isn't silently true via string
// collation.
func comparableKinds(a, b value.Value) bool {
	return a.Kind == b.Kind
}

// lookupColumn resolves a WHERE/ON column reference against row. A bare
// name is tried as-is first (base table rows and unqualified join keys),
// falling back to nothing found; a qualified `table.column` reference is a
// direct map lookup since join rows expose that exact key (spec §4.4.1).
func lookupColumn(row Row, name string) (value.Value, bool) {
	v, ok := row[name]
	return v, ok
}

// likeMatch implements SQL LIKE: `%` matches any sequence (including
// empty), `_` matches exactly one character, matching is case-insensitive
// and anchored at both ends (spec §4.4.2, B1).
func likeMatch(s, pattern string) bool {
	return likeAt([]rune(foldCaser.String(s)), []rune(foldCaser.String(pattern)))
}

func likeAt(s, pattern []rune) bool {
	if len(pattern) == 0 {
		return len(s) == 0
	}
	switch pattern[0] {
	case '%':
		if likeAt(s, pattern[1:]) {
			return true
		}
		for i := 0; i < len(s); i++ {
			if likeAt(s[i+1:], pattern[1:]) {
				return true
			}
		}
		return false
	case '_':
		if len(s) == 0 {
			return false
		}
		return likeAt(s[1:], pattern[1:])
	default:
		if len(s) == 0 || s[0] != pattern[0] {
			return false
		}
		return likeAt(s[1:], pattern[1:])
	}
}

// indexAssistedRows implements the §4.4.2 heuristic: the first `=`
// condition whose column has an index on the base table replaces the
// working row set with the exact posting-list rows before the general
// filter loop runs. Joined rows are never index-eligible — the index only
// ever maps base-table row positions. rows must still be in base-table row
// order (unfiltered) so that a posting-list position indexes correctly into
// it; execSelect only calls this before any filtering happens. An OR
// anywhere in the sequence disables the heuristic, since a row outside the
// seeding condition's posting list can still satisfy the fold.
func indexAssistedRows(t *catalog.Table, rows []Row, conds []parser.Condition, joined bool) []Row {
	if joined || t == nil {
		return rows
	}
	for _, c := range conds {
		if c.Connective == parser.Or {
			return rows
		}
	}
	for _, c := range conds {
		if c.Op != parser.Eq {
			continue
		}
		idx := t.IndexFor(c.Column)
		if idx == nil {
			continue
		}
		v, err := literalValue(c.Value)
		if err != nil {
			continue
		}
		// Search never returns duplicate positions in practice, but the
		// posting list is a plain slice with no uniqueness guarantee baked
		// into its type; de-duplicate defensively before indexing into rows.
		postings := lo.UniqBy(idx.Search(v), func(pos int) int { return pos })
		out := make([]Row, 0, len(postings))
		for _, pos := range postings {
			if pos >= 0 && pos < len(rows) {
				out = append(out, rows[pos])
			}
		}
		return out
	}
	return rows
}
