package exec

import (
	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
	"github.com/gridsql/gridsql/internal/value"
)

// literalValue resolves a parsed literal to a cell value, rejecting the
// decimal-point numeric tokens the value model has no kind for (spec §3:
// only integers, strings, booleans, timestamps, and null are
// representable). Every path that consumes a parser.Literal — INSERT
// values, UPDATE assignments, WHERE right-hand sides — goes through this
// so the rejection message is worded once.
func literalValue(lit parser.Literal) (value.Value, error) {
	if lit.IsFloat {
		return value.Value{}, valueErrf("non-integer numeric literal %v is not representable", lit.Float)
	}
	return lit.Value, nil
}

// checkColumnType validates v against col's declared type (spec §4.5 step
// 2). Null values are exempt here; not-null enforcement happens separately
// so the two failure messages stay distinct.
func checkColumnType(col catalog.Column, v value.Value) error {
	if v.IsNull() {
		return nil
	}
	switch col.Type {
	case catalog.IntType:
		if v.Kind != value.Int {
			return constraintErrf("column %q: expected INT, got %s", col.Name, v.Kind)
		}
	case catalog.VarcharType:
		if v.Kind != value.String {
			return constraintErrf("column %q: expected VARCHAR, got %s", col.Name, v.Kind)
		}
		if col.MaxLen > 0 && len(v.S) > col.MaxLen {
			return constraintErrf("column %q: value length %d exceeds max length %d", col.Name, len(v.S), col.MaxLen)
		}
	case catalog.BoolType:
		if v.Kind != value.Bool {
			return constraintErrf("column %q: expected BOOLEAN, got %s", col.Name, v.Kind)
		}
	case catalog.TimestampType:
		if v.Kind != value.Timestamp && v.Kind != value.String {
			return constraintErrf("column %q: expected TIMESTAMP, got %s", col.Name, v.Kind)
		}
	}
	return nil
}
