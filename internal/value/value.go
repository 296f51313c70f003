// Package value implements the tagged-union cell value representation shared
// by the parser, catalog, index, and executor, and the single total order
// used for index keys and ORDER BY.
//
// What: A closed sum type over {Int64, String, Bool, Timestamp, Null}.
// How: Value carries a Kind discriminator plus the payload field for that
// kind; unused payload fields are left zero. Ordering is defined by Compare
// and strict equality by Equal; the two differ for strings (Compare ignores
// case, Equal does not) and across kinds (Compare falls back to renderings,
// Equal reports unequal).
// Why: Keeping the variant closed and the comparisons centralized means the
// index and ORDER BY share one ordering and every WHERE `=` shares one
// equality, instead of each caller comparing payload fields its own way.
package value

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind discriminates the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Int
	String
	Bool
	Timestamp
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "NULL"
	case Int:
		return "INT"
	case String:
		return "VARCHAR"
	case Bool:
		return "BOOLEAN"
	case Timestamp:
		return "TIMESTAMP"
	default:
		return "UNKNOWN"
	}
}

// Value is a single typed cell value.
type Value struct {
	Kind Kind
	I    int64
	S    string
	B    bool
	T    time.Time
}

// NullValue returns the explicit null value.
func NullValue() Value { return Value{Kind: Null} }

// IntValue wraps a 64-bit signed integer.
func IntValue(n int64) Value { return Value{Kind: Int, I: n} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{Kind: String, S: s} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{Kind: Bool, B: b} }

// TimestampValue wraps an instant of time.
func TimestampValue(t time.Time) Value { return Value{Kind: Timestamp, T: t} }

// IsNull reports whether v is the explicit null value.
func (v Value) IsNull() bool { return v.Kind == Null }

// Render produces the locale-insensitive string rendering used for display
// and for the cross-kind fallback branch of the total order.
func (v Value) Render() string {
	switch v.Kind {
	case Null:
		return ""
	case Int:
		return strconv.FormatInt(v.I, 10)
	case String:
		return v.S
	case Bool:
		if v.B {
			return "true"
		}
		return "false"
	case Timestamp:
		return v.T.UTC().Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (v Value) GoString() string { return v.Render() }

// Native converts v to the plain Go value an embedder expects to find in a
// projected result row: nil for Null, and the wrapped int64/string/bool/
// time.Time otherwise. Used only at the package boundary (see the root
// Engine type); internal code compares and orders Values directly.
func (v Value) Native() any {
	switch v.Kind {
	case Null:
		return nil
	case Int:
		return v.I
	case String:
		return v.S
	case Bool:
		return v.B
	case Timestamp:
		return v.T
	default:
		return nil
	}
}

// collator backs the single deterministic case-insensitive collation §3
// requires for the string and cross-kind fallback branch of the total order.
// LIKE matching (package exec) does not use it. The engine is
// single-threaded per the concurrency model (see package exec), so one
// shared, unsynchronized Collator is safe.
var collator = collate.New(language.Und, collate.IgnoreCase)

// FoldCompare compares two strings under the fixed case-insensitive
// collation policy that Compare's fallback branch uses.
func FoldCompare(a, b string) int {
	return collator.CompareString(a, b)
}

// Compare implements the total order of spec §3:
//   - null == null, null < any non-null
//   - two ints: numeric order
//   - two timestamps: chronological order
//   - otherwise (including cross-kind): case-insensitive lexicographic order
//     over the string rendering of each operand.
func Compare(a, b Value) int {
	if a.IsNull() && b.IsNull() {
		return 0
	}
	if a.IsNull() {
		return -1
	}
	if b.IsNull() {
		return 1
	}
	if a.Kind == Int && b.Kind == Int {
		switch {
		case a.I < b.I:
			return -1
		case a.I > b.I:
			return 1
		default:
			return 0
		}
	}
	if a.Kind == Timestamp && b.Kind == Timestamp {
		switch {
		case a.T.Before(b.T):
			return -1
		case a.T.After(b.T):
			return 1
		default:
			return 0
		}
	}
	return FoldCompare(a.Render(), b.Render())
}

// Less reports whether a sorts strictly before b under the total order.
func Less(a, b Value) bool { return Compare(a, b) < 0 }

// Equal is strict value equality: same kind and same underlying value.
// Cross-kind comparisons are always unequal (spec §4.4.2, B4), with the one
// exception that two null values are equal to each other, matching the
// total order's null-handling so that index/ORDER BY equality and WHERE `=`
// agree on nulls. Join equality is stricter still (nulls never match there)
// and is implemented separately in package exec.
func Equal(a, b Value) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Int:
		return a.I == b.I
	case String:
		return a.S == b.S
	case Bool:
		return a.B == b.B
	case Timestamp:
		return a.T.Equal(b.T)
	default:
		return false
	}
}
