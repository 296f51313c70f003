package index

import (
	"reflect"
	"testing"

	"github.com/gridsql/gridsql/internal/value"
)

func TestInsertSearchBasic(t *testing.T) {
	tr := NewTree(false)
	if err := tr.Insert(value.IntValue(1), 0); err != nil {
		t.Fatalf("Insert(1, 0): %v", err)
	}
	if err := tr.Insert(value.IntValue(2), 1); err != nil {
		t.Fatalf("Insert(2, 1): %v", err)
	}
	if err := tr.Insert(value.IntValue(1), 2); err != nil {
		t.Fatalf("Insert(1, 2): %v", err)
	}

	assertElementsMatch(t, []int{0, 2}, tr.Search(value.IntValue(1)))
	assertElementsMatch(t, []int{1}, tr.Search(value.IntValue(2)))
	if got := tr.Search(value.IntValue(999)); len(got) != 0 {
		t.Fatalf("Search(999) = %v, want empty", got)
	}
}

func TestUniqueRejectsDuplicate(t *testing.T) {
	tr := NewTree(true)
	if err := tr.Insert(value.IntValue(1), 0); err != nil {
		t.Fatalf("Insert(1, 0): %v", err)
	}
	err := tr.Insert(value.IntValue(1), 1)
	if err != ErrDuplicate {
		t.Fatalf("Insert(1, 1) error = %v, want %v", err, ErrDuplicate)
	}
	// Failed insert must not alter the posting list (P3 at the index level).
	if got := tr.Search(value.IntValue(1)); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("Search(1) = %v, want [0]", got)
	}
}

func TestUniqueAllowsMultipleNulls(t *testing.T) {
	tr := NewTree(true)
	if err := tr.Insert(value.NullValue(), 0); err != nil {
		t.Fatalf("Insert(null, 0): %v", err)
	}
	if err := tr.Insert(value.NullValue(), 1); err != nil {
		t.Fatalf("Insert(null, 1): %v", err)
	}
}

func TestSplitAcrossManyKeys(t *testing.T) {
	tr := NewTree(true)
	const n = 500
	for i := 0; i < n; i++ {
		if err := tr.Insert(value.IntValue(int64(i)), i); err != nil {
			t.Fatalf("Insert(%d, %d): %v", i, i, err)
		}
	}
	for i := 0; i < n; i++ {
		got := tr.Search(value.IntValue(int64(i)))
		if !reflect.DeepEqual(got, []int{i}) {
			t.Fatalf("Search(%d) = %v, want [%d]", i, got, i)
		}
	}
	if tr.Count() != n {
		t.Fatalf("Count() = %d, want %d", tr.Count(), n)
	}
	if tr.Depth() < 1 {
		t.Fatalf("Depth() = %d, want >= 1", tr.Depth())
	}
}

func TestRemove(t *testing.T) {
	tr := NewTree(false)
	if err := tr.Insert(value.IntValue(1), 0); err != nil {
		t.Fatalf("Insert(1, 0): %v", err)
	}
	if err := tr.Insert(value.IntValue(1), 1); err != nil {
		t.Fatalf("Insert(1, 1): %v", err)
	}

	tr.Remove(value.IntValue(1), 0)
	if got := tr.Search(value.IntValue(1)); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("Search(1) after removing 0 = %v, want [1]", got)
	}

	tr.Remove(value.IntValue(1), 1)
	if got := tr.Search(value.IntValue(1)); len(got) != 0 {
		t.Fatalf("Search(1) after removing both = %v, want empty", got)
	}
}

func TestRebuild(t *testing.T) {
	tr := NewTree(true)
	if err := tr.Insert(value.IntValue(1), 0); err != nil {
		t.Fatalf("Insert(1, 0): %v", err)
	}
	if err := tr.Insert(value.IntValue(2), 1); err != nil {
		t.Fatalf("Insert(2, 1): %v", err)
	}

	tr.Rebuild([]Posting{
		{Value: value.IntValue(10), Position: 0},
		{Value: value.IntValue(20), Position: 1},
	})

	if got := tr.Search(value.IntValue(1)); len(got) != 0 {
		t.Fatalf("Search(1) after rebuild = %v, want empty", got)
	}
	if got := tr.Search(value.IntValue(10)); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("Search(10) = %v, want [0]", got)
	}
	if got := tr.Search(value.IntValue(20)); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("Search(20) = %v, want [1]", got)
	}
}

func TestSearchReturnsIndependentCopy(t *testing.T) {
	tr := NewTree(false)
	if err := tr.Insert(value.IntValue(1), 0); err != nil {
		t.Fatalf("Insert(1, 0): %v", err)
	}

	got := tr.Search(value.IntValue(1))
	got[0] = 999

	if again := tr.Search(value.IntValue(1)); !reflect.DeepEqual(again, []int{0}) {
		t.Fatalf("Search(1) after mutating caller's slice = %v, want [0]", again)
	}
}

// assertElementsMatch reports a test failure if got and want don't contain
// the same elements, ignoring order.
func assertElementsMatch(t *testing.T, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("got %v, want %v (elements, any order)", got, want)
	}
	seen := make(map[int]int)
	for _, v := range got {
		seen[v]++
	}
	for _, v := range want {
		if seen[v] == 0 {
			t.Fatalf("got %v, want %v (elements, any order)", got, want)
		}
		seen[v]--
	}
}
