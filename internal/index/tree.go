// Package index implements the order-4 B-tree used to accelerate equality
// lookups on unique-constrained columns and to enforce the uniqueness
// constraint itself.
//
// What: A multimap from value.Value to a posting list of row positions.
// How: Every node holds up to three (value, posting-list) entries and, when
// internal, up to four children. Insertion is the classic preemptive-split
// B-tree algorithm: a full node is split before a new key ever descends into
// it, with the median entry (postings and all — no duplication) promoted to
// the parent. Search performs a standard B-tree descent, matching at
// whichever node level holds the key. Removal only ever restructures leaves;
// see Remove for why that is sufficient here.
// Why: Order 4 keeps the constant factors small and the node contract
// (three keys, four children) fixed and easy to test directly, which is the
// property the invariants in spec §4.2 are written against.
package index

import (
	"fmt"

	"github.com/gridsql/gridsql/internal/value"
)

// maxEntries is the order-4 node contract: three keys per node, four
// children when internal.
const maxEntries = 3

type entry struct {
	value    value.Value
	postings []int
}

type node struct {
	entries  []entry
	children []*node
}

func (n *node) leaf() bool { return len(n.children) == 0 }
func (n *node) full() bool { return len(n.entries) == maxEntries }

// find returns the index of the entry equal to v, or the index at which a
// new entry for v would be inserted (and the index of the child that would
// need to be descended into, for internal nodes) when no exact match exists.
func (n *node) find(v value.Value) (idx int, found bool) {
	for i, e := range n.entries {
		c := value.Compare(v, e.value)
		if c == 0 {
			return i, true
		}
		if c < 0 {
			return i, false
		}
	}
	return len(n.entries), false
}

// Posting pairs a value with one of the row positions it is associated
// with; used by Rebuild to repopulate a tree from scratch.
type Posting struct {
	Value    value.Value
	Position int
}

// ErrDuplicate is returned by Insert when a unique index already holds a
// row position for the given non-null value.
var ErrDuplicate = fmt.Errorf("duplicate value violates unique constraint")

// Tree is an order-4 B-tree multimap, optionally enforcing uniqueness of its
// non-null keys.
type Tree struct {
	root   *node
	Unique bool
}

// NewTree creates an empty index. When unique is true, Insert rejects a
// second row position for a non-null value already present in the tree.
func NewTree(unique bool) *Tree {
	return &Tree{root: &node{}, Unique: unique}
}

// Insert associates position with value. It fails with ErrDuplicate, leaving
// every posting list unchanged, when the index is unique and value is a
// non-null duplicate of an existing entry; a full node on the descent path
// may still have been split by then.
func (t *Tree) Insert(v value.Value, position int) error {
	if t.root.full() {
		newRoot := &node{children: []*node{t.root}}
		t.splitChild(newRoot, 0)
		t.root = newRoot
	}
	return t.insertNonFull(t.root, v, position)
}

func (t *Tree) splitChild(parent *node, i int) {
	child := parent.children[i]
	mid := len(child.entries) / 2 // 3 entries -> mid = 1, the median

	promoted := child.entries[mid]

	left := &node{entries: append([]entry(nil), child.entries[:mid]...)}
	right := &node{entries: append([]entry(nil), child.entries[mid+1:]...)}
	if !child.leaf() {
		left.children = append([]*node(nil), child.children[:mid+1]...)
		right.children = append([]*node(nil), child.children[mid+1:]...)
	}

	parent.entries = insertEntryAt(parent.entries, i, promoted)
	parent.children[i] = left
	parent.children = insertChildAt(parent.children, i+1, right)
}

func (t *Tree) insertNonFull(n *node, v value.Value, position int) error {
	idx, found := n.find(v)
	if found {
		return t.appendPosting(n, idx, v, position)
	}
	if n.leaf() {
		n.entries = insertEntryAt(n.entries, idx, entry{value: v, postings: []int{position}})
		return nil
	}

	child := n.children[idx]
	if child.full() {
		t.splitChild(n, idx)
		idx, found = n.find(v)
		if found {
			return t.appendPosting(n, idx, v, position)
		}
		child = n.children[idx]
	}
	return t.insertNonFull(child, v, position)
}

func (t *Tree) appendPosting(n *node, idx int, v value.Value, position int) error {
	if t.Unique && !v.IsNull() && len(n.entries[idx].postings) > 0 {
		return ErrDuplicate
	}
	n.entries[idx].postings = append(n.entries[idx].postings, position)
	return nil
}

// Search returns a copy of the posting list for value, or an empty slice if
// value is absent. The copy means later mutations of the tree cannot
// invalidate a result already handed to a caller (spec §9, posting-list
// ownership).
func (t *Tree) Search(v value.Value) []int {
	n := t.root
	for {
		idx, found := n.find(v)
		if found {
			out := make([]int, len(n.entries[idx].postings))
			copy(out, n.entries[idx].postings)
			return out
		}
		if n.leaf() {
			return nil
		}
		n = n.children[idx]
	}
}

// Remove deletes position from value's posting list. When the list becomes
// empty, the (value, []) entry is removed outright if it lives in a leaf.
//
// An entry promoted into an internal node during a split cannot be excised
// the same way: an internal node's child count must stay one more than its
// key count, and removing a routing key without merging or rotating
// children (full B-tree deletion) would violate that invariant. Since the
// tree is explicitly not rebalanced on removal (spec §4.2, §9), an emptied
// internal-node entry is instead left in place as an inert separator: it
// still routes descent correctly (its value is no less a valid boundary for
// having no postings of its own) and Search for that value now correctly
// returns empty, which is the only externally observable property (I2).
func (t *Tree) Remove(v value.Value, position int) {
	removeFrom(t.root, v, position)
}

func removeFrom(n *node, v value.Value, position int) {
	idx, found := n.find(v)
	if found {
		e := &n.entries[idx]
		e.postings = removeInt(e.postings, position)
		if len(e.postings) == 0 && n.leaf() {
			n.entries = append(n.entries[:idx], n.entries[idx+1:]...)
		}
		return
	}
	if n.leaf() {
		return
	}
	removeFrom(n.children[idx], v, position)
}

// Rebuild discards the current tree and reinserts every posting from
// scratch, in the given order. DELETE uses this to restore index/data
// coherence after row positions shift (spec §4.5).
func (t *Tree) Rebuild(postings []Posting) {
	t.root = &node{}
	for _, p := range postings {
		// Rebuild is only ever called with postings recomputed from the
		// current (already-valid) row vector, so a uniqueness conflict here
		// would indicate a bug elsewhere rather than bad input.
		if err := t.Insert(p.Value, p.Position); err != nil {
			panic(fmt.Sprintf("index: rebuild: %v", err))
		}
	}
}

func insertEntryAt(s []entry, i int, e entry) []entry {
	s = append(s, entry{})
	copy(s[i+1:], s[i:])
	s[i] = e
	return s
}

func insertChildAt(s []*node, i int, c *node) []*node {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = c
	return s
}

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
