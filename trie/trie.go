// Package trie implements a compressed, sorted prefix trie over dictionary
// words. A Mutable trie is built incrementally by repeated Insert calls and
// then sealed into a Sealed trie, a read-only, concurrency-safe structure
// used to answer "terminal prefixes of X starting at offset k" queries.
package trie

import (
	"bytes"
	"encoding/gob"
	"unicode/utf8"

	"github.com/Zubayear/ryushin/queue"
)

// mutableNode is one node of the growable trie. label is the edge from the
// parent fused with any single-child chain compression; terminal is set iff
// the root-to-node label concatenation is a dictionary entry; children are
// kept sorted by label, and no two siblings start with the same code point.
type mutableNode struct {
	label    string
	terminal bool
	children []*mutableNode
}

// Mutable is the growable form of the trie, built by successive Insert
// calls. It is not safe for concurrent use; construction is expected to
// happen on a single goroutine before the trie is sealed.
type Mutable struct {
	root *mutableNode
}

// NewMutable returns an empty mutable trie.
func NewMutable() *Mutable {
	return &Mutable{root: &mutableNode{}}
}

// commonPrefixLen returns the number of leading bytes shared by a and b.
func commonPrefixLen(a, b string) int {
	n := 0
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	for n < max && a[n] == b[n] {
		n++
	}
	return n
}

// findLongestPrefix scans children in sorted order looking for the node
// whose label shares the longest common prefix with w. It returns the
// index of that node (or the insertion point for a brand-new sibling when
// no match exists) and the matched length in bytes. The matched length is
// rounded down to a code-point boundary, so a split never cuts a multi-byte
// character in two.
//
// Siblings never share a first code point (invariant I1), so at most one
// child can have a non-zero match; once a child's label sorts after w and
// nothing has matched yet, the rest of the (sorted) list cannot match
// either and scanning stops early.
func findLongestPrefix(children []*mutableNode, w string) (index int, matched int) {
	index = len(children)
	if len(w) == 0 {
		return index, 0
	}
	for i, c := range children {
		n := commonPrefixLen(c.label, w)
		for n > 0 && n < len(w) && !utf8.RuneStart(w[n]) {
			n--
		}
		if n > matched {
			index, matched = i, n
			continue
		}
		if matched == 0 && c.label > w {
			index = i
			break
		}
	}
	return index, matched
}

// insertAt inserts node into children at position idx, preserving order.
func insertAt(children []*mutableNode, idx int, node *mutableNode) []*mutableNode {
	children = append(children, nil)
	copy(children[idx+1:], children[idx:])
	children[idx] = node
	return children
}

// split breaks child's label at byte offset n: the first n bytes remain on
// child, and a fresh inner node is created holding the remaining suffix,
// inheriting child's old terminal bit and children.
func split(child *mutableNode, n int) {
	suffix := child.label[n:]
	inner := &mutableNode{
		label:    suffix,
		terminal: child.terminal,
		children: child.children,
	}
	child.label = child.label[:n]
	child.children = []*mutableNode{inner}
}

// Insert adds word to the trie. Insertion is infallible; re-inserting an
// already-present word is a no-op beyond marking its terminal node (already
// set) terminal again.
func (t *Mutable) Insert(word string) {
	if len(word) == 0 {
		return
	}
	insert(&t.root.children, word)
}

func insert(children *[]*mutableNode, w string) {
	idx, matched := findLongestPrefix(*children, w)

	if matched == 0 {
		// Case A: no common prefix with any sibling; add a new terminal leaf.
		*children = insertAt(*children, idx, &mutableNode{label: w, terminal: true})
		return
	}

	child := (*children)[idx]
	switch {
	case matched == len(child.label) && matched == len(w):
		// Case B: w equals the child's label exactly.
		child.terminal = true

	case matched == len(child.label):
		// Case C: the child's label is a strict prefix of w; recurse.
		insert(&child.children, w[matched:])

	case matched == len(w):
		// Case D: w is a strict prefix of the child's label; split and
		// mark the (now shorter) child terminal.
		split(child, matched)
		child.terminal = true

	default:
		// Case E: a shorter common prefix on both sides; split and insert
		// the remainder of w as a new sibling under the split point.
		split(child, matched)
		child.terminal = false
		insert(&child.children, w[matched:])
	}
}

// node is the fixed-child, read-only counterpart of mutableNode.
type node struct {
	label    string
	terminal bool
	children []node
}

// Sealed is the immutable, concurrency-safe form of the trie produced by
// Mutable.Seal. It holds no mutex and no growable slices: every read is a
// plain traversal over fixed arrays, so any number of goroutines may query
// it concurrently without synchronization.
type Sealed struct {
	root node
}

// Seal consumes t and returns its sealed, read-only counterpart. The
// mutable trie should not be used afterwards.
func (t *Mutable) Seal() *Sealed {
	return &Sealed{root: sealNode(t.root)}
}

// gobNode mirrors node with exported fields, since encoding/gob cannot see
// unexported struct fields directly.
type gobNode struct {
	Label    string
	Terminal bool
	Children []gobNode
}

func toGobNode(n node) gobNode {
	children := make([]gobNode, len(n.children))
	for i, c := range n.children {
		children[i] = toGobNode(c)
	}
	return gobNode{Label: n.label, Terminal: n.terminal, Children: children}
}

func fromGobNode(g gobNode) node {
	children := make([]node, len(g.Children))
	for i, c := range g.Children {
		children[i] = fromGobNode(c)
	}
	return node{label: g.Label, terminal: g.Terminal, children: children}
}

// GobEncode implements gob.GobEncoder, letting a Sealed trie be persisted
// (e.g. by a cache store) despite its fields being unexported.
func (s *Sealed) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(toGobNode(s.root)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (s *Sealed) GobDecode(data []byte) error {
	var g gobNode
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return err
	}
	s.root = fromGobNode(g)
	return nil
}

func sealNode(n *mutableNode) node {
	children := make([]node, len(n.children))
	for i, c := range n.children {
		children[i] = sealNode(c)
	}
	return node{label: n.label, terminal: n.terminal, children: children}
}

// hasPrefix reports whether data starts with the bytes of label, without
// allocating a copy of label.
func hasPrefix(data []byte, label string) bool {
	if len(data) < len(label) {
		return false
	}
	for i := 0; i < len(label); i++ {
		if data[i] != label[i] {
			return false
		}
	}
	return true
}

// frontier is one pending entry of the breadth-order walk performed by
// PrefixTerminals: a set of sibling nodes still to check, the unmatched
// tail of the input they should be matched against, and the byte offset
// their base represents in the original text.
type frontier struct {
	children []node
	tail     []byte
	base     int
}

// PrefixTerminals appends to out every end-offset e such that
// text[k:e] is a dictionary entry, and returns the extended slice. Offsets
// are discovered in breadth order by depth in the trie; callers that need
// them in a particular order should sort out themselves. The caller owns
// out's backing storage and its clearing between calls.
//
// The pending frontier is kept in a FIFO queue (ryushin's circular-buffer
// queue), which is what makes this a breadth-order rather than depth-first
// walk.
func (s *Sealed) PrefixTerminals(text []byte, k int, out []int) []int {
	q := queue.NewQueue[*frontier]()
	q.Enqueue(&frontier{children: s.root.children, tail: text[k:], base: k})

	for !q.IsEmpty() {
		f, err := q.Dequeue()
		if err != nil {
			break
		}

		for _, child := range f.children {
			if !hasPrefix(f.tail, child.label) {
				continue
			}
			newEnd := f.base + len(child.label)
			if child.terminal {
				out = append(out, newEnd)
			}
			rest := f.tail[len(child.label):]
			if len(child.children) > 0 && len(rest) > 0 {
				q.Enqueue(&frontier{children: child.children, tail: rest, base: newEnd})
			}
		}
	}

	return out
}

// Contains reports whether word was inserted into the trie that was
// sealed into s.
func (s *Sealed) Contains(word string) bool {
	current := s.root
	rest := word
	for {
		advanced := false
		for _, child := range current.children {
			if !hasPrefix([]byte(rest), child.label) {
				continue
			}
			rest = rest[len(child.label):]
			current = child
			advanced = true
			break
		}
		if !advanced {
			return false
		}
		if rest == "" {
			return current.terminal
		}
	}
}

// Stats summarizes the shape of a sealed trie, useful for logging how much
// a given dictionary compresses.
type Stats struct {
	Nodes         int
	Leaves        int
	Terminals     int
	MaxDepth      int
	TotalChildren int
}

// Stats walks s and reports its shape.
func (s *Sealed) Stats() Stats {
	var st Stats
	statsNode(s.root, 0, &st)
	return st
}

func statsNode(n node, depth int, st *Stats) {
	st.Nodes++
	if n.terminal {
		st.Terminals++
	}
	if len(n.children) == 0 {
		st.Leaves++
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
		return
	}
	st.TotalChildren += len(n.children)
	for _, c := range n.children {
		statsNode(c, depth+1, st)
	}
}
