// Package segment implements the segmentation engine: given a sealed trie
// and a whitespace-free chunk of text, it finds the token boundaries that
// minimize, in order, the total number of unknown bytes and then the
// number of tokens (Seg-optimality).
package segment

import (
	"unicode/utf8"

	"github.com/Zubayear/ryushin/priorityqueue"

	"thaitok/trie"
)

// edge is one candidate move in the segmentation DAG: a known-word edge
// (unknownBytes == 0) or the single unknown edge isolated at a vertex with
// no known word starting there.
type edge struct {
	to           int
	unknownBytes int
}

// edgeCache memoizes, per vertex, the outgoing edges computed from the
// sealed trie and the unknown-word isolation policy. Computing a vertex's
// edges is deterministic, so every arrival at that vertex during the
// search reuses the cached result instead of re-running trie queries.
type edgeCache struct {
	sealed *trie.Sealed
	text   []byte
	edges  [][]edge
	known  []bool
}

func newEdgeCache(sealed *trie.Sealed, text []byte) *edgeCache {
	return &edgeCache{
		sealed: sealed,
		text:   text,
		edges:  make([][]edge, len(text)+1),
		known:  make([]bool, len(text)+1),
	}
}

func (c *edgeCache) outgoing(u int) []edge {
	if !c.known[u] {
		c.compute(u)
	}
	return c.edges[u]
}

// compute fills in the outgoing edges for vertex u: either every known
// dictionary word starting there, or — when none start there — the single
// unknown edge produced by advancing code point by code point until a
// known word reappears or the text runs out. Any known-word edges the
// isolation discovers at the landing offset are cached there too, so the
// search never repeats that prefix query.
func (c *edgeCache) compute(u int) {
	known := c.sealed.PrefixTerminals(c.text, u, nil)
	if len(known) > 0 {
		edges := make([]edge, len(known))
		for i, e := range known {
			edges[i] = edge{to: e}
		}
		c.edges[u] = edges
		c.known[u] = true
		return
	}

	n := len(c.text)
	p := u
	for p < n {
		_, size := utf8.DecodeRune(c.text[p:])
		p += size
		if p >= n {
			break
		}
		if next := c.sealed.PrefixTerminals(c.text, p, nil); len(next) > 0 {
			edges := make([]edge, len(next))
			for i, e := range next {
				edges[i] = edge{to: e}
			}
			c.edges[p] = edges
			c.known[p] = true
			break
		}
	}

	c.edges[u] = []edge{{to: p, unknownBytes: p - u}}
	c.known[u] = true
}

// searchState tracks, for every vertex, the best (unknownBytes, hops) seen
// so far and the predecessor that achieved it.
type searchState struct {
	dist     []int64
	prev     []int
	visited  []bool
	scale    int64
}

type queued struct {
	vertex int
	dist   int64
}

// Segment splits text — a single whitespace-free chunk — into the ordered
// token stream chosen by the two-level objective in the package doc. It
// never returns an empty sub-slice, and the concatenation of the result
// always equals text.
func Segment(sealed *trie.Sealed, text []byte) [][]byte {
	n := len(text)
	if n == 0 {
		return nil
	}

	cache := newEdgeCache(sealed, text)

	st := &searchState{
		dist:    make([]int64, n+1),
		prev:    make([]int, n+1),
		visited: make([]bool, n+1),
		scale:   int64(n) + 1,
	}
	const infinite = int64(1) << 62
	for i := range st.dist {
		st.dist[i] = infinite
		st.prev[i] = -1
	}
	st.dist[0] = 0

	pq := priorityqueue.NewBinaryHeapWithComparator(func(a, b queued) bool {
		return a.dist < b.dist
	})
	pq.Add(queued{vertex: 0, dist: 0})

	for !pq.IsEmpty() {
		top, err := pq.Poll()
		if err != nil {
			break
		}
		u := top.vertex
		if st.visited[u] {
			continue
		}
		st.visited[u] = true
		if u == n {
			break
		}

		for _, e := range cache.outgoing(u) {
			// A composite weight of unknownBytes*scale + 1 encodes the
			// lexicographic (unknown-bytes, hop-count) order in a single
			// scalar, since hops never reaches scale.
			weight := int64(e.unknownBytes)*st.scale + 1
			cand := st.dist[u] + weight
			if cand < st.dist[e.to] {
				st.dist[e.to] = cand
				st.prev[e.to] = u
				pq.Add(queued{vertex: e.to, dist: cand})
			}
		}
	}

	return reconstruct(text, st.prev)
}

// reconstruct walks the predecessor chain from the end of text back to 0
// and slices text at the resulting offsets. A broken chain (prev entry
// missing before reaching 0) indicates a logic error in the search, not a
// reachable input condition, so it panics rather than returning a partial
// result.
func reconstruct(text []byte, prev []int) [][]byte {
	n := len(text)
	offsets := []int{n}
	v := n
	for v != 0 {
		pv := prev[v]
		if pv < 0 {
			panic("segment: broken back-pointer chain while reconstructing path")
		}
		offsets = append(offsets, pv)
		v = pv
	}
	for i, j := 0, len(offsets)-1; i < j; i, j = i+1, j-1 {
		offsets[i], offsets[j] = offsets[j], offsets[i]
	}

	tokens := make([][]byte, 0, len(offsets)-1)
	for i := 1; i < len(offsets); i++ {
		tokens = append(tokens, text[offsets[i-1]:offsets[i]])
	}
	return tokens
}
