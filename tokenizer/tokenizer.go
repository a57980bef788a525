// Package tokenizer is the public facade bundling a sealed trie with the
// whitespace pre-pass and segmentation engine, per the construction
// conveniences.
package tokenizer

import (
	"context"

	"thaitok/internal/dictionary"
	"thaitok/internal/pipeline"
	"thaitok/segment"
	"thaitok/trie"
)

// Tokenizer wraps a sealed trie, the immutable artifact every tokenization
// call reads from. It is safe for concurrent use by any number of
// goroutines.
type Tokenizer struct {
	sealed *trie.Sealed
}

// New builds a tokenizer directly from a list of dictionary words.
func New(words []string) *Tokenizer {
	m := trie.NewMutable()
	for _, w := range words {
		m.Insert(w)
	}
	return &Tokenizer{sealed: m.Seal()}
}

// NewFromSealed wraps an already-sealed trie, e.g. one restored from a
// trie cache.
func NewFromSealed(sealed *trie.Sealed) *Tokenizer {
	return &Tokenizer{sealed: sealed}
}

// NewFromFile builds a tokenizer from a dictionary file, one word per
// line. The only error this returns is the underlying I/O failure.
func NewFromFile(path string) (*Tokenizer, error) {
	m, err := dictionary.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{sealed: m.Seal()}, nil
}

// Tokenize splits whitespace-separated text into dictionary-driven word
// tokens, segmenting each whitespace-free chunk independently and
// concatenating the results in order.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := pipeline.RunSequential([]byte(text), func(chunk []byte) [][]byte {
		return segment.Segment(t.sealed, chunk)
	})
	return toStrings(tokens)
}

// TokenizeConcurrent is the parallel analogue of Tokenize: each whitespace
// chunk is segmented on its own worker-pool goroutine against the shared,
// read-only sealed trie, with results reassembled in original chunk
// order.
func (t *Tokenizer) TokenizeConcurrent(ctx context.Context, text string, workerCount int) []string {
	tokens := pipeline.RunConcurrent(ctx, []byte(text), workerCount, func(chunk []byte) [][]byte {
		return segment.Segment(t.sealed, chunk)
	})
	return toStrings(tokens)
}

// Sealed exposes the underlying sealed trie, e.g. for caching.
func (t *Tokenizer) Sealed() *trie.Sealed {
	return t.sealed
}

func toStrings(tokens [][]byte) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = string(tok)
	}
	return out
}
