// Package pipeline implements the whitespace pre-pass and the parallel
// fan-out over its chunks, the two external collaborators the core
// tokenizer leaves as interfaces.
package pipeline

import (
	"context"
	"unicode"
	"unicode/utf8"

	"thaitok/internal/pipeline/workers"
)

// SplitWhitespace splits text on runs of Unicode whitespace and returns the
// non-empty byte sub-slices between them, in order. It never returns an
// empty chunk.
func SplitWhitespace(text []byte) [][]byte {
	var chunks [][]byte

	start := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				chunks = append(chunks, text[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		chunks = append(chunks, text[start:])
	}

	return chunks
}

// SegmentFn segments one whitespace-free chunk into tokens.
type SegmentFn func(chunk []byte) [][]byte

// RunSequential splits text on whitespace and segments each chunk in turn,
// concatenating the results in order.
func RunSequential(text []byte, segment SegmentFn) [][]byte {
	chunks := SplitWhitespace(text)
	var tokens [][]byte
	for _, chunk := range chunks {
		tokens = append(tokens, segment(chunk)...)
	}
	return tokens
}

// RunConcurrent is the parallel analogue of RunSequential: each
// whitespace chunk is dispatched to a worker in a fixed-size pool, and the
// results are reassembled in original chunk order before being
// concatenated. The core segmenter requires no synchronization to be
// called this way, since every worker only reads the shared sealed trie.
func RunConcurrent(ctx context.Context, text []byte, workerCount int, segment SegmentFn) [][]byte {
	chunks := SplitWhitespace(text)
	if len(chunks) == 0 {
		return nil
	}

	jobs := make([]workers.Job, len(chunks))
	for i, chunk := range chunks {
		jobs[i] = workers.Job{
			Index: i,
			Chunk: chunk,
			ExecFn: func(_ context.Context, chunk []byte) [][]byte {
				return segment(chunk)
			},
		}
	}

	pool := workers.New(workerCount)
	results := pool.Run(ctx, jobs)

	byIndex := make([][][]byte, len(chunks))
	for _, r := range results {
		byIndex[r.Index] = r.Tokens
	}

	var tokens [][]byte
	for _, chunkTokens := range byIndex {
		tokens = append(tokens, chunkTokens...)
	}
	return tokens
}
