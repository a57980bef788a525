// Package workers implements a small fixed-size worker pool that executes
// segmentation jobs concurrently against a shared, read-only sealed trie.
package workers

import "context"

// Job pairs one whitespace-delimited chunk with the function that
// segments it, so results can be matched back to their original position
// once every job has completed.
type Job struct {
	Index  int
	Chunk  []byte
	ExecFn ExecutionFn
}

// ExecutionFn segments a single chunk into tokens.
type ExecutionFn func(ctx context.Context, chunk []byte) [][]byte

// Result carries a completed job's tokens back alongside its original
// position, so the caller can restore chunk order after fan-out.
type Result struct {
	Index  int
	Tokens [][]byte
}

func (j Job) execute(ctx context.Context) Result {
	return Result{
		Index:  j.Index,
		Tokens: j.ExecFn(ctx, j.Chunk),
	}
}
