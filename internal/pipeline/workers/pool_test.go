package workers

import (
	"context"
	"testing"
	"time"
)

func TestPoolRunCollectsAllResults(t *testing.T) {
	jobs := make([]Job, 0, 5)
	for i := 0; i < 5; i++ {
		jobs = append(jobs, Job{
			Index: i,
			Chunk: []byte{byte('a' + i)},
			ExecFn: func(_ context.Context, chunk []byte) [][]byte {
				return [][]byte{chunk}
			},
		})
	}

	pool := New(3)
	results := pool.Run(context.Background(), jobs)

	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}

	byIndex := make(map[int][]byte, len(results))
	for _, r := range results {
		byIndex[r.Index] = r.Tokens[0]
	}
	for i := range jobs {
		got, ok := byIndex[i]
		if !ok {
			t.Fatalf("missing result for job %d", i)
		}
		if got[0] != byte('a'+i) {
			t.Errorf("job %d: got %q, want %q", i, got, []byte{byte('a' + i)})
		}
	}
}

func TestPoolNewClampsWorkerCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		p := New(n)
		if p.workersCount != 1 {
			t.Errorf("New(%d).workersCount = %d, want 1", n, p.workersCount)
		}
	}
}

func TestPoolRunRespectsCancellation(t *testing.T) {
	block := make(chan struct{})
	jobs := []Job{{
		Index: 0,
		Chunk: nil,
		ExecFn: func(ctx context.Context, _ []byte) [][]byte {
			<-block
			return nil
		},
	}}

	pool := New(1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan []Result)
	go func() {
		done <- pool.Run(ctx, jobs)
	}()

	cancel()
	close(block)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
