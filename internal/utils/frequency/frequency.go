// Package frequency tracks a running rate (tokens produced per second) and
// periodically logs it, for long-running tokenization jobs.
package frequency

import (
	"log/slog"
	"time"
)

// Frequency accumulates a count since LastTime and logs the average rate
// once Interval has elapsed.
type Frequency struct {
	Interval time.Duration
	count    int
	total    int
	LastTime time.Time
}

// Add records count more units (e.g. tokens) produced.
func (f *Frequency) Add(count int) {
	f.count += count
	f.total += count
}

// Check logs the current rate if Interval has elapsed since LastTime, then
// resets the windowed counter.
func (f *Frequency) Check(log *slog.Logger) {
	now := time.Now()
	elapsed := now.Sub(f.LastTime)
	if elapsed >= f.Interval {
		average := float64(f.count) / elapsed.Seconds()
		log.Info("tokenization rate", "tokens", f.total, "tokens_per_sec", average)
		f.count = 0
		f.LastTime = now
	}
}
