package utils

import "runtime"

// MeasureMemory runs build and reports the heap delta it caused, useful for
// comparing how much memory sealing a large dictionary actually costs.
func MeasureMemory(build func()) runtime.MemStats {
	runtime.GC()
	runtime.GC()

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	build()

	runtime.GC()
	runtime.GC()
	runtime.ReadMemStats(&after)

	after.HeapAlloc -= before.HeapAlloc
	after.TotalAlloc -= before.TotalAlloc
	after.HeapObjects -= before.HeapObjects

	return after
}
