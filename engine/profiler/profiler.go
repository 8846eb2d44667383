// Package profiler keeps cheap per-frame timings and runtime counters for
// on-screen debug readouts.
package profiler

import (
	"runtime"
	"time"
)

// Recorder is a fixed ring of the most recent frame durations.
type Recorder struct {
	samples []time.Duration
	next    int
	n       int
}

func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 120
	}
	return &Recorder{samples: make([]time.Duration, capacity)}
}

func (r *Recorder) Add(d time.Duration) {
	r.samples[r.next] = d
	r.next = (r.next + 1) % len(r.samples)
	if r.n < len(r.samples) {
		r.n++
	}
}

// Scope starts timing and returns the func that records the elapsed time.
func (r *Recorder) Scope() func() {
	start := time.Now()
	return func() { r.Add(time.Since(start)) }
}

func (r *Recorder) Len() int { return r.n }

// Last returns the most recent sample.
func (r *Recorder) Last() time.Duration {
	if r.n == 0 {
		return 0
	}
	return r.samples[(r.next-1+len(r.samples))%len(r.samples)]
}

func (r *Recorder) Average() time.Duration {
	if r.n == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range r.samples[:r.n] {
		sum += d
	}
	return sum / time.Duration(r.n)
}

func (r *Recorder) Max() time.Duration {
	var m time.Duration
	for _, d := range r.samples[:r.n] {
		m = max(m, d)
	}
	return m
}

// Milliseconds converts d for display.
func Milliseconds(d time.Duration) float32 { return float32(d.Seconds() * 1000) }

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}
