// Package timeutil hosts internal timing helpers shared across commands.
package timeutil

import "time"

// Stopwatch measures elapsed wall-clock time from a fixed starting point.
type Stopwatch struct {
	start time.Time
	now   func() time.Time
}

// Start returns a running stopwatch.
func Start() Stopwatch {
	return startAt(time.Now)
}

func startAt(now func() time.Time) Stopwatch {
	return Stopwatch{start: now(), now: now}
}

// Elapsed returns the wall-clock time since Start.
func (s Stopwatch) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}
