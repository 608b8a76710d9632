// Package metrics holds the in-process instrumentation primitives used
// by the HTTP middleware. There is deliberately no exporter behind
// them; values surface through the structured request logs.
package metrics

import (
	"sync/atomic"
	"time"
)

// Counter is a monotonically increasing counter safe for concurrent
// use. The zero value is ready.
type Counter struct {
	n atomic.Uint64
}

func (c *Counter) Inc() {
	c.n.Add(1)
}

func (c *Counter) Add(delta uint64) {
	c.n.Add(delta)
}

func (c *Counter) Load() uint64 {
	return c.n.Load()
}

// Timer measures wall time elapsed since StartTimer.
type Timer struct {
	started time.Time
}

func StartTimer() *Timer {
	return &Timer{started: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.started)
}
