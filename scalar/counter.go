package scalar

import "fmt"

// Counter is a CRDT counter. Concurrent increments commute, so the current
// value is the start value plus the sum of every applied increment.
type Counter struct {
	start      int64
	current    int64
	increments uint
}

func NewCounter(start int64) Counter {
	return Counter{start: start, current: start}
}

// Increment returns a copy of c with delta applied.
func (c Counter) Increment(delta int64) Counter {
	c.current += delta
	c.increments++

	return c
}

func (c Counter) Start() int64 { return c.start }

func (c Counter) Value() int64 { return c.current }

func (c Counter) Increments() uint { return c.increments }

// Float64 is the counter's numeric conversion: the current value widened to
// double precision.
func (c Counter) Float64() float64 {
	return float64(c.current)
}

func (c Counter) String() string {
	return fmt.Sprintf("%d", c.current)
}
