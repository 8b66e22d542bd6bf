package repository

import (
	"sync"
	"time"
)

// clock hands out strictly increasing UTC timestamps. Two writes issued within
// the wall clock's resolution would otherwise share created_at/updated_at and
// lose their relative order.
type clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newClock() *clock {
	return &clock{now: time.Now}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC()
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}
