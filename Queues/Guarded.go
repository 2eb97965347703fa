package Queues

import "sync"

// Guarded puts a container behind a lock. The containers themselves assume
// a single owner; Guarded is how several goroutines share one.
type Guarded[C any] struct {
	mu sync.RWMutex
	c  C
}

func Guard[C any](c C) *Guarded[C] {
	return &Guarded[C]{c: c}
}

// Do runs f with exclusive access to the container and returns its error.
func (g *Guarded[C]) Do(f func(C) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return f(g.c)
}

// View runs f with shared access. f must not mutate the container.
func (g *Guarded[C]) View(f func(C)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	f(g.c)
}
