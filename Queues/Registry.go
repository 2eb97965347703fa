package Queues

import (
	"slices"

	"github.com/cornelk/hashmap"
)

// Registry hands out named, lock-guarded containers, creating each on first
// use with the factory. It is safe for concurrent use.
type Registry[C any] struct {
	m       *hashmap.Map[string, *Guarded[C]]
	factory func() (C, error)
}

func NewRegistry[C any](factory func() (C, error)) *Registry[C] {
	return &Registry[C]{hashmap.New[string, *Guarded[C]](), factory}
}

// Open returns the container registered under name, creating it if needed.
// When two callers race on a new name both get the same container; the
// loser's freshly built one is discarded.
func (r *Registry[C]) Open(name string) (*Guarded[C], error) {
	if g, ok := r.m.Get(name); ok {
		return g, nil
	}
	c, e := r.factory()
	if e != nil {
		return nil, e
	}
	g, _ := r.m.GetOrInsert(name, Guard(c))
	return g, nil
}

func (r *Registry[C]) Lookup(name string) (*Guarded[C], bool) {
	return r.m.Get(name)
}

// Drop forgets name. Holders of the container may keep using it.
func (r *Registry[C]) Drop(name string) bool {
	return r.m.Del(name)
}

// Names lists the registered names in sorted order.
func (r *Registry[C]) Names() []string {
	names := make([]string, 0, r.m.Len())
	// Range still visits elements that Del has unlinked from the index, so
	// each name is confirmed with Get. A name dropped and reopened can be
	// visited twice.
	r.m.Range(func(k string, _ *Guarded[C]) bool {
		if _, ok := r.m.Get(k); ok {
			names = append(names, k)
		}
		return true
	})
	slices.Sort(names)
	return slices.Compact(names)
}

func (r *Registry[C]) Len() int {
	return r.m.Len()
}
