package Queues

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Open(t *testing.T) {
	var made atomic.Int32
	r := NewRegistry(func() (*Queue[int], error) {
		made.Add(1)
		return NewQueue[int](WithCapacity(4))
	})
	a, err := r.Open("jobs")
	require.NoError(t, err)
	b, err := r.Open("jobs")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, int32(1), made.Load())

	g, ok := r.Lookup("jobs")
	assert.True(t, ok)
	assert.Same(t, a, g)
	_, ok = r.Lookup("mail")
	assert.False(t, ok)

	_, _ = r.Open("mail")
	_, _ = r.Open("alerts")
	assert.Equal(t, []string{"alerts", "jobs", "mail"}, r.Names())
	assert.Equal(t, 3, r.Len())

	assert.True(t, r.Drop("mail"))
	assert.False(t, r.Drop("mail"))
	assert.Equal(t, []string{"alerts", "jobs"}, r.Names())
}

func TestRegistry_FactoryError(t *testing.T) {
	r := NewRegistry(func() (*Stack[int], error) {
		return NewStack[int](WithCapacityOf("lots"))
	})
	_, err := r.Open("s")
	require.ErrorIs(t, err, ErrInvalidCapacityKind)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Concurrent(t *testing.T) {
	const workers, each = 16, 100
	r := NewRegistry(func() (*Queue[int], error) { return NewQueue[int]() })

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			g, err := r.Open("shared")
			if !assert.NoError(t, err) {
				return
			}
			for i := 0; i < each; i++ {
				assert.NoError(t, g.Do(func(q *Queue[int]) error { return q.Enqueue(w*each + i) }))
			}
		}(w)
	}
	wg.Wait()

	g, ok := r.Lookup("shared")
	require.True(t, ok)
	g.View(func(q *Queue[int]) {
		assert.Equal(t, workers*each, q.Size())
	})
}

func TestGuarded_DoPropagates(t *testing.T) {
	s, _ := NewStack[string](WithCapacity(1))
	g := Guard(s)
	require.NoError(t, g.Do(func(s *Stack[string]) error { return s.Push("a") }))
	err := g.Do(func(s *Stack[string]) error { return s.Push("b") })
	require.ErrorIs(t, err, ErrCapacityExceeded)

	sentinel := errors.New("stop")
	assert.Equal(t, sentinel, g.Do(func(*Stack[string]) error { return sentinel }))
	g.View(func(s *Stack[string]) {
		assert.Equal(t, "[a]", s.String())
	})
}

func TestRegistry_DropAndReopen(t *testing.T) {
	r := NewRegistry(func() (*Stack[int], error) { return NewStack[int]() })
	first, _ := r.Open("a")
	_, _ = r.Open("b")
	require.True(t, r.Drop("a"))
	assert.Equal(t, []string{"b"}, r.Names())

	again, err := r.Open("a")
	require.NoError(t, err)
	assert.NotSame(t, first, again)
	assert.Equal(t, []string{"a", "b"}, r.Names())
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_ConcurrentDrop(t *testing.T) {
	const workers, each = 8, 50
	r := NewRegistry(func() (*Queue[int], error) { return NewQueue[int]() })

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				name := fmt.Sprintf("w%d-%d", w, i)
				_, err := r.Open(name)
				assert.NoError(t, err)
				switch i % 3 {
				case 0:
					assert.True(t, r.Drop(name))
				case 1:
					assert.True(t, r.Drop(name))
					_, err = r.Open(name)
					assert.NoError(t, err)
				}
			}
		}(w)
	}
	wg.Wait()

	names := r.Names()
	listed := make(map[string]bool, len(names))
	for _, n := range names {
		listed[n] = true
	}
	for w := 0; w < workers; w++ {
		for i := 0; i < each; i++ {
			name := fmt.Sprintf("w%d-%d", w, i)
			_, ok := r.Lookup(name)
			assert.Equal(t, i%3 != 0, ok, name)
			assert.Equal(t, ok, listed[name], name)
		}
	}
	assert.Equal(t, len(names), r.Len())
}
