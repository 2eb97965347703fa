package Queues

import (
	"math"
	"reflect"

	"github.com/google/btree"
)

// Entry is a value with its integer priority.
type Entry[T any] struct {
	Value    T
	Priority int
}

// ranked orders entries by priority, then by arrival.
type ranked[T any] struct {
	Entry[T]
	seq uint64
}

func lessRanked[T any](a, b ranked[T]) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.seq < b.seq
}

const degree = 16

// PriorityQueue serves the entry with the lowest Priority first. Entries
// with equal priority leave in the order they were enqueued. Container
// order (At, Slice, Range, String) is removal order.
type PriorityQueue[T any] struct {
	tree     *btree.BTreeG[ranked[T]]
	seq      uint64
	capacity Capacity
}

var _ Container[int] = (*PriorityQueue[int])(nil)

func NewPriorityQueue[T any](opts ...Option) (*PriorityQueue[T], error) {
	c, e := configure(opts)
	if e != nil {
		return nil, e
	}
	return &PriorityQueue[T]{tree: btree.NewG[ranked[T]](degree, lessRanked[T]), capacity: c.capacity}, nil
}

// PriorityQueueFrom enqueues src in order. With a capacity, only the first
// capacity entries of src are taken.
func PriorityQueueFrom[T any](src []Entry[T], opts ...Option) (*PriorityQueue[T], error) {
	u, e := NewPriorityQueue[T](opts...)
	if e != nil {
		return nil, e
	}
	for _, en := range src[:u.capacity.take(len(src))] {
		u.push(en)
	}
	return u, nil
}

func (u *PriorityQueue[T]) Empty() bool {
	return u.tree.Len() == 0
}

func (u *PriorityQueue[T]) Size() int {
	return u.tree.Len()
}

func (u *PriorityQueue[T]) Cap() Capacity {
	return u.capacity
}

func (u *PriorityQueue[T]) Full() bool {
	return !u.capacity.admits(u.tree.Len())
}

func (u *PriorityQueue[T]) Clear() {
	u.tree.Clear(false)
}

func (u *PriorityQueue[T]) push(en Entry[T]) {
	u.tree.ReplaceOrInsert(ranked[T]{en, u.seq})
	u.seq++
}

// Enqueue adds v with the given priority. Lower priorities are served first.
func (u *PriorityQueue[T]) Enqueue(v T, priority int) error {
	if !u.capacity.admits(u.tree.Len()) {
		n, _ := u.capacity.Get()
		return &CapacityError{n}
	}
	u.push(Entry[T]{v, priority})
	return nil
}

// EnqueueOf is Enqueue with an untyped priority. Only integer kinds are
// accepted; anything else fails with ErrInvalidPriorityKind.
func (u *PriorityQueue[T]) EnqueueOf(v T, priority any) error {
	n, ok, e := integral(reflect.ValueOf(priority))
	if !ok || e != nil || n < math.MinInt || n > math.MaxInt {
		return &KindError{priority, ErrInvalidPriorityKind}
	}
	return u.Enqueue(v, int(n))
}

func (u *PriorityQueue[T]) Dequeue() (T, error) {
	en, e := u.DequeueEntry()
	return en.Value, e
}

// DequeueEntry removes the next entry and returns it with its priority.
func (u *PriorityQueue[T]) DequeueEntry() (Entry[T], error) {
	r, ok := u.tree.DeleteMin()
	if !ok {
		return Entry[T]{}, &EmptyError{"dequeue"}
	}
	return r.Entry, nil
}

func (u *PriorityQueue[T]) First() (T, bool) {
	r, ok := u.tree.Min()
	return r.Value, ok
}

func (u *PriorityQueue[T]) At(i int) (item T, ok bool) {
	if i, ok = index(i, u.tree.Len()); !ok {
		return
	}
	u.Range(func(j int, v T) bool {
		if j == i {
			item = v
			return false
		}
		return true
	})
	return
}

func (u *PriorityQueue[T]) Slice() []T {
	s := make([]T, 0, u.tree.Len())
	u.tree.Ascend(func(r ranked[T]) bool {
		s = append(s, r.Value)
		return true
	})
	return s
}

// Entries lists the entries in removal order.
func (u *PriorityQueue[T]) Entries() []Entry[T] {
	s := make([]Entry[T], 0, u.tree.Len())
	u.tree.Ascend(func(r ranked[T]) bool {
		s = append(s, r.Entry)
		return true
	})
	return s
}

func (u *PriorityQueue[T]) Values() []interface{} {
	return boxed(u.Slice())
}

func (u *PriorityQueue[T]) String() string {
	return render(u.Slice())
}

// Iterator walks a copy of the contents taken now, so later changes to the
// queue are not seen by it.
func (u *PriorityQueue[T]) Iterator() *Iterator[T] {
	return iteratorOf[T](snapshot[T](u.Slice()))
}

func (u *PriorityQueue[T]) Range(f func(i int, v T) bool) {
	i := 0
	u.tree.Ascend(func(r ranked[T]) bool {
		i++
		return f(i-1, r.Value)
	})
}

func (u *PriorityQueue[T]) EqualFunc(other []T, eq func(a, b T) bool) bool {
	return EqualFunc[T](u, other, eq)
}

func (u *PriorityQueue[T]) CompareFunc(other []T, f func(a, b T) int) int {
	return CompareFunc[T](u, other, f)
}
