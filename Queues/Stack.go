package Queues

import "github.com/emirpasic/gods/lists/arraylist"

// Stack is a LIFO container backed by a gods arraylist. Index 0 is the
// bottom; the top is the last element.
type Stack[T any] struct {
	list     *arraylist.List
	capacity Capacity
}

var _ Container[int] = (*Stack[int])(nil)

// NewStack makes an empty stack.
func NewStack[T any](opts ...Option) (*Stack[T], error) {
	c, e := configure(opts)
	if e != nil {
		return nil, e
	}
	return &Stack[T]{arraylist.New(), c.capacity}, nil
}

// StackFrom pushes src in order, so its last element ends on top. With a
// capacity, only the first capacity elements of src are pushed.
func StackFrom[T any](src []T, opts ...Option) (*Stack[T], error) {
	u, e := NewStack[T](opts...)
	if e != nil {
		return nil, e
	}
	u.list.Add(boxed(src[:u.capacity.take(len(src))])...)
	return u, nil
}

func (u *Stack[T]) Empty() bool {
	return u.list.Empty()
}

func (u *Stack[T]) Size() int {
	return u.list.Size()
}

func (u *Stack[T]) Cap() Capacity {
	return u.capacity
}

func (u *Stack[T]) Full() bool {
	return !u.capacity.admits(u.list.Size())
}

func (u *Stack[T]) Clear() {
	u.list.Clear()
}

func (u *Stack[T]) Push(item T) error {
	if !u.capacity.admits(u.list.Size()) {
		n, _ := u.capacity.Get()
		return &CapacityError{n}
	}
	u.list.Add(item)
	return nil
}

func (u *Stack[T]) Pop() (T, error) {
	top := u.list.Size() - 1
	if top < 0 {
		return *new(T), &EmptyError{"pop"}
	}
	v, _ := u.list.Get(top)
	u.list.Remove(top)
	return unbox[T](v), nil
}

// Peek returns the top without removing it; false when the stack is empty.
func (u *Stack[T]) Peek() (T, bool) {
	return u.At(-1)
}

// Reverse flips the stack in place, so the former bottom is popped next.
func (u *Stack[T]) Reverse() {
	for i, j := 0, u.list.Size()-1; i < j; i, j = i+1, j-1 {
		u.list.Swap(i, j)
	}
}

func (u *Stack[T]) At(i int) (T, bool) {
	i, ok := index(i, u.list.Size())
	if !ok {
		return *new(T), false
	}
	v, _ := u.list.Get(i)
	return unbox[T](v), true
}

func (u *Stack[T]) Slice() []T {
	s := make([]T, 0, u.list.Size())
	u.Range(func(_ int, v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

func (u *Stack[T]) Values() []interface{} {
	return u.list.Values()
}

func (u *Stack[T]) String() string {
	return render(u.Slice())
}

func (u *Stack[T]) Iterator() *Iterator[T] {
	return iteratorOf[T](u)
}

func (u *Stack[T]) Range(f func(i int, v T) bool) {
	it := u.list.Iterator()
	for it.Next() {
		if !f(it.Index(), unbox[T](it.Value())) {
			return
		}
	}
}

// unbox converts back from the arraylist's storage. A nil stored for an
// interface T comes back as the zero T instead of panicking.
func unbox[T any](v interface{}) T {
	t, _ := v.(T)
	return t
}

func (u *Stack[T]) EqualFunc(other []T, eq func(a, b T) bool) bool {
	return EqualFunc[T](u, other, eq)
}

func (u *Stack[T]) CompareFunc(other []T, f func(a, b T) int) int {
	return CompareFunc[T](u, other, f)
}
