package Queues

import "github.com/emirpasic/gods/containers"

var _ containers.ReverseIteratorWithIndex = (*Iterator[int])(nil)

// Iterator is a stateful cursor over a Sequence, positioned one before the
// first element until Next is called. It follows the gods iterator contract.
// The container must not be modified while iterating.
type Iterator[T any] struct {
	seq   Sequence[T]
	index int
}

func iteratorOf[T any](s Sequence[T]) *Iterator[T] {
	return &Iterator[T]{s, -1}
}

func (it *Iterator[T]) Next() bool {
	if it.index < it.seq.Size() {
		it.index++
	}
	return it.index < it.seq.Size()
}

func (it *Iterator[T]) Prev() bool {
	if it.index >= 0 {
		it.index--
	}
	return it.index >= 0
}

// Item is the typed form of Value.
func (it *Iterator[T]) Item() (v T) {
	if it.index >= 0 {
		v, _ = it.seq.At(it.index)
	}
	return
}

func (it *Iterator[T]) Value() interface{} {
	return it.Item()
}

func (it *Iterator[T]) Index() int {
	return it.index
}

func (it *Iterator[T]) Begin() {
	it.index = -1
}

func (it *Iterator[T]) End() {
	it.index = it.seq.Size()
}

func (it *Iterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

func (it *Iterator[T]) Last() bool {
	it.End()
	return it.Prev()
}

func (it *Iterator[T]) NextTo(f func(index int, value interface{}) bool) bool {
	for it.Next() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}

func (it *Iterator[T]) PrevTo(f func(index int, value interface{}) bool) bool {
	for it.Prev() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}
