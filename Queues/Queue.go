package Queues

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/containers"
)

// Sequence is the read side shared by every container in this package.
// At accepts negative indices, counting from the end: At(-1) is the last
// element in container order. Slice returns a copy, so it is safe to keep.
type Sequence[T any] interface {
	Size() int
	At(i int) (T, bool)
	Slice() []T
}

// Container is a bounded Sequence that also satisfies gods'
// containers.Container, so it can be passed to helpers written against gods.
type Container[T any] interface {
	Sequence[T]
	containers.Container
	//Cap is the capacity fixed at construction.
	Cap() Capacity
	//Full reports whether the next insertion would be rejected.
	Full() bool
	//Iterator walks the contents in container order.
	Iterator() *Iterator[T]
	//Range calls f for each element in container order until f returns false.
	Range(f func(i int, v T) bool)
}

var (
	ErrInvalidCapacityKind  = errors.New("capacity is not an integer")
	ErrInvalidCapacityValue = errors.New("capacity is negative")
	ErrCapacityExceeded     = errors.New("container overflow")
	ErrEmpty                = errors.New("container is empty")
	ErrInvalidPriorityKind  = errors.New("priority is not an integer")
)

// EmptyError is returned by removals on an empty container.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return e.Op + " from an empty container"
}

func (e *EmptyError) Unwrap() error {
	return ErrEmpty
}

// CapacityError is returned by insertions into a full container.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("container overflow: capacity %d reached", e.Limit)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// KindError reports a configuration or priority value of the wrong kind, or
// a capacity value that is out of range. Err is one of the sentinels above.
type KindError struct {
	Got any
	Err error
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%v: got %v (%T)", e.Err, e.Got, e.Got)
}

func (e *KindError) Unwrap() error {
	return e.Err
}
