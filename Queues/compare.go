package Queues

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

// Equal reports whether s holds exactly the elements of other, in order.
func Equal[T comparable](s Sequence[T], other []T) bool {
	return slices.Equal(s.Slice(), other)
}

// EqualSeq reports whether a and b hold the same elements in the same order.
func EqualSeq[T comparable](a, b Sequence[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

func EqualFunc[T any](s Sequence[T], other []T, eq func(a, b T) bool) bool {
	return slices.EqualFunc(s.Slice(), other, eq)
}

// Compare orders s against other lexicographically, the way slices.Compare
// does: the first differing element decides, and a proper prefix is
// smaller. An empty container is therefore less than any non-empty one.
func Compare[T cmp.Ordered](s Sequence[T], other []T) int {
	return slices.Compare(s.Slice(), other)
}

func CompareSeq[T cmp.Ordered](a, b Sequence[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

func CompareFunc[T any](s Sequence[T], other []T, f func(a, b T) int) int {
	return slices.CompareFunc(s.Slice(), other, f)
}

func Less[T cmp.Ordered](s Sequence[T], other []T) bool {
	return Compare(s, other) < 0
}

// CompareWith orders any gods container against a plain value slice using a
// gods comparator, e.g. a Stack against an arraylist's Values().
func CompareWith(a containers.Container, b []interface{}, c utils.Comparator) int {
	av := a.Values()
	for i := 0; i < len(av) && i < len(b); i++ {
		if r := c(av[i], b[i]); r != 0 {
			return r
		}
	}
	return cmp.Compare(len(av), len(b))
}

// render formats contents exactly like the plain slice would be.
func render[T any](s []T) string {
	return fmt.Sprint(s)
}

func boxed[T any](s []T) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// snapshot is a fixed copy of a container's contents, used where repeated
// positional reads on the live container would be slow.
type snapshot[T any] []T

func (s snapshot[T]) Size() int {
	return len(s)
}

func (s snapshot[T]) At(i int) (v T, ok bool) {
	if i, ok = index(i, len(s)); ok {
		v = s[i]
	}
	return
}

func (s snapshot[T]) Slice() []T {
	return slices.Clone([]T(s))
}

// index normalises a possibly negative position against size n.
func index(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
