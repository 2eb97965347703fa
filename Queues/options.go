package Queues

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Capacity is an optional upper bound on the number of elements. The zero
// value is unbounded. A bounded capacity of 0 is legal and rejects every
// insertion.
type Capacity struct {
	n       int
	bounded bool
}

// Unbounded is the capacity of a container without a limit.
func Unbounded() Capacity {
	return Capacity{}
}

// BoundedTo is a capacity of n elements. n must not be negative.
func BoundedTo(n int) (Capacity, error) {
	if n < 0 {
		return Capacity{}, &KindError{n, ErrInvalidCapacityValue}
	}
	return Capacity{n, true}, nil
}

// Get returns the limit and true, or 0 and false when unbounded.
func (u Capacity) Get() (int, bool) {
	return u.n, u.bounded
}

func (u Capacity) Bounded() bool {
	return u.bounded
}

// admits reports whether a container currently holding size elements may
// take one more.
func (u Capacity) admits(size int) bool {
	return !u.bounded || size < u.n
}

// take is how many elements of a source of length n fit.
func (u Capacity) take(n int) int {
	if u.bounded {
		return min(n, u.n)
	}
	return n
}

func (u Capacity) String() string {
	if !u.bounded {
		return "unbounded"
	}
	return strconv.Itoa(u.n)
}

type config struct {
	capacity Capacity
	err      error
}

// Option configures a container at construction.
type Option func(*config)

// WithCapacity bounds the container to n elements. n must not be negative.
func WithCapacity(n int) Option {
	return func(c *config) {
		cp, e := BoundedTo(n)
		if e != nil {
			c.fail(e)
			return
		}
		c.capacity = cp
	}
}

// WithCapacityOf bounds the container using an untyped value, typically one
// read from configuration. Any integer kind is accepted, as is a string
// holding a base-10 integer. nil means unbounded. Other kinds fail with
// ErrInvalidCapacityKind.
func WithCapacityOf(v any) Option {
	return func(c *config) {
		cp, e := capacityOf(v)
		if e != nil {
			c.fail(e)
			return
		}
		c.capacity = cp
	}
}

// ParseCapacity reads a capacity from text. Blank input means unbounded.
func ParseCapacity(s string) (Capacity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unbounded(), nil
	}
	n, e := strconv.ParseInt(s, 10, 64)
	if e != nil {
		if ne, ok := e.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return Capacity{}, &KindError{s, ErrInvalidCapacityValue}
		}
		return Capacity{}, &KindError{s, ErrInvalidCapacityKind}
	}
	return boundOf(n, s)
}

func capacityOf(v any) (Capacity, error) {
	switch x := v.(type) {
	case nil:
		return Unbounded(), nil
	case Capacity:
		return x, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return ParseCapacity(rv.String())
	default:
		n, ok, e := integral(rv)
		if e != nil {
			return Capacity{}, &KindError{v, ErrInvalidCapacityValue}
		}
		if !ok {
			return Capacity{}, &KindError{v, ErrInvalidCapacityKind}
		}
		return boundOf(n, v)
	}
}

func boundOf(n int64, src any) (Capacity, error) {
	if n < 0 || n > math.MaxInt {
		return Capacity{}, &KindError{src, ErrInvalidCapacityValue}
	}
	return Capacity{int(n), true}, nil
}

// integral extracts an integer from any signed or unsigned integer kind.
// ok is false for every other kind, bools included. An unsigned value that
// does not fit int64 is an error.
func integral(rv reflect.Value) (n int64, ok bool, e error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, true, strconv.ErrRange
		}
		return int64(u), true, nil
	}
	return 0, false, nil
}

// fail keeps the first error so a later valid option cannot hide it.
func (c *config) fail(e error) {
	if c.err == nil {
		c.err = e
	}
}

func configure(opts []Option) (config, error) {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c, c.err
}
