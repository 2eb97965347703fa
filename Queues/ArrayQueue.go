package Queues

// Queue is a FIFO container over a growable circular array. Elements leave
// from the head in insertion order unless Reverse flips that order.
type Queue[T any] struct {
	sz, head, tail int
	content        []T
	capacity       Capacity
}

var _ Container[int] = (*Queue[int])(nil)

const minGrow = 4

// NewQueue makes an empty queue.
func NewQueue[T any](opts ...Option) (*Queue[T], error) {
	c, e := configure(opts)
	if e != nil {
		return nil, e
	}
	return &Queue[T]{capacity: c.capacity}, nil
}

// QueueFrom makes a queue holding src in order. With a capacity, only the
// first capacity elements of src are taken and the rest are dropped.
func QueueFrom[T any](src []T, opts ...Option) (*Queue[T], error) {
	this, e := NewQueue[T](opts...)
	if e != nil {
		return nil, e
	}
	n := this.capacity.take(len(src))
	this.content = make([]T, max(n, minGrow))
	copy(this.content, src[:n])
	this.sz, this.tail = n, n%len(this.content)
	return this, nil
}

func (this *Queue[T]) Empty() bool {
	return this.sz == 0
}

func (this *Queue[T]) Size() int {
	return this.sz
}

func (this *Queue[T]) Cap() Capacity {
	return this.capacity
}

func (this *Queue[T]) Full() bool {
	return !this.capacity.admits(this.sz)
}

// pos maps a logical offset from the head to a slot in content.
func (this *Queue[T]) pos(i int) int {
	return (this.head + i) % len(this.content)
}

func (this *Queue[T]) copyTo(dst []T) {
	if this.sz == 0 {
		return
	}
	if this.head < this.tail {
		copy(dst, this.content[this.head:this.tail])
	} else {
		k := copy(dst, this.content[this.head:])
		copy(dst[k:], this.content[:this.tail])
	}
}

func (this *Queue[T]) resize(newLen int) {
	nc := make([]T, newLen)
	this.copyTo(nc)
	this.content = nc
	this.head, this.tail = 0, this.sz%newLen
}

// Shrink releases backing storage beyond what the current elements need.
func (this *Queue[T]) Shrink() {
	this.resize(max(this.sz, 1))
}

func (this *Queue[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

// Enqueue adds item at the tail. It fails with a *CapacityError when the
// queue is full, leaving the queue untouched.
func (this *Queue[T]) Enqueue(item T) error {
	if !this.capacity.admits(this.sz) {
		n, _ := this.capacity.Get()
		return &CapacityError{n}
	}
	if this.sz == len(this.content) {
		grown := max(this.sz*3/2, minGrow)
		if n, ok := this.capacity.Get(); ok {
			grown = min(grown, n)
		}
		this.resize(grown)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % len(this.content)
	this.sz++
	return nil
}

// Dequeue removes and returns the head.
func (this *Queue[T]) Dequeue() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyError{"dequeue"}
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % len(this.content)
	this.sz--
	return t, nil
}

// First returns the head without removing it; false when the queue is empty.
func (this *Queue[T]) First() (item T, ok bool) {
	if this.Empty() {
		return *new(T), false
	}
	return this.content[this.head], true
}

// Reverse flips the queue in place, so the former tail is dequeued next.
func (this *Queue[T]) Reverse() {
	for i, j := 0, this.sz-1; i < j; i, j = i+1, j-1 {
		a, b := this.pos(i), this.pos(j)
		this.content[a], this.content[b] = this.content[b], this.content[a]
	}
}

func (this *Queue[T]) At(i int) (item T, ok bool) {
	if i, ok = index(i, this.sz); !ok {
		return
	}
	return this.content[this.pos(i)], true
}

func (this *Queue[T]) Slice() []T {
	s := make([]T, this.sz)
	this.copyTo(s)
	return s
}

func (this *Queue[T]) Values() []interface{} {
	return boxed(this.Slice())
}

func (this *Queue[T]) String() string {
	return render(this.Slice())
}

func (this *Queue[T]) Iterator() *Iterator[T] {
	return iteratorOf[T](this)
}

func (this *Queue[T]) Range(f func(i int, v T) bool) {
	for i := 0; i < this.sz; i++ {
		if !f(i, this.content[this.pos(i)]) {
			return
		}
	}
}

func (this *Queue[T]) EqualFunc(other []T, eq func(a, b T) bool) bool {
	return EqualFunc[T](this, other, eq)
}

func (this *Queue[T]) CompareFunc(other []T, f func(a, b T) int) int {
	return CompareFunc[T](this, other, f)
}
