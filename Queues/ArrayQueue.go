package Queues

const minCap = 4

var _ Queue[int] = (*ArrayQueue[int])(nil)

// ArrayQueue is a Queue backed by a circular slice that grows by 3/2 when full.
// The zero value is an empty queue ready to use.
type ArrayQueue[T any] struct {
	sz, head, tail int
	content        []T
}

// NewArrayQueue returns an empty ArrayQueue holding initCap items before growing.
func NewArrayQueue[T any](initCap int) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, max(initCap, 0))}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() int {
	return u.sz
}

// resize the backing slice to newLen>=sz, moving the items to its front.
func (u *ArrayQueue[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content = nc
	u.head, u.tail = 0, u.sz%max(newLen, 1)
}

// Shrink the backing slice to fit the items.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz)
}

// Clear the queue, keeping the backing slice.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == len(u.content) {
		u.resize(max(u.sz*3/2, minCap))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % len(u.content)
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.sz == 0 {
		return item, ErrEmptyQueue
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % len(u.content)
	u.sz--
	return item, nil
}

func (u *ArrayQueue[T]) Peek() (item T, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.content[u.head], true
}
