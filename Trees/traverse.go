package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-bst/Queues"
)

// InOrder [Tree.InOrder]
// Uses an explicit stack of the left spine, so the tree is only read.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BST[T]) InOrder() func() (T, bool) {
	var st []nodePtr[T]
	for cur := u.root; cur != u.nilPtr; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != u.nilPtr; c = c.l {
			st = append(st, c)
		}
		return cur.v, true
	}
}

// All values in ascending order.
func (u *BST[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		next := u.InOrder()
		for v, ok := next(); ok; v, ok = next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Range calls f on the values in ascending order until f returns false.
func (u *BST[T]) Range(f func(T) bool) {
	for v := range u.All() {
		if !f(v) {
			return
		}
	}
}

// Sorted returns the in-order listing of the tree.
// Time: O(n)
func (u *BST[T]) Sorted() []T {
	s := make([]T, 0, u.sz)
	for v := range u.All() {
		s = append(s, v)
	}
	return s
}

// Values returns the in-order listing as []any, completing containers.Container.
func (u *BST[T]) Values() []any {
	s := make([]any, 0, u.sz)
	for v := range u.All() {
		s = append(s, v)
	}
	return s
}

type leveled[T any] struct {
	n nodePtr[T]
	d int
}

// LevelOrder visits the values breadth first, left to right within a level,
// passing each value with its depth (the root has depth 0). Stops when f
// returns false.
// Time: O(n); Space: O(width of the tree)
func (u *BST[T]) LevelOrder(f func(v T, depth int) bool) {
	if u.root == u.nilPtr {
		return
	}
	q := Queues.NewArrayQueue[leveled[T]](8)
	q.Push(leveled[T]{u.root, 0})
	for !q.Empty() {
		cur, err := q.Pop()
		if err != nil {
			return
		}
		if !f(cur.n.v, cur.d) {
			return
		}
		if cur.n.l != u.nilPtr {
			q.Push(leveled[T]{cur.n.l, cur.d + 1})
		}
		if cur.n.r != u.nilPtr {
			q.Push(leveled[T]{cur.n.r, cur.d + 1})
		}
	}
}
