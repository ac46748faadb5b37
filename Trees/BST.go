package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-bst/Sets"
)

var (
	_ Tree[int]            = (*BST[int])(nil)
	_ Sets.Set[int]        = (*BST[int])(nil)
	_ containers.Container = (*BST[int])(nil)
)

// BST is a binary search tree with no repeated values. It performs no
// balancing: the shape depends only on the order of insertions and removals,
// so inserting values in sorted order produces a tree whose height D equals
// its size. For random insertion orders D is O(log n) on average.
// This struct holds a root pointer and a corresponding nilPtr used as the
// absent link described in nodePtr, the comparison function, and the number
// of values.
// BST isn't safe for concurrent use, wrap it with Synced for that.
type BST[T any] struct {
	root   nodePtr[T] //the root of the tree. It's nilPtr when the tree is empty.
	nilPtr nodePtr[T]
	cmp    func(a, b T) int
	sz     int
}

// New returns an empty BST ordering values with cmp.Compare.
func New[T constraints.Ordered]() *BST[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty BST ordering values with c, which must define a
// strict total order: c(a, b) is negative when a<b, zero when a==b and
// positive when a>b. Panics if c is nil.
// BST shouldn't be created directly using struct literal.
func NewFunc[T any](c func(a, b T) int) *BST[T] {
	if c == nil {
		panic("Trees: nil comparison function")
	}
	z := newNilPtr[T]()
	return &BST[T]{root: z, nilPtr: z, cmp: c}
}

// From returns a BST with vs inserted in the given order. Repeated values
// are inserted once.
// Time: O(n*D)
func From[T constraints.Ordered](vs ...T) *BST[T] {
	u := New[T]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() int {
	return u.sz
}

// Empty reports whether the tree has no values.
func (u *BST[T]) Empty() bool {
	return u.root == u.nilPtr
}

// Clear the tree by releasing its root.
// Time: O(1)
func (u *BST[T]) Clear() {
	u.root, u.sz = u.nilPtr, 0
}

// Insert [Tree.Insert].
// Descends from the root to the absent link where v belongs; a value equal
// to v on the way aborts the insertion.
// Time: O(D); Space: O(1)
func (u *BST[T]) Insert(v T) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != u.nilPtr; cur = *curPtr {
		if c := u.cmp(v, cur.v); c < 0 {
			curPtr = &cur.l
		} else if c == 0 {
			return false
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &node[T]{v, u.nilPtr, u.nilPtr}
	u.sz++
	return true
}

// Put is Insert, completing Sets.Set.
func (u *BST[T]) Put(v T) bool {
	return u.Insert(v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// remove v from the subtree rooting at cur recursively and return the root
// of the resulting subtree, which the caller reattaches in place of cur.
// A node with two children takes the value of its in-order successor, then
// the successor's value is removed from the right subtree; the successor has
// no left child, so that second removal ends in the zero or one child case.
func (u *BST[T]) remove(cur nodePtr[T], v T) nodePtr[T] {
	if cur == u.nilPtr {
		return cur
	}
	if c := u.cmp(v, cur.v); c < 0 {
		cur.l = u.remove(cur.l, v)
	} else if c > 0 {
		cur.r = u.remove(cur.r, v)
	} else if cur.l == u.nilPtr {
		return cur.r
	} else if cur.r == u.nilPtr {
		return cur.l
	} else {
		cur.v = u.leftmost(cur.r).v
		cur.r = u.remove(cur.r, cur.v)
	}
	return cur
}

// Remove [Tree.Remove]. Recursive.
// It checks Has first so an absent v never touches the links, then calls
// remove from the root.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	if !u.Has(v) {
		return false
	}
	u.root = u.remove(u.root, v)
	u.sz--
	return true
}

// Take removes and returns the minimum value, completing Sets.Set.
// Time: O(D)
func (u *BST[T]) Take() (T, bool) {
	v, ok := u.Minimum()
	if ok {
		u.root = u.remove(u.root, v)
		u.sz--
	}
	return v, ok
}

// leftmost node of the subtree rooting at cur, which mustn't be absent.
func (u *BST[T]) leftmost(cur nodePtr[T]) nodePtr[T] {
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if u.root == u.nilPtr {
		return u.nilPtr.v, false
	}
	return u.leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == u.nilPtr {
		return cur.v, false
	}
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor [Tree.Predecessor]
// v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *BST[T]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *BST[T]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

func (u *BST[T]) height(c nodePtr[T]) int {
	if c == u.nilPtr {
		return 0
	}
	return max(u.height(c.l), u.height(c.r)) + 1
}

// Height is the number of nodes on the longest path from the root to a
// leaf, 0 for an empty tree. Recursive.
// Time: O(n)
func (u *BST[T]) Height() int {
	return u.height(u.root)
}

// check the subtree rooting at cur, whose values must lie strictly between
// lo and hi when those are given. Returns the number of nodes and whether
// the subtree is sound.
func (u *BST[T]) check(cur nodePtr[T], lo, hi *T, seen map[nodePtr[T]]struct{}) (int, bool) {
	if cur == u.nilPtr {
		return 0, true
	}
	if _, in := seen[cur]; in {
		return 0, false
	}
	seen[cur] = struct{}{}
	if (lo != nil && u.cmp(*lo, cur.v) >= 0) || (hi != nil && u.cmp(cur.v, *hi) >= 0) {
		return 0, false
	}
	ln, ok := u.check(cur.l, lo, &cur.v, seen)
	if !ok {
		return 0, false
	}
	rn, ok := u.check(cur.r, &cur.v, hi, seen)
	return ln + rn + 1, ok
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n); Space: O(n)
func (u *BST[T]) Corrupt() bool {
	if u.nilPtr.l != u.nilPtr || u.nilPtr.r != u.nilPtr {
		return true
	}
	n, ok := u.check(u.root, nil, nil, make(map[nodePtr[T]]struct{}, u.sz))
	return !ok || n != u.sz
}
