package Trees

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/g-m-twostay/go-bst/Sets"
)

var _ Sets.Set[int] = (*Synced[int])(nil)

// Synced guards a single BST with one lock. Receivers that change the tree
// hold it exclusively; read-only receivers share it. BST's read paths never
// write to nodes, so sharing can't expose a half-done removal.
// There is no finer grained locking.
type Synced[T any] struct {
	mu *xsync.RBMutex
	t  *BST[T]
}

// NewSynced wraps t. t mustn't be used directly afterwards.
func NewSynced[T any](t *BST[T]) *Synced[T] {
	return &Synced[T]{xsync.NewRBMutex(), t}
}

// Insert [BST.Insert]
func (u *Synced[T]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

// Put [BST.Put]
func (u *Synced[T]) Put(v T) bool {
	return u.Insert(v)
}

// Remove [BST.Remove]
func (u *Synced[T]) Remove(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Remove(v)
}

// Take [BST.Take]
func (u *Synced[T]) Take() (T, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Take()
}

// Clear [BST.Clear]
func (u *Synced[T]) Clear() {
	u.mu.Lock()
	u.t.Clear()
	u.mu.Unlock()
}

// Do runs f with the lock held exclusively, for a batch of changes that must
// appear atomic. f mustn't call receivers of u.
func (u *Synced[T]) Do(f func(t *BST[T])) {
	u.mu.Lock()
	defer u.mu.Unlock()
	f(u.t)
}

// View runs f with the lock shared. f mustn't change t or call receivers of u.
func (u *Synced[T]) View(f func(t *BST[T])) {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	f(u.t)
}

// Has [BST.Has]
func (u *Synced[T]) Has(v T) bool {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.Has(v)
}

// Size [BST.Size]
func (u *Synced[T]) Size() int {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.Size()
}

// Minimum [BST.Minimum]
func (u *Synced[T]) Minimum() (T, bool) {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.Minimum()
}

// Maximum [BST.Maximum]
func (u *Synced[T]) Maximum() (T, bool) {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.Maximum()
}

// Range calls f in ascending order with the lock shared. f mustn't call
// receivers of u.
func (u *Synced[T]) Range(f func(T) bool) {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	u.t.Range(f)
}

// Sorted [BST.Sorted]
func (u *Synced[T]) Sorted() []T {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.Sorted()
}

// String [BST.String]
func (u *Synced[T]) String() string {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.String()
}
