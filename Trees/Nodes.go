package Trees

// A node in the BST.
// The zero value is meaningless.
type node[T any] struct {
	v    T
	l, r nodePtr[T]
}

// Pointer to a node.
// nil Pointer is meaningless. A nodePtr is absent if the pointer is equal
// to the nilPtr of the tree owning it. The nilPtr node has both node.l and
// node.r pointing to itself and v is the zero value of T. It is never
// written to after creation, so a leaf's links are always the explicit
// absent value and never point back to the leaf.
type nodePtr[T any] *node[T]

// newNilPtr creates the absent marker for one tree.
func newNilPtr[T any]() nodePtr[T] {
	z := new(node[T])
	z.l, z.r = z, z
	return z
}
