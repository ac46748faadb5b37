package Trees

// Tree represents a binary search tree implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false). In this case x is the zero value
// of T and shouldn't be used.
// Insert, Remove and Has report the expected outcomes (duplicate value,
// absent value) through their bool results; none of the receivers panic
// on them. Methods implemented recursively are noted, otherwise methods
// are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returns true if a new node was created, false
	//if v is already in the tree.
	Insert(v T) bool
	//Remove v from the Tree. Returns true if v was in the tree, false otherwise.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() int
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, a node is reachable twice, or the
	//recorded size disagrees with the number of reachable nodes.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
