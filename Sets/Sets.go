package Sets

// Set is a collection without repeated elements.
type Set[E any] interface {
	//Put e, returning false if it was already there.
	Put(e E) bool
	Has(e E) bool
	//Remove e, returning false if it wasn't there.
	Remove(e E) bool
	Size() int
	//Take removes some element and returns it. The bool is false when the
	//set is empty. Which element is taken depends on the implementation.
	Take() (E, bool)
	//Range calls f on each element until f returns false.
	Range(f func(E) bool)
}
