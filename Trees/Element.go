package Trees

import "fmt"

// Element is what OrderedTree needs from the values it stores. Argument passed
// to LessThan and Equals will always be of the same handle type, so no type
// checks are needed.
type Element[P any] interface {
	//LessThan reports whether the receiver orders strictly before o.
	LessThan(o P) bool
	//Equals reports whether the receiver and o are the same element.
	//The tree never holds two elements that are Equals.
	Equals(o P) bool
	fmt.Stringer
}

// Record is the handle type of a storable element: a pointer to T that can
// compare itself and read itself from a Stream. SetData returns false when
// the input didn't hold a valid record; the Stream's EOF is checked separately.
type Record[T any] interface {
	*T
	Element[*T]
	SetData(s *Stream) bool
}

// Releaser is implemented by elements that hold something that must be given
// back when the tree drops them. Release is called exactly once, by Clear for
// owned elements or by BuildTree for rejected candidates.
type Releaser interface {
	Release()
}

func release[P any](v P) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}
