package Records

import (
	"fmt"

	"github.com/g-m-twostay/go-bst/Trees"
	"golang.org/x/exp/constraints"
)

// Number is a record of a single numeric token. NaN is never a valid Number.
type Number[N constraints.Integer | constraints.Float] struct {
	V N
}

func (u *Number[N]) LessThan(o *Number[N]) bool {
	return u.V < o.V
}

func (u *Number[N]) Equals(o *Number[N]) bool {
	return u.V == o.V
}

func (u *Number[N]) String() string {
	return fmt.Sprint(u.V)
}

// SetData reads the next token. Fails if the token isn't entirely a number of type N.
func (u *Number[N]) SetData(s *Trees.Stream) bool {
	tok, ok := s.Token()
	if !ok {
		return false
	}
	var rest string
	if n, _ := fmt.Sscan(tok, &u.V, &rest); n != 1 {
		return false
	}
	return u.V == u.V // NaN
}
