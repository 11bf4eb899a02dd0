package Records

import "github.com/g-m-twostay/go-bst/Trees"

// Word is a record of a single token, ordered byte-wise.
type Word string

func (u *Word) LessThan(o *Word) bool {
	return *u < *o
}

func (u *Word) Equals(o *Word) bool {
	return *u == *o
}

func (u *Word) String() string {
	return string(*u)
}

func (u *Word) SetData(s *Trees.Stream) bool {
	tok, ok := s.Token()
	*u = Word(tok)
	return ok
}
