package Trees

import (
	"io"

	"github.com/sirupsen/logrus"
)

// OrderedTree is a binary search tree with no repeated values. It doesn't
// balance itself: the shape only depends on the order of insertion, so the
// height D is O(log n) for random input but n for sorted input.
// T is the type of the elements, P is the handle(*T) that the tree stores and
// hands back. The tree owns every element it accepted until Clear.
// The zero value is an empty tree that doesn't log.
// OrderedTree isn't safe for concurrent use.
type OrderedTree[T any, P Record[T]] struct {
	root *node[P] //nil when empty.
	size uint
	log  logrus.FieldLogger
}

type config struct {
	log logrus.FieldLogger
}

// Option configures an OrderedTree in New.
type Option func(*config)

// WithLogger makes BuildTree report dropped records and a summary to l at Debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = l
	}
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

// New returns an empty OrderedTree.
func New[T any, P Record[T]](opts ...Option) *OrderedTree[T, P] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return &OrderedTree[T, P]{log: c.log}
}

func (u *OrderedTree[T, P]) logger() logrus.FieldLogger {
	if u.log == nil {
		return discard
	}
	return u.log
}

// debugEnabled reports whether l would write Debug entries. Unknown loggers are assumed to.
func debugEnabled(l logrus.FieldLogger) bool {
	switch l := l.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}

// Insert v as a new leaf. Returns false and leaves v to the caller if v is nil or
// an element Equals to v is already in the tree. Otherwise the tree takes v.
// Going down from the root, v goes left of every node greater than it and right
// of the rest.
// Time: O(D)
func (u *OrderedTree[T, P]) Insert(v P) bool {
	if v == nil {
		return false
	}
	if _, has := u.Retrieve(v); has {
		return false
	}
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v.LessThan(cur.v) {
			curPtr = &cur.l
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &node[P]{v: v}
	u.size++
	return true
}

// Retrieve the stored element that Equals target. The returned element still
// belongs to the tree.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, P]) Retrieve(target P) (P, bool) {
	if target == nil {
		return nil, false
	}
	for cur := u.root; cur != nil; {
		if target.Equals(cur.v) {
			return cur.v, true
		} else if cur.v.LessThan(target) {
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return nil, false
}

// Display writes every element in ascending order, each followed by two spaces.
// Write errors are ignored; check them on w.
// Time: O(n); Space: O(D)
func (u *OrderedTree[T, P]) Display(w io.Writer) {
	if u.IsEmpty() {
		return
	}
	st := make([]*node[P], 0, 16)
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		_, _ = io.WriteString(w, cur.v.String())
		_, _ = io.WriteString(w, "  ")
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// Clear drops every node and releases every element, see Releaser. Recursive.
// Time: O(n)
func (u *OrderedTree[T, P]) Clear() {
	if u.IsEmpty() {
		return
	}
	drop(u.root)
	u.root, u.size = nil, 0
}

// IsEmpty reports whether the tree holds no element.
// Time: O(1)
func (u *OrderedTree[T, P]) IsEmpty() bool {
	return u.root == nil
}

// Size returns the number of elements in the tree.
// Time: O(1)
func (u *OrderedTree[T, P]) Size() uint {
	return u.size
}

// Height returns the number of levels of the tree, 0 when empty. Recursive.
// Time: O(n)
func (u *OrderedTree[T, P]) Height() uint {
	return height(u.root)
}

// Shape calls f on every element in pre-order with its depth(root at 0) and
// which child of its parent it is. f mustn't modify the tree. Recursive.
func (u *OrderedTree[T, P]) Shape(f func(v P, depth uint, side Side)) {
	shape(u.root, 0, Root, f)
}

// BuildTree reads records from s until it runs out, inserting every valid one.
// Each round a fresh element reads itself from s. If s reached EOF during that
// read, the element is dropped and the build stops, whatever SetData returned.
// Elements that failed to parse or that are duplicates are released and skipped.
func (u *OrderedTree[T, P]) BuildTree(s *Stream) {
	log := u.logger()
	debug := debugEnabled(log)
	var n, inserted, dropped uint
	for ; ; n++ {
		p := P(new(T))
		ok := p.SetData(s)
		if s.EOF() {
			release(p)
			break
		}
		if !ok {
			dropped++
			release(p)
			if debug {
				log.WithField("record", n).Debug("dropped malformed record")
			}
		} else if u.Insert(p) {
			inserted++
		} else {
			dropped++
			if debug {
				log.WithFields(logrus.Fields{"record": n, "value": p.String()}).Debug("dropped duplicate record")
			}
			release(p)
		}
	}
	if err := s.Err(); err != nil {
		log.WithError(err).Warn("stream ended with a read error")
	}
	if debug {
		log.WithFields(logrus.Fields{"records": n, "inserted": inserted, "dropped": dropped, "size": u.size}).Debug("tree built")
	}
}
