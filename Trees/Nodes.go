package Trees

// A node in the OrderedTree. It owns v and both of its children; no node is
// ever reachable from two parents.
type node[P any] struct {
	v    P
	l, r *node[P]
}

// Side of a node relative to its parent.
type Side byte

const (
	Root  Side = iota // the tree's root, it has no parent.
	Left              // left child of its parent.
	Right             // right child of its parent.
)

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "*"
	}
}

// height of the subtree rooting at c. Recursive.
func height[P any](c *node[P]) uint {
	if c == nil {
		return 0
	}
	return max(height(c.l), height(c.r)) + 1
}

// shape visits the subtree rooting at c in pre-order. Recursive.
func shape[P any](c *node[P], d uint, s Side, f func(P, uint, Side)) {
	if c == nil {
		return
	}
	f(c.v, d, s)
	shape(c.l, d+1, Left, f)
	shape(c.r, d+1, Right, f)
}

// drop releases the subtree rooting at c: right subtree, then left subtree,
// then c itself. Returns how many elements were released. Recursive.
func drop[P any](c *node[P]) uint {
	if c == nil {
		return 0
	}
	n := drop(c.r) + drop(c.l)
	release(c.v)
	c.l, c.r = nil, nil
	return n + 1
}
