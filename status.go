package sweep

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// adapted from the SweepNode and SweepStatus AVL tree in github.com/tdewolff/canvas
type statusNode struct {
	parent, left, right *statusNode
	height              int

	handle int
}

// Prev returns the node before n in order, or nil.
func (n *statusNode) Prev() *statusNode {
	// go left
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right // find the right-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.left == n {
		n = n.parent // find first parent for which we're right
	}
	return n.parent // can be nil
}

// Next returns the node after n in order, or nil.
func (n *statusNode) Next() *statusNode {
	// go right
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left // find the left-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.right == n {
		n = n.parent // find first parent for which we're left
	}
	return n.parent // can be nil
}

func (n *statusNode) balance() int {
	r := 0
	if n.left != nil {
		r -= n.left.height
	}
	if n.right != nil {
		r += n.right.height
	}
	return r
}

func (n *statusNode) updateHeight() {
	n.height = 0
	if n.left != nil {
		n.height = n.left.height
	}
	if n.right != nil && n.height < n.right.height {
		n.height = n.right.height
	}
	n.height++
}

func (n *statusNode) swapChild(a, b *statusNode) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *statusNode) rotateLeft() *statusNode {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a
	return b
}

func (a *statusNode) rotateRight() *statusNode {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a
	return b
}

func (n *statusNode) print(w io.Writer, indent int) {
	if n.right != nil {
		n.right.print(w, indent+1)
	} else if n.left != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
	fmt.Fprintf(w, "%v%v\n", strings.Repeat("  ", indent), n.handle)
	if n.left != nil {
		n.left.print(w, indent+1)
	} else if n.right != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
}

////////////////////////////////////////////////////////////////

// Status is the active set of a sweep: segment handles ordered by a three-way comparison. The comparison need not be transitive, the tree never checks it. Each handle is in the set at most once, and its node is kept in a handle-indexed table so that removal does not need to search.
type Status struct {
	root  *statusNode
	nodes []*statusNode // by handle, nil if not in the set
	n     int
	cmp   func(a, b int) int
	pool  *sync.Pool
}

// NewStatus returns an empty active set for handles in [0,n) ordered by cmp.
func NewStatus(n int, cmp func(a, b int) int) *Status {
	return &Status{
		nodes: make([]*statusNode, n),
		cmp:   cmp,
		pool:  &sync.Pool{New: func() any { return &statusNode{} }},
	}
}

func (s *Status) newNode(h int) *statusNode {
	n := s.pool.Get().(*statusNode)
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.handle = h
	s.nodes[h] = n
	s.n++
	return n
}

func (s *Status) returnNode(n *statusNode) {
	s.nodes[n.handle] = nil
	s.n--
	n.parent, n.left, n.right = nil, nil, nil // help the GC
	s.pool.Put(n)
}

func (s *Status) find(h int) (*statusNode, int) {
	n := s.root
	for n != nil {
		cmp := s.cmp(h, n.handle)
		if cmp < 0 {
			if n.left == nil {
				return n, -1
			}
			n = n.left
		} else if 0 < cmp {
			if n.right == nil {
				return n, 1
			}
			n = n.right
		} else {
			break
		}
	}
	return n, 0
}

func (s *Status) rebalance(n *statusNode) {
	for {
		oheight := n.height
		if balance := n.balance(); balance == 2 {
			// Tree is excessively right-heavy, rotate it to the left.
			if n.right != nil && n.right.balance() < 0 {
				// Right tree is left-heavy, which would cause the next rotation to result in
				// overall left-heaviness. Rotate the right tree to the right to counteract this.
				n.right = n.right.rotateRight()
				n.right.right.updateHeight()
			}
			n = n.rotateLeft()
			n.left.updateHeight()
		} else if balance == -2 {
			// Tree is excessively left-heavy, rotate it to the right
			if n.left != nil && n.left.balance() > 0 {
				// The left tree is right-heavy, which would cause the next rotation to result in
				// overall right-heaviness. Rotate the left tree to the left to compensate.
				n.left = n.left.rotateLeft()
				n.left.left.updateHeight()
			}
			n = n.rotateRight()
			n.right.updateHeight()
		} else if balance < -2 || 2 < balance {
			panic("Tree too far out of shape!")
		}

		n.updateHeight()
		if n.parent == nil {
			s.root = n
			return
		}
		if oheight == n.height {
			return
		}
		n = n.parent
	}
}

// Len returns the number of active handles.
func (s *Status) Len() int {
	return s.n
}

// Has returns true if handle h is in the set.
func (s *Status) Has(h int) bool {
	return s.nodes[h] != nil
}

// First returns the lowest handle, or -1 if the set is empty.
func (s *Status) First() int {
	if s.root == nil {
		return -1
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	return n.handle
}

// Last returns the highest handle, or -1 if the set is empty.
func (s *Status) Last() int {
	if s.root == nil {
		return -1
	}
	n := s.root
	for n.right != nil {
		n = n.right
	}
	return n.handle
}

// Prev returns the handle before active handle h, or -1.
func (s *Status) Prev(h int) int {
	if n := s.nodes[h]; n != nil {
		if n = n.Prev(); n != nil {
			return n.handle
		}
	}
	return -1
}

// Next returns the handle after active handle h, or -1.
func (s *Status) Next(h int) int {
	if n := s.nodes[h]; n != nil {
		if n = n.Next(); n != nil {
			return n.handle
		}
	}
	return -1
}

// Find returns the active handle that compares equal to h, which may be h itself. It returns -1 if there is none.
func (s *Status) Find(h int) int {
	if n, cmp := s.find(h); n != nil && cmp == 0 {
		return n.handle
	}
	return -1
}

// Insert adds h to the set. It returns false and leaves the set unchanged if h is already active or an equal handle exists.
func (s *Status) Insert(h int) bool {
	if s.nodes[h] != nil {
		return false
	} else if s.root == nil {
		s.root = s.newNode(h)
		return true
	}

	rebalance := false
	n, cmp := s.find(h)
	if cmp < 0 {
		// lower
		n.left = s.newNode(h)
		n.left.parent = n
		rebalance = n.right == nil
		n = n.left
	} else if 0 < cmp {
		// higher
		n.right = s.newNode(h)
		n.right.parent = n
		rebalance = n.left == nil
		n = n.right
	} else {
		return false
	}

	if rebalance {
		// parent was a leaf and grows
		s.rebalance(n.parent)
	}
	return true
}

// Remove removes h from the set and returns false if h was not active.
func (s *Status) Remove(h int) bool {
	n := s.nodes[h]
	if n == nil {
		return false
	}

	var o *statusNode
	for {
		if n.height == 1 {
			o = n.parent
			if o != nil {
				o.swapChild(n, nil)
				s.rebalance(o)
			} else {
				s.root = nil
			}
			s.returnNode(n)
			return true
		} else if n.right != nil {
			o = n.right
			for o.left != nil {
				o = o.left
			}
		} else if n.left != nil {
			o = n.left
			for o.right != nil {
				o = o.right
			}
		} else {
			panic("Impossible")
		}
		n.handle, o.handle = o.handle, n.handle
		s.nodes[n.handle], s.nodes[o.handle] = n, o
		n = o
	}
}

// Handles returns the active handles in order.
func (s *Status) Handles() []int {
	hs := make([]int, 0, s.n)
	for h := s.First(); h != -1; h = s.Next(h) {
		hs = append(hs, h)
	}
	return hs
}

func (s *Status) String() string {
	if s.root == nil {
		return "nil"
	}

	sb := strings.Builder{}
	s.root.print(&sb, 0)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
