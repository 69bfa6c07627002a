// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import "iter"

// All returns an iterator over the keys of s in ascending order.
// If s is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		for x := s.root.first(); x != nil && yield(x.key); {
			x = s.after(x)
		}
	}
}

// Backward returns an iterator over the keys of s in descending order.
// If s is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		for x := s.root.last(); x != nil && yield(x.key); {
			x = s.before(x)
		}
	}
}

// Scan returns an iterator over the keys k of s with lo ≤ k ≤ hi,
// in ascending order.
//
// If s is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (s *Set[K]) Scan(lo, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		pos, parent := s.locate(lo)
		x := *pos
		if x == nil {
			x = s.nextAfter(pos, parent)
		}
		for x != nil && s.cmp(x.key, hi) <= 0 && yield(x.key) {
			x = s.after(x)
		}
	}
}

// after returns the node following x.
// If x has been removed from the tree since it was visited,
// the successor is found by looking up x's key again.
func (t *avl[K]) after(x *node[K]) *node[K] {
	if x.inTree() {
		return x.next()
	}
	return t.nextAfter(t.locate(x.key))
}

func (t *avl[K]) before(x *node[K]) *node[K] {
	if x.inTree() {
		return x.prev()
	}
	return t.prevBefore(t.locate(x.key))
}

// nextAfter returns the first node after the position returned by locate.
func (t *avl[K]) nextAfter(pos **node[K], parent *node[K]) *node[K] {
	switch {
	case *pos != nil:
		return (*pos).next()
	case parent == nil:
		return nil
	case pos == &parent.left:
		return parent
	default:
		return parent.next()
	}
}

// prevBefore returns the last node before the position returned by locate.
func (t *avl[K]) prevBefore(pos **node[K], parent *node[K]) *node[K] {
	switch {
	case *pos != nil:
		return (*pos).prev()
	case parent == nil:
		return nil
	case pos == &parent.right:
		return parent
	default:
		return parent.prev()
	}
}
