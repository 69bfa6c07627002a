// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avlset implements in-memory ordered sets
// stored as AVL trees.
//
// Besides the usual Insert, Remove and Contains, a [Set] supports
// Split and Join, and the set operations Union, Intersect and
// Difference built on top of them. Operations that combine two
// sets consume their argument: its nodes are moved into the
// receiver and the argument is left empty.
//
// A Set is not safe for concurrent use.
package avlset

import "cmp"

// A Set is an ordered set of keys of type K.
// Sets are created with [New] or [NewFunc].
type Set[K any] struct {
	avl[K]
}

// New returns a set of keys ordered by K's standard Go ordering,
// holding the given keys.
func New[K cmp.Ordered](keys ...K) *Set[K] {
	return NewFunc(cmp.Compare[K], keys...)
}

// NewFunc returns a set ordered by cmp, holding the given keys.
// cmp(a, b) must return a negative number when a < b,
// a positive number when a > b and zero when a == b.
func NewFunc[K any](cmp func(K, K) int, keys ...K) *Set[K] {
	if cmp == nil {
		panic("avlset: nil compare function")
	}
	s := &Set[K]{avl[K]{cmp: cmp}}
	for _, k := range keys {
		s.insert(k)
	}
	s.check()
	return s
}

// Compare returns the comparison function of s.
func (s *Set[K]) Compare() func(K, K) int {
	return s.cmp
}

// Contains reports whether key is in s.
func (s *Set[K]) Contains(key K) bool {
	if s == nil {
		return false
	}
	return s.get(key) != nil
}

// Insert adds key to s.
// It reports whether key was added; inserting a key that
// is already present leaves s unchanged.
func (s *Set[K]) Insert(key K) bool {
	ok := s.insert(key)
	s.check()
	return ok
}

// Remove deletes key from s.
// It reports whether key was present.
func (s *Set[K]) Remove(key K) bool {
	pos, _ := s.locate(key)
	if *pos == nil {
		return false
	}
	s.delete(pos)
	s.check()
	return true
}

// Min returns the smallest key in s.
func (s *Set[K]) Min() (key K, ok bool) {
	if x := *s.min(); x != nil {
		return x.key, true
	}
	return key, false
}

// Max returns the largest key in s.
func (s *Set[K]) Max() (key K, ok bool) {
	if x := *s.max(); x != nil {
		return x.key, true
	}
	return key, false
}

// Len returns the number of keys in s.
// It walks the whole tree.
func (s *Set[K]) Len() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// Height returns the height of the tree: -1 for an empty set,
// 0 for a set with one key.
func (s *Set[K]) Height() int {
	return s.root.safeHeight()
}

// Balance returns the balance factor of the root,
// height(right) - height(left). It is always -1, 0 or +1.
func (s *Set[K]) Balance() int {
	return s.root.balance()
}

// Clear removes all keys from s.
func (s *Set[K]) Clear() {
	s.clear()
}

// Clone returns a copy of s that shares no nodes with it.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{avl[K]{root: s.root.clone(nil), cmp: s.cmp}}
}

// Split removes from s all keys greater than key and returns them in more.
// It also removes key itself, reporting whether it was present.
func (s *Set[K]) Split(key K) (found bool, more *Set[K]) {
	found, after := s.split(key)
	more = &Set[K]{after}
	s.check()
	more.check()
	return found, more
}

// Join adds key and all of more's keys to s, leaving more empty.
// Every key in s must be less than key, and every key in more greater.
func (s *Set[K]) Join(key K, more *Set[K]) {
	if x := *s.max(); x != nil && s.cmp(x.key, key) >= 0 {
		panic("avlset: Join keys out of order")
	}
	if x := *more.min(); x != nil && s.cmp(key, x.key) >= 0 {
		panic("avlset: Join keys out of order")
	}
	s.join(newDetached(key), more.avl)
	more.root = nil
	s.check()
}

// Concat moves all of more's keys into s, leaving more empty.
// Every key in s must be less than every key in more.
func (s *Set[K]) Concat(more *Set[K]) {
	x, y := *s.max(), *more.min()
	if x != nil && y != nil && s.cmp(x.key, y.key) >= 0 {
		panic("avlset: Concat keys out of order")
	}
	s.join(nil, more.avl)
	more.root = nil
	s.check()
}

// DeleteRange removes all keys k with lo ≤ k ≤ hi.
func (s *Set[K]) DeleteRange(lo, hi K) {
	if s.cmp(lo, hi) > 0 {
		return
	}
	_, after := s.split(hi)
	_, middle := s.split(lo)
	s.join(nil, after)
	middle.clear()
	s.check()
}

// Union sets s to the union of s and other. other is left empty.
func (s *Set[K]) Union(other *Set[K]) {
	if s == other {
		return
	}
	o := other.take()
	s.union(o)
	s.check()
}

// Intersect sets s to the intersection of s and other. other is left empty.
func (s *Set[K]) Intersect(other *Set[K]) {
	if s == other {
		return
	}
	o := other.take()
	s.intersect(o)
	s.check()
}

// Difference removes from s every key in other. other is left empty.
func (s *Set[K]) Difference(other *Set[K]) {
	if s == other {
		s.Clear()
		return
	}
	o := other.take()
	s.difference(o)
	s.check()
}

// take moves the tree out of s.
func (s *Set[K]) take() avl[K] {
	t := s.avl
	s.root = nil
	return t
}

func newDetached[K any](key K) *node[K] {
	x := newNode(key)
	x.height = -1
	return x
}
