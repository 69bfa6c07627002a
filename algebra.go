// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

// The set operations below only split and join.
// Each one consumes other: its root node is moved into the result
// or dropped, and its subtrees are handed to the recursive calls.

// expose detaches the root of t and returns it with its two subtrees.
func (t *avl[K]) expose() (mid *node[K], left, right avl[K]) {
	mid = t.root
	left = avl[K]{cmp: t.cmp}
	right = avl[K]{cmp: t.cmp}
	left.setRoot(mid.left)
	right.setRoot(mid.right)
	mid.detach()
	t.root = nil
	return mid, left, right
}

func (t *avl[K]) union(other avl[K]) {
	if other.root == nil {
		return
	}
	if t.root == nil {
		t.setRoot(other.root)
		return
	}
	mid, left, right := other.expose()
	_, after := t.split(mid.key)
	t.union(left)
	after.union(right)
	t.join(mid, after)
}

func (t *avl[K]) intersect(other avl[K]) {
	if t.root == nil {
		other.root.markDeleted()
		return
	}
	if other.root == nil {
		t.clear()
		return
	}
	mid, left, right := other.expose()
	found, after := t.split(mid.key)
	t.intersect(left)
	after.intersect(right)
	if found {
		t.join(mid, after)
	} else {
		t.join(nil, after)
	}
}

func (t *avl[K]) difference(other avl[K]) {
	if t.root == nil {
		other.root.markDeleted()
		return
	}
	if other.root == nil {
		return
	}
	mid, left, right := other.expose()
	_, after := t.split(mid.key)
	t.difference(left)
	after.difference(right)
	t.join(nil, after)
}

func (t *avl[K]) clear() {
	t.root.markDeleted()
	t.root = nil
}
