// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

// A node is a node in the AVL tree.
// The left and right links own the children;
// parent is only used to walk back up after an edit
// and is kept in sync by setLeft, setRight and setRoot.
type node[K any] struct {
	parent *node[K]
	left   *node[K]
	right  *node[K]
	height int
	key    K
}

func newNode[K any](key K) *node[K] {
	return &node[K]{key: key}
}

// safeHeight returns the height of the subtree rooted at n,
// which is -1 for a nil subtree.
func (n *node[K]) safeHeight() int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[K]) setHeight() {
	n.height = 1 + max(n.left.safeHeight(), n.right.safeHeight())
}

// balance is height(right) - height(left).
func (n *node[K]) balance() int {
	if n == nil {
		return 0
	}
	return n.right.safeHeight() - n.left.safeHeight()
}

func (x *node[K]) setLeft(y *node[K]) {
	x.left = y
	if y != nil {
		y.parent = x
	}
}

func (x *node[K]) setRight(y *node[K]) {
	x.right = y
	if y != nil {
		y.parent = x
	}
}

// detach unlinks x from its children and parent and marks it
// as no longer being in a tree.
func (x *node[K]) detach() {
	x.parent = nil
	x.left = nil
	x.right = nil
	x.height = -1
}

// inTree reports whether x still belongs to a tree.
// Detached nodes have height -1.
func (x *node[K]) inTree() bool {
	return x.height >= 0
}

func (x *node[K]) markDeleted() {
	if x == nil {
		return
	}
	l, r := x.left, x.right
	x.detach()
	l.markDeleted()
	r.markDeleted()
}

func (x *node[K]) first() *node[K] {
	for x != nil && x.left != nil {
		x = x.left
	}
	return x
}

func (x *node[K]) last() *node[K] {
	for x != nil && x.right != nil {
		x = x.right
	}
	return x
}

func (x *node[K]) next() *node[K] {
	if x.right == nil {
		for x.parent != nil && x.parent.right == x {
			x = x.parent
		}
		return x.parent
	}
	return x.right.first()
}

func (x *node[K]) prev() *node[K] {
	if x.left == nil {
		for x.parent != nil && x.parent.left == x {
			x = x.parent
		}
		return x.parent
	}
	return x.left.last()
}

func (x *node[K]) clone(parent *node[K]) *node[K] {
	if x == nil {
		return nil
	}
	y := &node[K]{parent: parent, height: x.height, key: x.key}
	y.left = x.left.clone(y)
	y.right = x.right.clone(y)
	return y
}
