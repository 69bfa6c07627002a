// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

// Self-balancing AVL tree with parent links.
// See Lewis & Denenberg, Data Structures and Their Algorithms.

// An avl is the tree shared by a Set and by the temporary
// halves produced while splitting and joining.
// All trees that are combined must use the same cmp.
type avl[K any] struct {
	root *node[K]
	cmp  func(K, K) int
}

func (t *avl[K]) setRoot(x *node[K]) {
	t.root = x
	if x != nil {
		x.parent = nil
	}
}

// replaceChild makes x take the place of old under p.
func (t *avl[K]) replaceChild(p, old, x *node[K]) {
	switch {
	case p == nil:
		if t.root != old {
			panic("avlset: corrupt tree")
		}
		t.setRoot(x)
	case p.left == old:
		p.setLeft(x)
	case p.right == old:
		p.setRight(x)
	default:
		panic("avlset: corrupt tree")
	}
}

// rebalanceUp restores heights and balance on the path from x to the root.
// It stops early once a subtree comes out with the height it had before.
func (t *avl[K]) rebalanceUp(x *node[K]) {
	for x != nil {
		h := x.height
		x.setHeight()
		switch x.balance() {
		case -2:
			if x.left.balance() > 0 {
				t.rotateLeft(x.left)
			}
			x = t.rotateRight(x)
		case +2:
			if x.right.balance() < 0 {
				t.rotateRight(x.right)
			}
			x = t.rotateLeft(x)
		}
		if x.height == h {
			return
		}
		x = x.parent
	}
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)).
func (t *avl[K]) rotateRight(y *node[K]) *node[K] {
	p := y.parent
	x := y.left
	b := x.right

	x.setRight(y)
	y.setLeft(b)
	t.replaceChild(p, y, x)

	y.setHeight()
	x.setHeight()
	return x
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c).
func (t *avl[K]) rotateLeft(x *node[K]) *node[K] {
	p := x.parent
	y := x.right
	b := y.left

	y.setLeft(x)
	x.setRight(b)
	t.replaceChild(p, x, y)

	x.setHeight()
	y.setHeight()
	return y
}

// locate finds key in t.
// If key is present, *pos is its node.
// Otherwise *pos is nil and is the link where key would be attached,
// and parent is the node owning that link (nil for an empty tree).
func (t *avl[K]) locate(key K) (pos **node[K], parent *node[K]) {
	pos, x := &t.root, t.root
	for x != nil {
		c := t.cmp(key, x.key)
		if c == 0 {
			break
		}
		parent = x
		if c < 0 {
			pos, x = &x.left, x.left
		} else {
			pos, x = &x.right, x.right
		}
	}
	return pos, parent
}

// search returns the node holding key, or the last node visited
// on the way down if key is absent. It returns nil only for an empty tree.
func (t *avl[K]) search(key K) *node[K] {
	pos, parent := t.locate(key)
	if *pos != nil {
		return *pos
	}
	return parent
}

func (t *avl[K]) get(key K) *node[K] {
	x := t.search(key)
	if x == nil || t.cmp(key, x.key) != 0 {
		return nil
	}
	return x
}

func (t *avl[K]) insert(key K) bool {
	pos, parent := t.locate(key)
	if *pos != nil {
		return false
	}
	x := newNode(key)
	x.parent = parent
	*pos = x
	t.rebalanceUp(parent)
	return true
}

func (t *avl[K]) delete(pos **node[K]) {
	x := *pos
	switch {
	case x == nil:
		return

	case x.left == nil:
		if *pos = x.right; *pos != nil {
			(*pos).parent = x.parent
		}
		t.rebalanceUp(x.parent)

	case x.right == nil:
		*pos = x.left
		x.left.parent = x.parent
		t.rebalanceUp(x.parent)

	default:
		t.deleteSwap(pos)
	}
	x.detach()
}

// deleteMin splices the minimum node out of the subtree at *zpos
// and returns it along with its former parent.
func (t *avl[K]) deleteMin(zpos **node[K]) (z, zparent *node[K]) {
	for (*zpos).left != nil {
		zpos = &(*zpos).left
	}
	z = *zpos
	zparent = z.parent
	*zpos = z.right
	if *zpos != nil {
		(*zpos).parent = zparent
	}
	return z, zparent
}

// deleteSwap removes *pos, which has two children,
// by moving its in-order successor into its place.
func (t *avl[K]) deleteSwap(pos **node[K]) {
	x := *pos
	z, zparent := t.deleteMin(&x.right)

	*pos = z
	if zparent == x {
		zparent = z
	}
	z.parent = x.parent
	z.height = x.height
	z.setLeft(x.left)
	z.setRight(x.right)

	t.rebalanceUp(zparent)
}

func (t *avl[K]) min() **node[K] {
	pos, x := &t.root, t.root
	for x != nil && x.left != nil {
		pos, x = &x.left, x.left
	}
	return pos
}

func (t *avl[K]) max() **node[K] {
	pos, x := &t.root, t.root
	for x != nil && x.right != nil {
		pos, x = &x.right, x.right
	}
	return pos
}
