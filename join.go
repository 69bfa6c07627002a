// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

/*
join(TL, k, TR) =
  if h(TL) > h(TR)+1 then joinRight(TL, k, TR)
  else if h(TR) > h(TL)+1 then joinLeft(TL,k,TR)
  else Node(TL, k, TR)

split(T,k) =
  if T = Leaf then (Leaf, false, Leaf)
  else
    (L,m,R) = expose(T)
    if k = m then (L, true, R)
    else if k < m then
      (LL, b, LR) = split(L, k)
      (LL, b, join(LR, m, R))
    else
      (RL, b, RR) = split(R, k)
      (join(L, m, RL), b, RR)

https://arxiv.org/pdf/1602.02120
*/

// split leaves the keys less than key in t and returns the greater ones
// in after. The node holding key, if any, is dropped.
func (t *avl[K]) split(key K) (found bool, after avl[K]) {
	after = avl[K]{cmp: t.cmp}
	if t.root == nil {
		return false, after
	}

	mid := t.root
	t.setRoot(mid.left)
	after.setRoot(mid.right)
	mid.left, mid.right, mid.height = nil, nil, -1

	c := t.cmp(key, mid.key)
	switch {
	case c == 0:
		return true, after
	case c < 0:
		found, leftRight := t.split(key)
		leftRight.join(mid, after)
		return found, leftRight
	default:
		found, rightRight := after.split(key)
		t.join(mid, after)
		return found, rightRight
	}
}

// join sets t to the tree holding t's keys, y.key and after's keys,
// which must already be in that order. y must be a detached node.
// If y is nil, the maximum of t is used in its place (join2).
// after is left empty.
func (t *avl[K]) join(y *node[K], after avl[K]) {
	if y == nil {
		if after.root == nil {
			return
		}
		if t.root == nil {
			t.setRoot(after.root)
			return
		}
		pos := t.max()
		y = *pos
		t.delete(pos)
	}

	if y.left != nil || y.right != nil || y.inTree() {
		panic("avlset: join misuse")
	}

	x := t.root
	z := after.root
	xh := x.safeHeight()
	zh := z.safeHeight()

	switch {
	case xh > zh+1:
		for x.right != nil && x.right.height > zh {
			x = x.right
		}
		// x.right.height <= zh, and y = (x.right, z) is at most
		// one level taller than x.right was.
		y.setLeft(x.right)
		y.setRight(z)
		x.setRight(y)

	case zh > xh+1:
		for z.left != nil && z.left.height > xh {
			z = z.left
		}
		y.setLeft(x)
		y.setRight(z.left)
		z.setLeft(y)
		t.root = after.root

	default:
		y.setLeft(x)
		y.setRight(z)
		t.setRoot(y)
	}

	after.root = nil
	t.rebalanceUp(y)
}
