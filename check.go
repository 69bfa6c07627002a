// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import (
	"errors"
	"fmt"
)

// ErrCorrupt is returned by [Set.Verify] when the tree
// does not satisfy the AVL invariants.
var ErrCorrupt = errors.New("avlset: corrupt tree")

// debugChecks makes every mutating method verify the whole tree
// and panic if it is corrupt. Tests turn it on.
var debugChecks = false

func (t *avl[K]) check() {
	if !debugChecks {
		return
	}
	if err := t.verify(); err != nil {
		panic(err)
	}
}

// Verify checks that s is a valid AVL tree: keys are in order,
// stored heights are correct, every node is balanced and
// every parent link matches the child link pointing back at it.
func (s *Set[K]) Verify() error {
	return s.verify()
}

func (t *avl[K]) verify() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, t.root.key)
	}
	_, err := t.verifyNode(t.root, nil, nil, nil)
	return err
}

// verifyNode checks the subtree at x, whose keys must lie strictly
// between lo and hi when those are non-nil, and returns its height.
func (t *avl[K]) verifyNode(x, parent, lo, hi *node[K]) (int, error) {
	if x == nil {
		return -1, nil
	}
	if x.parent != parent {
		return 0, fmt.Errorf("%w: bad parent link at %v", ErrCorrupt, x.key)
	}
	if lo != nil && t.cmp(lo.key, x.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than %v", ErrCorrupt, x.key, lo.key)
	}
	if hi != nil && t.cmp(x.key, hi.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than %v", ErrCorrupt, x.key, hi.key)
	}
	lh, err := t.verifyNode(x.left, x, lo, x)
	if err != nil {
		return 0, err
	}
	rh, err := t.verifyNode(x.right, x, x, hi)
	if err != nil {
		return 0, err
	}
	if h := 1 + max(lh, rh); x.height != h {
		return 0, fmt.Errorf("%w: node %v has height %d, want %d", ErrCorrupt, x.key, x.height, h)
	}
	if b := rh - lh; b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: node %v has balance %+d", ErrCorrupt, x.key, b)
	}
	return x.height, nil
}
