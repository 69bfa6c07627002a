// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import (
	"bytes"
	"fmt"
)

// String draws the tree sideways, right subtree on top,
// one key per line. Should not be used to print out large sets.
func (s *Set[K]) String() string {
	if s == nil || s.root == nil {
		return "────┤ empty\n"
	}
	var buf bytes.Buffer
	s.root.print(&buf, "", false, true)
	return buf.String()
}

func (x *node[K]) print(buf *bytes.Buffer, prefix string, tail, isRoot bool) {
	if x.right != nil {
		x.right.print(buf, rightNodePrefix(prefix, tail), false, false)
	}
	fmt.Fprintf(buf, "%s─┤ %v\n", branch(prefix, isRoot, tail), x.key)
	if x.left != nil {
		x.left.print(buf, leftNodePrefix(prefix, tail, isRoot), true, false)
	}
}

func branch(prefix string, isRoot, tail bool) string {
	if isRoot {
		return prefix + "───"
	} else if tail {
		return prefix + "└──"
	}
	return prefix + "┌──"
}

func rightNodePrefix(prefix string, tail bool) string {
	if tail {
		return prefix + "│   "
	}
	return prefix + "    "
}

func leftNodePrefix(prefix string, tail, isRoot bool) string {
	if tail || isRoot {
		return prefix + "    "
	}
	return prefix + "│   "
}

// Dump returns the tree as an s-expression,
// (h<height> key left right), with nil for empty subtrees.
func (s *Set[K]) Dump() string {
	var buf bytes.Buffer
	var walk func(*node[K])
	walk = func(x *node[K]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(h%d %v ", x.height, x.key)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(s.root)
	return buf.String()
}
