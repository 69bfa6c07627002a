// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func init() {
	debugChecks = true
}

func keys[K any](s *Set[K]) []K {
	return slices.Collect(s.All())
}

func Test(t *testing.T) {
	for range 10 {
		const N = 10
		s := New[int]()
		perm := rand.Perm(N)
		for _, x := range perm {
			require.True(t, s.Insert(x))
		}
		require.NoError(t, s.Verify())

		for _, x := range perm {
			require.True(t, s.Contains(x), "Contains(%d)", x)
		}
		require.False(t, s.Contains(-1))
		require.False(t, s.Contains(N))

		all := keys(s)
		require.True(t, match(all, 0, N-1), "All() = %v, want 0..%d", all, N-1)
		require.Equal(t, N, s.Len())

		for lo := -1; lo <= N; lo++ {
			for hi := lo; hi <= N; hi++ {
				scan := slices.Collect(s.Scan(lo, hi))
				require.True(t, match(scan, max(lo, 0), min(hi, N-1)), "Scan(%d, %d) = %v", lo, hi, scan)
			}
		}

		for i, x := range perm {
			require.True(t, s.Remove(x))
			require.False(t, s.Contains(x))
			want := slices.Clone(perm[i+1:])
			slices.Sort(want)
			got := keys(s)
			if len(want) == 0 {
				require.Empty(t, got)
			} else {
				require.Equal(t, want, got, "after Remove %v", perm[:i+1])
			}
		}
		require.Equal(t, -1, s.Height())
		require.Nil(t, s.root)
	}
}

func match(xs []int, lo, hi int) bool {
	if len(xs) != hi+1-lo {
		return false
	}
	for i, x := range xs {
		if x != lo+i {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	s := New(3, 1, 2, 3, 1)
	require.Equal(t, []int{1, 2, 3}, keys(s))

	one := New(42)
	require.Equal(t, 0, one.Height())
	require.Equal(t, []int{42}, keys(one))

	require.PanicsWithValue(t, "avlset: nil compare function", func() { NewFunc[int](nil) })
}

func TestNewFunc(t *testing.T) {
	byLen := func(a, b string) int {
		if c := len(a) - len(b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}
	s := NewFunc(byLen, "ccc", "a", "bb", "aa", "b")
	require.Equal(t, []string{"a", "b", "aa", "bb", "ccc"}, keys(s))
	require.True(t, s.Contains("bb"))
	require.False(t, s.Contains("dddd"))

	desc := NewFunc(func(a, b int) int { return b - a }, 1, 5, 3)
	require.Equal(t, []int{5, 3, 1}, keys(desc))
}

func TestInsertDuplicate(t *testing.T) {
	s := New(7, 8, 4, 5, 2)
	before := s.Dump()
	require.False(t, s.Insert(5))
	require.Equal(t, before, s.Dump())
	require.False(t, s.Insert(5))
	require.Equal(t, before, s.Dump())
	require.Equal(t, 5, s.Len())
}

func TestRemoveMissing(t *testing.T) {
	s := New[int]()
	require.False(t, s.Remove(1))

	s = New(1, 2, 3)
	require.False(t, s.Remove(4))
	require.Equal(t, []int{1, 2, 3}, keys(s))
}

func TestMinMax(t *testing.T) {
	s := New[int]()
	_, ok := s.Min()
	require.False(t, ok)
	_, ok = s.Max()
	require.False(t, ok)

	s = New(5, 3, 9, 1)
	k, ok := s.Min()
	require.True(t, ok)
	require.Equal(t, 1, k)
	k, ok = s.Max()
	require.True(t, ok)
	require.Equal(t, 9, k)
}

func TestClone(t *testing.T) {
	s := New(1, 2, 3, 4, 5)
	c := s.Clone()
	require.NoError(t, c.Verify())
	require.Equal(t, s.Dump(), c.Dump())

	c.Remove(3)
	require.True(t, s.Contains(3))
	require.False(t, c.Contains(3))
}

func TestClear(t *testing.T) {
	s := New(1, 2, 3)
	s.Clear()
	require.Equal(t, 0, s.Len())
	require.True(t, s.Insert(4))
	require.Equal(t, []int{4}, keys(s))
}

func TestNilSet(t *testing.T) {
	var s *Set[int]
	require.False(t, s.Contains(1))
	require.Empty(t, keys(s))
}
