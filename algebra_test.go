// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import (
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAlgebraScenario(t *testing.T) {
	a := func() *Set[int] { return New(7, 8, 4, 5, 2, 10) }
	b := func() *Set[int] { return New(12, 7, 9, 6, 10) }

	u := a()
	u.Union(b())
	require.Equal(t, []int{2, 4, 5, 6, 7, 8, 9, 10, 12}, keys(u))

	d := a()
	d.Difference(b())
	require.Equal(t, []int{2, 4, 5, 8}, keys(d))

	i := b()
	i.Intersect(a())
	require.Equal(t, []int{7, 10}, keys(i))
}

func TestSetAlgebraConsumesArgument(t *testing.T) {
	for _, op := range []func(s, other *Set[int]){
		(*Set[int]).Union,
		(*Set[int]).Intersect,
		(*Set[int]).Difference,
	} {
		s := New(1, 2, 3)
		other := New(2, 3, 4)
		op(s, other)
		require.Nil(t, other.root)
		require.Equal(t, 0, other.Len())
		require.NoError(t, s.Verify())
	}
}

func TestSetAlgebraEmpty(t *testing.T) {
	s := New(1, 2, 3)
	s.Union(New[int]())
	require.Equal(t, []int{1, 2, 3}, keys(s))

	s = New[int]()
	s.Union(New(1, 2, 3))
	require.Equal(t, []int{1, 2, 3}, keys(s))

	s = New(1, 2, 3)
	s.Intersect(New[int]())
	require.Empty(t, keys(s))

	s = New[int]()
	s.Intersect(New(1, 2, 3))
	require.Empty(t, keys(s))

	s = New(1, 2, 3)
	s.Difference(New[int]())
	require.Equal(t, []int{1, 2, 3}, keys(s))

	s = New[int]()
	s.Difference(New(1, 2, 3))
	require.Empty(t, keys(s))
}

func TestSetAlgebraSelf(t *testing.T) {
	s := New(1, 2, 3)
	s.Union(s)
	require.Equal(t, []int{1, 2, 3}, keys(s))
	s.Intersect(s)
	require.Equal(t, []int{1, 2, 3}, keys(s))
	s.Difference(s)
	require.Empty(t, keys(s))
}

func randomKeys(rnd *rand.Rand, n, limit int) map[int]bool {
	m := map[int]bool{}
	for range n {
		m[rnd.IntN(limit)] = true
	}
	return m
}

func fromMap(m map[int]bool) *Set[int] {
	return New(slices.Collect(maps.Keys(m))...)
}

func sortedKeys(m map[int]bool) []int {
	return slices.Sorted(maps.Keys(m))
}

func TestSetAlgebraRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		sa := randomKeys(rnd, rnd.IntN(200), 300)
		sb := randomKeys(rnd, rnd.IntN(200), 300)

		union := maps.Clone(sa)
		inter := map[int]bool{}
		diff := map[int]bool{}
		for k := range sb {
			union[k] = true
			if sa[k] {
				inter[k] = true
			}
		}
		for k := range sa {
			if !sb[k] {
				diff[k] = true
			}
		}

		u := fromMap(sa)
		u.Union(fromMap(sb))
		require.NoError(t, u.Verify())
		require.Equal(t, sortedKeys(union), keys(u))

		i := fromMap(sa)
		i.Intersect(fromMap(sb))
		require.NoError(t, i.Verify())
		require.Equal(t, sortedKeys(inter), keys(i))

		d := fromMap(sa)
		d.Difference(fromMap(sb))
		require.NoError(t, d.Verify())
		require.Equal(t, sortedKeys(diff), keys(d))
	}
}

func TestSetAlgebraDisjointSizes(t *testing.T) {
	big := New(seq(0, 2000)...)
	small := New(-5, 1000, 5000)
	big.Union(small)
	require.NoError(t, big.Verify())
	require.Equal(t, 2003, big.Len())
	require.LessOrEqual(t, big.Height(), maxAVLHeight(2003))
}
