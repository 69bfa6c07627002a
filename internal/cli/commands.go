// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordset/avlset"
)

const (
	opUnion     = "union"
	opIntersect = "intersect"
	opDiff      = "diff"
)

var setOps = map[string]struct {
	short string
	apply func(a, b *avlset.Set[int])
}{
	opUnion:     {"Print the union of sets A and B", (*avlset.Set[int]).Union},
	opIntersect: {"Print the intersection of sets A and B", (*avlset.Set[int]).Intersect},
	opDiff:      {"Print the keys of set A that are not in set B", (*avlset.Set[int]).Difference},
}

func newShowCmd(config *rootConfiguration) *cobra.Command {
	var keys, remove []int
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Build a set, optionally remove keys from it, and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := avlset.New(keys...)
			config.log.Debug().Ints("keys", keys).Int("height", s.Height()).Msg("built set")
			for _, k := range remove {
				if !s.Remove(k) {
					config.log.Warn().Int("key", k).Msg("key to remove not found")
				}
			}
			if err := s.Verify(); err != nil {
				return fmt.Errorf("verifying set: %w", err)
			}
			return config.write(cmd.OutOrStdout(), report{Sets: []namedSet{{"set", s}}})
		},
	}
	cmd.Flags().IntSliceVarP(&keys, "keys", "k", nil, "keys to insert, in order")
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "keys to remove after inserting")
	return cmd
}

func newSetOpCmd(config *rootConfiguration, op string) *cobra.Command {
	var a, b []int
	cmd := &cobra.Command{
		Use:   op,
		Short: setOps[op].short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sa, sb := avlset.New(a...), avlset.New(b...)
			config.log.Debug().
				Int("a_len", sa.Len()).Int("a_height", sa.Height()).
				Int("b_len", sb.Len()).Int("b_height", sb.Height()).
				Msg("computing " + op)
			setOps[op].apply(sa, sb)
			if err := sa.Verify(); err != nil {
				return fmt.Errorf("verifying %s result: %w", op, err)
			}
			config.log.Debug().Int("len", sa.Len()).Int("height", sa.Height()).Msg(op + " done")
			return config.write(cmd.OutOrStdout(), report{Sets: []namedSet{{op, sa}}})
		},
	}
	cmd.Flags().IntSliceVar(&a, "a", nil, "keys of set A")
	cmd.Flags().IntSliceVar(&b, "b", nil, "keys of set B")
	return cmd
}

func newSplitCmd(config *rootConfiguration) *cobra.Command {
	var keys []int
	var pivot int
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set around a pivot key and print both halves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			less := avlset.New(keys...)
			found, greater := less.Split(pivot)
			config.log.Debug().Int("pivot", pivot).Bool("found", found).Msg("split")
			for _, s := range []*avlset.Set[int]{less, greater} {
				if err := s.Verify(); err != nil {
					return fmt.Errorf("verifying split result: %w", err)
				}
			}
			return config.write(cmd.OutOrStdout(), report{
				Found: &found,
				Sets:  []namedSet{{"less", less}, {"greater", greater}},
			})
		},
	}
	cmd.Flags().IntSliceVarP(&keys, "keys", "k", nil, "keys of the set to split")
	cmd.Flags().IntVarP(&pivot, "pivot", "p", 0, "pivot key")
	return cmd
}
