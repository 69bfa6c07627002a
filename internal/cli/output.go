// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ordset/avlset"
)

const (
	outputTree = "tree"
	outputList = "list"
	outputYAML = "yaml"
	outputJSON = "json"
)

type (
	namedSet struct {
		name string
		set  *avlset.Set[int]
	}

	// report is what a command prints.
	report struct {
		Found *bool
		Sets  []namedSet
	}

	setSummary struct {
		Name    string `json:"name" yaml:"name"`
		Keys    []int  `json:"keys" yaml:"keys"`
		Len     int    `json:"len" yaml:"len"`
		Height  int    `json:"height" yaml:"height"`
		Balance int    `json:"balance" yaml:"balance"`
	}

	reportSummary struct {
		Found *bool        `json:"found,omitempty" yaml:"found,omitempty"`
		Sets  []setSummary `json:"sets" yaml:"sets"`
	}
)

func summarize(r report) reportSummary {
	out := reportSummary{Found: r.Found}
	for _, ns := range r.Sets {
		keys := slices.Collect(ns.set.All())
		if keys == nil {
			keys = []int{}
		}
		out.Sets = append(out.Sets, setSummary{
			Name:    ns.name,
			Keys:    keys,
			Len:     len(keys),
			Height:  ns.set.Height(),
			Balance: ns.set.Balance(),
		})
	}
	return out
}

func (c *rootConfiguration) write(w io.Writer, r report) error {
	switch c.Output {
	case outputTree, outputList:
		if r.Found != nil {
			if _, err := fmt.Fprintf(w, "found: %t\n", *r.Found); err != nil {
				return err
			}
		}
		for _, ns := range r.Sets {
			if len(r.Sets) > 1 {
				if _, err := fmt.Fprintf(w, "%s:\n", ns.name); err != nil {
					return err
				}
			}
			var text string
			if c.Output == outputTree {
				text = ns.set.String()
			} else {
				text = formatList(ns.set) + "\n"
			}
			if _, err := io.WriteString(w, text); err != nil {
				return err
			}
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summarize(r)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summarize(r)); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
}

func formatList(s *avlset.Set[int]) string {
	var sb strings.Builder
	for k := range s.All() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(k))
	}
	return sb.String()
}
