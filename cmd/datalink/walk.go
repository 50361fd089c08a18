// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SebastianSpeitel/datalink/bfs"
	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/dfs"
	"github.com/SebastianSpeitel/datalink/format"
)

func newWalkCmd(a *app) *cobra.Command {
	var (
		depth int
		order string
	)
	cmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "Print the values of each document in traversal order",
		Long: `Walks every document depth-first (dfs) or breadth-first (bfs) and prints one
line per reached value: indentation by depth, the link key and a one-level
rendering of the value. --depth 0 removes the depth limit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("depth") {
				a.cfg.Walk.MaxDepth = depth
			}
			if cmd.Flags().Changed("order") {
				a.cfg.Walk.Order = order
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			docs, err := a.documents(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, d := range docs {
				n, err := a.walk(cmd, out, d)
				if err != nil {
					return fmt.Errorf("document %d: %w", i, err)
				}
				a.log.Debug("walk finished", "document", i, "order", a.cfg.Walk.Order, "visited", n)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 8, "maximum link depth (0: unlimited)")
	cmd.Flags().StringVar(&order, "order", "dfs", "traversal order: dfs or bfs")

	return cmd
}

// walk prints every value reached from d and returns how many were printed.
func (a *app) walk(cmd *cobra.Command, out io.Writer, d core.Data) (int, error) {
	var n int
	line := func(data, key core.Data, depth int) error {
		n++
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		if key != nil {
			sb.WriteString(format.Stringer(key, format.WithMaxDepth(0), format.WithCollapseLinkless(true)).String())
			sb.WriteString(": ")
		}
		s, err := format.Sprint(data, format.WithMaxDepth(0), format.WithCollapseLinkless(true))
		if err != nil {
			return err
		}
		sb.WriteString(s)
		_, err = fmt.Fprintln(out, sb.String())

		return err
	}

	ctx := cmd.Context()
	if a.cfg.Walk.Order == "bfs" {
		opts := []bfs.Option{
			bfs.WithContext(ctx),
			bfs.WithOnVisit(func(v bfs.Visit) error { return line(v.Data, v.Key, v.Depth) }),
		}
		if a.cfg.Walk.MaxDepth > 0 {
			opts = append(opts, bfs.WithMaxDepth(a.cfg.Walk.MaxDepth))
		}
		_, err := bfs.BFS(d, opts...)

		return n, err
	}

	limit := a.cfg.Walk.MaxDepth
	if limit == 0 {
		limit = -1
	}
	_, err := dfs.DFS(d,
		dfs.WithContext(ctx),
		dfs.WithMaxDepth(limit),
		dfs.WithOnVisit(func(v dfs.Visit) error { return line(v.Data, v.Key, v.Depth) }),
	)

	return n, err
}
