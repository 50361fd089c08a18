// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/query"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		keys  []string
		text  string
		keyed bool
		limit int
	)
	cmd := &cobra.Command{
		Use:   "query FILE",
		Short: "Print the links of each document selected by a query",
		Long: `Selects links of the top-level value of every document. --key may repeat and
matches any of the given keys; --text keeps targets offering exactly that text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := query.New().Limit(limit)
			if len(keys) > 0 {
				alts := make([]query.LinkFilter, len(keys))
				for i, k := range keys {
					alts[i] = query.KeyText(k)
				}
				b.Filter(query.AnyLinks(alts...))
			}
			if keyed {
				b.Filter(query.Keyed())
			}
			if cmd.Flags().Changed("text") {
				b.Where(query.Text(text))
			}
			q, err := b.Build()
			if err != nil {
				return err
			}
			a.log.Debug("query built", "query", q.String())

			f, err := a.formatter()
			if err != nil {
				return err
			}
			docs, err := a.documents(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, d := range docs {
				sink := core.LinksFunc(func(target, key core.Data) (core.Control, error) {
					t, err := f.Sprint(target)
					if err != nil {
						return core.Break, err
					}
					if key == nil {
						_, err = fmt.Fprintln(out, t)
						return core.Continue, err
					}
					k, err := f.Sprint(key)
					if err != nil {
						return core.Break, err
					}
					_, err = fmt.Fprintf(out, "%s -> %s\n", k, t)

					return core.Continue, err
				})
				if err = q.Run(d, sink); err != nil {
					return fmt.Errorf("document %d: %w", i, err)
				}
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&keys, "key", "k", nil, "select links with this text key (repeatable)")
	cmd.Flags().StringVarP(&text, "text", "t", "", "select targets offering this text")
	cmd.Flags().BoolVar(&keyed, "keyed", false, "select keyed links only")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after n links per document (0: all)")

	return cmd
}
