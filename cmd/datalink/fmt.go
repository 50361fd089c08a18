// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SebastianSpeitel/datalink/format"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		verbose   bool
		depth     int
		collapse  bool
		streaming bool
		sorted    bool
	)
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Render every document of a YAML file",
		Long:  `Renders each document with its values and links, one document per line (or block in verbose mode). FILE "-" reads stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("verbose") {
				a.cfg.Format.Verbose = verbose
			}
			if flags.Changed("depth") {
				a.cfg.Format.MaxDepth = depth
			}
			if flags.Changed("collapse") {
				a.cfg.Format.Collapse = collapse
			}
			if flags.Changed("streaming") && streaming {
				a.cfg.Format.Strategy = format.Streaming.String()
			}
			if flags.Changed("sorted") {
				a.cfg.Format.SortedKeys = sorted
			}

			f, err := a.formatter()
			if err != nil {
				return err
			}
			docs, err := a.documents(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range docs {
				if err = f.Fprint(out, d); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "multi-line output")
	cmd.Flags().IntVarP(&depth, "depth", "d", format.DefaultMaxDepth, "maximum link depth")
	cmd.Flags().BoolVar(&collapse, "collapse", true, "render linkless values as {scalars}")
	cmd.Flags().BoolVar(&streaming, "streaming", false, "write links as they are pushed")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "sort links by key")

	return cmd
}

// formatter builds a formatter from the current configuration.
func (a *app) formatter() (*format.Formatter, error) {
	opts, err := a.cfg.FormatOptions()
	if err != nil {
		return nil, err
	}

	return format.New(opts...)
}
