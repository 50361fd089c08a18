// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SebastianSpeitel/datalink/converters"
	"github.com/SebastianSpeitel/datalink/core"
	"github.com/SebastianSpeitel/datalink/internal/config"
	"github.com/SebastianSpeitel/datalink/internal/logging"
)

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	getenv     func(string) string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{getenv: os.Getenv, log: logging.NewNop()}
	root := &cobra.Command{
		Use:           "datalink",
		Short:         "Inspect YAML documents as linked data",
		Long:          `datalink reads YAML documents and renders, queries or walks them as values with scalars and keyed links.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvVar+" or ./"+config.DefaultFile+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(newFmtCmd(a), newQueryCmd(a), newWalkCmd(a))

	return root
}

// setup loads the configuration and builds the logger. Flags override the
// file.
func (a *app) setup(cmd *cobra.Command) error {
	path := config.Resolve(a.configPath, a.getenv)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.NewWriter(cmd.ErrOrStderr(), level)
	a.log.Debug("configuration loaded", "path", path, "log_level", cfg.LogLevel)

	return nil
}

// documents reads every YAML document of the named file; "-" is stdin.
func (a *app) documents(cmd *cobra.Command, name string) ([]core.Data, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	docs, err := converters.FromYAMLAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.log.Debug("documents read", "file", name, "count", len(docs))

	return docs, nil
}
