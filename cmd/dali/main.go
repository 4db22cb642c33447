// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dali parses and merges JSON theme files, and inspects and
// simulates item view layouts.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/dali/base/errors"
	"cogentcore.org/dali/base/logx"
	"cogentcore.org/dali/cmd/dali/cmd"
	"cogentcore.org/dali/config"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRoot().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	var (
		vv, v, q   bool
		configFile string
		width      int
	)
	cfg := config.New()

	root := &cobra.Command{
		Use:          "dali",
		Short:        "Parse and merge JSON theme files, and inspect item view layouts",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
			if configFile == "" {
				return nil
			}
			return errors.Log(config.Open(cfg, configFile))
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show errors")
	pf.StringVarP(&configFile, "config", "c", "", "TOML or YAML config file")

	parse := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Check that JSON files parse, reporting error locations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Parse(c.OutOrStdout(), args...)
		},
	}

	merge := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge JSON files in order and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return errors.Log(cmd.Merge(c.Context(), c.OutOrStdout(), width, args...))
		},
	}
	merge.Flags().IntVarP(&width, "indent", "i", 2, "spaces per indentation level, or 0 for compact output")

	var path string
	tree := &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the tree of a JSON file with the type of each node",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return errors.Log(cmd.Tree(c.OutOrStdout(), args[0], path))
		},
	}
	tree.Flags().StringVarP(&path, "path", "p", "", "slash separated path of the node to print from")

	var (
		index    int
		position float32
	)
	layout := &cobra.Command{
		Use:   "layout",
		Short: "Print the item transforms of a configured layout at a layout position",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return errors.Log(cmd.Layout(c.OutOrStdout(), cfg, index, position))
		},
	}
	layout.Flags().IntVarP(&index, "layout", "l", 0, "index of the configured layout")
	layout.Flags().Float32VarP(&position, "position", "p", 0, "layout position")

	opts := cmd.DefaultSimulateOptions()
	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted pan session and print the item pool changes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return errors.Log(cmd.Simulate(c.OutOrStdout(), cfg, opts))
		},
	}
	sf := simulate.Flags()
	sf.IntVarP(&opts.Layout, "layout", "l", opts.Layout, "index of the configured layout")
	sf.IntVarP(&opts.Steps, "steps", "n", opts.Steps, "number of pan updates")
	sf.Float32Var(&opts.Pan, "pan", opts.Pan, "pixels per pan update, negative to scroll forward")
	sf.Float32Var(&opts.Frame, "frame", opts.Frame, "frame duration in seconds")
	sf.IntVar(&opts.MaxFrames, "max-frames", opts.MaxFrames, "maximum number of frames after the pan")

	watch := &cobra.Command{
		Use:   "watch [FILE...]",
		Short: "Merge JSON files and print the result again whenever they change",
		RunE: func(c *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				files = cfg.Themes
			}
			if len(files) == 0 {
				return errors.Log(errors.New("no files given and no themes configured"))
			}
			return errors.Log(cmd.Watch(c.Context(), c.OutOrStdout(), width, files...))
		},
	}
	watch.Flags().IntVarP(&width, "indent", "i", 2, "spaces per indentation level, or 0 for compact output")

	root.AddCommand(parse, merge, tree, layout, simulate, watch)
	return root
}
