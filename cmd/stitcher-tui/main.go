package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/laurence-myers/stitcher-scraper/internal/cli"
	"github.com/laurence-myers/stitcher-scraper/internal/config"
	"github.com/laurence-myers/stitcher-scraper/internal/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(cli.ExitCodeFor(err)))
	}
}

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:   "stitcher-tui [feedId] [directory]",
		Short: "Interactively tag and rename downloaded episodes",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
				return &cli.InvalidArgumentError{Message: err.Error()}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, _, err := cli.LoadSettings(configFlag)
			if err != nil {
				return err
			}

			var feedID string
			dir := "."
			if len(args) > 0 {
				feedID = args[0]
			}
			if len(args) > 1 {
				dir = args[1]
			}
			if err := cli.ValidateDirectory(dir); err != nil {
				return err
			}

			return tui.Run(settings, config.DefaultFeedTable(), feedID, dir)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.InvalidArgumentError{Message: err.Error()}
	})

	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	return rootCmd
}
