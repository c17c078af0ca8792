package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/laurence-myers/stitcher-scraper/internal/config"
)

func newFeedsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "feeds",
		Short: "List known show names and their feed IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderFeedTable(config.DefaultFeedTable()))
			return nil
		},
	}
}

func renderFeedTable(feeds *config.FeedTable) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"Show", "Feed ID"})

	for _, e := range feeds.Entries() {
		tw.AppendRow(table.Row{e.Name, e.ID})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
