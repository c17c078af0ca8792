package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/laurence-myers/stitcher-scraper/internal/cli"
	"github.com/laurence-myers/stitcher-scraper/internal/config"
	"github.com/laurence-myers/stitcher-scraper/internal/http"
	"github.com/laurence-myers/stitcher-scraper/internal/logging"
	"github.com/laurence-myers/stitcher-scraper/internal/organizer"
	"github.com/laurence-myers/stitcher-scraper/internal/stitcher"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag   string
		verboseFlag  bool
		tagFlag      bool
		renameFlag   bool
		playlistFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "stitcher-organise <feedId> <directory>",
		Short: "Tag and rename downloaded episodes using an archived feed",
		Long: "Reads the archived feed document for <feedId> and tags and/or renames the\n" +
			"matching episode files in <directory>. With neither --tag nor --rename,\n" +
			"both passes run. Renames are recorded in renames.tsv in the directory.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, envPath, err := cli.LoadSettings(configFlag)
			if err != nil {
				return err
			}

			logger := logging.New(verboseFlag)
			defer logger.Sync()
			if envPath != "" {
				logger.Debug("loaded environment", zap.String("path", envPath))
			}

			feeds := config.DefaultFeedTable()
			parsed, err := cli.ParseOrganiseArgs(args, feeds.Resolve)
			if err != nil {
				return err
			}

			if show, ok := feeds.NameOf(parsed.FeedID); ok {
				logger = logger.With(zap.String("show", show))
			}

			data, err := stitcher.LoadFeed(settings.FeedsDir, parsed.FeedID)
			if err != nil {
				return err
			}
			logger.Info("loaded feed",
				zap.String("name", data.Feed.Name),
				zap.Int("episodes", len(data.Episodes)),
			)

			client := http.NewClient(settings.UserAgent, settings.HTTPTimeout())
			org := organizer.NewOrganizer(settings, client, logging.ProgressLogger(logger))
			summary, err := org.Run(cmd.Context(), parsed.Directory, data, organizer.Options{
				Tag:      tagFlag,
				Rename:   renameFlag,
				Playlist: playlistFlag,
			})
			if err != nil {
				return err
			}

			logger.Info("done",
				zap.Int("tagged", summary.Tagged),
				zap.Int("renamed", summary.Renamed),
				zap.Int("skipped", summary.Skipped),
				zap.Int("failed", summary.Failed),
			)
			return nil
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.InvalidArgumentError{Message: err.Error()}
	})

	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show verbose output")
	rootCmd.Flags().BoolVar(&tagFlag, "tag", false, "Write ID3 tags")
	rootCmd.Flags().BoolVar(&renameFlag, "rename", false, "Rename files and write the rename manifest")
	rootCmd.Flags().BoolVar(&playlistFlag, "playlist", false, "Create a playlist of the episode files")

	return rootCmd
}
