package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/laurence-myers/stitcher-scraper/internal/cli"
	"github.com/laurence-myers/stitcher-scraper/internal/config"
	"github.com/laurence-myers/stitcher-scraper/internal/http"
	"github.com/laurence-myers/stitcher-scraper/internal/logging"
	"github.com/laurence-myers/stitcher-scraper/internal/stitcher"
)

const logEvery = 1 << 20

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool
	var latestFlag bool

	rootCmd := &cobra.Command{
		Use:   "stitcher-fetch <userId> <feedId>",
		Short: "Download a feed's full episode list",
		Long: "Downloads the full episode catalog of a feed, archives the raw document\n" +
			"under the feeds directory and writes <feedId>.txt listing every episode\n" +
			"URL, oldest first. The feed may also be given as a known show name.",
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

			parsed, err := cli.ParseFetchArgs(args, settings.UserID, config.DefaultFeedTable().Resolve)
			if err != nil {
				return err
			}

			showBar := !verboseFlag && logging.IsTerminal(os.Stderr)
			return runFetch(cmd, settings.ToFetcherConfig(latestFlag), settings, logger, parsed, showBar)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.InvalidArgumentError{Message: err.Error()}
	})

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show verbose output")

	rootCmd.Flags().BoolVar(&latestFlag, "latest", false, "Fetch only the newest page of episodes")

	rootCmd.AddCommand(newFeedsCommand())

	return rootCmd
}

func runFetch(cmd *cobra.Command, cfg stitcher.FetcherConfig, settings *config.Settings, logger *zap.Logger, args cli.FetchArgs, showBar bool) error {
	client := http.NewClient(settings.UserAgent, settings.HTTPTimeout())
	fetcher := stitcher.NewFetcher(client, cfg)

	logger.Info("fetching feed", zap.String("feed", args.FeedID), zap.String("user", args.UserID))

	var bar *fetchProgress
	if showBar {
		bar = newFetchProgress(os.Stderr, args.FeedID)
		fetcher.OnProgress = bar.update
	} else {
		var nextLog int64 = logEvery
		fetcher.OnProgress = func(written, total int64) {
			if written >= nextLog {
				logger.Debug("downloading feed", zap.Int64("bytes", written), zap.Int64("total", total))
				nextLog += logEvery
			}
		}
	}

	res, err := fetcher.Fetch(cmd.Context(), args.UserID, args.FeedID)
	if bar != nil {
		bar.finish(err == nil)
	}
	if err != nil {
		return err
	}

	logger.Info("feed archived",
		zap.String("path", res.ArchivePath),
		zap.Int64("bytes", res.Bytes),
	)
	logger.Info("episode URLs written",
		zap.String("path", res.URLListPath),
		zap.Int("episodes", len(res.URLs)),
	)
	return nil
}
