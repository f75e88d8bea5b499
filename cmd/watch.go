package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Viibezz/tigris-public/internal/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Builds the site and rebuilds it whenever a source changes",
	Long: `The watch command performs an initial build, then watches the source
tree and the environment file's directory. After a short quiet period
following a change it runs a full rebuild. Stop it with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Performing initial build")
		if _, err := runBuild(ctx, appConfig, logger); err != nil {
			return err
		}

		rebuild := func(ctx context.Context) error {
			_, err := runBuild(ctx, appConfig, logger)
			return err
		}
		w, err := watch.New(appConfig.WatchPaths(), rebuild, logger)
		if err != nil {
			return err
		}
		logger.Info("Watching for changes, press Ctrl+C to stop")
		return w.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
