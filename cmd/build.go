package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Viibezz/tigris-public/internal/assets"
	"github.com/Viibezz/tigris-public/internal/config"
	"github.com/Viibezz/tigris-public/internal/pipeline"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from templates, data and assets",
	Long: `The build command empties the output directory, renders every page
template with the shared partials, environment and menu data, then copies and
minifies the static assets. Pages that fail are logged and skipped; the
command still succeeds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runBuild(cmd.Context(), appConfig, logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// buildResult is what one full build did.
type buildResult struct {
	Pages  pipeline.Report
	Assets assets.Report
}

// runBuild cleans the output directory, renders the pages and stages the
// assets. Skipped pages and assets are not errors.
func runBuild(ctx context.Context, cfg config.Config, logger *slog.Logger) (buildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	logger.Info("Starting site build", "source", cfg.SourceDir, "output", cfg.OutputDir)

	if err := assets.Clean(cfg.OutputDir, logger); err != nil {
		return buildResult{}, fmt.Errorf("failed to clean output directory: %w", err)
	}

	pages, err := pipeline.New(pipeline.OptionsFromConfig(cfg), logger).Run(ctx)
	if err != nil {
		return buildResult{}, fmt.Errorf("page build interrupted: %w", err)
	}

	staged := assets.New(assets.OptionsFromConfig(cfg), logger).Stage()

	logger.Info("Site build complete",
		"pages", len(pages.Rendered),
		"skipped", len(pages.Skipped),
		"assets", len(staged.Copied)+len(staged.Minified),
		"duration", time.Since(start).Round(time.Millisecond).String())
	return buildResult{Pages: pages, Assets: staged}, nil
}
