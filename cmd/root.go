package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Viibezz/tigris-public/internal/config"
	"github.com/Viibezz/tigris-public/internal/logging"
)

var cfgFile string
var appConfig config.Config
var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "tigris",
	Short: "Tigris site builder",
	Long: `tigris renders the Handlebars page templates of the Tigris site into
static HTML and stages its assets into the output directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.String("source", "", "source directory (default \"src\")")
	flags.String("output", "", "output directory (default \"docs\")")
	flags.String("env-file", "", "dotenv file merged into every page (default \"build_utils/.env\")")
	flags.Int("workers", 0, "number of pages rendered concurrently (default 1)")
	flags.String("log-level", "", "log level: debug, info, warn or error (default \"info\")")
	flags.String("log-format", "", "log format: text or json (default \"text\")")
}

// flagKeys maps persistent flags onto configuration keys.
var flagKeys = map[string]string{
	"source":     "sourceDir",
	"output":     "outputDir",
	"env-file":   "envFile",
	"workers":    "workers",
	"log-level":  "logLevel",
	"log-format": "logFormat",
}

func setDefaults(v *viper.Viper) {
	d := config.Default()
	v.SetDefault("sourceDir", d.SourceDir)
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("envFile", d.EnvFile)
	v.SetDefault("templatesDir", d.TemplatesDir)
	v.SetDefault("partialsDir", d.PartialsDir)
	v.SetDefault("assetsDir", d.AssetsDir)
	v.SetDefault("dataDir", d.DataDir)
	v.SetDefault("menuDataFile", d.MenuDataFile)
	v.SetDefault("cateringDataFile", d.CateringDataFile)
	v.SetDefault("templateExt", d.TemplateExt)
	v.SetDefault("homeTemplate", d.HomeTemplate)
	v.SetDefault("assetFolders", d.AssetFolders)
	v.SetDefault("rootFiles", d.RootFiles)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("logFormat", d.LogFormat)
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("TIGRIS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", flag, err)
		}
	}

	usedFile := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	} else {
		usedFile = v.ConfigFileUsed()
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	appConfig = cfg

	l, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	logger = l

	if usedFile != "" {
		logger.Debug("Using config file", "path", usedFile)
	} else {
		logger.Debug("No config file found, using defaults and environment")
	}
	return nil
}
