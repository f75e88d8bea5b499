package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Config is the build configuration. Directory fields below SourceDir are
// relative to it; DataDir is relative to the assets directory.
type Config struct {
	SourceDir        string   `mapstructure:"sourceDir" yaml:"sourceDir"`
	OutputDir        string   `mapstructure:"outputDir" yaml:"outputDir"`
	EnvFile          string   `mapstructure:"envFile" yaml:"envFile"`
	TemplatesDir     string   `mapstructure:"templatesDir" yaml:"templatesDir"`
	PartialsDir      string   `mapstructure:"partialsDir" yaml:"partialsDir"`
	AssetsDir        string   `mapstructure:"assetsDir" yaml:"assetsDir"`
	DataDir          string   `mapstructure:"dataDir" yaml:"dataDir"`
	MenuDataFile     string   `mapstructure:"menuDataFile" yaml:"menuDataFile"`
	CateringDataFile string   `mapstructure:"cateringDataFile" yaml:"cateringDataFile"`
	TemplateExt      string   `mapstructure:"templateExt" yaml:"templateExt"`
	HomeTemplate     string   `mapstructure:"homeTemplate" yaml:"homeTemplate"`
	AssetFolders     []string `mapstructure:"assetFolders" yaml:"assetFolders"`
	RootFiles        []string `mapstructure:"rootFiles" yaml:"rootFiles"`
	Workers          int      `mapstructure:"workers" yaml:"workers"`
	LogLevel         string   `mapstructure:"logLevel" yaml:"logLevel"`
	LogFormat        string   `mapstructure:"logFormat" yaml:"logFormat"`
}

// Default returns the layout the site has always been built with.
func Default() Config {
	return Config{
		SourceDir:        "src",
		OutputDir:        "docs",
		EnvFile:          filepath.Join("build_utils", ".env"),
		TemplatesDir:     "templates",
		PartialsDir:      "partials",
		AssetsDir:        "assets",
		DataDir:          "menu-data",
		MenuDataFile:     "menuData.json",
		CateringDataFile: "cateringData.json",
		TemplateExt:      ".hbs",
		HomeTemplate:     "index.hbs",
		AssetFolders:     []string{"images", "menu-data"},
		RootFiles:        []string{"humans.txt", "manifest.json", "robots.txt", "sitemap.xml", "sw.js"},
		Workers:          1,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Validate reports the first setting that would make a build meaningless.
func (c Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New("sourceDir must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("outputDir must not be empty")
	}
	if !strings.HasPrefix(c.TemplateExt, ".") || len(c.TemplateExt) < 2 {
		return fmt.Errorf("templateExt %q must start with a dot", c.TemplateExt)
	}
	if c.HomeTemplate == "" {
		return errors.New("homeTemplate must not be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logLevel %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logFormat %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}

func (c Config) TemplatesPath() string { return filepath.Join(c.SourceDir, c.TemplatesDir) }

func (c Config) PartialsPath() string { return filepath.Join(c.SourceDir, c.PartialsDir) }

func (c Config) AssetsPath() string { return filepath.Join(c.SourceDir, c.AssetsDir) }

func (c Config) MenuDataPath() string {
	return filepath.Join(c.AssetsPath(), c.DataDir, c.MenuDataFile)
}

func (c Config) CateringDataPath() string {
	return filepath.Join(c.AssetsPath(), c.DataDir, c.CateringDataFile)
}

// WatchPaths lists the roots a rebuild-on-change loop should observe.
func (c Config) WatchPaths() []string {
	paths := []string{c.SourceDir}
	if c.EnvFile != "" {
		paths = append(paths, filepath.Dir(c.EnvFile))
	}
	return paths
}
