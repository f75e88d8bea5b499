package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/Viibezz/tigris-public/internal/config"
	"github.com/Viibezz/tigris-public/internal/logging"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRunBuild(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.SourceDir = filepath.Join(root, "src")
	cfg.OutputDir = filepath.Join(root, "docs")
	cfg.EnvFile = filepath.Join(root, "build_utils", ".env")

	writeSource(t, root, "build_utils/.env", "PHONE=555-0100\n")
	writeSource(t, cfg.SourceDir, "templates/index.hbs", `{{> footer}}`)
	writeSource(t, cfg.SourceDir, "templates/broken.hbs", `{{#if page}}unterminated`)
	writeSource(t, cfg.SourceDir, "partials/footer.hbs", `<footer>{{PHONE}}</footer>`)
	writeSource(t, cfg.SourceDir, "assets/css/site.css", "a {  color : blue ; }")
	writeSource(t, cfg.SourceDir, "robots.txt", "User-agent: *")
	writeSource(t, cfg.OutputDir, "stale.html", "old")

	result, err := runBuild(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	assert.Len(t, result.Pages.Rendered, 1)
	assert.Len(t, result.Pages.Skipped, 1)
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "stale.html"))

	home, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<footer>555-0100</footer>", string(home))

	css, err := os.ReadFile(filepath.Join(cfg.OutputDir, "assets", "css", "site.css"))
	require.NoError(t, err)
	assert.Equal(t, "a{color:blue}", string(css))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "robots.txt"))
}

func TestRunBuildRejectsFileAsOutput(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.SourceDir = filepath.Join(root, "src")
	cfg.OutputDir = filepath.Join(root, "docs")
	writeSource(t, root, "docs", "a file")

	_, err := runBuild(context.Background(), cfg, logging.Discard())
	assert.Error(t, err)
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("outputDir: public\nworkers: 3\n"), 0644))
	t.Setenv("TIGRIS_LOGLEVEL", "warn")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "--config", cfgPath, "--source", "site"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		cfgFile = ""
	})

	require.NoError(t, rootCmd.Execute())

	var got config.Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "public", got.OutputDir)
	assert.Equal(t, 3, got.Workers)
	assert.Equal(t, "site", got.SourceDir)
	assert.Equal(t, "warn", got.LogLevel)
	assert.Equal(t, ".hbs", got.TemplateExt)
}
