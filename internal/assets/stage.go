// Package assets stages the static side of the site: it cleans the output
// tree, copies stylesheets, images and data, minifies scripts and styles and
// places the root pass-through files. Every failure is logged and skipped.
package assets

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"

	"github.com/Viibezz/tigris-public/internal/config"
)

const (
	mediaCSS = "text/css"
	mediaJS  = "application/javascript"
)

// Options locates the asset sources and the output tree.
type Options struct {
	SourceRoot string   // holds the root pass-through files
	AssetsDir  string   // source assets root
	OutputRoot string   // site output root; assets land in OutputRoot/assets
	Folders    []string // asset subfolders copied verbatim
	RootFiles  []string // files copied from SourceRoot to OutputRoot
}

// OptionsFromConfig derives staging options from the configuration.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		SourceRoot: cfg.SourceDir,
		AssetsDir:  cfg.AssetsPath(),
		OutputRoot: cfg.OutputDir,
		Folders:    cfg.AssetFolders,
		RootFiles:  cfg.RootFiles,
	}
}

// Report lists what a Stage call did, as output paths (Missing holds source
// paths).
type Report struct {
	Copied   []string
	Minified []string
	Missing  []string
	Failed   []string
}

// Stager copies and minifies assets into the output tree.
type Stager struct {
	opts     Options
	logger   *slog.Logger
	minifier *minify.M
	report   Report
}

// New returns a Stager for opts.
func New(opts Options, logger *slog.Logger) *Stager {
	m := minify.New()
	m.AddFunc(mediaCSS, css.Minify)
	m.AddFunc(mediaJS, js.Minify)
	return &Stager{opts: opts, logger: logger, minifier: m}
}

func (s *Stager) outAssets(elem ...string) string {
	return filepath.Join(append([]string{s.opts.OutputRoot, "assets"}, elem...)...)
}

func (s *Stager) srcAssets(elem ...string) string {
	return filepath.Join(append([]string{s.opts.AssetsDir}, elem...)...)
}

// Stage runs every staging step in order and returns what it did.
func (s *Stager) Stage() Report {
	s.report = Report{}
	s.logger.Info("Starting asset copying and minification")

	if err := os.MkdirAll(s.opts.OutputRoot, os.ModePerm); err != nil {
		s.fail(s.opts.OutputRoot, err)
		return s.report
	}

	s.copyBootstrap()
	s.copyStylesheets()
	s.copyFolders()
	s.placeRootIcons()
	s.stageScripts()
	s.minifyStylesheets()
	s.copyRootFiles()

	s.logger.Info("Asset copying and processing complete",
		"copied", len(s.report.Copied),
		"minified", len(s.report.Minified),
		"missing", len(s.report.Missing),
		"failed", len(s.report.Failed))
	return s.report
}

// Stage is a one-off form of Stager.Stage.
func Stage(opts Options, logger *slog.Logger) Report {
	return New(opts, logger).Stage()
}

func (s *Stager) copyBootstrap() {
	src := s.srcAssets("dist", "css", "bootstrap.min.css")
	dst := s.outAssets("css", "bootstrap.min.css")
	if !isFile(src) {
		s.missing("Bootstrap CSS not found", src)
		return
	}
	s.copy(src, dst)
}

func (s *Stager) copyStylesheets() {
	srcDir := s.srcAssets("css")
	if !isDir(srcDir) {
		s.missing("Custom CSS folder not found", srcDir)
		return
	}
	s.walk(srcDir, func(path, rel string) {
		if strings.HasSuffix(path, ".css") {
			s.copy(path, s.outAssets("css", rel))
		}
	})
}

func (s *Stager) copyFolders() {
	for _, folder := range s.opts.Folders {
		src := s.srcAssets(folder)
		dst := s.outAssets(folder)
		if !isDir(src) {
			s.missing("Source directory not found", src)
			continue
		}
		if err := os.RemoveAll(dst); err != nil {
			s.fail(dst, err)
			continue
		}
		if err := copyDirContents(src, dst); err != nil {
			s.fail(dst, err)
			continue
		}
		s.report.Copied = append(s.report.Copied, dst)
		s.logger.Info("Copied folder as is", "from", src, "to", dst)
	}
}

// placeRootIcons puts favicons where browsers probe for them, taken from the
// already staged images.
func (s *Stager) placeRootIcons() {
	faviconDir := s.outAssets("images", "favicon")
	icons := []struct{ src, dst string }{
		{filepath.Join(faviconDir, "favicon.ico"), "favicon.ico"},
		{filepath.Join(faviconDir, "180.png"), "apple-touch-icon.png"},
		{filepath.Join(faviconDir, "180.png"), "apple-touch-icon-precomposed.png"},
	}
	for _, icon := range icons {
		if !isFile(icon.src) {
			s.missing("Missing source for root icon", icon.src)
			continue
		}
		s.copy(icon.src, filepath.Join(s.opts.OutputRoot, icon.dst))
	}
}

func (s *Stager) stageScripts() {
	srcDir := s.srcAssets("js")
	if !isDir(srcDir) {
		s.missing("Source JS folder not found", srcDir)
		return
	}
	s.walk(srcDir, func(path, rel string) {
		dst := s.outAssets("js", rel)
		if !strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".min.js") {
			s.copy(path, dst)
			return
		}
		if err := s.minifyFile(mediaJS, path, dst); err != nil {
			s.logger.Error("Error minifying JS, copying original", "file", path, "error", err)
			s.copy(path, dst)
			return
		}
		s.report.Minified = append(s.report.Minified, dst)
		s.logger.Info("Minified JS", "path", dst)
	})
}

// minifyStylesheets minifies every stylesheet already staged, in place.
func (s *Stager) minifyStylesheets() {
	dir := s.outAssets("css")
	if !isDir(dir) {
		s.logger.Warn("No target CSS folder found for minification", "path", dir)
		return
	}
	s.walk(dir, func(path, _ string) {
		if !strings.HasSuffix(path, ".css") {
			return
		}
		if err := s.minifyFile(mediaCSS, path, path); err != nil {
			s.logger.Error("Error minifying CSS, leaving it as is", "file", path, "error", err)
			s.report.Failed = append(s.report.Failed, path)
			return
		}
		s.report.Minified = append(s.report.Minified, path)
		s.logger.Info("Minified CSS", "path", path)
	})
}

func (s *Stager) copyRootFiles() {
	for _, name := range s.opts.RootFiles {
		src := filepath.Join(s.opts.SourceRoot, name)
		if !isFile(src) {
			s.missing("Root file not found", src)
			continue
		}
		s.copy(src, filepath.Join(s.opts.OutputRoot, name))
	}
}

func (s *Stager) minifyFile(mediatype, src, dst string) error {
	in, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	out, err := s.minifier.Bytes(mediatype, in)
	if err != nil {
		return fmt.Errorf("minify %s: %w", mediatype, err)
	}
	return writeFile(dst, out, 0644)
}

// walk calls fn for every regular file below dir with its path relative to
// dir. Walk errors are logged and do not stop the walk.
func (s *Stager) walk(dir string, fn func(path, rel string)) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.fail(path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			s.fail(path, err)
			return nil
		}
		fn(path, rel)
		return nil
	})
	if err != nil {
		s.fail(dir, err)
	}
}

func (s *Stager) copy(src, dst string) {
	if err := copyFile(src, dst); err != nil {
		s.fail(dst, err)
		return
	}
	s.report.Copied = append(s.report.Copied, dst)
	s.logger.Debug("Copied", "from", src, "to", dst)
}

func (s *Stager) missing(msg, path string) {
	s.report.Missing = append(s.report.Missing, path)
	s.logger.Warn(msg, "path", path)
}

func (s *Stager) fail(path string, err error) {
	s.report.Failed = append(s.report.Failed, path)
	s.logger.Error("Asset staging error", "path", path, "error", err)
}
