// Package pipeline drives one page build: it loads the shared inputs once,
// then renders every page template into the output tree.
package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Viibezz/tigris-public/internal/config"
	"github.com/Viibezz/tigris-public/internal/data"
	"github.com/Viibezz/tigris-public/internal/model"
	"github.com/Viibezz/tigris-public/internal/output"
	"github.com/Viibezz/tigris-public/internal/pagectx"
	"github.com/Viibezz/tigris-public/internal/render"
)

// Options locates the inputs and output of a page build.
type Options struct {
	TemplatesDir string
	PartialsDir  string
	EnvFile      string
	MenuData     string
	CateringData string
	OutputRoot   string
	TemplateExt  string
	HomeTemplate string
	Workers      int
}

// OptionsFromConfig derives build options from the configuration.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		TemplatesDir: cfg.TemplatesPath(),
		PartialsDir:  cfg.PartialsPath(),
		EnvFile:      cfg.EnvFile,
		MenuData:     cfg.MenuDataPath(),
		CateringData: cfg.CateringDataPath(),
		OutputRoot:   cfg.OutputDir,
		TemplateExt:  cfg.TemplateExt,
		HomeTemplate: cfg.HomeTemplate,
		Workers:      cfg.Workers,
	}
}

// Skip records a page that produced no output.
type Skip struct {
	Page string
	Kind model.ErrorKind
	Err  error
}

// Report summarizes a build. Rendered holds output paths in template order.
type Report struct {
	Rendered []string
	Skipped  []Skip
}

// Pipeline renders page templates. Every page is attempted; a failing page
// is logged and skipped without affecting the others.
type Pipeline struct {
	opts     Options
	logger   *slog.Logger
	helpers  render.Helpers
	resolver output.Resolver
	ctxOpts  []pagectx.Option
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock fixes the time used for the "year" context value.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.ctxOpts = append(p.ctxOpts, pagectx.WithClock(now)) }
}

// New returns a Pipeline for opts.
func New(opts Options, logger *slog.Logger, options ...Option) *Pipeline {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	p := &Pipeline{
		opts:    opts,
		logger:  logger,
		helpers: render.DefaultHelpers(),
		resolver: output.Resolver{
			Root: opts.OutputRoot,
			Home: opts.HomeTemplate,
			Ext:  opts.TemplateExt,
		},
	}
	for _, o := range options {
		o(p)
	}
	return p
}

type result struct {
	path string
	err  error
}

// Run performs one build pass. The only error it returns is ctx's.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	p.logger.Info("Starting static content build", "templates", p.opts.TemplatesDir, "output", p.opts.OutputRoot)

	env := data.LoadEnv(p.opts.EnvFile, p.logger)
	menu, _ := data.LoadJSON(p.opts.MenuData, p.logger)
	catering, _ := data.LoadJSON(p.opts.CateringData, p.logger)
	partials := render.LoadPartials(p.opts.PartialsDir, p.opts.TemplateExt, p.logger)

	builder := pagectx.NewBuilder(pagectx.Sources{Env: env, Menu: menu, Catering: catering}, p.logger, p.ctxOpts...)

	pages := p.discover()
	results := make([]result, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := p.renderPage(page, builder, partials)
			results[i] = result{path: path, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var report Report
	for i, res := range results {
		if res.err != nil {
			report.Skipped = append(report.Skipped, Skip{Page: pages[i].FileName, Kind: model.KindOf(res.err), Err: res.err})
			continue
		}
		report.Rendered = append(report.Rendered, res.path)
	}
	p.logger.Info("Static content build finished", "rendered", len(report.Rendered), "skipped", len(report.Skipped))
	return report, nil
}

// discover lists the page templates directly inside the templates directory.
func (p *Pipeline) discover() []model.Page {
	entries, err := os.ReadDir(p.opts.TemplatesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Warn("Templates directory not found", "path", p.opts.TemplatesDir)
		} else {
			p.logger.Error("Error reading templates directory", "path", p.opts.TemplatesDir, "error", err)
		}
		return nil
	}

	var pages []model.Page
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, p.opts.TemplateExt) {
			continue
		}
		path := filepath.Join(p.opts.TemplatesDir, name)
		if !entry.Type().IsRegular() {
			// symlinks count when they point at a regular file
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}
		pages = append(pages, model.NewPage(name, path, p.opts.TemplateExt))
	}
	return pages
}

func (p *Pipeline) renderPage(page model.Page, builder *pagectx.Builder, partials render.Partials) (string, error) {
	logger := p.logger.With("template", page.FileName)
	logger.Info("Processing template")

	src, err := render.ReadSource(page.SourcePath)
	if err != nil {
		return "", p.skip(logger, err)
	}

	pc := builder.Build(page.Name)
	pagectx.ApplyMeta(pc, page.Name, src.Meta)

	html, err := render.Render(page.FileName, src.Body, pc, partials, p.helpers)
	if err != nil {
		return "", p.skip(logger, err)
	}

	dest := p.resolver.Resolve(page.FileName)
	if err := output.Write(dest, html); err != nil {
		return "", p.skip(logger, err)
	}
	logger.Info("Successfully generated", "path", dest)
	return dest, nil
}

func (p *Pipeline) skip(logger *slog.Logger, err error) error {
	kind := model.KindOf(err)
	if kind == model.KindMissingResource {
		logger.Warn("Skipping template", "kind", kind.String(), "error", err)
	} else {
		logger.Error("Skipping template", "kind", kind.String(), "error", err)
	}
	return err
}
