// Package pagectx assembles the data context each page template is rendered
// against.
package pagectx

import (
	"log/slog"
	"time"

	"github.com/Viibezz/tigris-public/internal/data"
	"github.com/Viibezz/tigris-public/internal/model"
)

// Sources is the shared, read-only input of every page context.
type Sources struct {
	Env      map[string]string
	Menu     data.Document
	Catering data.Document
}

// Augmenter adds page-specific keys to a context that already holds the
// shared values.
type Augmenter func(pc model.PageContext, src Sources, logger *slog.Logger)

func noopAugmenter(model.PageContext, Sources, *slog.Logger) {}

// DefaultAugmenters returns the page-specific augmenters, keyed by the exact
// page name they apply to.
func DefaultAugmenters() map[string]Augmenter {
	return map[string]Augmenter{
		"gallery":  augmentGallery,
		"menu":     augmentMenu,
		"catering": augmentCatering,
	}
}

// Builder produces page contexts. It is safe for concurrent use once built.
type Builder struct {
	sources    Sources
	augmenters map[string]Augmenter
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock replaces time.Now as the source of the current year.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithAugmenter registers a for the page named page, replacing any default.
func WithAugmenter(page string, a Augmenter) Option {
	return func(b *Builder) { b.augmenters[page] = a }
}

// NewBuilder returns a Builder over src with the default augmenters.
func NewBuilder(src Sources, logger *slog.Logger, opts ...Option) *Builder {
	b := &Builder{
		sources:    src,
		augmenters: DefaultAugmenters(),
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns a fresh context for page: a copy of the shared env, the page
// name, the current year and whatever the page's augmenter adds.
func (b *Builder) Build(page string) model.PageContext {
	pc := model.NewPageContext(b.sources.Env)
	pc[model.KeyPage] = page
	pc[model.KeyYear] = b.now().Year()

	b.augmenter(page)(pc, b.sources, b.logger)
	return pc
}

func (b *Builder) augmenter(page string) Augmenter {
	if a, ok := b.augmenters[page]; ok {
		return a
	}
	return noopAugmenter
}

// Build is a one-off form of Builder.Build.
func Build(page string, env map[string]string, menu, catering data.Document, logger *slog.Logger) model.PageContext {
	return NewBuilder(Sources{Env: env, Menu: menu, Catering: catering}, logger).Build(page)
}
