// Package render compiles Handlebars page templates and partials and
// executes them against a page context.
package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aymerick/raymond"

	"github.com/Viibezz/tigris-public/internal/model"
)

// Template is a compiled template. It is never mutated after Compile, so a
// single Template may be executed from several goroutines.
type Template struct {
	name string
	tpl  *raymond.Template
}

// Compile parses source into a Template identified by name.
func Compile(name, source string) (*Template, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, model.NewError(model.KindCompilation, name, err)
	}
	return &Template{name: name, tpl: tpl}, nil
}

// Execute renders the template against ctx. Partials and helpers are bound
// to a private clone, so the compiled template stays reusable. A reference
// to a partial that is not in partials fails the execution.
func (t *Template) Execute(ctx any, partials Partials, helpers Helpers) (out string, err error) {
	defer func() {
		// raymond panics on invalid helper or partial registration
		if r := recover(); r != nil {
			out, err = "", model.NewError(model.KindCompilation, t.name, fmt.Errorf("%v", r))
		}
	}()

	tpl := t.tpl.Clone()
	if len(helpers) > 0 {
		tpl.RegisterHelpers(helpers.forRaymond())
	}
	for name, p := range partials {
		tpl.RegisterPartialTemplate(name, p.tpl)
	}

	out, err = tpl.Exec(ctx)
	if err != nil {
		return "", model.NewError(model.KindCompilation, t.name, err)
	}
	return out, nil
}

// Render compiles source and executes it in one step.
func Render(name, source string, ctx any, partials Partials, helpers Helpers) (string, error) {
	t, err := Compile(name, source)
	if err != nil {
		return "", err
	}
	return t.Execute(ctx, partials, helpers)
}

// ReadSource reads a template file and splits off its front matter. A file
// that cannot be opened is reported as "template not found"
// (KindMissingResource); bad front matter is a KindCompilation error.
func ReadSource(path string) (Source, error) {
	name := filepath.Base(path)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Source{}, model.NewError(model.KindMissingResource, name, fmt.Errorf("template not found: %w", err))
		}
		return Source{}, model.NewError(model.KindMissingResource, name, fmt.Errorf("template not readable: %w", err))
	}
	src, err := ParseSource(raw)
	if err != nil {
		return Source{}, model.NewError(model.KindCompilation, name, err)
	}
	return src, nil
}
