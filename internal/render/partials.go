package render

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/Viibezz/tigris-public/internal/model"
)

const markdownExt = ".md"

// Partials maps a partial's name to its compiled fragment.
type Partials map[string]*Template

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
		gmhtml.WithUnsafe(),
	),
)

// LoadPartials compiles every partial in dir. Files ending in ext are
// Handlebars fragments; Markdown files are converted to HTML first and
// then compiled the same way, so they may use template expressions too.
//
// A missing dir yields an empty set. A partial that fails to load is logged
// and left out. When two files map to the same name, the one that sorts
// last wins.
func LoadPartials(dir, ext string, logger *slog.Logger) Partials {
	partials := Partials{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Partials directory not found", "path", dir)
		} else {
			logger.Error("Error reading partials directory", "path", dir, "error", err)
		}
		return partials
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()

		var name string
		var convert func([]byte) ([]byte, error)
		switch {
		case strings.HasSuffix(fileName, ext):
			name = model.LogicalName(fileName, ext)
		case strings.HasSuffix(fileName, markdownExt):
			name = strings.TrimSuffix(fileName, markdownExt)
			convert = markdownToHTML
		default:
			continue
		}

		p, err := loadPartial(filepath.Join(dir, fileName), name, convert)
		if err != nil {
			logger.Error("Error compiling partial", "file", fileName, "error", err)
			continue
		}
		if _, exists := partials[name]; exists {
			logger.Warn("Partial name collision, replacing earlier definition", "name", name, "file", fileName)
		}
		partials[name] = p
		logger.Debug("Loaded partial", "name", name, "file", fileName)
	}

	logger.Info("Loaded partials", "count", len(partials))
	return partials
}

func loadPartial(path, name string, convert func([]byte) ([]byte, error)) (*Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, model.NewError(model.KindIO, name, err)
	}
	if convert != nil {
		if raw, err = convert(raw); err != nil {
			return nil, model.NewError(model.KindCompilation, name, err)
		}
	}
	return Compile(name, string(raw))
}

func markdownToHTML(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
