package pagectx

import (
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Viibezz/tigris-public/internal/model"
)

// ApplyMeta exposes a template's front matter under the "meta" key. A
// missing title is derived from the page name. Nothing is added when the
// template has no front matter.
func ApplyMeta(pc model.PageContext, page string, meta map[string]any) {
	if len(meta) == 0 {
		return
	}
	m := maps.Clone(meta)
	if title, ok := m["title"]; !ok || title == nil || title == "" {
		m["title"] = TitleFromName(page)
	}
	pc[model.KeyMeta] = m
}

// TitleFromName turns a page name such as "our-story" into "Our Story".
func TitleFromName(name string) string {
	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(spaced)
}
