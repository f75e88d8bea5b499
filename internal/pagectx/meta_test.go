package pagectx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Viibezz/tigris-public/internal/model"
)

func TestTitleFromName(t *testing.T) {
	tests := map[string]string{
		"about":     "About",
		"our-story": "Our Story",
		"faq_page":  "Faq Page",
		"index":     "Index",
	}
	for in, want := range tests {
		assert.Equal(t, want, TitleFromName(in), in)
	}
}

func TestApplyMeta(t *testing.T) {
	pc := model.PageContext{"page": "our-story"}
	meta := map[string]any{"description": "How it started"}

	ApplyMeta(pc, "our-story", meta)

	assert.Equal(t, map[string]any{
		"description": "How it started",
		"title":       "Our Story",
	}, pc[model.KeyMeta])
	assert.NotContains(t, meta, "title")
}

func TestApplyMetaKeepsExplicitTitle(t *testing.T) {
	pc := model.PageContext{}
	ApplyMeta(pc, "about", map[string]any{"title": "About Tigris"})

	assert.Equal(t, "About Tigris", pc[model.KeyMeta].(map[string]any)["title"])
}

func TestApplyMetaWithoutFrontMatter(t *testing.T) {
	pc := model.PageContext{}
	ApplyMeta(pc, "about", nil)

	assert.NotContains(t, pc, model.KeyMeta)
}
