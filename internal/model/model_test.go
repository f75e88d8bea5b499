package model

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogicalName(t *testing.T) {
	tests := []struct {
		file, ext, want string
	}{
		{"index.hbs", ".hbs", "index"},
		{"about.hbs", ".hbs", "about"},
		{"our-story.hbs", ".hbs", "our-story"},
		{"nav.hbs.hbs", ".hbs", "nav"},
		{"plain", ".hbs", "plain"},
		{"about.hbs", "", "about.hbs"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LogicalName(tt.file, tt.ext), tt.file)
	}
}

func TestNewPageContextCopiesEnv(t *testing.T) {
	env := map[string]string{"SITE_URL": "https://example.com"}
	pc := NewPageContext(env)
	pc["SITE_URL"] = "changed"
	pc["page"] = "about"

	assert.Equal(t, "https://example.com", env["SITE_URL"])
	assert.NotContains(t, env, "page")
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("rendering about: %w", NewError(KindCompilation, "about.hbs", errors.New("boom")))

	assert.Equal(t, KindCompilation, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestBuildErrorUnwrap(t *testing.T) {
	err := NewError(KindMissingResource, "x.json", fs.ErrNotExist)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "missing resource: x.json: file does not exist", err.Error())
	assert.Equal(t, "io failure: boom", NewError(KindIO, "", errors.New("boom")).Error())
}
