package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "empty source", mutate: func(c *Config) { c.SourceDir = "" }},
		{name: "empty output", mutate: func(c *Config) { c.OutputDir = "" }},
		{name: "ext without dot", mutate: func(c *Config) { c.TemplateExt = "hbs" }},
		{name: "bare dot ext", mutate: func(c *Config) { c.TemplateExt = "." }},
		{name: "no home", mutate: func(c *Config) { c.HomeTemplate = "" }},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }},
		{name: "many workers", mutate: func(c *Config) { c.Workers = 8 }, ok: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }},
		{name: "upper level", mutate: func(c *Config) { c.LogLevel = "DEBUG" }, ok: true},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{name: "json format", mutate: func(c *Config) { c.LogFormat = "json" }, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	c := Default()
	c.SourceDir = "site"

	assert.Equal(t, filepath.Join("site", "templates"), c.TemplatesPath())
	assert.Equal(t, filepath.Join("site", "partials"), c.PartialsPath())
	assert.Equal(t, filepath.Join("site", "assets"), c.AssetsPath())
	assert.Equal(t, filepath.Join("site", "assets", "menu-data", "menuData.json"), c.MenuDataPath())
	assert.Equal(t, filepath.Join("site", "assets", "menu-data", "cateringData.json"), c.CateringDataPath())
	assert.Equal(t, []string{"site", "build_utils"}, c.WatchPaths())
}
