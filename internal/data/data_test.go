package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/Viibezz/tigris-public/internal/logging"
	"github.com/Viibezz/tigris-public/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSONMissing(t *testing.T) {
	doc, found := LoadJSON(filepath.Join(t.TempDir(), "menuData.json"), logging.Discard())

	assert.False(t, found)
	assert.True(t, doc.Empty())
	assert.Equal(t, "{}", doc.JSON())
}

func TestLoadJSONMalformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "menuData.json", `{"drinks": {"items": [}`)

	doc, found := LoadJSON(path, logging.Discard())

	assert.True(t, found)
	assert.True(t, doc.Empty())
}

func TestReadJSONKinds(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadJSON(filepath.Join(dir, "nope.json"))
	assert.Equal(t, model.KindMissingResource, model.KindOf(err))

	_, err = ReadJSON(writeFile(t, dir, "bad.json", `not json`))
	assert.Equal(t, model.KindInvalidData, model.KindOf(err))

	_, err = ReadJSON(writeFile(t, dir, "list.json", `[1, 2]`))
	assert.Equal(t, model.KindInvalidData, model.KindOf(err))

	_, err = ReadJSON(dir)
	assert.Equal(t, model.KindIO, model.KindOf(err))
}

func TestDocumentKeepsSourceOrder(t *testing.T) {
	path := writeFile(t, t.TempDir(), "menuData.json", `{
		"salads": {"header": "Salads", "items": []},
		"drinks": {"items": [{"name": "Latte"}]},
		"bowls":  {"items": []}
	}`)

	doc, found := LoadJSON(path, logging.Discard())
	require.True(t, found)
	require.False(t, doc.Empty())

	var keys []string
	doc.Sections(func(key string, _ gjson.Result) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"salads", "drinks", "bowls"}, keys)
	assert.Equal(t,
		`{"salads":{"header":"Salads","items":[]},"drinks":{"items":[{"name":"Latte"}]},"bowls":{"items":[]}}`,
		doc.JSON())
}

func TestDuplicateKeysLastValueWins(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"drinks": {"items": [{"name": "Old", "name": "Latte"}]},
		"bowls": [],
		"drinks": {"items": [{"name": "Mocha", "price": 4.5, "name": "Flat White"}]}
	}`))
	require.NoError(t, err)

	var keys []string
	doc.Sections(func(key string, section gjson.Result) bool {
		keys = append(keys, key)
		if key == "drinks" {
			assert.Equal(t, "Flat White", section.Get("items.0.name").String())
		}
		return true
	})
	assert.Equal(t, []string{"drinks", "bowls"}, keys)
	assert.Equal(t, `{"drinks":{"items":[{"name":"Flat White","price":4.5}]},"bowls":[]}`, doc.JSON())
}

func TestSectionsStopsEarly(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"a": 1, "b": 2, "c": 3}`))
	require.NoError(t, err)

	var n int
	doc.Sections(func(string, gjson.Result) bool {
		n++
		return n < 2
	})
	assert.Equal(t, 2, n)
}

func TestEmptyObject(t *testing.T) {
	doc, err := ParseDocument([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, doc.Empty())
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "SITE_URL=https://example.com\n# comment\nCOMPANY=\"Tigris Grill\"\n")

	env := LoadEnv(path, logging.Discard())
	assert.Equal(t, map[string]string{
		"SITE_URL": "https://example.com",
		"COMPANY":  "Tigris Grill",
	}, env)

	assert.Empty(t, LoadEnv(filepath.Join(dir, "missing.env"), logging.Discard()))
	assert.Empty(t, LoadEnv("", logging.Discard()))
}
