// Package data loads the JSON documents and dotenv values that feed every
// page context. Loading is fail-soft: a missing or broken source yields
// empty data and a log line, never an aborted build.
package data

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/Viibezz/tigris-public/internal/model"
)

// Document is a read-only JSON object whose keys keep their source order.
type Document struct {
	root gjson.Result
}

// ParseDocument parses raw as a JSON object.
func ParseDocument(raw []byte) (Document, error) {
	if !gjson.ValidBytes(raw) {
		return Document{}, errors.New("malformed JSON")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return Document{}, fmt.Errorf("expected a JSON object at the top level, got %s", root.Type)
	}
	var buf bytes.Buffer
	writeDeduped(&buf, root)
	return Document{root: gjson.ParseBytes(buf.Bytes())}, nil
}

// writeDeduped writes v with every object reduced to one entry per key: the
// key keeps its first position and takes its last value.
func writeDeduped(buf *bytes.Buffer, v gjson.Result) {
	switch {
	case v.IsObject():
		var keys []gjson.Result
		values := map[string]gjson.Result{}
		v.ForEach(func(key, value gjson.Result) bool {
			if _, seen := values[key.String()]; !seen {
				keys = append(keys, key)
			}
			values[key.String()] = value
			return true
		})
		buf.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(key.Raw)
			buf.WriteByte(':')
			writeDeduped(buf, values[key.String()])
		}
		buf.WriteByte('}')
	case v.IsArray():
		buf.WriteByte('[')
		i := 0
		v.ForEach(func(_, value gjson.Result) bool {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeDeduped(buf, value)
			i++
			return true
		})
		buf.WriteByte(']')
	default:
		buf.WriteString(v.Raw)
	}
}

// Empty reports whether the document has no sections.
func (d Document) Empty() bool {
	if !d.root.IsObject() {
		return true
	}
	empty := true
	d.root.ForEach(func(_, _ gjson.Result) bool {
		empty = false
		return false
	})
	return empty
}

// Sections calls fn for each top-level key in document order until fn
// returns false.
func (d Document) Sections(fn func(key string, section gjson.Result) bool) {
	if !d.root.IsObject() {
		return
	}
	d.root.ForEach(func(key, value gjson.Result) bool {
		return fn(key.String(), value)
	})
}

// JSON returns the whole document as compact JSON, keys in source order.
func (d Document) JSON() string {
	if !d.root.IsObject() {
		return "{}"
	}
	return string(pretty.Ugly([]byte(d.root.Raw)))
}

// ReadJSON reads and parses the document at path. Errors are
// *model.BuildError values: KindMissingResource when the file does not
// exist, KindIO when it cannot be read and KindInvalidData when it does not
// hold a JSON object.
func ReadJSON(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, model.NewError(model.KindMissingResource, path, err)
		}
		return Document{}, model.NewError(model.KindIO, path, err)
	}
	doc, err := ParseDocument(raw)
	if err != nil {
		return Document{}, model.NewError(model.KindInvalidData, path, err)
	}
	return doc, nil
}

// LoadJSON is the fail-soft form of ReadJSON. found reports whether the file
// exists; on any failure the returned document is empty and the problem is
// logged.
func LoadJSON(path string, logger *slog.Logger) (Document, bool) {
	logger.Info("Loading data", "path", path)
	doc, err := ReadJSON(path)
	if err == nil {
		logger.Info("Successfully loaded data", "path", path)
		return doc, true
	}

	kind := model.KindOf(err)
	if kind == model.KindMissingResource {
		logger.Warn("Data file not found", "path", path)
		return Document{}, false
	}
	logger.Error("Error loading data", "path", path, "kind", kind.String(), "error", err)
	return Document{}, true
}
