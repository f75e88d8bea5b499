package render

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v2"
)

// yamlFrontMatter is the only front matter format accepted. The JSON
// formats frontmatter detects by default would clash with Handlebars
// openers.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Source is a page template split into its front matter and body.
type Source struct {
	Meta map[string]any
	Body string
}

// ParseSource splits optional YAML front matter off raw. Without front
// matter Meta is nil and Body is raw unchanged.
func ParseSource(raw []byte) (Source, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta, yamlFrontMatter)
	if err != nil {
		return Source{}, fmt.Errorf("failed to parse front matter: %w", err)
	}
	if len(meta) == 0 {
		meta = nil
	}
	return Source{Meta: meta, Body: string(body)}, nil
}
