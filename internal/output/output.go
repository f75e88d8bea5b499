// Package output maps page templates to files in the output tree and writes
// them.
package output

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/Viibezz/tigris-public/internal/model"
)

const indexFile = "index.html"

// PageMode is the permission every written page ends up with.
const PageMode fs.FileMode = 0644

// Resolver maps template file names to output paths under Root.
type Resolver struct {
	Root string
	Home string // template file name that becomes Root/index.html
	Ext  string // template extension stripped to form the directory name
}

// Resolve returns Root/index.html for the home template and
// Root/<name>/index.html for every other template.
func (r Resolver) Resolve(fileName string) string {
	return Resolve(fileName, r.Root, r.Home, r.Ext)
}

// Resolve is the function form of Resolver.Resolve.
func Resolve(fileName, root, home, ext string) string {
	if fileName == home {
		return filepath.Join(root, indexFile)
	}
	return filepath.Join(root, model.LogicalName(fileName, ext), indexFile)
}

// Write stores content at path, creating parent directories as needed. The
// file is replaced atomically so readers never see a partial page, and ends
// up with PageMode. Errors are KindIO build errors.
func Write(path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return model.NewError(model.KindIO, path, fmt.Errorf("failed to create directory: %w", err))
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return model.NewError(model.KindIO, path, fmt.Errorf("failed to write file: %w", err))
	}
	// atomic.WriteFile leaves a new file with its temp file's 0600
	if err := os.Chmod(path, PageMode); err != nil {
		return model.NewError(model.KindIO, path, fmt.Errorf("failed to set file mode: %w", err))
	}
	return nil
}
