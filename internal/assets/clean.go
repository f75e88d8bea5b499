package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Clean empties dir so every build starts from nothing. The directory itself
// is kept (or created). Entries that cannot be removed are logged and left
// behind; only a dir that exists but is not a directory is an error.
func Clean(dir string, logger *slog.Logger) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("Target directory does not exist, creating it", "path", dir)
		return os.MkdirAll(dir, os.ModePerm)
	}
	if err != nil {
		return fmt.Errorf("failed to stat output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a valid directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read output directory %s: %w", dir, err)
	}
	logger.Info("Cleaning directory", "path", dir)
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			logger.Error("Error deleting", "path", path, "error", err)
			continue
		}
		logger.Debug("Deleted", "path", path)
	}
	return nil
}
