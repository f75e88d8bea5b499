package data

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// LoadEnv reads KEY=value lines from a dotenv file. An absent file is normal
// and yields an empty map; an unreadable one is logged and also yields an
// empty map.
func LoadEnv(path string, logger *slog.Logger) map[string]string {
	if path == "" {
		return map[string]string{}
	}
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No environment file, continuing without one", "path", path)
		} else {
			logger.Error("Error reading environment file", "path", path, "error", err)
		}
		return map[string]string{}
	}
	logger.Debug("Loaded environment file", "path", path, "keys", len(env))
	return env
}
