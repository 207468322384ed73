package logging

import (
	"os"
	"path/filepath"
)

// LogDir returns the directory where parseek log files live.
// Defaults to ~/.parseek/logs; falls back to the temp dir when the
// home directory cannot be resolved.
func LogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "parseek", "logs")
	}
	return filepath.Join(home, ".parseek", "logs")
}

// DefaultLogPath returns the path of the primary log file.
func DefaultLogPath() string {
	return filepath.Join(LogDir(), "parseek.log")
}

// EnsureLogDir creates the log directory if it does not exist.
func EnsureLogDir() error {
	return os.MkdirAll(LogDir(), 0o755)
}
