package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const logFileName = "viewer.log"

var (
	once   sync.Once
	logger *slog.Logger
)

// Logger returns a singleton slog.Logger for the viewer that writes to
// stdout and, when the working directory is writable, to viewer.log beside
// the executable. Safe for concurrent use.
func Logger() *slog.Logger {
	once.Do(func() {
		writer := io.Writer(os.Stdout)
		if file, err := openLogFile(); err == nil {
			writer = io.MultiWriter(os.Stdout, file)
		}
		handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: slog.LevelInfo})
		logger = slog.New(handler).With("app", "variants-viewer")
	})

	return logger
}

func openLogFile() (*os.File, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(cwd, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
