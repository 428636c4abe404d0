package common

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// SetupLogging installs the default slog logger. Records go to stderr at
// warn level, or debug with verbose. A non-empty logFile also receives every
// record; failure to open it is reported and otherwise ignored. The returned
// func closes the log file and must be called when the command finishes.
func SetupLogging(verbose bool, logFile string) (closeLog func() error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	closeLog = func() error { return nil }
	var w io.Writer = os.Stderr
	if logFile != "" {
		f, err := openLogFile(logFile)
		if err != nil {
			slog.Warn("failed to open log file", "path", logFile, "error", err)
		} else {
			w = io.MultiWriter(os.Stderr, f)
			closeLog = f.Close
		}
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return closeLog
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
