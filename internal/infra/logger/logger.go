// Package logger owns the process-wide slog logger. Each opened project gets
// its own append-only JSON log under LOGS/.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileName = "lasif.log"

// Config selects where the log file lives. Root is the project root.
type Config struct {
	Root  string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// FilePath returns the log file of the project at root.
func FilePath(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(filepath.Clean(root), "LOGS", fileName)
}

// Setup points the global logger at the project log file. On failure the
// global logger discards everything.
func Setup(cfg Config) (func() error, error) {
	path := FilePath(cfg.Root)
	f, err := openAppend(path)
	if err != nil {
		reset()
		return nil, err
	}

	l := slog.New(slog.NewJSONHandler(f, handlerOptions(cfg.Debug))).With("pid", os.Getpid())

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		defer mu.Unlock()
		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		global, logFile, logPath = discard(), nil, ""
		return cerr
	}, nil
}

// L returns the process-wide logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the file currently written to, or "" when logging is off.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

func handlerOptions(debug bool) *slog.HandlerOptions {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return opts
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global, logFile, logPath = discard(), nil, ""
}
