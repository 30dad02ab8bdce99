// Package debug writes diagnostic logs to a file. The TUI owns the
// terminal, so logging never goes to stdout while the monitor runs.
package debug

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"chordscope/config"
)

var (
	mu      sync.Mutex
	logger  *logrus.Logger
	file    *os.File
	enabled bool
)

// Enable starts debug logging to ~/.config/chordscope/debug.log
func Enable() error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	logger = logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	file = f
	enabled = true

	logger.WithField("category", "debug").Info("debug logging started")
	return nil
}

// Disable stops debug logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	logger = nil
	enabled = false
}

// Log writes a message under a category. No-op until Enable is called.
func Log(category, format string, args ...any) {
	mu.Lock()
	l := logger
	mu.Unlock()

	if l == nil {
		return
	}
	l.WithField("category", category).Debugf(format, args...)
}
