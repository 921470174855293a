// Package logging routes diagnostics to a rotated file so they never reach the terminal being drawn
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultDir is used when Setup receives an empty directory
	DefaultDir = "logs"
	// FileName is the active log file inside the log directory
	FileName = "cellbridge.log"
	// MaxSize triggers rotation of the active file at startup
	MaxSize = 10 * 1024 * 1024
)

// Setup configures the default charmbracelet logger and the standard library logger
// With debug off both discard output and the returned file is nil
// With debug on both write to dir/FileName; the caller closes the file
func Setup(debug bool, dir string) (*log.Logger, *os.File, error) {
	if !debug {
		stdlog.SetOutput(io.Discard)
		logger := log.NewWithOptions(io.Discard, log.Options{})
		log.SetDefault(logger)
		return logger, nil, nil
	}

	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Level:           log.DebugLevel,
	})
	log.SetDefault(logger)

	stdlog.SetOutput(f)
	stdlog.SetFlags(stdlog.LstdFlags | stdlog.Lmicroseconds)

	return logger, f, nil
}

// rotate renames an oversized log to a timestamped sibling
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	rotated := fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405"))
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// ParseLevel maps a config level name to a log level, defaulting to info
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
