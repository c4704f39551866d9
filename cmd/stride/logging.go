package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/stride/config"
	"github.com/lixenwraith/stride/logger"
	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "stride.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes logrus and the standard logger to logs/stride.log when debug is set
// The terminal owns stdout, so without debug every entry is discarded
func setupLogging(debug bool, cfg config.Logging) (*logrus.Logger, *os.File) {
	var out io.Writer = io.Discard
	var logFile *os.File

	if debug {
		if f, err := openLogFile(); err == nil {
			out, logFile = f, f
		}
	}
	log.SetOutput(out)

	level := cfg.Level
	if debug {
		level = "debug"
	}
	l, err := logger.New(logger.Config{Level: level, Format: cfg.Format, Output: out})
	if err != nil {
		// Bad level or format falls back to info text
		l, _ = logger.New(logger.Config{Output: out})
		l.WithError(err).Warn("logging config rejected, using defaults")
	}
	return l, logFile
}

// openLogFile opens the log file for append, rotating it first when it grew past maxLogSize
func openLogFile() (*os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}
	path := filepath.Join(logDir, logFileName)

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("stride-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
