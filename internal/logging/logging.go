// Package logging builds the diagnostic logger. The TUI owns the terminal,
// so entries go to a rotating file instead of stdout.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/LISSConsulting/LISSTech.Jester/internal/config"
)

const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Logger is a logrus logger together with the file it writes to, if any.
type Logger struct {
	*logrus.Logger
	closer io.Closer
}

// New creates a Logger from cfg. An empty cfg.File discards all output.
// Relative file paths are resolved against dir.
func New(cfg config.LogConfig, dir string) (*Logger, error) {
	if cfg.File == "" {
		return newLogger(cfg, io.Discard, nil), nil
	}

	path := cfg.File
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	return newLogger(cfg, w, w), nil
}

// NewWriter creates a Logger that writes to w, for headless runs where
// stderr is free.
func NewWriter(cfg config.LogConfig, w io.Writer) *Logger {
	return newLogger(cfg, w, nil)
}

func newLogger(cfg config.LogConfig, w io.Writer, closer io.Closer) *Logger {
	log := logrus.New()
	log.SetOutput(w)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
			DisableColors:   true,
		})
	}

	return &Logger{Logger: log, closer: closer}
}

// Close flushes and closes the log file. Safe to call on a discarding logger.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
