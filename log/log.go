// Package log wraps a logrus logger that stays silent until Setup enables the daily log file.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type (
	Fields = logrus.Fields
	Entry  = logrus.Entry
)

var logger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

// File is the log file for the given day.
func File(day time.Time) string {
	return filepath.Join(where.Logs(), day.Format("2006-01-02")+".log")
}

// Setup points the logger at today's file when logs.write is on.
// Entries created earlier share the logger and follow the change.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
		return nil
	}

	f, err := filesystem.API().OpenFile(File(time.Now()), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return nil
}

func WithFields(fields Fields) *Entry { return logger.WithFields(fields) }

func Error(args ...any) { logger.Error(args...) }

func Warn(args ...any) { logger.Warn(args...) }

func Info(args ...any) { logger.Info(args...) }

func Debug(args ...any) { logger.Debug(args...) }
