package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. JSON output so log collectors can
// index stage and entity fields.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level := logrus.InfoLevel
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level = lvl
	}
	log.SetLevel(level)

	return log
}
