package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bfsviz/config"
)

// newLogger builds a text logger at cfg.Level. It writes to cfg.File when
// set (appending) and to fallback otherwise. The returned func closes the
// file, if any.
func newLogger(cfg config.Log, fallback io.Writer) (*logrus.Logger, func() error, error) {
	if cfg.Level == "" {
		cfg.Level = config.DefaultLogLevel
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: cfg.File != ""})

	if cfg.File == "" {
		log.SetOutput(fallback)

		return log, func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)

	return log, f.Close, nil
}
