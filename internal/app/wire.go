package app

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"sigbox/internal/config"
	"sigbox/internal/crypto"
	"sigbox/internal/store"
)

// NewWire constructs the dependency graph from cfg. Log output goes to logOut.
func NewWire(cfg config.Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	enc, err := crypto.ParseEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("creating home directory: %w", err)
	}

	logger, err := NewLogger(cfg.LogLevel, logOut)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Log:      logger,
		Keys:     store.NewKeyFileStore(cfg.Home, cfg.ScryptLogN),
		Encoding: enc,
	}, nil
}

// NewLogger returns a human-readable zerolog logger at level.
func NewLogger(level string, out io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
