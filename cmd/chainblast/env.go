package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/chainblast/internal/audio"
	"github.com/vovakirdan/chainblast/internal/config"
	"github.com/vovakirdan/chainblast/internal/core"
	"github.com/vovakirdan/chainblast/internal/storage"
)

// env bundles what every interactive command needs. Close releases it.
type env struct {
	cfg    config.ChainBlastConfig
	logger *log.Logger
	audio  core.Audio
	store  *storage.Store

	closers []func()
}

// loadConfig applies --config, --difficulty and --mute.
func loadConfig() (config.ChainBlastConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newLogger logs to --log-file, or nowhere. The terminal belongs to the
// game while it runs.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "chainblast",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// newServerLogger logs to --log-file at debug level, or to stderr at info
// level. The server owns no terminal, so it stays visible by default.
func newServerLogger(stderr io.Writer) (*log.Logger, func(), error) {
	if flagLogFile != "" {
		logger, closeLog, err := newLogger()
		if err != nil {
			return nil, nil, err
		}
		logger.SetPrefix("chainblast-ssh")
		return logger, closeLog, nil
	}
	return log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chainblast-ssh",
	}), func() {}, nil
}

func openEnv(withAudio bool) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, logger: logger, audio: core.NoAudio{}}
	e.closers = append(e.closers, closeLog)

	if withAudio && cfg.Audio.Enabled {
		bank, err := audio.Open(cfg.Audio, logger)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			e.audio = bank
			e.closers = append(e.closers, bank.Close)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without scores", "error", err)
	} else {
		e.store = store
		e.closers = append(e.closers, func() { store.Close() })
	}
	return e, nil
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}
