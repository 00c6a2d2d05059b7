package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ButyrinIA/postboard/internal/api"
	"github.com/ButyrinIA/postboard/internal/api/memory"
	"github.com/ButyrinIA/postboard/internal/api/rest"
	"github.com/ButyrinIA/postboard/internal/config"
	"github.com/ButyrinIA/postboard/internal/tui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	backend := flag.String("backend", "rest", "post backend: rest or memory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg.Log.File)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer closeLog()

	var client api.Client
	switch *backend {
	case "rest":
		client = rest.New(cfg.API.BaseURL, time.Duration(cfg.API.Timeout), logger)
	case "memory":
		client = memory.New()
	default:
		log.Fatalf("unknown backend: %s", *backend)
	}
	defer client.Close()

	if err := tui.Run(client, cfg.Defaults.UserID); err != nil {
		log.Fatalf("failed to run UI: %v", err)
	}
}

// newLogger writes to the configured file; the TUI owns the terminal,
// so there is no console handler.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
