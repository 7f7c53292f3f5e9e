package main

import (
	"context"
	"errors"
	"os"

	"github.com/climmt/mathdrill/internal/console"
	"github.com/climmt/mathdrill/internal/grader"
	"github.com/climmt/mathdrill/internal/infrastructure/config"
	"github.com/climmt/mathdrill/internal/random"
	"github.com/climmt/mathdrill/internal/service"
	"github.com/climmt/mathdrill/internal/store"
)

func main() {
	sessionCfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		config.ExitUsage(os.Stderr, err)
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		config.Exitf("configure logging: %v", err)
	}

	// ── Dependencies ────────────────────────────────────────────────
	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		config.Exitf("seed generator: %v", err)
	}
	logger.Debug("generator seeded", "seed", seed)

	journal, err := store.NewMemory()
	if err != nil {
		config.Exitf("open round journal: %v", err)
	}
	defer journal.Close()

	term := console.NewPrompter(os.Stdin, os.Stdout)
	driver := service.NewDriver(rng, term, grader.NewExactGrader(), logger)
	runner := service.NewSessionRunner(journal, driver, term, logger)

	// ── Session ─────────────────────────────────────────────────────
	// SIGINT and SIGTERM keep their default behaviour so Ctrl-C ends the
	// process even while a prompt is blocked on stdin.
	if _, err := runner.Run(context.Background(), sessionCfg); err != nil {
		if errors.Is(err, service.ErrInputClosed) {
			logger.Warn("input closed before the session finished")
		} else {
			logger.Error("session failed", "error", err)
		}
		journal.Close()
		os.Exit(1)
	}
}
