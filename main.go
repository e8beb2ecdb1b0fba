package main

import (
	"errors"
	"os"

	"github.com/lazharichir/holdem/config"
	"github.com/lazharichir/holdem/console"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	logger := console.NewLogger(os.Stderr, cfg.Level())
	if err != nil {
		logger.Fatal("Loading config failed", "err", err)
	}

	if err := console.Run(cfg, os.Stdout, logger); err != nil {
		logger.Fatal("Showdown failed", "err", err)
	}
}
