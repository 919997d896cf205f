package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/milk9111/dogrun/config"
	"github.com/milk9111/dogrun/logging"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the exit code so deferred log flushing runs first.
func realMain() int {
	flags := config.Flags(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		log.Print(err)
		return 2
	}

	cfg, err := config.Load("", flags)
	if err != nil {
		log.Print(err)
		return 1
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("dogrun exited", zap.Error(err))
		return 1
	}
	return 0
}

func run(cfg config.Config, logger *zap.Logger) error {
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := game.Close(); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("bye")
	return nil
}
