package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"painter/internal/assets"
	"painter/internal/config"
	"painter/internal/painter"
	"painter/internal/render"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "painter:", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("painter failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	// 1. Assets
	bg, format, err := assets.LoadImage(cfg.Background)
	if err != nil {
		return fmt.Errorf("load background: %w", err)
	}
	logger.Info("background loaded", "path", cfg.Background, "format", format, "size", bg.Bounds().Size())

	// 2. Window Setup
	ebiten.SetWindowSize(painter.WindowWidth, painter.WindowHeight)
	ebiten.SetWindowTitle(painter.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	// 3. Initialize Game
	view := render.NewCompositor(ebiten.NewImageFromImage(bg))
	view.Debug = cfg.Debug

	var blips *blipPlayer
	if cfg.Sound {
		blips = newBlipPlayer(logger)
	}

	app := painter.New(painter.WithLogger(logger))
	game := NewGame(app, ebitenInput{}, view, blips)

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("window closed")
	return nil
}
