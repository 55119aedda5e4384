// Package config parses the painter's command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
)

const DefaultBackground = "background.png"

type Config struct {
	Background string // image drawn behind the canvas
	Debug      bool   // debug logging and pointer readout
	Sound      bool   // blip on swatch selection
}

// Parse reads flags from args (without the program name). Output for
// -h and usage errors goes to out.
func Parse(args []string, out io.Writer) (Config, error) {
	cfg := Config{}
	fs := flag.NewFlagSet("painter", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.Background, "background", DefaultBackground, "background image file (png, jpeg, gif, bmp, tiff, webp)")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging and the pointer readout")
	fs.BoolVar(&cfg.Sound, "sound", false, "play a short blip when a swatch is selected")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	if cfg.Background == "" {
		return Config{}, errors.New("-background must not be empty")
	}
	return cfg, nil
}

func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
