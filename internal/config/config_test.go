package config

import (
	"flag"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{Background: "background.png"}, cfg)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-background", "art/bg.webp", "-debug", "-sound"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "art/bg.webp", cfg.Background)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Sound)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]string{"-brush", "5"}, io.Discard)
	assert.Error(t, err)

	_, err = Parse([]string{"extra"}, io.Discard)
	assert.ErrorContains(t, err, "unexpected arguments")

	_, err = Parse([]string{"-background="}, io.Discard)
	assert.ErrorContains(t, err, "must not be empty")

	_, err = Parse([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)
}
