package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"painter/internal/sound"
)

// blipPlayer plays one selection blip at a time; a new blip cuts the last.
type blipPlayer struct {
	ctx     *audio.Context
	current *audio.Player
	log     *slog.Logger
}

func newBlipPlayer(log *slog.Logger) *blipPlayer {
	return &blipPlayer{
		ctx: audio.NewContext(sound.SampleRate),
		log: log,
	}
}

func (p *blipPlayer) Play(index int) {
	player, err := p.ctx.NewPlayer(sound.NewBlip(sound.PitchFor(index), sound.BlipLength))
	if err != nil {
		p.log.Warn("blip player", "err", err)
		return
	}
	if p.current != nil {
		p.current.Close()
	}
	player.SetVolume(0.5)
	player.Play()
	p.current = player
}
