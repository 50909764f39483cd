package audio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"github.com/cbodonnell/tictaccube/pkg/log"
	"github.com/cbodonnell/tictaccube/pkg/sound"
)

const (
	SampleRate  = 44100
	MusicVolume = 0.5
)

// Player plays the move click and the optional background music.
type Player struct {
	context *audio.Context
	click   []byte
	music   *audio.Player
}

type NewPlayerOptions struct {
	// MusicPath is an MP3 file looped in the background. Optional.
	MusicPath string
}

func NewPlayer(opts NewPlayerOptions) (*Player, error) {
	p := &Player{
		context: audio.NewContext(SampleRate),
		click:   sound.Click(SampleRate),
	}
	if opts.MusicPath == "" {
		return p, nil
	}

	music, err := p.loadMusic(opts.MusicPath)
	if err != nil {
		log.Error("Failed to load music, playing without it: %v", err)
		return p, nil
	}
	p.music = music
	return p, nil
}

// HasMusic reports whether a background loop is loaded.
func (p *Player) HasMusic() bool {
	return p.music != nil
}

func (p *Player) loadMusic(path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	stream, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %v", path, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := p.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %v", err)
	}
	player.SetVolume(MusicVolume)
	return player, nil
}

// Click plays the move sound. Overlapping clicks each get their own player.
func (p *Player) Click() {
	p.context.NewPlayerFromBytes(p.click).Play()
}

// StartMusic starts the background loop if there is one.
func (p *Player) StartMusic() {
	if p.music == nil || p.music.IsPlaying() {
		return
	}
	p.music.Play()
	log.Debug("Music started")
}

// ToggleMusic pauses or resumes the background loop.
func (p *Player) ToggleMusic() {
	if p.music == nil {
		return
	}
	if p.music.IsPlaying() {
		p.music.Pause()
		log.Debug("Music paused")
		return
	}
	p.music.Play()
	log.Debug("Music resumed")
}
