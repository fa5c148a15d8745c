// Package audio plays the runner's sound: a background tune while a run is
// in progress and a short cue when it ends. It reacts to engine state
// transitions and never drives the simulation.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dinorun/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// Player is an engine.Observer that drives the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer. A failure leaves the
// player silent; the game runs fine without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	p.music = nil
	p.initialized = false
}

// OnTransition implements engine.Observer.
func (p *Player) OnTransition(t engine.Transition) {
	switch {
	case t.To == engine.StateRunning:
		p.startMusic()
	case t.From == engine.StateRunning:
		p.stopMusic()
		if t.To == engine.StateRunOver {
			p.playCue(t.Run != nil && t.Run.NewRecord)
		}
	}
}

// Playing reports whether the background tune is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.music != nil && !p.music.Paused
}

func (p *Player) startMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	// Every run starts the tune from the top.
	if p.music != nil {
		p.music.Paused = true
	}
	p.music = &beep.Ctrl{Streamer: newMelody(sampleRate, runTune, 180*time.Millisecond)}
	p.mixer.Add(p.music)
}

func (p *Player) stopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}

	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// playCue plays a falling two-note cue, or a rising one for a new record.
func (p *Player) playCue(record bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	notes := []float64{440, 220}
	if record {
		notes = []float64{523.25, 783.99}
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			p.logger.Warn("Could not build cue", "freq", freq, "error", err)
			return
		}
		parts = append(parts, beep.Take(sampleRate.N(150*time.Millisecond), tone))
	}

	speaker.Lock()
	p.mixer.Add(beep.Seq(parts...))
	speaker.Unlock()
}
