package audio

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinorun/internal/engine"
)

// newTestPlayer returns a player whose mixer is live but never handed to
// a speaker, so tests run without an audio device.
func newTestPlayer() *Player {
	p := NewPlayer(log.New(&bytes.Buffer{}))
	p.initialized = true
	return p
}

func TestMelodyStream(t *testing.T) {
	m := newMelody(sampleRate, runTune, 50*time.Millisecond)

	samples := make([][2]float64, sampleRate.N(time.Second))
	n, ok := m.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream() = %d, %v, expected %d, true", n, ok, len(samples))
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Fatalf("sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d is not mono", i)
		}
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, expected the fade-in to start at 0", samples[0][0])
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v", m.Err())
	}
}

func TestPlayerMusicFollowsRuns(t *testing.T) {
	p := newTestPlayer()

	p.OnTransition(engine.Transition{From: engine.StateDifficultySelect, To: engine.StateRunning})
	if !p.Playing() {
		t.Fatal("music should play while running")
	}
	if p.mixer.Len() != 1 {
		t.Errorf("mixer has %d streamers, expected 1", p.mixer.Len())
	}

	p.OnTransition(engine.Transition{
		From: engine.StateRunning,
		To:   engine.StateRunOver,
		Run:  &engine.RunResult{Score: 40},
	})
	if p.Playing() {
		t.Error("music should stop on run over")
	}
	if p.mixer.Len() != 2 {
		t.Errorf("mixer has %d streamers, expected the music and a cue", p.mixer.Len())
	}
}

func TestPlayerAbandonIsSilent(t *testing.T) {
	p := newTestPlayer()

	p.OnTransition(engine.Transition{From: engine.StateDifficultySelect, To: engine.StateRunning})
	p.OnTransition(engine.Transition{
		From: engine.StateRunning,
		To:   engine.StateMenu,
		Run:  &engine.RunResult{Abandoned: true},
	})

	if p.Playing() {
		t.Error("music should stop when the run is abandoned")
	}
	if p.mixer.Len() != 1 {
		t.Errorf("mixer has %d streamers, expected no cue for an abandoned run", p.mixer.Len())
	}
}

func TestPlayerUninitializedIsSilent(t *testing.T) {
	p := NewPlayer(log.New(&bytes.Buffer{}))

	p.OnTransition(engine.Transition{From: engine.StateDifficultySelect, To: engine.StateRunning})
	p.OnTransition(engine.Transition{From: engine.StateRunning, To: engine.StateRunOver, Run: &engine.RunResult{}})

	if p.Playing() || p.mixer.Len() != 0 {
		t.Error("player without a speaker should not queue sounds")
	}
}

func TestPlayerCueLength(t *testing.T) {
	p := newTestPlayer()
	p.playCue(true)

	// Two 150ms notes.
	want := 2 * sampleRate.N(150*time.Millisecond)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := p.mixer.Stream(buf)
		if !ok || n == 0 {
			break
		}
		if p.mixer.Len() == 0 {
			total += n
			break
		}
		total += n
		if total > 10*want {
			t.Fatal("cue never finished")
		}
	}
	if total < want-len(buf) || total > want+2*len(buf) {
		t.Errorf("cue lasted %d samples, expected about %d", total, want)
	}
}
