package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// runTune is a short pentatonic loop (Hz).
var runTune = []float64{261.63, 329.63, 392.00, 440.00, 392.00, 329.63, 293.66, 329.63}

// melody streams a sequence of notes forever. Each note fades in and out
// to avoid clicks at note boundaries.
type melody struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
}

func newMelody(sr beep.SampleRate, notes []float64, noteDur time.Duration) *melody {
	return &melody{
		sr:      sr,
		notes:   notes,
		noteLen: sr.N(noteDur),
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	fade := m.noteLen / 10
	for i := range samples {
		idx := (m.pos / m.noteLen) % len(m.notes)
		inNote := m.pos % m.noteLen
		t := float64(m.pos) / float64(m.sr)

		env := 1.0
		if inNote < fade {
			env = float64(inNote) / float64(fade)
		} else if rest := m.noteLen - inNote; rest < fade {
			env = float64(rest) / float64(fade)
		}

		sample := 0.1 * env * math.Sin(2*math.Pi*m.notes[idx]*t)
		samples[i][0] = sample
		samples[i][1] = sample
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error {
	return nil
}
