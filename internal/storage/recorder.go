package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinorun/internal/engine"
)

// Recorder persists every run that ends, finished or abandoned. Storage
// failures are logged and otherwise ignored so a broken database never
// interrupts play.
type Recorder struct {
	store  *Store
	logger *log.Logger
}

// NewRecorder creates an engine.Observer backed by store.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

// OnTransition implements engine.Observer.
func (r *Recorder) OnTransition(t engine.Transition) {
	if t.Run == nil {
		return
	}
	runID, err := r.store.SaveRunResult(*t.Run)
	if err != nil {
		r.logger.Warn("Could not save run", "error", err)
		return
	}
	r.logger.Debug("Run saved", "run", runID, "score", t.Run.Score, "abandoned", t.Run.Abandoned)
}

// Restore seeds sim with the stored high score and best scores.
func (r *Recorder) Restore(sim *engine.Simulation) error {
	high, err := r.store.HighScore()
	if err != nil {
		return err
	}
	best, err := r.store.BestScores()
	if err != nil {
		return err
	}
	sim.RestoreScores(high, best)
	return nil
}

var _ engine.Observer = (*Recorder)(nil)
