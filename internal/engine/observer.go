package engine

import (
	"github.com/vovakirdan/dinorun/internal/catalog"
)

// RunResult describes how a run ended.
type RunResult struct {
	Character  catalog.CharacterID  `json:"character"`
	Difficulty catalog.DifficultyID `json:"difficulty"`
	Score      int                  `json:"score"`
	Frames     int                  `json:"frames"`
	Abandoned  bool                 `json:"abandoned"`
	NewRecord  bool                 `json:"new_record"`
	HighScore  int                  `json:"high_score"` // After the commit
	BestScore  int                  `json:"best_score"` // For Difficulty, after the commit
}

// Transition is published whenever the session changes state. Run is set
// when a run ends, either in RunOver or by abandoning it.
type Transition struct {
	From State
	To   State
	Run  *RunResult
}

// Observer consumes state transitions. Observers are called synchronously
// from Tick and must not call back into the simulation.
type Observer interface {
	OnTransition(t Transition)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(t Transition)

// OnTransition calls f(t).
func (f ObserverFunc) OnTransition(t Transition) {
	f(t)
}
