package web

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/engine"
)

// Spectator plays the simulation with the autopilot and publishes every
// frame. It restarts runs forever with the same selections.
type Spectator struct {
	sim    *engine.Simulation
	pilot  *engine.Autopilot
	hub    *Hub
	snap   engine.Snapshot
	logger *log.Logger
}

// NewSpectator prepares sim for autopilot play with the given character
// and difficulty. sim must be on its title screen.
func NewSpectator(sim *engine.Simulation, hub *Hub, character catalog.CharacterID, difficulty catalog.DifficultyID, logger *log.Logger) *Spectator {
	sp := &Spectator{
		sim:    sim,
		pilot:  engine.NewAutopilot(sim.Config()),
		hub:    hub,
		logger: logger,
	}

	sim.AddObserver(engine.ObserverFunc(func(t engine.Transition) {
		if t.Run != nil && !t.Run.Abandoned {
			logger.Info("autopilot run over", "score", t.Run.Score, "frames", t.Run.Frames, "record", t.Run.NewRecord)
		}
	}))

	// Selections persist across runs, so they only need to be made once.
	sp.snap = sim.Preselect(character, difficulty)
	hub.Publish(sp.snap)

	return sp
}

// Step lets the autopilot act on the last snapshot, advances one frame
// and publishes the result.
func (sp *Spectator) Step() engine.Snapshot {
	for _, in := range sp.pilot.Decide(sp.snap) {
		sp.sim.SubmitIntent(in)
	}
	sp.snap = sp.sim.Tick(1)
	sp.hub.Publish(sp.snap)
	return sp.snap
}

// Run steps at tickRate frames per second until ctx is done.
func (sp *Spectator) Run(ctx context.Context, tickRate int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(tickRate, 1)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sp.Step()
		}
	}
}
