package engine

import (
	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Lookahead in frames: how early the autopilot reacts to an obstacle.
// Flying obstacles need a higher apex, so the jump starts earlier.
const (
	groundLead = 8
	flyingLead = 11
)

// Autopilot plays the game from snapshots alone. It confirms through every
// menu and the run-over screen, so it loops runs forever.
type Autopilot struct {
	standTop int // Top of a standing body
	duckTop  int // Top of a ducking body
	playerX  int
	playerW  int
}

// NewAutopilot creates an autopilot for the given world geometry.
func NewAutopilot(cfg config.Config) *Autopilot {
	return &Autopilot{
		standTop: cfg.Screen.GroundY - cfg.Player.Height,
		duckTop:  cfg.Screen.GroundY - (cfg.Player.Height - cfg.Player.DuckReduction),
		playerX:  cfg.Player.X,
		playerW:  cfg.Player.Width,
	}
}

// Decide returns the intents to submit before the next tick.
func (a *Autopilot) Decide(snap Snapshot) []core.Intent {
	switch snap.State {
	case StateMenu, StateCharacterSelect, StateDifficultySelect, StateRunOver:
		return []core.Intent{core.IntentConfirm}
	case StateRunning:
		return a.run(snap)
	default:
		return nil
	}
}

func (a *Autopilot) run(snap Snapshot) []core.Intent {
	threat, ok := a.nextThreat(snap)
	if !ok {
		return a.stand(snap)
	}

	gap := threat.X - (a.playerX + a.playerW)

	if threat.Type == ObstacleFlying && threat.Y+threat.Height <= a.duckTop {
		if gap <= snap.GameSpeed*flyingLead {
			if !snap.Player.Ducking {
				return []core.Intent{core.IntentDuckPressed}
			}
			return nil
		}
		return a.stand(snap)
	}

	lead := groundLead
	if threat.Type == ObstacleFlying {
		lead = flyingLead
	}
	var out []core.Intent
	if snap.Player.Ducking {
		out = append(out, core.IntentDuckReleased)
	}
	if gap <= snap.GameSpeed*lead && !snap.Player.Jumping {
		out = append(out, core.IntentJumpPressed)
	}
	return out
}

// nextThreat returns the closest obstacle that can still hit the player.
// Flying obstacles entirely above a standing body are ignored.
func (a *Autopilot) nextThreat(snap Snapshot) (ObstaclePose, bool) {
	var best ObstaclePose
	found := false
	for _, o := range snap.Obstacles {
		if o.X+o.Width < a.playerX {
			continue
		}
		if o.Y+o.Height <= a.standTop {
			continue
		}
		if !found || o.X < best.X {
			best, found = o, true
		}
	}
	return best, found
}

func (a *Autopilot) stand(snap Snapshot) []core.Intent {
	if snap.Player.Ducking {
		return []core.Intent{core.IntentDuckReleased}
	}
	return nil
}
