package engine

import (
	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// InitialSpeed scales a difficulty's base game speed (1000 = reference)
// to scroll pixels per tick.
func InitialSpeed(cfg config.ScoringConfig, baseGameSpeed int) int {
	return core.Clamp(cfg.ReferenceSpeed*baseGameSpeed/1000, 1, cfg.MaxSpeed)
}

// NextSpeed raises speed by one unit for every speed step the score
// crossed going from oldScore to newScore, capped at the maximum.
func NextSpeed(cfg config.ScoringConfig, speed, oldScore, newScore int) int {
	steps := newScore/cfg.SpeedStepScore - oldScore/cfg.SpeedStepScore
	if steps <= 0 {
		return speed
	}
	return min(speed+steps, cfg.MaxSpeed)
}
