package config

import (
	_ "embed"

	"github.com/vovakirdan/dinorun/internal/catalog"
)

//go:embed defaults/dinorun.yaml
var defaultYAML []byte

// Default returns the hardcoded engine configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:   800,
			Height:  600,
			GroundY: 500,
		},
		Player: PlayerConfig{
			X:             100,
			Width:         40,
			Height:        110,
			DuckReduction: 20,
		},
		Physics: PhysicsConfig{
			Gravity:      1.003,
			JumpStrength: 18,
		},
		Obstacles: ObstaclesConfig{
			LowWidth:     20,
			LowHeight:    40,
			TallWidth:    30,
			TallHeight:   60,
			FlyingWidth:  30,
			FlyingHeight: 20,
			FlyingJitter: 30,
		},
		Spawn: SpawnConfig{
			Capacity:            PoolCapacity,
			MinInterval:         25,
			MaxInterval:         60,
			MinDistance:         300,
			MaxDistance:         600,
			IdleThreshold:       20,
			BaseInterval:        35,
			IntervalJitter:      20,
			IntervalSpeedFactor: 2,
			ChanceBase:          10,
			ChancePerSpeed:      3,
			ChanceJitter:        5,
			ChanceFloor:         5,
			LowChance:           40,
			TallDensityFactor:   0.35,
			RepeatShiftChance:   50,
		},
		Scoring: ScoringConfig{
			PointsPerObstacle: 10,
			SpeedStepScore:    500,
			ReferenceSpeed:    10,
			MaxSpeed:          25,
		},
		Clouds: CloudsConfig{
			Count:      5,
			MinY:       50,
			YRange:     200,
			MinSpeed:   1,
			SpeedRange: 3,
			Width:      70,
		},
		Characters:   catalog.DefaultCharacters(),
		Difficulties: catalog.DefaultDifficulties(),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
