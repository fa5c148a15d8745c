// Package config provides YAML-based engine configuration loading for the
// runner: world geometry, physics constants, spawn tuning, scoring, and the
// character and difficulty tables.
package config

import (
	"fmt"

	"github.com/vovakirdan/dinorun/internal/catalog"
)

// Config contains all configuration for the runner engine.
type Config struct {
	Screen       ScreenConfig                `yaml:"screen"`
	Player       PlayerConfig                `yaml:"player"`
	Physics      PhysicsConfig               `yaml:"physics"`
	Obstacles    ObstaclesConfig             `yaml:"obstacles"`
	Spawn        SpawnConfig                 `yaml:"spawn"`
	Scoring      ScoringConfig               `yaml:"scoring"`
	Clouds       CloudsConfig                `yaml:"clouds"`
	Characters   []catalog.CharacterProfile  `yaml:"characters"`
	Difficulties []catalog.DifficultyProfile `yaml:"difficulties"`
}

// ScreenConfig defines the logical playfield in world pixels.
type ScreenConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"`
}

// PlayerConfig defines the player's fixed column and hitbox.
type PlayerConfig struct {
	X             int `yaml:"x"`
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	DuckReduction int `yaml:"duck_reduction"` // Height removed while ducking
}

// PhysicsConfig defines gravity and jump strength before character multipliers.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
}

// ObstaclesConfig defines the fixed dimensions of each obstacle type.
type ObstaclesConfig struct {
	LowWidth     int `yaml:"low_width"`
	LowHeight    int `yaml:"low_height"`
	TallWidth    int `yaml:"tall_width"`
	TallHeight   int `yaml:"tall_height"`
	FlyingWidth  int `yaml:"flying_width"`
	FlyingHeight int `yaml:"flying_height"`
	FlyingJitter int `yaml:"flying_jitter"` // Extra altitude drawn from [0, jitter)
}

// SpawnConfig tunes the spawn scheduler.
type SpawnConfig struct {
	Capacity            int     `yaml:"capacity"`
	MinInterval         int     `yaml:"min_interval"`
	MaxInterval         int     `yaml:"max_interval"`
	MinDistance         int     `yaml:"min_distance"`
	MaxDistance         int     `yaml:"max_distance"`
	IdleThreshold       int     `yaml:"idle_threshold"`
	BaseInterval        int     `yaml:"base_interval"`
	IntervalJitter      int     `yaml:"interval_jitter"`
	IntervalSpeedFactor int     `yaml:"interval_speed_factor"`
	ChanceBase          int     `yaml:"chance_base"`
	ChancePerSpeed      int     `yaml:"chance_per_speed"`
	ChanceJitter        int     `yaml:"chance_jitter"` // Symmetric: [-jitter, +jitter]
	ChanceFloor         int     `yaml:"chance_floor"`
	LowChance           int     `yaml:"low_chance"`           // Percent
	TallDensityFactor   float64 `yaml:"tall_density_factor"`  // Tall percent = density * factor
	RepeatShiftChance   int     `yaml:"repeat_shift_chance"`  // Percent
}

// ScoringConfig defines points and the speed ladder.
type ScoringConfig struct {
	PointsPerObstacle int `yaml:"points_per_obstacle"`
	SpeedStepScore    int `yaml:"speed_step_score"`
	ReferenceSpeed    int `yaml:"reference_speed"` // gameSpeed at baseGameSpeed 1000
	MaxSpeed          int `yaml:"max_speed"`
}

// CloudsConfig defines the background clouds.
type CloudsConfig struct {
	Count      int `yaml:"count"`
	MinY       int `yaml:"min_y"`
	YRange     int `yaml:"y_range"`
	MinSpeed   int `yaml:"min_speed"`
	SpeedRange int `yaml:"speed_range"`
	Width      int `yaml:"width"`
}

// PoolCapacity is the only obstacle capacity the engine supports.
const PoolCapacity = 5

// Validate checks ranges that the engine relies on.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("config: screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Screen.GroundY <= 0 || c.Screen.GroundY > c.Screen.Height:
		return fmt.Errorf("config: ground_y %d outside screen height %d", c.Screen.GroundY, c.Screen.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive")
	case c.Player.DuckReduction < 0 || c.Player.DuckReduction >= c.Player.Height:
		return fmt.Errorf("config: duck_reduction %d must be in [0, %d)", c.Player.DuckReduction, c.Player.Height)
	case c.Physics.Gravity <= 0 || c.Physics.JumpStrength <= 0:
		return fmt.Errorf("config: gravity and jump_strength must be positive")
	case c.Obstacles.LowWidth <= 0 || c.Obstacles.LowHeight <= 0,
		c.Obstacles.TallWidth <= 0 || c.Obstacles.TallHeight <= 0,
		c.Obstacles.FlyingWidth <= 0 || c.Obstacles.FlyingHeight <= 0:
		return fmt.Errorf("config: obstacle sizes must be positive")
	case c.Obstacles.FlyingJitter <= 0:
		return fmt.Errorf("config: flying_jitter must be positive")
	case c.Spawn.Capacity != PoolCapacity:
		return fmt.Errorf("config: spawn capacity must be %d, got %d", PoolCapacity, c.Spawn.Capacity)
	case c.Spawn.MinInterval <= 0 || c.Spawn.MinInterval > c.Spawn.MaxInterval:
		return fmt.Errorf("config: spawn interval range [%d,%d] is invalid", c.Spawn.MinInterval, c.Spawn.MaxInterval)
	case c.Spawn.MinDistance < 0 || c.Spawn.MinDistance >= c.Spawn.MaxDistance:
		return fmt.Errorf("config: spawn distance range [%d,%d) is invalid", c.Spawn.MinDistance, c.Spawn.MaxDistance)
	case c.Spawn.IntervalJitter <= 0 || c.Spawn.ChanceJitter < 0:
		return fmt.Errorf("config: spawn jitter must be positive")
	case c.Spawn.LowChance < 0 || c.Spawn.LowChance > 100:
		return fmt.Errorf("config: low_chance %d outside 0-100", c.Spawn.LowChance)
	case c.Spawn.RepeatShiftChance < 0 || c.Spawn.RepeatShiftChance > 100:
		return fmt.Errorf("config: repeat_shift_chance %d outside 0-100", c.Spawn.RepeatShiftChance)
	case c.Scoring.PointsPerObstacle <= 0 || c.Scoring.SpeedStepScore <= 0:
		return fmt.Errorf("config: scoring values must be positive")
	case c.Scoring.ReferenceSpeed <= 0 || c.Scoring.MaxSpeed < c.Scoring.ReferenceSpeed:
		return fmt.Errorf("config: speed range [%d,%d] is invalid", c.Scoring.ReferenceSpeed, c.Scoring.MaxSpeed)
	case c.Clouds.Count < 0 || c.Clouds.YRange <= 0 || c.Clouds.SpeedRange <= 0:
		return fmt.Errorf("config: cloud settings are invalid")
	case c.Clouds.MinSpeed < 1 || c.Clouds.Width <= 0:
		return fmt.Errorf("config: clouds need min_speed >= 1 and a positive width")
	}

	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Catalog builds the validated profile catalog from the configured tables.
func (c Config) Catalog() (*catalog.Catalog, error) {
	return catalog.New(c.Characters, c.Difficulties)
}
