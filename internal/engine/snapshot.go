package engine

import (
	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Snapshot is an immutable view of the simulation after a tick.
type Snapshot struct {
	State      State                `json:"state"`
	Character  catalog.CharacterID  `json:"character"`
	Difficulty catalog.DifficultyID `json:"difficulty"`
	Score      int                  `json:"score"`
	HighScore  int                  `json:"high_score"`
	BestScore  int                  `json:"best_score"`
	GameSpeed  int                  `json:"game_speed"`
	Lives      int                  `json:"lives"`
	FrameCount int                  `json:"frame_count"`
	NightMode  bool                 `json:"night_mode"`
	Player     PlayerPose           `json:"player"`
	Obstacles  []ObstaclePose       `json:"obstacles"` // Slot order
	Clouds     []CloudPose          `json:"clouds"`
}

// PlayerPose is the runner's box and posture.
type PlayerPose struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	VelocityY float64 `json:"velocity_y"`
	Jumping   bool    `json:"jumping"`
	Ducking   bool    `json:"ducking"`
}

// Rect returns the player's collision box.
func (p PlayerPose) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// ObstaclePose is one live obstacle.
type ObstaclePose struct {
	Slot   int          `json:"slot"`
	Type   ObstacleType `json:"type"`
	X      int          `json:"x"`
	Y      int          `json:"y"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Scored bool         `json:"scored"`
}

// Rect returns the obstacle's collision box.
func (o ObstaclePose) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// CloudPose is one background cloud.
type CloudPose struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActiveCount returns the number of live obstacles.
func (s Snapshot) ActiveCount() int {
	return len(s.Obstacles)
}
