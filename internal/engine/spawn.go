package engine

import (
	"math/rand"

	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Spawner decides when a free slot is filled and with what.
type Spawner struct {
	FramesSinceLastSpawn int
	NextSpawnInterval    int
	NextMinDistance      int

	cfg            config.SpawnConfig
	obstacles      config.ObstaclesConfig
	screenW        int
	groundY        int
	referenceSpeed int
}

// NewSpawner creates a spawner. Call Reset before the first Update.
func NewSpawner(cfg config.Config) Spawner {
	return Spawner{
		cfg:            cfg.Spawn,
		obstacles:      cfg.Obstacles,
		screenW:        cfg.Screen.Width,
		groundY:        cfg.Screen.GroundY,
		referenceSpeed: cfg.Scoring.ReferenceSpeed,
	}
}

// Reset prepares the scheduler for a new run. Denser difficulties start
// with a shorter interval, and the counter is primed so the first
// obstacle arrives quickly.
func (s *Spawner) Reset(rng *rand.Rand, density int) {
	s.NextSpawnInterval = s.cfg.MinInterval + (s.cfg.MaxInterval-s.cfg.MinInterval)*(100-density)/100
	s.NextMinDistance = s.rollDistance(rng)
	s.FramesSinceLastSpawn = s.NextSpawnInterval
}

// Prime makes the scheduler ready to spawn, used when an obstacle leaves
// the screen.
func (s *Spawner) Prime() {
	s.FramesSinceLastSpawn = s.NextSpawnInterval
}

// Update advances the frame counter and spawns into pool when the pacing
// rules allow. It returns the new obstacle, if any.
func (s *Spawner) Update(rng *rand.Rand, pool *Pool, speed int, diff catalog.DifficultyProfile) (Obstacle, bool) {
	s.FramesSinceLastSpawn++

	if pool.Full() {
		return Obstacle{}, false
	}

	active := pool.ActiveCount()
	forced := s.FramesSinceLastSpawn > 2*s.cfg.MaxInterval
	attempt := forced ||
		s.FramesSinceLastSpawn > s.cfg.MaxInterval ||
		(active == 0 && s.FramesSinceLastSpawn > s.cfg.IdleThreshold)
	if !attempt && s.FramesSinceLastSpawn > s.NextSpawnInterval {
		attempt = rng.Intn(100) < s.spawnChance(rng, speed)
	}
	if !attempt {
		return Obstacle{}, false
	}

	if active > 0 && !forced {
		x, _ := pool.RightmostX()
		if s.screenW-x < s.NextMinDistance {
			return Obstacle{}, false
		}
	}

	return s.spawn(rng, pool, speed, diff), true
}

// spawnChance returns the percent chance of an early spawn; it grows with
// speed above the reference.
func (s *Spawner) spawnChance(rng *rand.Rand, speed int) int {
	chance := s.cfg.ChanceBase + (speed-s.referenceSpeed)*s.cfg.ChancePerSpeed
	chance += rng.Intn(2*s.cfg.ChanceJitter+1) - s.cfg.ChanceJitter
	return max(chance, s.cfg.ChanceFloor)
}

func (s *Spawner) spawn(rng *rand.Rand, pool *Pool, speed int, diff catalog.DifficultyProfile) Obstacle {
	last, hasLast := pool.LastActivated()

	typ := s.drawType(rng, diff.ObstacleDensity)
	if hasLast && last.Type == typ && rng.Intn(100) < s.cfg.RepeatShiftChance {
		typ = (typ + 1) % numObstacleTypes
	}

	slot, _ := pool.Acquire()
	o := pool.Get(slot)
	o.Type = typ
	o.X = s.screenW
	switch typ {
	case ObstacleLow:
		o.Width, o.Height = s.obstacles.LowWidth, s.obstacles.LowHeight
		o.Y = s.groundY - o.Height
	case ObstacleTall:
		o.Width, o.Height = s.obstacles.TallWidth, s.obstacles.TallHeight
		o.Y = s.groundY - o.Height
	case ObstacleFlying:
		o.Width, o.Height = s.obstacles.FlyingWidth, s.obstacles.FlyingHeight
		o.Y = s.groundY - diff.FlyingObstacleAltitude - rng.Intn(s.obstacles.FlyingJitter)
	}

	s.FramesSinceLastSpawn = 0
	base := max(s.cfg.MinInterval, s.cfg.BaseInterval-(speed-s.referenceSpeed)*s.cfg.IntervalSpeedFactor)
	s.NextSpawnInterval = core.Clamp(base+rng.Intn(s.cfg.IntervalJitter), s.cfg.MinInterval, s.cfg.MaxInterval)
	s.NextMinDistance = s.rollDistance(rng)

	return *o
}

// drawType picks a type with a fixed share for low obstacles; density
// moves weight from flying to tall.
func (s *Spawner) drawType(rng *rand.Rand, density int) ObstacleType {
	r := rng.Intn(100)
	switch {
	case r < s.cfg.LowChance:
		return ObstacleLow
	case float64(r) < float64(s.cfg.LowChance)+float64(density)*s.cfg.TallDensityFactor:
		return ObstacleTall
	default:
		return ObstacleFlying
	}
}

func (s *Spawner) rollDistance(rng *rand.Rand) int {
	return s.cfg.MinDistance + rng.Intn(s.cfg.MaxDistance-s.cfg.MinDistance)
}
