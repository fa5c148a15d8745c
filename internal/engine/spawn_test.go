package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/config"
)

func TestSpawnerResetByDensity(t *testing.T) {
	tests := []struct {
		density  int
		expected int
	}{
		{30, 49},
		{45, 44},
		{60, 39},
		{100, 25},
		{0, 60},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tc := range tests {
		s := NewSpawner(config.Default())
		s.Reset(rng, tc.density)
		if s.NextSpawnInterval != tc.expected {
			t.Errorf("NextSpawnInterval for density %d = %d, expected %d", tc.density, s.NextSpawnInterval, tc.expected)
		}
		if s.FramesSinceLastSpawn != s.NextSpawnInterval {
			t.Errorf("FramesSinceLastSpawn = %d, expected it primed to %d", s.FramesSinceLastSpawn, s.NextSpawnInterval)
		}
		if s.NextMinDistance < 300 || s.NextMinDistance >= 600 {
			t.Errorf("NextMinDistance = %d, expected within [300,600)", s.NextMinDistance)
		}
	}
}

func TestSpawnerIdleRule(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	diff := catalog.Default().Difficulty(catalog.DifficultyNormal)
	s := NewSpawner(config.Default())
	s.Reset(rng, diff.ObstacleDensity)
	s.NextSpawnInterval = 60
	s.FramesSinceLastSpawn = 20

	pool := NewPool()
	o, ok := s.Update(rng, &pool, 10, diff)
	if !ok {
		t.Fatal("empty pool past the idle threshold should spawn")
	}
	if o.Slot != 0 || o.X != 800 {
		t.Errorf("spawned obstacle = %+v, expected slot 0 at the right edge", o)
	}
	if s.FramesSinceLastSpawn != 0 {
		t.Errorf("FramesSinceLastSpawn = %d, expected 0 after a spawn", s.FramesSinceLastSpawn)
	}
}

func TestSpawnerDistanceRejection(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	diff := catalog.Default().Difficulty(catalog.DifficultyNormal)
	s := NewSpawner(config.Default())
	s.Reset(rng, diff.ObstacleDensity)
	s.NextMinDistance = 300

	pool := NewPool()
	slot, _ := pool.Acquire()
	*pool.Get(slot) = Obstacle{Slot: slot, Type: ObstacleLow, X: 700, Y: 460, Width: 20, Height: 40}

	// Past the max interval the spawn is attempted, but the last obstacle
	// is only 100px in.
	s.FramesSinceLastSpawn = 60
	if _, ok := s.Update(rng, &pool, 10, diff); ok {
		t.Error("spawn should be rejected while the nearest obstacle is too close")
	}
	if pool.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, expected 1", pool.ActiveCount())
	}

	// Past twice the max interval the spawn is forced.
	s.FramesSinceLastSpawn = 120
	o, ok := s.Update(rng, &pool, 10, diff)
	if !ok {
		t.Fatal("forced spawn should override the distance rule")
	}
	if o.Slot != 1 {
		t.Errorf("forced spawn slot = %d, expected 1", o.Slot)
	}
}

func TestSpawnerFullPool(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	diff := catalog.Default().Difficulty(catalog.DifficultyHard)
	s := NewSpawner(config.Default())
	s.Reset(rng, diff.ObstacleDensity)

	pool := NewPool()
	for i := 0; i < Capacity; i++ {
		pool.Acquire()
	}

	s.FramesSinceLastSpawn = 500
	if _, ok := s.Update(rng, &pool, 10, diff); ok {
		t.Error("full pool should defer spawning")
	}
	if s.FramesSinceLastSpawn != 501 {
		t.Errorf("FramesSinceLastSpawn = %d, expected the counter to keep running", s.FramesSinceLastSpawn)
	}
}

func TestSpawnerIntervalRecompute(t *testing.T) {
	tests := []struct {
		speed  int
		lo, hi int
	}{
		{10, 35, 54},
		{12, 31, 50},
		{25, 25, 44},
	}

	rng := rand.New(rand.NewSource(11))
	diff := catalog.Default().Difficulty(catalog.DifficultyNormal)
	for _, tc := range tests {
		s := NewSpawner(config.Default())
		s.Reset(rng, diff.ObstacleDensity)
		for i := 0; i < 50; i++ {
			pool := NewPool()
			s.FramesSinceLastSpawn = 200
			if _, ok := s.Update(rng, &pool, tc.speed, diff); !ok {
				t.Fatal("forced spawn failed")
			}
			if s.NextSpawnInterval < tc.lo || s.NextSpawnInterval > tc.hi {
				t.Errorf("speed %d: NextSpawnInterval = %d, expected within [%d,%d]", tc.speed, s.NextSpawnInterval, tc.lo, tc.hi)
			}
			if s.NextMinDistance < 300 || s.NextMinDistance >= 600 {
				t.Errorf("NextMinDistance = %d, expected within [300,600)", s.NextMinDistance)
			}
		}
	}
}

func TestSpawnerGeometry(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	diff := catalog.Default().Difficulty(catalog.DifficultyEasy)
	s := NewSpawner(config.Default())
	s.Reset(rng, diff.ObstacleDensity)

	seen := map[ObstacleType]bool{}
	for i := 0; i < 200; i++ {
		pool := NewPool()
		s.FramesSinceLastSpawn = 200
		o, ok := s.Update(rng, &pool, 10, diff)
		if !ok {
			t.Fatal("forced spawn failed")
		}
		seen[o.Type] = true

		switch o.Type {
		case ObstacleLow:
			if o.Width != 20 || o.Height != 40 || o.Y != 460 {
				t.Errorf("low obstacle = %+v", o)
			}
		case ObstacleTall:
			if o.Width != 30 || o.Height != 60 || o.Y != 440 {
				t.Errorf("tall obstacle = %+v", o)
			}
		case ObstacleFlying:
			if o.Width != 30 || o.Height != 20 {
				t.Errorf("flying obstacle = %+v", o)
			}
			// ground 500 - altitude 100 - jitter [0,30)
			if o.Y > 400 || o.Y < 371 {
				t.Errorf("flying obstacle y = %d, expected within [371,400]", o.Y)
			}
		}
	}

	for _, typ := range []ObstacleType{ObstacleLow, ObstacleTall, ObstacleFlying} {
		if !seen[typ] {
			t.Errorf("never spawned a %s obstacle in 200 draws", typ)
		}
	}
}

func TestSpawnerAntiRepeat(t *testing.T) {
	diff := catalog.Default().Difficulty(catalog.DifficultyNormal)

	tests := []struct {
		name     string
		shift    int
		expected []ObstacleType
	}{
		{"always shift", 100, []ObstacleType{ObstacleLow, ObstacleTall, ObstacleLow}},
		{"never shift", 0, []ObstacleType{ObstacleLow, ObstacleLow, ObstacleLow}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Spawn.LowChance = 100 // Every draw is low.
			cfg.Spawn.RepeatShiftChance = tc.shift

			rng := rand.New(rand.NewSource(9))
			s := NewSpawner(cfg)
			s.Reset(rng, diff.ObstacleDensity)
			pool := NewPool()

			for i, want := range tc.expected {
				s.FramesSinceLastSpawn = 200
				o, ok := s.Update(rng, &pool, 10, diff)
				if !ok {
					t.Fatalf("spawn %d failed", i)
				}
				if o.Type != want {
					t.Errorf("spawn %d type = %s, expected %s", i, o.Type, want)
				}
			}
		})
	}
}

func TestSpawnerAntiRepeatIgnoresFreedObstacle(t *testing.T) {
	diff := catalog.Default().Difficulty(catalog.DifficultyNormal)
	cfg := config.Default()
	cfg.Spawn.LowChance = 100
	cfg.Spawn.RepeatShiftChance = 100

	rng := rand.New(rand.NewSource(9))
	s := NewSpawner(cfg)
	s.Reset(rng, diff.ObstacleDensity)
	pool := NewPool()

	s.FramesSinceLastSpawn = 200
	first, _ := s.Update(rng, &pool, 10, diff)
	pool.Release(first.Slot)

	s.FramesSinceLastSpawn = 200
	second, _ := s.Update(rng, &pool, 10, diff)
	if second.Type != ObstacleLow {
		t.Errorf("type after the previous obstacle was freed = %s, expected low", second.Type)
	}
}

func TestSpawnerTypeDistribution(t *testing.T) {
	diff := catalog.Default().Difficulty(catalog.DifficultyHard)
	if diff.ObstacleDensity != 60 {
		t.Fatalf("hard density = %d, expected 60", diff.ObstacleDensity)
	}

	rng := rand.New(rand.NewSource(42))
	s := NewSpawner(config.Default())
	s.Reset(rng, diff.ObstacleDensity)

	counts := map[ObstacleType]int{}
	pool := NewPool()
	for i := 0; i < 50; i++ {
		s.FramesSinceLastSpawn = 200
		o, ok := s.Update(rng, &pool, 10, diff)
		if !ok {
			t.Fatal("forced spawn failed")
		}
		counts[o.Type]++
		pool.Release(o.Slot)
	}

	// Expected 20 low, 10.5 tall, 19.5 flying.
	check := func(typ ObstacleType, lo, hi int) {
		if n := counts[typ]; n < lo || n > hi {
			t.Errorf("%s obstacles in 50 spawns = %d, expected within [%d,%d]", typ, n, lo, hi)
		}
	}
	check(ObstacleLow, 8, 34)
	check(ObstacleTall, 2, 22)
	check(ObstacleFlying, 7, 33)
}

func TestDrawTypeProportions(t *testing.T) {
	s := NewSpawner(config.Default())
	rng := rand.New(rand.NewSource(1234))

	const n = 10000
	counts := map[ObstacleType]int{}
	for i := 0; i < n; i++ {
		counts[s.drawType(rng, 60)]++
	}

	tests := []struct {
		typ   ObstacleType
		share float64
	}{
		{ObstacleLow, 0.40},
		{ObstacleTall, 0.21},
		{ObstacleFlying, 0.39},
	}
	for _, tc := range tests {
		got := float64(counts[tc.typ]) / n
		if got < tc.share-0.03 || got > tc.share+0.03 {
			t.Errorf("%s share = %.3f, expected %.2f +/- 0.03", tc.typ, got, tc.share)
		}
	}
}
