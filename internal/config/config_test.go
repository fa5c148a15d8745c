package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/dinorun/internal/catalog"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	def := Default()

	if cfg.Screen != def.Screen {
		t.Errorf("Screen = %+v, expected %+v", cfg.Screen, def.Screen)
	}
	if cfg.Player != def.Player {
		t.Errorf("Player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("Physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Obstacles != def.Obstacles {
		t.Errorf("Obstacles = %+v, expected %+v", cfg.Obstacles, def.Obstacles)
	}
	if cfg.Spawn != def.Spawn {
		t.Errorf("Spawn = %+v, expected %+v", cfg.Spawn, def.Spawn)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("Scoring = %+v, expected %+v", cfg.Scoring, def.Scoring)
	}
	if cfg.Clouds != def.Clouds {
		t.Errorf("Clouds = %+v, expected %+v", cfg.Clouds, def.Clouds)
	}
	if len(cfg.Characters) != len(def.Characters) {
		t.Fatalf("len(Characters) = %d, expected %d", len(cfg.Characters), len(def.Characters))
	}
	for i := range def.Characters {
		if cfg.Characters[i] != def.Characters[i] {
			t.Errorf("Characters[%d] = %+v, expected %+v", i, cfg.Characters[i], def.Characters[i])
		}
	}
	for i := range def.Difficulties {
		if cfg.Difficulties[i] != def.Difficulties[i] {
			t.Errorf("Difficulties[%d] = %+v, expected %+v", i, cfg.Difficulties[i], def.Difficulties[i])
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  jump_strength: 20\nscoring:\n  max_speed: 30\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Physics.JumpStrength != 20 {
		t.Errorf("JumpStrength = %v, expected 20", cfg.Physics.JumpStrength)
	}
	if cfg.Physics.Gravity != 1.003 {
		t.Errorf("Gravity = %v, expected default 1.003", cfg.Physics.Gravity)
	}
	if cfg.Scoring.MaxSpeed != 30 {
		t.Errorf("MaxSpeed = %d, expected 30", cfg.Scoring.MaxSpeed)
	}
	if len(cfg.Characters) != 3 {
		t.Errorf("len(Characters) = %d, expected defaults kept", len(cfg.Characters))
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"capacity", func(c *Config) { c.Spawn.Capacity = 6 }, "capacity"},
		{"interval order", func(c *Config) { c.Spawn.MinInterval = 70 }, "interval"},
		{"distance order", func(c *Config) { c.Spawn.MaxDistance = 300 }, "distance"},
		{"duck too deep", func(c *Config) { c.Player.DuckReduction = 110 }, "duck_reduction"},
		{"ground below screen", func(c *Config) { c.Screen.GroundY = 700 }, "ground_y"},
		{"max speed below reference", func(c *Config) { c.Scoring.MaxSpeed = 5 }, "speed range"},
		{"still clouds", func(c *Config) { c.Clouds.MinSpeed = 0; c.Clouds.SpeedRange = 1 }, "min_speed"},
		{"zero cloud width", func(c *Config) { c.Clouds.Width = 0 }, "width"},
		{"bad catalog", func(c *Config) { c.Characters[0].StartingLives = 0 }, "starting lives"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tc.errSub)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  idle_threshold: 15\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Spawn.IdleThreshold != 15 {
		t.Errorf("IdleThreshold = %d, expected 15", cfg.Spawn.IdleThreshold)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn:\n  capacity: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(invalid) should fail")
	}
}

func TestParseDifficulty(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		in       string
		expected catalog.DifficultyID
		wantErr  bool
	}{
		{"easy", catalog.DifficultyEasy, false},
		{"HARD", catalog.DifficultyHard, false},
		{" normal ", catalog.DifficultyNormal, false},
		{"1", catalog.DifficultyNormal, false},
		{"7", 0, true},
		{"nightmare", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(cat, tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestParseCharacter(t *testing.T) {
	cat := catalog.Default()

	got, err := ParseCharacter(cat, "ankylo")
	if err != nil || got != catalog.CharacterTank {
		t.Errorf("ParseCharacter(ankylo) = %d, %v, expected tank", got, err)
	}
	if _, err := ParseCharacter(cat, "-1"); err == nil {
		t.Error("ParseCharacter(-1) should fail")
	}
}
