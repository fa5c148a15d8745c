// Package catalog holds the immutable character and difficulty profiles a
// run is configured from. Profiles are looked up by strongly typed ids; an
// out-of-range id is a programming error and panics.
package catalog

import (
	"fmt"
)

// CharacterID selects a CharacterProfile.
type CharacterID int

// DifficultyID selects a DifficultyProfile.
type DifficultyID int

// Theme is the visual theme of a difficulty.
type Theme int

const (
	ThemeGreen Theme = iota
	ThemeBlue
	ThemeNight
)

// Night reports whether the theme renders as night mode.
func (t Theme) Night() bool {
	return t == ThemeNight
}

// String returns the theme name.
func (t Theme) String() string {
	switch t {
	case ThemeGreen:
		return "green"
	case ThemeBlue:
		return "blue"
	case ThemeNight:
		return "night"
	default:
		return "unknown"
	}
}

// CharacterProfile describes a playable character.
type CharacterProfile struct {
	ID                CharacterID `yaml:"id"`
	Name              string      `yaml:"name"`
	Color             string      `yaml:"color"` // hex, e.g. "#50B450"
	SpeedMultiplier   float64     `yaml:"speed_multiplier"`
	JumpMultiplier    float64     `yaml:"jump_multiplier"`
	GravityMultiplier float64     `yaml:"gravity_multiplier"`
	StartingLives     int         `yaml:"starting_lives"`
	SpecialAbility    bool        `yaml:"special_ability"`
}

// DifficultyProfile describes a difficulty level.
type DifficultyProfile struct {
	ID                     DifficultyID `yaml:"id"`
	Name                   string       `yaml:"name"`
	BaseGameSpeed          int          `yaml:"base_game_speed"` // 1000 = reference speed
	GravityLevel           int          `yaml:"gravity_level"`   // 1-5, descriptive
	Theme                  Theme        `yaml:"theme"`
	ObstacleDensity        int          `yaml:"obstacle_density"` // 0-100
	FlyingObstacleAltitude int          `yaml:"flying_obstacle_altitude"`
	BestScore              int          `yaml:"best_score"` // initial value; the session owns updates
}

// Catalog is a validated, read-only pair of profile tables.
type Catalog struct {
	characters   []CharacterProfile
	difficulties []DifficultyProfile
}

// New validates the tables and returns a catalog holding private copies.
// Every profile's id must equal its position in the table.
func New(characters []CharacterProfile, difficulties []DifficultyProfile) (*Catalog, error) {
	if len(characters) == 0 {
		return nil, fmt.Errorf("catalog: no character profiles")
	}
	if len(difficulties) == 0 {
		return nil, fmt.Errorf("catalog: no difficulty profiles")
	}

	for i, c := range characters {
		if err := validateCharacter(i, c); err != nil {
			return nil, err
		}
	}
	for i, d := range difficulties {
		if err := validateDifficulty(i, d); err != nil {
			return nil, err
		}
	}

	cat := &Catalog{
		characters:   make([]CharacterProfile, len(characters)),
		difficulties: make([]DifficultyProfile, len(difficulties)),
	}
	copy(cat.characters, characters)
	copy(cat.difficulties, difficulties)
	return cat, nil
}

// MustNew is New for static tables known to be valid.
func MustNew(characters []CharacterProfile, difficulties []DifficultyProfile) *Catalog {
	cat, err := New(characters, difficulties)
	if err != nil {
		panic(err)
	}
	return cat
}

func validateCharacter(pos int, c CharacterProfile) error {
	switch {
	case int(c.ID) != pos:
		return fmt.Errorf("catalog: character %q has id %d at position %d", c.Name, c.ID, pos)
	case c.Name == "":
		return fmt.Errorf("catalog: character %d has no name", pos)
	case c.SpeedMultiplier <= 0 || c.JumpMultiplier <= 0 || c.GravityMultiplier <= 0:
		return fmt.Errorf("catalog: character %q multipliers must be positive", c.Name)
	case c.StartingLives < 1:
		return fmt.Errorf("catalog: character %q starting lives must be at least 1, got %d", c.Name, c.StartingLives)
	}
	return nil
}

func validateDifficulty(pos int, d DifficultyProfile) error {
	switch {
	case int(d.ID) != pos:
		return fmt.Errorf("catalog: difficulty %q has id %d at position %d", d.Name, d.ID, pos)
	case d.Name == "":
		return fmt.Errorf("catalog: difficulty %d has no name", pos)
	case d.BaseGameSpeed <= 0:
		return fmt.Errorf("catalog: difficulty %q base game speed must be positive", d.Name)
	case d.GravityLevel < 1 || d.GravityLevel > 5:
		return fmt.Errorf("catalog: difficulty %q gravity level %d outside 1-5", d.Name, d.GravityLevel)
	case d.ObstacleDensity < 0 || d.ObstacleDensity > 100:
		return fmt.Errorf("catalog: difficulty %q obstacle density %d outside 0-100", d.Name, d.ObstacleDensity)
	case d.Theme < ThemeGreen || d.Theme > ThemeNight:
		return fmt.Errorf("catalog: difficulty %q has unknown theme %d", d.Name, d.Theme)
	case d.FlyingObstacleAltitude < 0:
		return fmt.Errorf("catalog: difficulty %q flying altitude must not be negative", d.Name)
	}
	return nil
}

// NumCharacters returns the size of the character table.
func (c *Catalog) NumCharacters() int {
	return len(c.characters)
}

// NumDifficulties returns the size of the difficulty table.
func (c *Catalog) NumDifficulties() int {
	return len(c.difficulties)
}

// Character returns the profile for id. It panics if id is out of range.
func (c *Catalog) Character(id CharacterID) CharacterProfile {
	p, ok := c.LookupCharacter(id)
	if !ok {
		panic(fmt.Sprintf("catalog: character id %d out of range [0,%d)", id, len(c.characters)))
	}
	return p
}

// Difficulty returns the profile for id. It panics if id is out of range.
func (c *Catalog) Difficulty(id DifficultyID) DifficultyProfile {
	p, ok := c.LookupDifficulty(id)
	if !ok {
		panic(fmt.Sprintf("catalog: difficulty id %d out of range [0,%d)", id, len(c.difficulties)))
	}
	return p
}

// LookupCharacter returns the profile for id and whether it exists.
func (c *Catalog) LookupCharacter(id CharacterID) (CharacterProfile, bool) {
	if id < 0 || int(id) >= len(c.characters) {
		return CharacterProfile{}, false
	}
	return c.characters[id], true
}

// LookupDifficulty returns the profile for id and whether it exists.
func (c *Catalog) LookupDifficulty(id DifficultyID) (DifficultyProfile, bool) {
	if id < 0 || int(id) >= len(c.difficulties) {
		return DifficultyProfile{}, false
	}
	return c.difficulties[id], true
}

// Characters returns a copy of the character table.
func (c *Catalog) Characters() []CharacterProfile {
	out := make([]CharacterProfile, len(c.characters))
	copy(out, c.characters)
	return out
}

// Difficulties returns a copy of the difficulty table.
func (c *Catalog) Difficulties() []DifficultyProfile {
	out := make([]DifficultyProfile, len(c.difficulties))
	copy(out, c.difficulties)
	return out
}

// CycleCharacter moves delta steps from id, wrapping in both directions.
func (c *Catalog) CycleCharacter(id CharacterID, delta int) CharacterID {
	return CharacterID(wrap(int(id)+delta, len(c.characters)))
}

// CycleDifficulty moves delta steps from id, wrapping in both directions.
func (c *Catalog) CycleDifficulty(id DifficultyID, delta int) DifficultyID {
	return DifficultyID(wrap(int(id)+delta, len(c.difficulties)))
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
