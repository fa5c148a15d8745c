package catalog

// Default character ids.
const (
	CharacterDefault CharacterID = iota
	CharacterSpeedy
	CharacterTank
)

// Default difficulty ids.
const (
	DifficultyEasy DifficultyID = iota
	DifficultyNormal
	DifficultyHard
)

// DefaultCharacters returns the built-in character table.
func DefaultCharacters() []CharacterProfile {
	return []CharacterProfile{
		{
			ID:                CharacterDefault,
			Name:              "Rex",
			Color:             "#50B450",
			SpeedMultiplier:   1.0,
			JumpMultiplier:    1.0,
			GravityMultiplier: 1.0,
			StartingLives:     1,
		},
		{
			ID:                CharacterSpeedy,
			Name:              "Raptor",
			Color:             "#FF6464",
			SpeedMultiplier:   1.3,
			JumpMultiplier:    1.2,
			GravityMultiplier: 0.8,
			StartingLives:     1,
		},
		{
			ID:                CharacterTank,
			Name:              "Ankylo",
			Color:             "#6464FF",
			SpeedMultiplier:   0.8,
			JumpMultiplier:    0.9,
			GravityMultiplier: 1.2,
			StartingLives:     3,
			SpecialAbility:    true,
		},
	}
}

// DefaultDifficulties returns the built-in difficulty table.
func DefaultDifficulties() []DifficultyProfile {
	return []DifficultyProfile{
		{
			ID:                     DifficultyEasy,
			Name:                   "Easy",
			BaseGameSpeed:          800,
			GravityLevel:           2,
			Theme:                  ThemeGreen,
			ObstacleDensity:        30,
			FlyingObstacleAltitude: 100,
		},
		{
			ID:                     DifficultyNormal,
			Name:                   "Normal",
			BaseGameSpeed:          1000,
			GravityLevel:           3,
			Theme:                  ThemeBlue,
			ObstacleDensity:        45,
			FlyingObstacleAltitude: 80,
		},
		{
			ID:                     DifficultyHard,
			Name:                   "Hard",
			BaseGameSpeed:          1200,
			GravityLevel:           5,
			Theme:                  ThemeNight,
			ObstacleDensity:        60,
			FlyingObstacleAltitude: 60,
		},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return MustNew(DefaultCharacters(), DefaultDifficulties())
}
