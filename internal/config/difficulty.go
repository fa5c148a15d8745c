package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/dinorun/internal/catalog"
)

// ParseDifficulty resolves a difficulty preset given on the command line,
// either by name ("easy", "Hard") or by numeric id.
func ParseDifficulty(cat *catalog.Catalog, preset string) (catalog.DifficultyID, error) {
	preset = strings.TrimSpace(preset)
	if n, err := strconv.Atoi(preset); err == nil {
		if _, ok := cat.LookupDifficulty(catalog.DifficultyID(n)); ok {
			return catalog.DifficultyID(n), nil
		}
		return 0, fmt.Errorf("unknown difficulty id %d", n)
	}
	for _, d := range cat.Difficulties() {
		if strings.EqualFold(d.Name, preset) {
			return d.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", preset)
}

// ParseCharacter resolves a character by name or numeric id.
func ParseCharacter(cat *catalog.Catalog, name string) (catalog.CharacterID, error) {
	name = strings.TrimSpace(name)
	if n, err := strconv.Atoi(name); err == nil {
		if _, ok := cat.LookupCharacter(catalog.CharacterID(n)); ok {
			return catalog.CharacterID(n), nil
		}
		return 0, fmt.Errorf("unknown character id %d", n)
	}
	for _, c := range cat.Characters() {
		if strings.EqualFold(c.Name, name) {
			return c.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown character %q", name)
}
