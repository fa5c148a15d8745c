package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/engine"
)

const title = "D I N O R U N"

// drawMenu renders the title screen.
func (r *Renderer) drawMenu(s *core.Screen, snap engine.Snapshot) {
	top := max(1, s.Height()/2-4)

	s.DrawTextCentered(top, title, core.ColorBrightGreen)
	s.DrawTextCentered(top+2, "Jump the cacti, duck the birds.", core.ColorGray)

	if snap.HighScore > 0 {
		s.DrawTextCentered(top+4, fmt.Sprintf("High score: %d", snap.HighScore), core.ColorBrightYellow)
	}

	s.DrawTextCentered(top+6, "Enter: Start  |  Esc: Quit", core.ColorWhite)
}

// drawCharacterSelect lists the characters with the selected one's stats.
func (r *Renderer) drawCharacterSelect(s *core.Screen, snap engine.Snapshot) {
	top := max(1, s.Height()/2-6)
	s.DrawTextCentered(top, "Choose your runner", core.ColorBrightWhite)

	chars := r.cat.Characters()
	for i, ch := range chars {
		line := "  " + ch.Name
		if ch.ID == snap.Character {
			line = "> " + ch.Name + " <"
		}
		s.DrawTextCentered(top+2+i, line, core.Color(ch.Color))
	}

	ch := r.cat.Character(snap.Character)
	stats := characterStats(ch)
	for i, l := range stats {
		s.DrawTextCentered(top+3+len(chars)+i, l, core.ColorGray)
	}

	s.DrawTextCentered(top+4+len(chars)+len(stats), "Left/Right: Choose  |  Enter: Next  |  Esc: Back", core.ColorWhite)
}

// drawDifficultySelect lists the difficulties with their best scores.
func (r *Renderer) drawDifficultySelect(s *core.Screen, snap engine.Snapshot) {
	top := max(1, s.Height()/2-6)
	s.DrawTextCentered(top, "Choose a difficulty", core.ColorBrightWhite)

	diffs := r.cat.Difficulties()
	for i, d := range diffs {
		line := "  " + d.Name
		color := core.ColorGray
		if d.ID == snap.Difficulty {
			line = "> " + d.Name + " <"
			color = core.ColorBrightCyan
		}
		s.DrawTextCentered(top+2+i, line, color)
	}

	d := r.cat.Difficulty(snap.Difficulty)
	info := []string{
		fmt.Sprintf("Start speed %d  Density %d%%  Theme %s", d.BaseGameSpeed, d.ObstacleDensity, d.Theme),
		fmt.Sprintf("Best score: %d", snap.BestScore),
	}
	for i, l := range info {
		s.DrawTextCentered(top+3+len(diffs)+i, l, core.ColorGray)
	}

	s.DrawTextCentered(top+4+len(diffs)+len(info), "Left/Right: Choose  |  Enter: Run  |  Esc: Back", core.ColorWhite)
}

func characterStats(ch catalog.CharacterProfile) []string {
	stats := []string{
		fmt.Sprintf("Speed x%.1f  Jump x%.1f  Gravity x%.1f", ch.SpeedMultiplier, ch.JumpMultiplier, ch.GravityMultiplier),
	}
	if ch.StartingLives > 1 {
		stats = append(stats, fmt.Sprintf("Lives: %d", ch.StartingLives))
	}
	return stats
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
