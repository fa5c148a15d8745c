package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/engine"
)

// Screen layout constants
const (
	hudRows    = 1  // HUD line above the playfield
	minScreenW = 30 // Smallest terminal that still shows a playfield
	minScreenH = 8
	cloudRows  = 20 // World height of a cloud, in pixels
)

// Glyphs
const (
	glyphPlayer     = '█'
	glyphPlayerDuck = '▄'
	glyphCactus     = '▓'
	glyphFlyer      = '≈'
	glyphCloud      = '~'
	glyphGround     = '─'
)

// Renderer draws simulation snapshots into a character screen, scaling
// the world playfield to whatever size the terminal has.
type Renderer struct {
	cat     *catalog.Catalog
	worldW  int
	worldH  int
	groundY int
	cloudW  int
}

// NewRenderer creates a renderer for the given world configuration.
func NewRenderer(cfg config.Config, cat *catalog.Catalog) *Renderer {
	return &Renderer{
		cat:     cat,
		worldW:  cfg.Screen.Width,
		worldH:  cfg.Screen.Height,
		groundY: cfg.Screen.GroundY,
		cloudW:  cfg.Clouds.Width,
	}
}

// Render draws snap. last is the most recent finished run, used by the
// run-over screen; it may be nil.
func (r *Renderer) Render(s *core.Screen, snap engine.Snapshot, last *engine.RunResult) {
	s.Clear()

	if s.Width() < minScreenW || s.Height() < minScreenH {
		s.DrawText(0, 0, "Terminal too small", core.ColorRed)
		return
	}

	switch snap.State {
	case engine.StateMenu:
		r.drawMenu(s, snap)
	case engine.StateCharacterSelect:
		r.drawCharacterSelect(s, snap)
	case engine.StateDifficultySelect:
		r.drawDifficultySelect(s, snap)
	case engine.StateRunning:
		r.drawWorld(s, snap)
	case engine.StateRunOver:
		r.drawWorld(s, snap)
		r.drawRunOver(s, snap, last)
	case engine.StateTerminated:
		s.DrawTextCentered(s.Height()/2, "Bye!", core.ColorGray)
	}
}

// toScreen maps a world rectangle into the playfield rows.
func (r *Renderer) toScreen(s *core.Screen, rect core.Rect) core.Rect {
	out := rect.Scale(r.worldW, r.worldH, s.Width(), s.Height()-hudRows)
	out.Y += hudRows
	return out
}

func (r *Renderer) drawWorld(s *core.Screen, snap engine.Snapshot) {
	ground := core.ColorGray
	cloud := core.ColorWhite
	cactus := core.ColorGreen
	flyer := core.ColorMagenta
	if snap.NightMode {
		ground = core.ColorNightGround
		cloud = core.ColorGray
		cactus = core.ColorBrightGreen
		flyer = core.ColorBrightYellow
	}

	for _, c := range snap.Clouds {
		cr := r.toScreen(s, core.NewRect(c.X, c.Y, r.cloudW, cloudRows))
		s.DrawHLine(cr.X, cr.Y, cr.W, glyphCloud, cloud)
	}

	gy := r.toScreen(s, core.NewRect(0, r.groundY, r.worldW, 1)).Y
	s.DrawHLine(0, gy, s.Width(), glyphGround, ground)

	for _, o := range snap.Obstacles {
		glyph, color := glyphCactus, cactus
		if o.Type == engine.ObstacleFlying {
			glyph, color = glyphFlyer, flyer
		}
		s.DrawRect(r.toScreen(s, o.Rect()), glyph, color)
	}

	ch := r.cat.Character(snap.Character)
	glyph := glyphPlayer
	if snap.Player.Ducking {
		glyph = glyphPlayerDuck
	}
	s.DrawRect(r.toScreen(s, snap.Player.Rect()), glyph, core.Color(ch.Color))

	r.drawHUD(s, snap)
}

// drawHUD writes the status line: character, lives, score, records, speed.
func (r *Renderer) drawHUD(s *core.Screen, snap engine.Snapshot) {
	ch := r.cat.Character(snap.Character)
	diff := r.cat.Difficulty(snap.Difficulty)

	s.DrawText(1, 0, ch.Name, core.Color(ch.Color))
	x := 2 + len([]rune(ch.Name))

	text := core.ColorWhite
	if snap.NightMode {
		text = core.ColorGray
	}

	parts := make([]string, 0, 6)
	if snap.Lives > 1 {
		parts = append(parts, fmt.Sprintf("Lives %d", snap.Lives))
	}
	parts = append(parts,
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("High %d", snap.HighScore),
		fmt.Sprintf("Best %d", snap.BestScore),
		fmt.Sprintf("Speed %d", snap.GameSpeed),
	)
	s.DrawText(x, 0, strings.Join(parts, "  "), text)

	label := "[" + diff.Name + "]"
	s.DrawText(s.Width()-len([]rune(label))-1, 0, label, core.ColorCyan)
}

func (r *Renderer) drawRunOver(s *core.Screen, snap engine.Snapshot, last *engine.RunResult) {
	lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score)}
	if last != nil && last.NewRecord {
		lines = append(lines, "NEW RECORD!")
	}
	lines = append(lines, "", "enter: menu   esc: quit")

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect((s.Width()-w-4)/2, (s.Height()-len(lines)-2)/2, w+4, len(lines)+2)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		color := core.ColorWhite
		switch {
		case i == 0:
			color = core.ColorBrightRed
		case l == "NEW RECORD!":
			color = core.ColorBrightYellow
		}
		s.DrawTextCentered(box.Y+1+i, l, color)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(startColor)).Render(run.String()))
		}
	}
	return sb.String()
}
