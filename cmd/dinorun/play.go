package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dinorun/internal/audio"
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/engine"
	"github.com/vovakirdan/dinorun/internal/platform/tui"
	"github.com/vovakirdan/dinorun/internal/storage"
)

var (
	flagCharacter  string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a session in this terminal, on the title screen.

Controls:
  Left/Right  - Choose character and difficulty
  Enter       - Confirm
  Space/Up    - Jump
  Down        - Duck (hold)
  Esc/B       - Back, or abandon the run
  Ctrl+S      - Save a screenshot to ~/.dinorun/screenshots
  Q/Ctrl+C    - Quit

--character and --difficulty take a name or an id and only preselect;
they can still be changed in the menus.

Examples:
  dinorun play
  dinorun play --character ankylo --difficulty easy
  dinorun play --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Character name or id")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty name or id")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	ch, diff, err := parseSelection(flagCharacter, flagDifficulty)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	sim := engine.New(engineCfg, cat, cfg.Seed)
	sim.Preselect(ch, diff)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
		rec := storage.NewRecorder(store, logger)
		if err := rec.Restore(sim); err != nil {
			logger.Warn("could not restore scores", "error", err)
		}
		sim.AddObserver(rec)
	}

	if !flagMute {
		player := audio.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			sim.AddObserver(player)
		}
	}

	if err := tui.Run(sim, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
