package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/engine"
	"github.com/vovakirdan/dinorun/internal/platform/web"
)

var (
	flagHTTPAddr        string
	flagWatchCharacter  string
	flagWatchDifficulty string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream an autopilot run to the browser",
	Long: `Let the autopilot play endless runs and stream every frame.

Endpoints:
  /          - Canvas viewer
  /ws        - WebSocket stream of JSON snapshots
  /snapshot  - Latest snapshot

Without --http, the server listens on $PORT, or :8080.

Examples:
  dinorun watch
  dinorun watch --http :9000 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address")
	watchCmd.Flags().StringVar(&flagWatchCharacter, "character", "", "Character name or id")
	watchCmd.Flags().StringVar(&flagWatchDifficulty, "difficulty", "", "Difficulty name or id")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if port := os.Getenv("PORT"); port != "" && !cmd.Flags().Changed("http") {
		flagHTTPAddr = ":" + port
	}

	ch, diff, err := parseSelection(flagWatchCharacter, flagWatchDifficulty)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := web.NewHub(logger)
	sim := engine.New(engineCfg, cat, resolveSeed())
	sp := web.NewSpectator(sim, hub, ch, diff, logger)

	logger.Info("watch server", "address", flagHTTPAddr,
		"character", cat.Character(ch).Name, "difficulty", cat.Difficulty(diff).Name)
	return web.Serve(ctx, flagHTTPAddr, sp, hub, flagFPS, logger)
}
