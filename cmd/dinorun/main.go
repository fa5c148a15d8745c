// dinorun is a dinosaur runner for the terminal.
//
// Usage:
//
//	dinorun play              - Play in this terminal
//	dinorun serve             - Start SSH server for remote play
//	dinorun watch             - Stream an autopilot run to the browser
//	dinorun scores            - Show recorded runs and high scores
//	dinorun profiles          - List characters and difficulties
//	dinorun config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.dinorun/runs.db)
//	--config <path>     - Use a custom configuration file
//	--log-level <level> - debug, info, warn or error
//
// DINORUN_DB and DINORUN_SEED, from the environment or a .env file,
// replace the defaults of --db and --seed.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs
	logger    *log.Logger
	engineCfg config.Config
	cat       *catalog.Catalog
)

func main() {
	//nolint:errcheck // .env is optional
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinorun",
	Short: "Dinorun - jump the cacti, duck the birds",
	Long: `Dinorun is an endless runner for the terminal. Pick a dinosaur and a
difficulty, then jump and duck past obstacles for as long as you can.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  watch     - Stream an autopilot run to the browser
  scores    - Show recorded runs and high scores
  profiles  - List characters and difficulties
  config    - Print the effective configuration

Examples:
  dinorun play
  dinorun play --character raptor --difficulty hard
  dinorun serve --ssh :2222
  dinorun watch --http :8080
  dinorun scores --limit 20`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinorun/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies environment defaults, creates the logger and loads the
// engine configuration.
func setup(cmd *cobra.Command, _ []string) error {
	if err := applyEnv(cmd); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dinorun",
		Level:           level,
	})

	engineCfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	cat, err = engineCfg.Catalog()
	return err
}

// applyEnv fills flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command) error {
	if v := os.Getenv("DINORUN_DB"); v != "" && !cmd.Flags().Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("DINORUN_SEED"); v != "" && !cmd.Flags().Changed("seed") {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid DINORUN_SEED: %w", err)
		}
		flagSeed = seed
	}
	return nil
}

// resolveSeed returns --seed, or a clock-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// parseSelection resolves the --character and --difficulty flags.
// Empty values keep the first profile.
func parseSelection(character, difficulty string) (catalog.CharacterID, catalog.DifficultyID, error) {
	var (
		ch   catalog.CharacterID
		diff catalog.DifficultyID
		err  error
	)
	if character != "" {
		if ch, err = config.ParseCharacter(cat, character); err != nil {
			return 0, 0, err
		}
	}
	if difficulty != "" {
		if diff, err = config.ParseDifficulty(cat, difficulty); err != nil {
			return 0, 0, err
		}
	}
	return ch, diff, nil
}
