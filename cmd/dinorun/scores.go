package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dinorun/internal/platform/tui"
	"github.com/vovakirdan/dinorun/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagBrowse bool
	flagRunID  string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and high scores",
	Long: `Display the top finished runs, the global high score and the best
score of every difficulty.

Examples:
  dinorun scores
  dinorun scores --limit 20
  dinorun scores --recent       # latest runs, abandoned included
  dinorun scores --browse       # interactive scoreboard
  dinorun scores --run <id>     # details of one run
  dinorun scores --clear        # delete every stored run`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by id")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	case flagRunID != "":
		return printRun(store, flagRunID)
	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, cat, width, height)
	}

	var runs []storage.RunRecord
	if flagRecent {
		fmt.Println(headerStyle.Render("Recent Runs"))
		runs, err = store.RecentRuns(flagLimit)
	} else {
		fmt.Println(headerStyle.Render("High Scores"))
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dinorun play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %-16s  %s\n", "Rank", "Score", "Runner", "Level", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %-16s  %s\n", "----", "-----", "------", "-----", "----", "---")
	for i, r := range runs {
		score := fmt.Sprintf("%d", r.Score)
		if r.Abandoned {
			score += "-"
		} else if r.NewRecord {
			score += "*"
		}
		fmt.Printf("  %-4d  %-8s  %-10s  %-8s  %-16s  %s\n",
			i+1, score, characterName(r), difficultyName(r), r.CreatedAt.Format("2006-01-02 15:04"), shortID(r.RunID))
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("High score: %d\n", high)
	}
	if best, err := store.BestScores(); err == nil {
		for _, d := range cat.Difficulties() {
			if score, ok := best[d.ID]; ok {
				fmt.Printf("  %-8s %d\n", d.Name, score)
			}
		}
	}
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Runs: %d (%d abandoned), average %.0f, last played %s\n",
			stats.RunsCount, stats.Abandoned, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", runID)
	}

	fmt.Println(headerStyle.Render("Run " + r.RunID))
	fmt.Printf("  Runner:     %s\n", characterName(*r))
	fmt.Printf("  Difficulty: %s\n", difficultyName(*r))
	fmt.Printf("  Score:      %d\n", r.Score)
	fmt.Printf("  Frames:     %d\n", r.Frames)
	fmt.Printf("  Abandoned:  %t\n", r.Abandoned)
	fmt.Printf("  New record: %t\n", r.NewRecord)
	fmt.Printf("  Played:     %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// characterName tolerates runs recorded under a different configuration.
func characterName(r storage.RunRecord) string {
	if ch, ok := cat.LookupCharacter(r.Character); ok {
		return ch.Name
	}
	return fmt.Sprintf("#%d", r.Character)
}

func difficultyName(r storage.RunRecord) string {
	if d, ok := cat.LookupDifficulty(r.Difficulty); ok {
		return d.Name
	}
	return fmt.Sprintf("#%d", r.Difficulty)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
