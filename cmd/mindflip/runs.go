package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/levels"
	"github.com/vovakirdan/mindflip/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs <level>",
	Short: "Show the best recorded runs for a level",
	Long: `Display the best recorded runs for the specified level, ranked by
fewest steps and then fewest flips.

Examples:
  mindflip runs lvl01
  mindflip runs lvl02 --limit 5
  mindflip runs lvl02 --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs for the level")
}

func runRuns(cmd *cobra.Command, args []string) {
	levelID := args[0]

	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	// Check if level exists
	def, err := e.loader.LoadByID(levelID)
	if errors.Is(err, levels.ErrNotFound) {
		fail("unknown level %q\nRun 'mindflip list' to see available levels.", levelID)
	}
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(e.cfg.Storage.DBPath)
	if err != nil {
		fail("opening runs database: %v", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(levelID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared runs for %s.\n", levelID)
		return
	}

	runs, err := store.BestRuns(levelID, flagRunsLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Best Runs - %s %s\n", def.ID, def.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mindflip play %s ...' to record the first run!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-5s  %-5s  %-6s  %s\n", "Rank", "Steps", "Flips", "Moves", "Failed", "Date")
	fmt.Printf("  %-4s  %-5s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5d  %-5d  %-5d  %-6d  %s\n", i+1, r.Steps, r.Flips, r.Moves, r.FailedMoves, dateStr)
	}

	stats, err := store.GetLevelStats(levelID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d steps  Avg: %.1f steps  Total flips: %d\n",
			stats.RunsCount, stats.BestSteps, stats.AvgSteps, stats.TotalFlips)
	}
}
