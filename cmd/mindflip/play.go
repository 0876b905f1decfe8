package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindflip/internal/games/mindflip"
	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
	"github.com/vovakirdan/mindflip/internal/storage"
)

var (
	flagScript string
	flagNoSave bool
	flagBoard  bool
)

var playCmd = &cobra.Command{
	Use:   "play <level> [command...]",
	Short: "Run a script of moves and flips",
	Long: `Plays a level by running commands in order. Commands come from the
arguments, or from a script file with one command per line.

Commands:
  move X Y    - Walk the hero to a cell (marker follows the target)
  mark X Y    - Move only the destination marker
  flip DIR    - Flip the board: up, right, upright, upleft

Script files may contain blank lines and '#' comments. Use '--script -'
to read from stdin. Finished runs are saved to the run database unless
--no-save is given or storage is disabled in config.

Examples:
  mindflip play lvl02 "flip right" "move 5 5"
  mindflip play lvl01 --script solve.txt
  mindflip play lvl03 "move 5,3" --no-save --board`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScript, "script", "", "Read commands from file ('-' for stdin)")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
	playCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the board after every command")
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := args[0]

	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	lines := args[1:]
	if flagScript != "" {
		scripted, err := readScriptFile(flagScript)
		if err != nil {
			fail("%v", err)
		}
		lines = append(lines, scripted...)
	}
	if len(lines) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no commands given")
		fmt.Fprintln(os.Stderr, "Pass commands as arguments or use --script.")
		os.Exit(1)
	}

	def, lv, err := e.buildLevel(levelID)
	if err != nil {
		fail("%v", err)
	}

	session := mindflip.NewSession(def.ID, lv, e.logger)

	fmt.Printf("%s - %s\n", def.ID, def.Name)
	fmt.Print(core.RenderASCII(lv))
	fmt.Println()

	outcomes, runErr := session.Run(lines)
	for _, out := range outcomes {
		printOutcome(out)
		if flagBoard {
			fmt.Print(core.RenderASCII(lv))
			fmt.Println()
		}
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
	}

	if !flagBoard {
		fmt.Println()
		fmt.Print(core.RenderASCII(lv))
	}

	run := session.Summary()
	fmt.Println()
	fmt.Printf("Moves: %d  Flips: %d  Steps: %d  Failed moves: %d\n",
		run.Moves, run.Flips, run.Steps, run.FailedMoves)

	if !flagNoSave && !e.cfg.Storage.Disabled && len(outcomes) > 0 {
		saveRun(e, run)
	}

	if runErr != nil {
		os.Exit(1)
	}
}

func printOutcome(out mindflip.Outcome) {
	switch out.Command.Op {
	case mindflip.OpMove:
		if !out.Reached() {
			fmt.Printf("%-14s no path, hero stays at %s\n", out.Command, out.Hero)
			return
		}
		steps := make([]string, len(out.Path))
		for i, c := range out.Path {
			steps[i] = c.String()
		}
		fmt.Printf("%-14s %d steps: %s\n", out.Command, len(out.Path)-1, strings.Join(steps, " "))
	case mindflip.OpMark:
		fmt.Printf("%-14s marker at %s\n", out.Command, out.Marker)
	case mindflip.OpFlip:
		fmt.Printf("%-14s hero at %s, marker at %s\n", out.Command, out.Hero, out.Marker)
	}
}

func readScriptFile(name string) ([]string, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return mindflip.ReadScript(r)
}

func saveRun(e *env, run storage.Run) {
	store, err := storage.Open(e.cfg.Storage.DBPath)
	if err != nil {
		e.logger.Warn("run not saved", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(run); err != nil {
		e.logger.Warn("run not saved", "error", err)
		return
	}
	e.logger.Debug("run saved", "db", e.cfg.Storage.DBPath)
}
