// mindflip is a command-line driver for the MindFlip puzzle core.
//
// Usage:
//
//	mindflip list                      - List available levels
//	mindflip show <level>              - Print a level as ASCII
//	mindflip path <level> <x,y>        - Print the hero's path to a cell
//	mindflip play <level> [cmds...]    - Run a move/flip script on a level
//	mindflip runs <level>              - Show the best recorded runs
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.mindflip/configs, ./configs)
//	--levels <dir>      - Level directory (default: built-in pack)
//	--db <path>         - Run database path
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagLevelsDir string
	flagDBPath    string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mindflip",
	Short: "MindFlip - toroidal grid puzzle tooling",
	Long: `MindFlip drives the puzzle core from the command line: inspect levels,
ask the pathfinder for routes, and replay move/flip scripts.

Available commands:
  list     - Show all available levels
  show     - Print a level board
  path     - Compute the hero's path to a cell
  play     - Run a script of moves and flips
  runs     - View the best recorded runs

Examples:
  mindflip list
  mindflip show lvl01
  mindflip path lvl01 0,6
  mindflip play lvl02 "flip right" "move 5 5"
  mindflip runs lvl02`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Level directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
}
