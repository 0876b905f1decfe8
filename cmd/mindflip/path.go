package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindflip/internal/games/mindflip"
)

var pathCmd = &cobra.Command{
	Use:   "path <level> <x,y>",
	Short: "Compute the hero's path to a cell",
	Long: `Moves the hero from the level's starting cell toward the given cell and
prints the route the pathfinder chose. Coordinates are board coordinates,
with y=0 on the bottom row.

Examples:
  mindflip path lvl01 0,6
  mindflip path lvl03 5 3`,
	Args: cobra.RangeArgs(2, 3),
	Run:  runPath,
}

func runPath(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	def, lv, err := e.buildLevel(args[0])
	if err != nil {
		fail("%v", err)
	}

	target, err := mindflip.ParseCoord(strings.Join(args[1:], " "))
	if err != nil {
		fail("target: %v", err)
	}

	from := lv.HeroPosition()
	path, err := lv.RequestMove(target)
	if err != nil {
		fail("%v", err)
	}

	if len(path) == 0 {
		fmt.Printf("%s: no path from %s to %s\n", def.ID, from, target)
		return
	}

	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = c.String()
	}
	fmt.Printf("%s: %d steps\n", def.ID, len(path)-1)
	fmt.Println(strings.Join(steps, " -> "))
}
