package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
)

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print a level board",
	Long: `Prints the starting board of a level, top row first.

Legend:
  H  hero
  B  block
  C  collectable
  D  destination marker
  .  floor
  #  void

Examples:
  mindflip show lvl01
  mindflip show lvl02 --levels ./mylevels`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	def, lv, err := e.buildLevel(args[0])
	if err != nil {
		fail("%v", err)
	}

	if def.Name != "" {
		fmt.Printf("%s - %s\n", def.ID, def.Name)
	} else {
		fmt.Println(def.ID)
	}
	fmt.Print(core.RenderASCII(lv))
}
