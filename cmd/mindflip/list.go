package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows every valid level in the configured level directory, or the built-in pack.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	if err != nil {
		fail("%v", err)
	}

	defs, err := e.loader.LoadAll()
	if err != nil {
		fail("loading levels: %v", err)
	}

	if len(defs) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range defs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")

	for _, d := range defs {
		size := fmt.Sprintf("%dx%d", d.Dims.W, d.Dims.H)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, d.ID, size, d.Name)
	}

	fmt.Println()
	fmt.Println("Run 'mindflip show <id>' to view a level.")
}
