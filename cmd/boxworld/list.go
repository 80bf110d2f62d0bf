package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxworld/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in worlds",
	Long:  `Shows a list of all worlds compiled into boxworld.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'boxworld play <id>' to play a world.")
}
