package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stair-dash/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game and which one 'stairdash play' runs by default.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	idWidth := 2
	for _, g := range games {
		if len(g.ID) > idWidth {
			idWidth = len(g.ID)
		}
	}

	fmt.Println("Registered games:")
	fmt.Println()
	for _, g := range games {
		marker := " "
		if g.ID == "stairdash" {
			marker = "*"
		}
		fmt.Printf("  %s %-*s  %s\n", marker, idWidth, g.ID, g.Title)
	}
	fmt.Println()
	fmt.Println("* default: 'stairdash play' runs it without an argument.")
}
