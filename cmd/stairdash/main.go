// stairdash is a terminal stairwell runner: dodge hazards, collect coins,
// escort VIPs past their chasers and climb the difficulty tiers.
//
// Usage:
//
//	stairdash play              - Play directly
//	stairdash menu              - Start menu to pick games interactively
//	stairdash serve             - Start SSH server for remote play
//	stairdash scores [game]     - Show high scores
//	stairdash list              - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.stairdash/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/stair-dash/internal/games/stairdash"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stairdash",
	Short: "Stair Dash - a stairwell runner in your terminal",
	Long: `Stair Dash is a terminal game where you sprint up an endless stairwell,
switching lanes to grab coins, dodge hazards and escort VIPs away from
the chasers hunting them.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  stairdash play
  stairdash play --difficulty hard --lanes 5
  stairdash menu
  stairdash serve --ssh :2222
  stairdash scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stairdash/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
