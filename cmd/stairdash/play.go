package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stair-dash/internal/core"
	"github.com/vovakirdan/stair-dash/internal/games/stairdash"
	"github.com/vovakirdan/stair-dash/internal/platform/tui"
	"github.com/vovakirdan/stair-dash/internal/registry"
	"github.com/vovakirdan/stair-dash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLanes      int
	flagLog        string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. With no argument the default game is Stair Dash.

Controls:
  A/Left, D/Right - Switch lanes
  Space           - Throw a dart
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Gentler spawn pacing, slower tier ramp
  normal - Standard pacing
  hard   - Faster spawns and more aggressive chasers
  fixed  - No progression, stays on the first tier

Examples:
  stairdash play
  stairdash play --difficulty hard
  stairdash play --lanes 5
  stairdash play --config ./my-stairdash.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLanes, "lanes", 0, "Number of lanes (0 = config default)")
	playCmd.Flags().StringVar(&flagLog, "log", "", "Write game diagnostics to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show collision filter diagnostics in the HUD")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "stairdash"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'stairdash list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	if gameID == "stairdash" {
		stairdash.SetConfigPath(flagConfig)
		stairdash.SetDifficultyPreset(flagDifficulty)
		stairdash.SetLaneCount(flagLanes)
		stairdash.SetDebugHUD(flagDebug)

		if flagLog != "" {
			logFile, logErr := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if logErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
			} else {
				defer logFile.Close()
				stairdash.SetLogOutput(logFile)
			}
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
