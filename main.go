package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/haruta4949/water-ring-game/game"
)

var (
	configFile string
	width      int
	height     int
	rings      int
	goals      int
	seed       int64
)

func main() {
	root := &cobra.Command{
		Use:   "water-ring-game",
		Short: "Pump the rings onto the goal pegs",
		Long:  "A water ring toss puzzle. Press the pump to nudge the floating rings upward; a ring that lands inside a goal peg's span freezes there. Freeze all five to win.",
		RunE:  run,
	}

	root.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	root.Flags().IntVar(&width, "width", 0, "play area width in pixels")
	root.Flags().IntVar(&height, "height", 0, "play area height in pixels")
	root.Flags().IntVar(&rings, "rings", 0, "number of rings")
	root.Flags().IntVar(&goals, "goals", 0, "number of goal pegs")
	root.Flags().Int64Var(&seed, "seed", 0, "random seed for the pump nudges (0 = time-based)")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	config := game.DefaultConfig()
	if configFile != "" {
		loaded, err := game.LoadConfig(configFile)
		if err != nil {
			return err
		}
		config = loaded
	}

	// Flags win over the config file
	if width > 0 {
		config.ScreenWidth = width
	}
	if height > 0 {
		config.ScreenHeight = height
	}
	if rings > 0 {
		config.NumRings = rings
	}
	if goals > 0 {
		config.NumGoals = goals
	}
	if seed != 0 {
		config.Seed = seed
	}

	g := game.NewGame(config)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Water Ring Game")
	ebiten.SetWindowResizable(true)

	return ebiten.RunGame(g)
}
