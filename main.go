package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/breathing-halftone/internal/config"
	"github.com/iburimskiy/breathing-halftone/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowTitle("Breathing Halftone - O: open image, A/R/L/C: toggles, Esc/Q: quit")

	g := game.New()
	if len(os.Args) > 1 {
		if err := g.LoadFile(os.Args[1]); err != nil {
			log.Printf("load %s: %v", os.Args[1], err)
		}
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
