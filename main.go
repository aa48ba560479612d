package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/loop"
	"github.com/milk9111/platformer/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (tick tracing, prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	startLevel := flag.Int("level", 1, "level number to start on (1-based)")
	flag.Parse()

	set, err := levels.LoadEmbedded()
	if err != nil {
		log.Fatal(err)
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}

	sim, err := loop.NewSimulation(loop.Options{
		Set:        set,
		Tuning:     tuning,
		StartLevel: *startLevel - 1,
		Debug:      *debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(int(tuning.World.TickRate))

	game := NewGame(sim, *debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
