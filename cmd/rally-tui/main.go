package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/automoto/rally/assets"
	"github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/sim"
	"github.com/automoto/rally/tui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	arenaName := flag.String("arena", "classic", "Embedded arena to play on")
	tickRate := flag.Int("tickrate", 60, "Frames per second")
	volume := flag.Float64("volume", config.Audio.DefaultSFXVol, "Sound effect volume (0.0 - 1.0)")
	noSound := flag.Bool("nosound", false, "Disable the speaker")
	logFile := flag.String("log", "", "Write log output to this file instead of discarding it")
	flag.Parse()

	// The terminal belongs to tcell while the game runs.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.SimConfig()
	layout, err := assets.LoadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	layout.Apply(&cfg)

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	var sound *tui.Sound
	if !*noSound {
		sound = tui.NewSound(*volume)
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Warning: audio initialization failed: %v", err)
		}
		defer sound.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if *logFile == "" {
		log.SetOutput(io.Discard)
	}

	client := tui.NewClient(screen, s, sound, *tickRate)
	if err := client.Run(); err != nil {
		screen.Fini()
		log.Fatalf("Game error: %v", err)
	}
}
