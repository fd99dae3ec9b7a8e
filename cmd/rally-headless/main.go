package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/rally/headless"
	"github.com/automoto/rally/shared/arena"
	"github.com/automoto/rally/shared/sim"
)

func main() {
	matches := flag.Int("matches", 0, "Matches to play before exiting (0 = forever)")
	tickRate := flag.Int("tickrate", 60, "Simulation steps per second (0 = unthrottled)")
	bestOf := flag.Int("bestof", 3, "Format picked at each replay prompt (3, 5 or 7)")
	arenaPath := flag.String("arena", "", "TMX arena file (empty = classic 800x600 table)")
	addr := flag.String("addr", ":9090", "HTTP listen address for /metrics, /status and /snapshot.png (empty = disabled)")
	snapshot := flag.String("snapshot", "", "Write a PNG of the final frame to this path")
	seed := flag.Uint64("seed", 0, "Serve randomness seed (0 = random)")
	aim := flag.Float64("aim", 0.6, "Player autopilot contact point as a fraction of the paddle half-height")
	maxTicks := flag.Int("maxticks", 200000, "Abort a match after this many steps (0 = no limit)")
	flag.Parse()

	cfg := sim.DefaultConfig()
	if *arenaPath != "" {
		layout, err := arena.LoadLayout(os.DirFS(filepath.Dir(*arenaPath)), filepath.Base(*arenaPath))
		if err != nil {
			log.Fatalf("Failed to load arena: %v", err)
		}
		layout.Apply(&cfg)
		log.Printf("Loaded arena %q (%dx%d)", layout.Title, layout.Width, layout.Height)
	}
	if *seed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(*seed, *seed))
	}

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	metrics := headless.NewMetrics()
	runner, err := headless.NewRunner(s, headless.Options{
		Matches:  *matches,
		TickRate: *tickRate,
		BestOf:   *bestOf,
		MaxTicks: *maxTicks,
		Aim:      *aim,
	}, metrics)
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	var srv *http.Server
	if *addr != "" {
		srv = &http.Server{
			Addr:              *addr,
			Handler:           headless.NewRouter(runner, metrics),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Printf("Serving metrics on %s", *addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP server error: %v", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		runner.Stop()
	}()

	runErr := runner.Run()

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP shutdown error: %v", err)
		}
		cancel()
	}

	if *snapshot != "" {
		if err := headless.SavePNG(*snapshot, runner.Snapshot()); err != nil {
			log.Printf("Failed to write snapshot: %v", err)
		} else {
			log.Printf("Wrote final frame to %s", *snapshot)
		}
	}

	status := runner.Status()
	log.Printf("Played %d matches in %d ticks", len(status.Results), status.Ticks)
	if runErr != nil {
		log.Fatalf("Headless run failed: %v", runErr)
	}
}
