// Command headless runs the simulation without a window, steering the ship
// with a simple autopilot. It is used for soak runs and balance checks.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/geoshooter/components"
	"github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/game"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems"
)

func main() {
	seed := flag.Int64("seed", 1, "Random seed")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = config tick rate)")
	duration := flag.Duration("duration", time.Minute, "How long to run (0 = until interrupted)")
	runs := flag.Int("runs", 1, "Runs to play before stopping (0 = unlimited)")
	balance := flag.String("balance", "", "YAML file overriding the balance tables")
	persist := flag.Bool("persist", false, "Load and store the save file")
	flag.Parse()

	if *balance != "" {
		if err := config.LoadBalance(*balance); err != nil {
			log.Fatalf("Failed to load balance file: %v", err)
		}
	}
	if *tickRate <= 0 {
		*tickRate = config.Game.TickRate
	}

	save := &systems.SaveData{}
	if *persist {
		if err := systems.InitPersistence(); err == nil {
			save = systems.LoadSaveData()
		}
	}

	session := game.NewSession(save, *seed)
	if err := session.StartRun(); err != nil {
		log.Fatalf("Failed to start run: %v", err)
	}

	loop := game.NewLoop(session, *tickRate)
	played := 1
	loop.BeforeTick = func(s *game.Session) {
		switch s.State() {
		case config.StatePlaying:
			s.SetInput(autopilot(s))
		case config.StateUpgrading:
			if err := s.ChooseUpgrade(0); err != nil {
				log.Printf("Upgrade failed: %v", err)
			}
		case config.StateGameOver:
			if *runs > 0 && played >= *runs {
				loop.Stop()
				return
			}
			if err := s.StartRun(); err != nil {
				log.Printf("Restart failed: %v", err)
				loop.Stop()
				return
			}
			played++
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()
	if *duration > 0 {
		time.AfterFunc(*duration, loop.Stop)
	}

	log.Printf("Headless run: seed %d, %d ticks/s, duration %s", *seed, *tickRate, *duration)
	loop.Run()

	snap := session.Snapshot()
	log.Printf("Finished after %d run(s): state %s, score %d, best %d, level %d, weapons [%s]",
		played, session.State(), snap.Score, snap.HighScore, snap.Level, snap.Weapons)
}

// autopilot weaves across the lower third and always fires.
func autopilot(s *game.Session) components.InputData {
	clock := systems.GetOrCreateClock(s.ECS())
	return components.InputData{
		Move: geometry.V(math.Sin(clock.Elapsed*0.8), 0),
		Fire: true,
	}
}
