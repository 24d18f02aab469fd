package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/systems"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoSuchUpgrade = errors.New("no such upgrade option")

// Session owns one world and the top-level state machine around it. The
// simulation only advances while Playing.
type Session struct {
	ecs   *ecs.ECS
	state cfg.GameStateID
	save  *systems.SaveData
	seed  int64
	runs  int
}

// NewSession starts in the menu. A zero seed draws one from the clock.
func NewSession(save *systems.SaveData, seed int64) *Session {
	if save == nil {
		save = &systems.SaveData{}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{state: cfg.StateMenu, save: save, seed: seed}
}

func (s *Session) State() cfg.GameStateID {
	return s.state
}

// ECS is the current run's world, nil before the first run.
func (s *Session) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Session) Save() *systems.SaveData {
	return s.save
}

func (s *Session) setState(to cfg.GameStateID) error {
	if err := checkTransition(s.state, to); err != nil {
		return err
	}
	log.Printf("Session: %s -> %s", s.state, to)
	s.state = to
	return nil
}

// newWorld wires every system in tick order. Collision detection runs after
// all movement and before the combat handlers.
func newWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateWeapons)
	e.AddSystem(systems.UpdateBullets)
	e.AddSystem(systems.UpdateWeaponBullets)
	e.AddSystem(systems.UpdateBossBullets)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdatePowerUps)
	e.AddSystem(systems.UpdateBossSpawner)
	e.AddSystem(systems.UpdateBoss)
	e.AddSystem(systems.UpdateSpawner)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateEnemyCombat)
	e.AddSystem(systems.UpdateBossCombat)
	e.AddSystem(systems.UpdatePlayerCombat)
	e.AddSystem(systems.UpdateAuraCombat)
	e.AddSystem(systems.UpdateLightning)
	e.AddSystem(systems.UpdateEffects)

	e.AddRenderer(cfg.Default, systems.DrawShapes)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	return e
}

// StartRun builds a fresh world from the save's permanent upgrades.
func (s *Session) StartRun() error {
	if err := s.setState(cfg.StatePlaying); err != nil {
		return err
	}

	s.ecs = newWorld()
	systems.SeedRNG(s.ecs, rand.New(rand.NewSource(s.seed+int64(s.runs))))
	s.runs++

	game := systems.GetOrCreateGame(s.ecs)
	game.HighScore = s.save.HighScore
	game.StartRun(s.save.StartingStats())
	factory.CreatePlayer(s.ecs)

	log.Printf("Run started: lives %d/%d shield %d/%d", game.Lives, game.MaxLives, game.Shield, game.MaxShield)
	return nil
}

func (s *Session) Pause() error {
	return s.setState(cfg.StatePaused)
}

func (s *Session) Resume() error {
	if s.state != cfg.StatePaused {
		return fmt.Errorf("resume from %s: %w", s.state, ErrInvalidTransition)
	}
	return s.setState(cfg.StatePlaying)
}

// QuitToMenu abandons the current run. Its score and coins are still banked.
func (s *Session) QuitToMenu() error {
	from := s.state
	if err := s.setState(cfg.StateMenu); err != nil {
		return err
	}
	if from != cfg.StateGameOver {
		s.endRun()
	}
	return nil
}

// SetInput hands the host's controls to the player system.
func (s *Session) SetInput(in components.InputData) {
	if s.ecs == nil {
		return
	}
	*systems.GetOrCreateInput(s.ecs) = in
}

// Tick advances one fixed step when Playing, then follows the run into
// Upgrading or GameOver.
func (s *Session) Tick() {
	if s.state != cfg.StatePlaying || s.ecs == nil {
		return
	}
	s.ecs.Update()

	game := systems.GetOrCreateGame(s.ecs)
	switch {
	case game.GameOver:
		_ = s.setState(cfg.StateGameOver)
		s.endRun()
	case game.Upgrading:
		if len(systems.DrawUpgradeOptions(s.ecs)) > 0 {
			_ = s.setState(cfg.StateUpgrading)
		}
	}
}

// UpgradeOptions are the cards on offer while Upgrading.
func (s *Session) UpgradeOptions() []components.UpgradeOption {
	if s.state != cfg.StateUpgrading {
		return nil
	}
	return systems.GetOrCreateGame(s.ecs).Options
}

// ChooseUpgrade applies card i. Queued level-ups deal a new hand; the run
// resumes once none are left.
func (s *Session) ChooseUpgrade(i int) error {
	if s.state != cfg.StateUpgrading {
		return fmt.Errorf("choose upgrade in %s: %w", s.state, ErrInvalidTransition)
	}
	game := systems.GetOrCreateGame(s.ecs)
	if i < 0 || i >= len(game.Options) {
		return fmt.Errorf("option %d of %d: %w", i, len(game.Options), ErrNoSuchUpgrade)
	}
	if err := systems.ApplyUpgrade(s.ecs, game.Options[i]); err != nil {
		return err
	}

	if game.Upgrading && len(systems.DrawUpgradeOptions(s.ecs)) > 0 {
		return nil
	}
	return s.setState(cfg.StatePlaying)
}

// Draw renders the current world.
func (s *Session) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Snapshot is the HUD view of the current run.
func (s *Session) Snapshot() systems.Snapshot {
	if s.ecs == nil {
		return systems.Snapshot{HighScore: s.save.HighScore, Coins: s.save.TotalCoins}
	}
	return systems.HUDSnapshot(s.ecs)
}

// endRun banks the run into the save and flushes it.
func (s *Session) endRun() {
	if s.ecs == nil {
		return
	}
	game := systems.GetOrCreateGame(s.ecs)
	s.save.RecordRun(game.Score, game.Coins)
	log.Printf("Run ended: score %d level %d coins +%d (total %d)",
		game.Score, game.PlayerLevel, game.Coins, s.save.TotalCoins)
	if err := systems.StoreSaveData(s.save); err != nil {
		log.Printf("Warning: %v", err)
	}
}
