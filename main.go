package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/fonts"
	"github.com/automoto/geoshooter/scenes"
	"github.com/automoto/geoshooter/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(save *systems.SaveData, seed int64) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	return &Game{scene: scenes.NewWorldScene(save, seed)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	w, h := int(config.Game.Width), int(config.Game.Height)
	g.bounds = image.Rect(0, 0, w, h)
	return w, h
}

func main() {
	balance := flag.String("balance", "", "YAML file overriding the balance tables")
	seed := flag.Int64("seed", 0, "Random seed (0 = from clock)")
	colliders := flag.Bool("colliders", false, "Draw collision shapes")
	flag.Parse()

	if *balance != "" {
		if err := config.LoadBalance(*balance); err != nil {
			log.Fatalf("Failed to load balance file: %v", err)
		}
	}
	config.Debug.DrawColliders = *colliders

	ebiten.SetWindowSize(int(config.Game.Width), int(config.Game.Height))
	ebiten.SetWindowTitle("geoshooter")
	ebiten.SetTPS(config.Game.TickRate)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	save := systems.LoadSaveData()

	if err := ebiten.RunGame(NewGame(save, *seed)); err != nil {
		log.Fatal(err)
	}
}
