package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// ClockData is the singleton frame clock. Systems read Delta in seconds.
type ClockData struct {
	Delta   float64
	Elapsed float64
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()

// RNGData is the singleton random source. Seeding it makes a run
// reproducible.
type RNGData struct {
	Rand *rand.Rand
}

var RNG = donburi.NewComponentType[RNGData]()

// SpawnTimerData drives the spawn director.
type SpawnTimerData struct {
	Timer      float64
	Interval   float64
	Difficulty float64
}

var SpawnTimer = donburi.NewComponentType[SpawnTimerData]()
