package components

import (
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in world space. Z only orders drawing.
type TransformData struct {
	Position geometry.Vec2
	Z        float64
}

var Transform = donburi.NewComponentType[TransformData]()

// VisualData is what the debug renderer draws for an entity.
type VisualData struct {
	Blueprint geometry.Blueprint
	Rotation  float64
}

var Visual = donburi.NewComponentType[VisualData]()
