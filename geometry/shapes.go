package geometry

import (
	"image/color"
	"math"
)

// Shape is a render-only primitive. Positions are relative to the owning
// entity's origin.
type Shape interface {
	isShape()
}

type Polygon struct {
	Vertices    []Vec2
	Color       color.RGBA
	Fill        bool
	StrokeWidth float64
}

type Circle struct {
	Center      Vec2
	Radius      float64
	Color       color.RGBA
	Fill        bool
	StrokeWidth float64
}

type Arc struct {
	Center      Vec2
	Radius      float64
	StartAngle  float64
	EndAngle    float64
	Color       color.RGBA
	StrokeWidth float64
}

type Line struct {
	From, To    Vec2
	Color       color.RGBA
	StrokeWidth float64
}

func (Polygon) isShape() {}
func (Circle) isShape()  {}
func (Arc) isShape()     {}
func (Line) isShape()    {}

// CollisionShape is the physics outline of an entity, centered on its
// position. Rectangles are axis-aligned.
type CollisionShape interface {
	BoundingRadius() float64
	isCollisionShape()
}

type CircleCollider struct {
	Radius float64
}

type RectCollider struct {
	Width, Height float64
}

type PolygonCollider struct {
	Vertices []Vec2
}

func (c CircleCollider) BoundingRadius() float64 {
	return c.Radius
}

func (r RectCollider) BoundingRadius() float64 {
	return math.Hypot(r.Width/2, r.Height/2)
}

// BoundingRadius is the largest vertex distance from the origin.
func (p PolygonCollider) BoundingRadius() float64 {
	maxSq := 0.0
	for _, v := range p.Vertices {
		if d := v.LenSq(); d > maxSq {
			maxSq = d
		}
	}
	return math.Sqrt(maxSq)
}

func (CircleCollider) isCollisionShape()  {}
func (RectCollider) isCollisionShape()    {}
func (PolygonCollider) isCollisionShape() {}

// Blueprint pairs a visual with its collision outline.
type Blueprint struct {
	Name      string
	Shapes    []Shape
	Collision CollisionShape
}

// RegularPolygon returns the vertices of an n-gon of the given radius with
// its first vertex pointing up.
func RegularPolygon(sides int, radius float64) []Vec2 {
	vertices := make([]Vec2, 0, sides)
	for i := 0; i < sides; i++ {
		angle := float64(i)/float64(sides)*2*math.Pi + math.Pi/2
		vertices = append(vertices, FromAngle(angle, radius))
	}
	return vertices
}

// RectVertices returns the corners of a centered w x h rectangle.
func RectVertices(w, h float64) []Vec2 {
	return []Vec2{
		{X: -w / 2, Y: -h / 2},
		{X: w / 2, Y: -h / 2},
		{X: w / 2, Y: h / 2},
		{X: -w / 2, Y: h / 2},
	}
}
