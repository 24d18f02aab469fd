package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	cullPadding = 64.0
	arcSegments = 24
)

var (
	// Lazy initialized source texture for filled polygons
	whiteSubImage *ebiten.Image
	fillOp        = &ebiten.DrawTrianglesOptions{AntiAlias: true}
)

func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// toScreen maps world space (origin at the arena center, +Y up) to pixels.
func toScreen(p geometry.Vec2) (float32, float32) {
	return float32(p.X + cfg.Game.Width/2), float32(cfg.Game.Height/2 - p.Y)
}

type drawable struct {
	pos    geometry.Vec2
	z      float64
	visual *components.VisualData
}

// DrawShapes renders every entity with a Visual in Z order, then the
// lightning chains on top.
func DrawShapes(ecs *ecs.ECS, screen *ebiten.Image) {
	var items []drawable
	components.Visual.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		t := components.Transform.Get(e)
		// Entities entirely off screen are skipped.
		if offscreen(t.Position, cullPadding) {
			return
		}
		items = append(items, drawable{t.Position, t.Z, components.Visual.Get(e)})
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].z < items[j].z })

	for _, it := range items {
		for _, s := range it.visual.Blueprint.Shapes {
			drawShape(screen, s, it.pos, it.visual.Rotation)
		}
	}

	components.LightningChain.Each(ecs.World, func(e *donburi.Entry) {
		c := components.LightningChain.Get(e)
		alpha := geometry.Clamp(c.Remaining/cfg.Weapon.LightningLifetime, 0, 1)
		col := geometry.WithAlpha(geometry.ColorLightning, alpha)
		for i := 1; i < len(c.Points); i++ {
			x0, y0 := toScreen(c.Points[i-1])
			x1, y1 := toScreen(c.Points[i])
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, col, true)
		}
	})

	if cfg.Debug.DrawColliders {
		drawColliders(ecs, screen)
	}
}

func place(v, origin geometry.Vec2, rotation float64) geometry.Vec2 {
	if rotation != 0 {
		s, c := math.Sincos(rotation)
		v = geometry.V(v.X*c-v.Y*s, v.X*s+v.Y*c)
	}
	return origin.Add(v)
}

func drawShape(screen *ebiten.Image, shape geometry.Shape, origin geometry.Vec2, rotation float64) {
	switch s := shape.(type) {
	case geometry.Polygon:
		points := make([]geometry.Vec2, len(s.Vertices))
		for i, v := range s.Vertices {
			points[i] = place(v, origin, rotation)
		}
		if s.Fill {
			fillPolygon(screen, points, s.Color)
			return
		}
		strokePolyline(screen, points, true, stroke(s.StrokeWidth), s.Color)

	case geometry.Circle:
		x, y := toScreen(place(s.Center, origin, rotation))
		if s.Fill {
			vector.FillCircle(screen, x, y, float32(s.Radius), s.Color, true)
			return
		}
		vector.StrokeCircle(screen, x, y, float32(s.Radius), stroke(s.StrokeWidth), s.Color, true)

	case geometry.Arc:
		points := make([]geometry.Vec2, 0, arcSegments+1)
		span := s.EndAngle - s.StartAngle
		for i := 0; i <= arcSegments; i++ {
			a := s.StartAngle + span*float64(i)/arcSegments
			points = append(points, place(s.Center.Add(geometry.FromAngle(a, s.Radius)), origin, rotation))
		}
		strokePolyline(screen, points, false, stroke(s.StrokeWidth), s.Color)

	case geometry.Line:
		x0, y0 := toScreen(place(s.From, origin, rotation))
		x1, y1 := toScreen(place(s.To, origin, rotation))
		vector.StrokeLine(screen, x0, y0, x1, y1, stroke(s.StrokeWidth), s.Color, true)
	}
}

func stroke(w float64) float32 {
	if w <= 0 {
		return 1
	}
	return float32(w)
}

func strokePolyline(screen *ebiten.Image, points []geometry.Vec2, closed bool, width float32, c color.RGBA) {
	n := len(points)
	if n < 2 {
		return
	}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		x0, y0 := toScreen(points[i])
		x1, y1 := toScreen(points[(i+1)%n])
		vector.StrokeLine(screen, x0, y0, x1, y1, width, c, true)
	}
}

func fillPolygon(screen *ebiten.Image, points []geometry.Vec2, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	for i, p := range points {
		x, y := toScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	a := float32(c.A) / 255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255 * a
		vs[i].ColorG = float32(c.G) / 255 * a
		vs[i].ColorB = float32(c.B) / 255 * a
		vs[i].ColorA = a
	}
	screen.DrawTriangles(vs, is, fillSource(), fillOp)
}

// drawColliders outlines the physics shape of every collidable entity.
func drawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	hitboxColor := color.RGBA{255, 0, 0, 160}
	collidables.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		switch s := components.Collider.Get(e).Shape.(type) {
		case geometry.RectCollider:
			strokePolyline(screen, translate(geometry.RectVertices(s.Width, s.Height), pos), true, 1, hitboxColor)
		case geometry.PolygonCollider:
			strokePolyline(screen, translate(s.Vertices, pos), true, 1, hitboxColor)
		case geometry.CircleCollider:
			x, y := toScreen(pos)
			vector.StrokeCircle(screen, x, y, float32(s.Radius), 1, hitboxColor, true)
		}
	})
}

func translate(vertices []geometry.Vec2, by geometry.Vec2) []geometry.Vec2 {
	out := make([]geometry.Vec2, len(vertices))
	for i, v := range vertices {
		out[i] = v.Add(by)
	}
	return out
}
