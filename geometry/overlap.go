package geometry

// Overlaps reports whether shape a at pa touches shape b at pb.
//
// Polygons are reduced to their bounding circle before testing.
func Overlaps(pa Vec2, a CollisionShape, pb Vec2, b CollisionShape) bool {
	a = reduce(a)
	b = reduce(b)

	switch sa := a.(type) {
	case CircleCollider:
		switch sb := b.(type) {
		case CircleCollider:
			return circleCircle(pa, sa.Radius, pb, sb.Radius)
		case RectCollider:
			return circleRect(pa, sa.Radius, pb, sb)
		}
	case RectCollider:
		switch sb := b.(type) {
		case CircleCollider:
			return circleRect(pb, sb.Radius, pa, sa)
		case RectCollider:
			return rectRect(pa, sa, pb, sb)
		}
	}
	return false
}

func reduce(s CollisionShape) CollisionShape {
	if p, ok := s.(PolygonCollider); ok {
		return CircleCollider{Radius: p.BoundingRadius()}
	}
	return s
}

func circleCircle(pa Vec2, ra float64, pb Vec2, rb float64) bool {
	r := ra + rb
	return pa.DistSq(pb) <= r*r
}

func circleRect(center Vec2, radius float64, rectPos Vec2, rect RectCollider) bool {
	halfW, halfH := rect.Width/2, rect.Height/2
	local := center.Sub(rectPos)
	closest := Vec2{
		X: Clamp(local.X, -halfW, halfW),
		Y: Clamp(local.Y, -halfH, halfH),
	}
	return local.DistSq(closest) <= radius*radius
}

// rectRect uses strict inequalities, so rectangles that only share an edge
// do not overlap.
func rectRect(pa Vec2, a RectCollider, pb Vec2, b RectCollider) bool {
	aMinX, aMaxX := pa.X-a.Width/2, pa.X+a.Width/2
	aMinY, aMaxY := pa.Y-a.Height/2, pa.Y+a.Height/2
	bMinX, bMaxX := pb.X-b.Width/2, pb.X+b.Width/2
	bMinY, bMaxY := pb.Y-b.Height/2, pb.Y+b.Height/2
	return aMinX < bMaxX && aMaxX > bMinX && aMinY < bMaxY && aMaxY > bMinY
}
