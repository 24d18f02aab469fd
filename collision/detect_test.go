package collision

import (
	"testing"

	"github.com/automoto/geoshooter/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func circle(e donburi.Entity, x, y, r float64, layer Layer, mask Mask) Body {
	return Body{
		Entity:   e,
		Position: geometry.V(x, y),
		Shape:    geometry.CircleCollider{Radius: r},
		Layer:    layer,
		Mask:     mask,
	}
}

func TestDetectEmitsOverlappingPairsInSnapshotOrder(t *testing.T) {
	bodies := []Body{
		circle(1, 0, 0, 10, LayerEnemy, EnemyMask()),
		circle(2, 5, 0, 3, LayerPlayerBullet, PlayerBulletMask()),
		circle(3, -5, 0, 3, LayerPlayerBullet, PlayerBulletMask()),
	}

	events := Detect(bodies, nil)

	require.Len(t, events, 2)
	assert.Equal(t, Event{EntityA: 1, EntityB: 2, LayerA: LayerEnemy, LayerB: LayerPlayerBullet}, events[0])
	assert.Equal(t, Event{EntityA: 1, EntityB: 3, LayerA: LayerEnemy, LayerB: LayerPlayerBullet}, events[1])
}

func TestDetectSkipsPairsNeitherMaskAllows(t *testing.T) {
	// Two player bullets sitting on top of each other.
	bodies := []Body{
		circle(1, 0, 0, 4, LayerPlayerBullet, PlayerBulletMask()),
		circle(2, 0, 0, 4, LayerPlayerBullet, PlayerBulletMask()),
		// Enemy bullet on a player bullet: neither side cares.
		circle(3, 0, 0, 5, LayerEnemyBullet, EnemyBulletMask()),
	}

	assert.Empty(t, Detect(bodies, nil))
}

func TestDetectOneSidedMaskIsEnough(t *testing.T) {
	// The enemy-bullet mask ignores player bullets, but the aura mask accepts
	// enemy bullets.
	bodies := []Body{
		circle(1, 0, 0, 5, LayerEnemyBullet, EnemyBulletMask()),
		circle(2, 3, 0, 8, LayerPlayerBullet, AuraMask()),
	}

	events := Detect(bodies, nil)

	require.Len(t, events, 1)
	assert.Equal(t, LayerEnemyBullet, events[0].LayerA)
	assert.Equal(t, LayerPlayerBullet, events[0].LayerB)
}

func TestDetectIgnoresNonOverlapping(t *testing.T) {
	bodies := []Body{
		circle(1, 0, 0, 15, LayerPlayer, PlayerMask()),
		circle(2, 0, 100, 12, LayerEnemy, EnemyMask()),
	}
	assert.Empty(t, Detect(bodies, nil))
}

func TestDetectMixedShapes(t *testing.T) {
	laser := Body{
		Entity:   7,
		Position: geometry.V(0, 100),
		Shape:    geometry.RectCollider{Width: 5, Height: 150},
		Layer:    LayerPlayerBullet,
		Mask:     PlayerBulletMask(),
	}
	enemy := circle(8, 10, 160, 12, LayerEnemy, EnemyMask())

	events := Detect([]Body{laser, enemy}, nil)
	require.Len(t, events, 1)
	assert.Equal(t, donburi.Entity(7), events[0].EntityA)
}

func TestEventOther(t *testing.T) {
	e := Event{EntityA: 4, EntityB: 9, LayerA: LayerEnemyBullet, LayerB: LayerPlayer}

	self, other, layer, ok := e.Other(LayerPlayer)
	require.True(t, ok)
	assert.Equal(t, donburi.Entity(9), self)
	assert.Equal(t, donburi.Entity(4), other)
	assert.Equal(t, LayerEnemyBullet, layer)

	_, _, _, ok = e.Other(LayerPowerUp)
	assert.False(t, ok)
}

func TestMaskPresets(t *testing.T) {
	assert.True(t, PlayerMask().Allows(LayerPowerUp))
	assert.False(t, PlayerMask().Allows(LayerPlayerBullet))
	assert.True(t, PlayerBulletMask().Allows(LayerEnemy))
	assert.False(t, PlayerBulletMask().Allows(LayerEnemyBullet))
	assert.True(t, AuraMask().Allows(LayerEnemyBullet))
	assert.True(t, EnemyMask().Allows(LayerPlayerBullet))
	assert.False(t, EnemyBulletMask().Allows(LayerPlayerBullet))
	for l := LayerPlayer; l <= LayerPowerUp; l++ {
		assert.True(t, AllMask().Allows(l), l.String())
	}
}

func TestQueueSwap(t *testing.T) {
	var q Queue
	q.Publish(Event{EntityA: 1, EntityB: 2})
	require.Len(t, q.Current(), 1)

	q.Swap()
	assert.Empty(t, q.Current())
	require.Len(t, q.Previous(), 1)
	assert.Equal(t, donburi.Entity(1), q.Previous()[0].EntityA)

	q.SetBuffer(Detect([]Body{
		circle(5, 0, 0, 1, LayerPlayer, PlayerMask()),
		circle(6, 0, 0, 1, LayerEnemy, EnemyMask()),
	}, q.Buffer()))
	require.Len(t, q.Current(), 1)
	assert.Equal(t, donburi.Entity(1), q.Previous()[0].EntityA, "previous tick untouched by writes")

	q.Swap()
	assert.Equal(t, donburi.Entity(5), q.Previous()[0].EntityA)
	assert.Empty(t, q.Current())
}
