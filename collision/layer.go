package collision

// Layer is an entity's own collision classification. It never changes after
// spawn.
type Layer int

const (
	LayerPlayer Layer = iota
	LayerPlayerBullet
	LayerEnemy
	LayerEnemyBullet
	LayerPowerUp
)

func (l Layer) String() string {
	switch l {
	case LayerPlayer:
		return "Player"
	case LayerPlayerBullet:
		return "PlayerBullet"
	case LayerEnemy:
		return "Enemy"
	case LayerEnemyBullet:
		return "EnemyBullet"
	case LayerPowerUp:
		return "PowerUp"
	}
	return "Unknown"
}

// Mask answers "will I react to a collision with layer L".
type Mask struct {
	Player       bool
	PlayerBullet bool
	Enemy        bool
	EnemyBullet  bool
	PowerUp      bool
}

func (m Mask) Allows(l Layer) bool {
	switch l {
	case LayerPlayer:
		return m.Player
	case LayerPlayerBullet:
		return m.PlayerBullet
	case LayerEnemy:
		return m.Enemy
	case LayerEnemyBullet:
		return m.EnemyBullet
	case LayerPowerUp:
		return m.PowerUp
	}
	return false
}

// AllMask reacts to everything. Power-ups use it.
func AllMask() Mask {
	return Mask{Player: true, PlayerBullet: true, Enemy: true, EnemyBullet: true, PowerUp: true}
}

func PlayerMask() Mask {
	return Mask{Enemy: true, EnemyBullet: true, PowerUp: true}
}

func PlayerBulletMask() Mask {
	return Mask{Enemy: true}
}

func EnemyMask() Mask {
	return Mask{Player: true, PlayerBullet: true}
}

func EnemyBulletMask() Mask {
	return Mask{Player: true}
}

// AuraMask lets orbiting orbs also touch enemy bullets so they can cancel
// them.
func AuraMask() Mask {
	m := PlayerBulletMask()
	m.EnemyBullet = true
	return m
}
