package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	PlayerShot = donburi.NewTag().SetName("PlayerShot")
	EnemyShot  = donburi.NewTag().SetName("EnemyShot")
	PowerUp    = donburi.NewTag().SetName("PowerUp")
	Effect     = donburi.NewTag().SetName("Effect")
)
