package components

import "github.com/yohamta/donburi"

type PowerUpType int

const (
	PowerUpCoin PowerUpType = iota
	PowerUpShield
	PowerUpExtraLife
	PowerUpWeaponUpgrade
)

type PowerUpData struct {
	Type PowerUpType
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
