package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
)

type WeaponType int

const (
	WeaponShotgun WeaponType = iota
	WeaponRocket
	WeaponLaser
	WeaponHoming
	WeaponLightning
	WeaponAura
	WeaponBeam
)

var AllWeaponTypes = []WeaponType{
	WeaponShotgun,
	WeaponRocket,
	WeaponLaser,
	WeaponHoming,
	WeaponLightning,
	WeaponAura,
	WeaponBeam,
}

// Key is the weapon's row in config.Weapon.Types.
func (t WeaponType) Key() string {
	switch t {
	case WeaponShotgun:
		return "shotgun"
	case WeaponRocket:
		return "rocket"
	case WeaponLaser:
		return "laser"
	case WeaponHoming:
		return "homing"
	case WeaponLightning:
		return "lightning"
	case WeaponAura:
		return "aura"
	case WeaponBeam:
		return "beam"
	}
	return ""
}

func (t WeaponType) Code() string {
	return config.Weapon.Types[t.Key()].Code
}

func (t WeaponType) BaseCooldown() float64 {
	return config.Weapon.Types[t.Key()].Cooldown
}

// Passive weapons never fire on a cooldown.
func (t WeaponType) Passive() bool {
	return t == WeaponAura
}

type Weapon struct {
	Type     WeaponType
	Level    int
	Cooldown float64
	Timer    float64
}

func NewWeapon(t WeaponType) Weapon {
	return Weapon{Type: t, Level: 1, Cooldown: t.BaseCooldown()}
}

func (w *Weapon) IsMaxLevel() bool {
	return w.Level >= config.Weapon.MaxLevel
}

// LevelUp raises the level by one, capped, and shortens the cooldown by 10%
// of the base per level above 1.
func (w *Weapon) LevelUp() {
	if w.IsMaxLevel() {
		return
	}
	w.Level++
	w.Cooldown = w.Type.BaseCooldown() * (1 - config.Weapon.CooldownPerLvl*float64(w.Level-1))
}

// WeaponInventoryData holds the player's weapons, at most one per type.
type WeaponInventoryData struct {
	Weapons          []Weapon
	HasDefaultBullet bool
}

func NewWeaponInventory() WeaponInventoryData {
	return WeaponInventoryData{HasDefaultBullet: true}
}

func (inv *WeaponInventoryData) IsFull() bool {
	return len(inv.Weapons) >= config.Weapon.MaxSlots
}

// AllWeaponsMaxed is true when the inventory is full and every weapon in it
// is at max level.
func (inv *WeaponInventoryData) AllWeaponsMaxed() bool {
	if !inv.IsFull() {
		return false
	}
	for i := range inv.Weapons {
		if !inv.Weapons[i].IsMaxLevel() {
			return false
		}
	}
	return true
}

func (inv *WeaponInventoryData) Get(t WeaponType) *Weapon {
	for i := range inv.Weapons {
		if inv.Weapons[i].Type == t {
			return &inv.Weapons[i]
		}
	}
	return nil
}

// AddOrUpgrade levels up an owned weapon or appends a new one. It reports
// false when a new type does not fit or the weapon is already maxed.
func (inv *WeaponInventoryData) AddOrUpgrade(t WeaponType) bool {
	if w := inv.Get(t); w != nil {
		if w.IsMaxLevel() {
			return false
		}
		w.LevelUp()
		return true
	}
	if inv.IsFull() {
		return false
	}
	inv.Weapons = append(inv.Weapons, NewWeapon(t))
	if !t.Passive() {
		inv.HasDefaultBullet = false
	}
	return true
}

// UpgradeableWeapons lists owned weapons below max level, in slot order.
func (inv *WeaponInventoryData) UpgradeableWeapons() []WeaponType {
	var out []WeaponType
	for i := range inv.Weapons {
		if !inv.Weapons[i].IsMaxLevel() {
			out = append(out, inv.Weapons[i].Type)
		}
	}
	return out
}

// NewWeapons lists types not yet owned, or nothing when the inventory is full.
func (inv *WeaponInventoryData) NewWeapons() []WeaponType {
	if inv.IsFull() {
		return nil
	}
	var out []WeaponType
	for _, t := range AllWeaponTypes {
		if inv.Get(t) == nil {
			out = append(out, t)
		}
	}
	return out
}

// Summary renders the HUD line, e.g. "SLv1 RLv3".
func (inv *WeaponInventoryData) Summary() string {
	parts := make([]string, 0, len(inv.Weapons))
	for _, w := range inv.Weapons {
		parts = append(parts, fmt.Sprintf("%sLv%d", w.Type.Code(), w.Level))
	}
	return strings.Join(parts, " ")
}

var WeaponInventory = donburi.NewComponentType[WeaponInventoryData]()

// WeaponBulletData is a projectile fired by an inventory weapon.
type WeaponBulletData struct {
	Type     WeaponType
	Damage   int
	Velocity geometry.Vec2
	Lifetime float64
}

var WeaponBullet = donburi.NewComponentType[WeaponBulletData]()

// PierceInfinite marks a projectile that is never consumed by hits.
const PierceInfinite = math.MaxUint32

type PierceData struct {
	Remaining uint32
}

// Consume records one hit and reports whether the projectile is spent.
func (p *PierceData) Consume() bool {
	switch {
	case p.Remaining == PierceInfinite:
		return false
	case p.Remaining > 1:
		p.Remaining--
		return false
	default:
		p.Remaining = 0
		return true
	}
}

var Pierce = donburi.NewComponentType[PierceData]()

// HitListData remembers targets a persistent projectile already damaged.
type HitListData struct {
	Entities []donburi.Entity
}

func (h *HitListData) Contains(e donburi.Entity) bool {
	for _, hit := range h.Entities {
		if hit == e {
			return true
		}
	}
	return false
}

// Record adds e and reports whether it was new.
func (h *HitListData) Record(e donburi.Entity) bool {
	if h.Contains(e) {
		return false
	}
	h.Entities = append(h.Entities, e)
	return true
}

var HitList = donburi.NewComponentType[HitListData]()

type ShotgunPelletData struct {
	Angle float64
}

var ShotgunPellet = donburi.NewComponentType[ShotgunPelletData]()

type RocketData struct {
	Target          donburi.Entity
	HasTarget       bool
	Initialized     bool
	Speed           float64
	ExplosionRadius float64
}

var Rocket = donburi.NewComponentType[RocketData]()

type LaserData struct {
	Width  float64
	Length float64
}

var Laser = donburi.NewComponentType[LaserData]()

type HomingData struct {
	Target    donburi.Entity
	HasTarget bool
	TurnRate  float64 // radians per second
	Speed     float64
}

var Homing = donburi.NewComponentType[HomingData]()

// LightningCastData is a one-shot request resolved on the tick it appears.
type LightningCastData struct {
	Jumps  int
	Range  float64
	Damage int
}

var LightningCast = donburi.NewComponentType[LightningCastData]()

// LightningChainData is the drawn result of a resolved cast.
type LightningChainData struct {
	Points    []geometry.Vec2
	Remaining float64
}

var LightningChain = donburi.NewComponentType[LightningChainData]()

type AuraOrbData struct {
	Angle  float64
	Speed  float64 // radians per second
	Radius float64
	Owner  donburi.Entity
}

var AuraOrb = donburi.NewComponentType[AuraOrbData]()

type BeamWaveData struct {
	Progress float64
	Width    float64
}

var BeamWave = donburi.NewComponentType[BeamWaveData]()
