package systems

import (
	"math"

	"github.com/automoto/geoshooter/components"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/automoto/geoshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeapons auto-fires every owned weapon whose cooldown has elapsed and
// keeps the aura's orb ring in sync with its level.
func UpdateWeapons(ecs *ecs.ECS) {
	dt := delta(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		inv := components.WeaponInventory.Get(e)
		pos := components.Transform.Get(e).Position

		for i := range inv.Weapons {
			w := &inv.Weapons[i]
			if w.Type.Passive() {
				continue
			}
			w.Timer -= dt
			if w.Timer > 0 {
				continue
			}
			factory.FireWeapon(ecs, *w, pos)
			w.Timer = w.Cooldown
		}

		syncAuraOrbs(ecs, e, inv)
	})
}

// syncAuraOrbs rebuilds the orb ring whenever its size no longer matches
// the aura level.
func syncAuraOrbs(ecs *ecs.ECS, owner *donburi.Entry, inv *components.WeaponInventoryData) {
	want := 0
	if w := inv.Get(components.WeaponAura); w != nil {
		want = factory.AuraOrbCount(w.Level)
	}

	var orbs []*donburi.Entry
	components.AuraOrb.Each(ecs.World, func(e *donburi.Entry) {
		if components.AuraOrb.Get(e).Owner == owner.Entity() {
			orbs = append(orbs, e)
		}
	})
	if len(orbs) == want {
		return
	}

	for _, orb := range orbs {
		destroy(ecs, orb)
	}
	for i := 0; i < want; i++ {
		factory.CreateAuraOrb(ecs, owner, float64(i)/float64(want)*2*math.Pi)
	}
}

// nearestTarget finds the closest enemy or boss to from. On equal distance
// a boss wins.
func nearestTarget(ecs *ecs.ECS, from geometry.Vec2) (donburi.Entity, bool) {
	var best donburi.Entity
	found := false
	bestDist := math.Inf(1)

	consider := func(e *donburi.Entry) {
		if d := components.Transform.Get(e).Position.DistSq(from); d < bestDist {
			best, bestDist, found = e.Entity(), d, true
		}
	}
	tags.Boss.Each(ecs.World, consider)
	tags.Enemy.Each(ecs.World, consider)

	return best, found
}
