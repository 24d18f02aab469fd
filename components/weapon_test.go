package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrUpgradeDropsDefaultGunForActiveWeapon(t *testing.T) {
	inv := NewWeaponInventory()
	require.True(t, inv.HasDefaultBullet)

	require.True(t, inv.AddOrUpgrade(WeaponAura))
	assert.True(t, inv.HasDefaultBullet, "aura is passive and keeps the default gun")

	require.True(t, inv.AddOrUpgrade(WeaponShotgun))
	assert.False(t, inv.HasDefaultBullet)
	assert.Equal(t, "ALv1 SLv1", inv.Summary())
}

func TestAddOrUpgradeLevelsExistingWeapon(t *testing.T) {
	inv := NewWeaponInventory()
	inv.AddOrUpgrade(WeaponRocket)
	inv.AddOrUpgrade(WeaponRocket)

	require.Len(t, inv.Weapons, 1)
	w := inv.Get(WeaponRocket)
	assert.Equal(t, 2, w.Level)
	assert.InDelta(t, 0.6*0.9, w.Cooldown, 1e-9)
}

func TestWeaponLevelCapsAtMax(t *testing.T) {
	w := NewWeapon(WeaponLaser)
	for i := 0; i < 10; i++ {
		w.LevelUp()
	}
	assert.Equal(t, 5, w.Level)
	assert.True(t, w.IsMaxLevel())
	assert.InDelta(t, 0.25*0.6, w.Cooldown, 1e-9)
}

func TestInventoryFullRejectsNewTypes(t *testing.T) {
	inv := NewWeaponInventory()
	for _, wt := range AllWeaponTypes[:5] {
		require.True(t, inv.AddOrUpgrade(wt))
	}
	assert.True(t, inv.IsFull())
	assert.False(t, inv.AddOrUpgrade(WeaponAura))
	assert.Empty(t, inv.NewWeapons())
	assert.Len(t, inv.UpgradeableWeapons(), 5)
	assert.False(t, inv.AllWeaponsMaxed())

	for i := range inv.Weapons {
		for !inv.Weapons[i].IsMaxLevel() {
			inv.Weapons[i].LevelUp()
		}
	}
	assert.True(t, inv.AllWeaponsMaxed())
	assert.Empty(t, inv.UpgradeableWeapons())
	assert.False(t, inv.AddOrUpgrade(WeaponShotgun))
}

func TestAllWeaponsMaxedNeedsFullInventory(t *testing.T) {
	inv := NewWeaponInventory()
	inv.AddOrUpgrade(WeaponShotgun)
	for !inv.Weapons[0].IsMaxLevel() {
		inv.Weapons[0].LevelUp()
	}
	assert.False(t, inv.AllWeaponsMaxed())
}

func TestPierceConsumesExactlyRemainingHits(t *testing.T) {
	p := PierceData{Remaining: 3}
	assert.False(t, p.Consume())
	assert.False(t, p.Consume())
	assert.True(t, p.Consume())
	assert.Equal(t, uint32(0), p.Remaining)
}

func TestInfinitePierceNeverSpent(t *testing.T) {
	p := PierceData{Remaining: PierceInfinite}
	for i := 0; i < 1000; i++ {
		require.False(t, p.Consume())
	}
	assert.Equal(t, uint32(PierceInfinite), p.Remaining)
}

func TestHitListRecordsOnce(t *testing.T) {
	var h HitListData
	assert.True(t, h.Record(7))
	assert.False(t, h.Record(7))
	assert.True(t, h.Record(8))
	assert.True(t, h.Contains(7))
	assert.Len(t, h.Entities, 2)
}
