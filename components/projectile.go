package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-arena/shared/combat"
)

type ProjectileData struct {
	*combat.Projectile
	// FromPlayer is set for player shots; they only hit enemies.
	FromPlayer bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
