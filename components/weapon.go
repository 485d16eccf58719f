package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/combat"
)

type WeaponData struct {
	ID     config.WeaponID
	Attack *combat.Attack
}

var Weapon = donburi.NewComponentType[WeaponData]()
