package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Wall       = donburi.NewTag().SetName("Wall")
	Projectile = donburi.NewTag().SetName("Projectile")
	Pack       = donburi.NewTag().SetName("Pack")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
