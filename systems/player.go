package systems

import (
	"math"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/combat"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdatePlayers turns each player's input into movement, dodges, blocks and
// attacks, and runs the player's weapon and stamina timers.
func UpdatePlayers(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !isAlive(e) {
			return
		}
		updatePlayer(ecs, e, dt)
	})
}

func updatePlayer(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	input := components.PlayerInput.Get(e)
	physics := components.Physics.Get(e)
	stamina := components.Stamina.Get(e)
	attack := components.Weapon.Get(e).Attack
	center := components.Object.Get(e).Center()
	defer input.Advance()

	updatePlayerTimers(player, stamina, dt)
	if attack.Update(dt) {
		launchIfRanged(ecs, e, attack, true)
	}

	physics.VelX, physics.VelY = 0, 0
	if physics.Stunned() {
		player.Charging = false
		player.ChargeTime = 0
		player.Blocking = false
		return
	}

	moveX, moveY := movementInput(input)
	aim := aimPoint(input, center, physics.Facing)

	// Dodge roll
	if input.JustPressed(cfg.ActionDodge) && canDodge(player, attack) &&
		stamina.Spend(cfg.Movement.DodgeStaminaCost, cfg.Combat.StaminaRegenDelay) {
		startDodge(e, player, physics, moveX, moveY)
	}

	weapon := attack.Weapon
	player.Blocking = input.Pressed(cfg.ActionBlock) && weapon != nil && weapon.Block != nil &&
		!attack.Busy() && !player.Dodging()

	handleAttackInput(ecs, e, player, input, attack, stamina, center, aim, dt)

	if player.Dodging() {
		return
	}

	speed := physics.Speed
	if attack.Busy() || player.Blocking {
		speed *= cfg.Movement.AttackSpeedScale
	}
	physics.VelX, physics.VelY = moveX*speed, moveY*speed

	switch {
	case attack.Busy():
		physics.Facing = attack.Current.Facing
	case input.HasAim:
		physics.Facing = gamemath.AngleTo(center.X, center.Y, aim.X, aim.Y)
	case moveX != 0 || moveY != 0:
		physics.Facing = math.Atan2(moveY, moveX)
	}
}

func updatePlayerTimers(player *components.PlayerData, stamina *components.StaminaData, dt float64) {
	if player.DodgeTimer > 0 {
		player.DodgeTimer -= dt
	}
	if player.DodgeCooldown > 0 {
		player.DodgeCooldown -= dt
	}
	if player.Buffered {
		player.BufferTimer -= dt
		if player.BufferTimer <= 0 {
			player.Buffered = false
		}
	}
	if stamina.RegenDelay > 0 {
		stamina.RegenDelay -= dt
	} else if stamina.Current < stamina.Max {
		stamina.Current = math.Min(stamina.Max, stamina.Current+cfg.Combat.StaminaRegenRate*dt)
	}
}

// movementInput returns the unit direction the player is pushing.
func movementInput(input *components.PlayerInputData) (float64, float64) {
	var x, y float64
	if input.Pressed(cfg.ActionMoveLeft) {
		x--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		x++
	}
	if input.Pressed(cfg.ActionMoveUp) {
		y--
	}
	if input.Pressed(cfg.ActionMoveDown) {
		y++
	}
	return gamemath.Normalize(x, y)
}

// aimPoint is the input's aim, or a point straight ahead without one.
func aimPoint(input *components.PlayerInputData, center math2.Vec2, facing float64) math2.Vec2 {
	if input.HasAim {
		return math2.Vec2{X: input.AimX, Y: input.AimY}
	}
	return math2.Vec2{X: center.X + math.Cos(facing), Y: center.Y + math.Sin(facing)}
}

// A dodge never cancels an active attack window.
func canDodge(player *components.PlayerData, attack *combat.Attack) bool {
	return !player.Dodging() && player.DodgeCooldown <= 0 && !attack.IsAttacking()
}

func startDodge(e *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, moveX, moveY float64) {
	if moveX == 0 && moveY == 0 {
		moveX, moveY = math.Cos(physics.Facing), math.Sin(physics.Facing)
	}
	d := cfg.Movement.DodgeDuration
	player.DodgeTimer = d
	player.DodgeCooldown = d + cfg.Movement.DodgeCooldown
	player.Buffered = false
	player.Charging = false
	player.ChargeTime = 0
	physics.Dash = combat.NewDash(moveX*cfg.Movement.DodgeDistance, moveY*cfg.Movement.DodgeDistance, d, ease.OutQuad)

	health := components.Health.Get(e)
	health.InvulnTime = math.Max(health.InvulnTime, d)
}

// handleAttackInput charges on hold and fires on release for weapons that can
// charge, fires on press otherwise, and buffers presses made while busy.
func handleAttackInput(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, input *components.PlayerInputData,
	attack *combat.Attack, stamina *components.StaminaData, center, aim math2.Vec2, dt float64) {
	canCharge := attack.Weapon != nil && attack.Weapon.Charge != nil
	busy := attack.Phase() != combat.PhaseIdle || player.Dodging() || player.Blocking

	if input.JustPressed(cfg.ActionAttack) {
		switch {
		case busy:
			player.Buffered = true
			player.BufferTimer = cfg.Combat.InputBufferTime
		case canCharge:
			player.Charging = true
			player.ChargeTime = 0
		default:
			playerAttack(ecs, e, attack, stamina, center, aim, 0)
			return
		}
	}

	if player.Charging {
		if input.Pressed(cfg.ActionAttack) {
			player.ChargeTime += dt
			return
		}
		held := player.ChargeTime
		player.Charging = false
		player.ChargeTime = 0
		playerAttack(ecs, e, attack, stamina, center, aim, held)
		return
	}

	if player.Buffered && !busy {
		player.Buffered = false
		playerAttack(ecs, e, attack, stamina, center, aim, 0)
	}
}

func playerAttack(ecs *ecs.ECS, e *donburi.Entry, attack *combat.Attack, stamina *components.StaminaData, center, aim math2.Vec2, charge float64) {
	payload, ok := attack.StartAttack(center, aim, charge, stamina.Current)
	if !ok {
		return
	}
	stamina.Spend(payload.StaminaCost, cfg.Combat.StaminaRegenDelay)
	physics := components.Physics.Get(e)
	physics.Facing = payload.Facing
	if payload.HasDash() {
		physics.Dash = combat.NewDash(payload.DashX, payload.DashY, payload.DashDuration, ease.OutQuad)
	}
	if attack.IsAttacking() {
		launchIfRanged(ecs, e, attack, true)
	}
}
