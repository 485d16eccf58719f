package config

// Times are in seconds, distances in pixels and speeds in pixels per second
// unless a field says otherwise.

// SimConfig contains simulation-wide settings.
type SimConfig struct {
	TickRate       int     `yaml:"tick_rate"`       // ticks per second for the real-time loop
	Width          float64 `yaml:"width"`           // default arena size when no level is loaded
	Height         float64 `yaml:"height"`          //
	BroadphaseCell int     `yaml:"broadphase_cell"` // resolv cell size for the obstacle space
	Seed           int64   `yaml:"seed"`            // rng seed for wander/hop-back rolls
}

// MovementConfig contains movement and knockback tuning shared by all
// characters.
type MovementConfig struct {
	PlayerSpeed      float64 `yaml:"player_speed"`
	PlayerWidth      float64 `yaml:"player_width"`
	PlayerHeight     float64 `yaml:"player_height"`
	AttackSpeedScale float64 `yaml:"attack_speed_scale"` // walk speed multiplier while attacking

	// Dodge roll
	DodgeDistance    float64 `yaml:"dodge_distance"`
	DodgeDuration    float64 `yaml:"dodge_duration"`
	DodgeStaminaCost float64 `yaml:"dodge_stamina_cost"`
	DodgeCooldown    float64 `yaml:"dodge_cooldown"`

	// Knockback velocity is multiplied by KnockbackDecay every tick and
	// snapped to zero below KnockbackEpsilon.
	KnockbackDecay   float64 `yaml:"knockback_decay"`
	KnockbackEpsilon float64 `yaml:"knockback_epsilon"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	PlayerHealth  int      `yaml:"player_health"`
	PlayerStamina float64  `yaml:"player_stamina"`
	PlayerWeapon  WeaponID `yaml:"player_weapon"`

	// Stamina regeneration starts RegenDelay after the last spend.
	StaminaRegenRate  float64 `yaml:"stamina_regen_rate"`
	StaminaRegenDelay float64 `yaml:"stamina_regen_delay"`

	// InputBufferTime keeps an attack press alive while the attacker is busy.
	InputBufferTime float64 `yaml:"input_buffer_time"`

	// Invulnerability after taking a hit
	PlayerInvulnTime float64 `yaml:"player_invuln_time"`
	EnemyInvulnTime  float64 `yaml:"enemy_invuln_time"`

	// Knockback force below which a hit does not interrupt an attack.
	InterruptKnockback float64 `yaml:"interrupt_knockback"`

	DeathDuration float64 `yaml:"death_duration"`
}

// PathfindingConfig contains navigation grid and path following settings.
type PathfindingConfig struct {
	CellSize       float64 `yaml:"cell_size"`
	MaxOpenNodes   int     `yaml:"max_open_nodes"`
	RecoveryRadius int     `yaml:"recovery_radius"`
	RepathInterval float64 `yaml:"repath_interval"` // min time between path requests per agent
	WaypointRadius float64 `yaml:"waypoint_radius"` // distance at which a waypoint counts as reached
}

// ProjectileConfig contains projectile defaults used when a ranged weapon
// leaves a field unset.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Range  float64 `yaml:"range"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AIConfig contains enemy behaviour constants shared by all enemy types.
type AIConfig struct {
	HysteresisMultiplier float64 `yaml:"hysteresis_multiplier"` // chase exit range = detection * this
	WanderIntervalMin    float64 `yaml:"wander_interval_min"`
	WanderIntervalMax    float64 `yaml:"wander_interval_max"`
	PatrolDistance       float64 `yaml:"patrol_distance"` // default patrol leg when no path is given
	CircleRadius         float64 `yaml:"circle_radius"`   // default ring radius for circular patrol
	CirclePoints         int     `yaml:"circle_points"`
	PackSpacing          float64 `yaml:"pack_spacing"` // follower distance from the pack anchor
	PackWanderRadius     float64 `yaml:"pack_wander_radius"`
	FleeDistance         float64 `yaml:"flee_distance"`
}

// Global configuration instances
var Sim SimConfig
var Movement MovementConfig
var Combat CombatConfig
var Pathfinding PathfindingConfig
var Projectile ProjectileConfig
var AI AIConfig

func init() {
	Sim = SimConfig{
		TickRate:       60,
		Width:          640,
		Height:         480,
		BroadphaseCell: 32,
		Seed:           1,
	}

	Movement = MovementConfig{
		PlayerSpeed:      140,
		PlayerWidth:      14,
		PlayerHeight:     14,
		AttackSpeedScale: 0.35,

		DodgeDistance:    70,
		DodgeDuration:    0.25,
		DodgeStaminaCost: 20,
		DodgeCooldown:    0.4,

		KnockbackDecay:   0.85,
		KnockbackEpsilon: 5,
	}

	Combat = CombatConfig{
		PlayerHealth:  100,
		PlayerStamina: 100,
		PlayerWeapon:  WeaponSword,

		StaminaRegenRate:  30,
		StaminaRegenDelay: 0.6,

		InputBufferTime: 0.2,

		PlayerInvulnTime: 0.5,
		EnemyInvulnTime:  0.1,

		InterruptKnockback: 120,

		DeathDuration: 1,
	}

	Pathfinding = PathfindingConfig{
		CellSize:       16,
		MaxOpenNodes:   500,
		RecoveryRadius: 5,
		RepathInterval: 0.5,
		WaypointRadius: 4,
	}

	Projectile = ProjectileConfig{
		Speed:  220,
		Range:  320,
		Width:  6,
		Height: 6,
	}

	AI = AIConfig{
		HysteresisMultiplier: 1.2,
		WanderIntervalMin:    1,
		WanderIntervalMax:    3,
		PatrolDistance:       96,
		CircleRadius:         64,
		CirclePoints:         8,
		PackSpacing:          28,
		PackWanderRadius:     96,
		FleeDistance:         160,
	}
}
