package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EnemyTypeID identifies an entry in the enemy type table.
type EnemyTypeID int

const (
	EnemyGrunt EnemyTypeID = iota
	EnemyBrute
	EnemyArcher
	EnemyWolf
	EnemyShaman
)

var enemyTypeNames = map[EnemyTypeID]string{
	EnemyGrunt:  "grunt",
	EnemyBrute:  "brute",
	EnemyArcher: "archer",
	EnemyWolf:   "wolf",
	EnemyShaman: "shaman",
}

func (id EnemyTypeID) String() string {
	if name, ok := enemyTypeNames[id]; ok {
		return name
	}
	return fmt.Sprintf("enemy(%d)", int(id))
}

// ParseEnemyType resolves an enemy type name from a level file.
func ParseEnemyType(name string) (EnemyTypeID, bool) {
	for id, n := range enemyTypeNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// IdleBehavior is what an enemy does while no player is in detection range.
type IdleBehavior int

const (
	IdleWander IdleBehavior = iota
	IdleGuard
	IdleSleep
	IdlePatrol
	IdlePackFollow
	IdleCircularPatrol
)

var idleBehaviorNames = map[IdleBehavior]string{
	IdleWander:         "wander",
	IdleGuard:          "guard",
	IdleSleep:          "sleep",
	IdlePatrol:         "patrol",
	IdlePackFollow:     "pack",
	IdleCircularPatrol: "circle",
}

func (b IdleBehavior) String() string {
	if name, ok := idleBehaviorNames[b]; ok {
		return name
	}
	return fmt.Sprintf("idle(%d)", int(b))
}

// ParseIdleBehavior resolves an idle behaviour name.
func ParseIdleBehavior(name string) (IdleBehavior, bool) {
	for b, n := range idleBehaviorNames {
		if n == name {
			return b, true
		}
	}
	return 0, false
}

// UnmarshalYAML accepts behaviour names in override files.
func (b *IdleBehavior) UnmarshalYAML(value *yaml.Node) error {
	parsed, ok := ParseIdleBehavior(value.Value)
	if !ok {
		return fmt.Errorf("line %d: unknown idle behavior %q", value.Line, value.Value)
	}
	*b = parsed
	return nil
}

// LungeConfig describes a charge-then-dash attack.
type LungeConfig struct {
	ChargeRange     float64 `yaml:"charge_range"`
	ChargeTime      float64 `yaml:"charge_time"`
	Speed           float64 `yaml:"speed"`
	Duration        float64 `yaml:"duration"`
	Damage          int     `yaml:"damage"`
	Knockback       float64 `yaml:"knockback"`
	Cooldown        float64 `yaml:"cooldown"`
	HopBackChance   float64 `yaml:"hop_back_chance"` // 0..1
	HopBackDistance float64 `yaml:"hop_back_distance"`
	HopBackDuration float64 `yaml:"hop_back_duration"`
}

// AbilityKind selects how a periodic ability places its damage.
type AbilityKind int

const (
	AbilityAOE    AbilityKind = iota // burst centred on the caster
	AbilityPillar                    // burst centred on the target's position at cast start
)

// AbilityConfig is a periodic area attack on its own cooldown.
type AbilityConfig struct {
	Kind      AbilityKind `yaml:"kind"`
	Cooldown  float64     `yaml:"cooldown"`
	WindUp    float64     `yaml:"wind_up"`
	Range     float64     `yaml:"range"` // max distance to the target to start a cast
	Radius    float64     `yaml:"radius"`
	Damage    int         `yaml:"damage"`
	Knockback float64     `yaml:"knockback"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string  `yaml:"name"`
	Health int     `yaml:"health"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Speed      float64 `yaml:"speed"`       // idle movement
	ChaseSpeed float64 `yaml:"chase_speed"` //
	FleeSpeed  float64 `yaml:"flee_speed"`  //

	DetectionRange float64  `yaml:"detection_range"`
	AttackRange    float64  `yaml:"attack_range"`
	AttackCooldown float64  `yaml:"attack_cooldown"`
	Weapon         WeaponID `yaml:"weapon"`

	// Flee when health drops to this fraction of max. 0 disables fleeing.
	FleeHealthRatio float64 `yaml:"flee_health_ratio"`

	KnockbackDecay float64 `yaml:"knockback_decay"` // 0 means Movement.KnockbackDecay
	KnockbackScale float64 `yaml:"knockback_scale"` // 0 means 1

	Idle           IdleBehavior `yaml:"idle"`
	WanderRadius   float64      `yaml:"wander_radius"`
	GuardRadius    float64      `yaml:"guard_radius"`
	GuardTurnSpeed float64      `yaml:"guard_turn_speed"` // radians per second, 0 = still
	WakeRadius     float64      `yaml:"wake_radius"`

	Lunge   *LungeConfig   `yaml:"lunge"`
	Ability *AbilityConfig `yaml:"ability"`
}

// EnemyTypes is the enemy table. Entries are read-only at runtime.
var EnemyTypes map[EnemyTypeID]*EnemyTypeConfig

// EnemyType looks up an enemy definition.
func EnemyType(id EnemyTypeID) (*EnemyTypeConfig, bool) {
	t, ok := EnemyTypes[id]
	return t, ok && t != nil
}

func init() {
	EnemyTypes = map[EnemyTypeID]*EnemyTypeConfig{
		EnemyGrunt: {
			Name:            "Grunt",
			Health:          30,
			Width:           14,
			Height:          14,
			Speed:           40,
			ChaseSpeed:      80,
			FleeSpeed:       90,
			DetectionRange:  200,
			AttackRange:     36,
			AttackCooldown:  1,
			Weapon:          WeaponClaws,
			FleeHealthRatio: 0.2,
			Idle:            IdleWander,
			WanderRadius:    64,
			GuardRadius:     32,
			WakeRadius:      60,
		},
		EnemyBrute: {
			Name:           "Brute",
			Health:         80,
			Width:          20,
			Height:         20,
			Speed:          30,
			ChaseSpeed:     55,
			DetectionRange: 180,
			AttackRange:    38,
			AttackCooldown: 1.6,
			Weapon:         WeaponClub,
			KnockbackScale: 0.4,
			Idle:           IdleGuard,
			GuardRadius:    40,
			GuardTurnSpeed: 0.8,
			WakeRadius:     60,
		},
		EnemyArcher: {
			Name:            "Archer",
			Health:          20,
			Width:           12,
			Height:          12,
			Speed:           40,
			ChaseSpeed:      60,
			FleeSpeed:       90,
			DetectionRange:  260,
			AttackRange:     200,
			AttackCooldown:  1.2,
			Weapon:          WeaponBow,
			FleeHealthRatio: 0.3,
			Idle:            IdlePatrol,
			WanderRadius:    48,
			WakeRadius:      80,
		},
		EnemyWolf: {
			Name:           "Wolf",
			Health:         24,
			Width:          12,
			Height:         10,
			Speed:          50,
			ChaseSpeed:     110,
			DetectionRange: 240,
			AttackRange:    22,
			AttackCooldown: 0.8,
			Weapon:         WeaponClaws,
			KnockbackScale: 1.3,
			Idle:           IdlePackFollow,
			WanderRadius:   96,
			WakeRadius:     70,
			Lunge: &LungeConfig{
				ChargeRange:     90,
				ChargeTime:      0.4,
				Speed:           320,
				Duration:        0.3,
				Damage:          10,
				Knockback:       180,
				Cooldown:        2.5,
				HopBackChance:   0.5,
				HopBackDistance: 40,
				HopBackDuration: 0.2,
			},
		},
		EnemyShaman: {
			Name:            "Shaman",
			Health:          28,
			Width:           14,
			Height:          14,
			Speed:           30,
			ChaseSpeed:      50,
			FleeSpeed:       70,
			DetectionRange:  240,
			AttackRange:     180,
			AttackCooldown:  2,
			Weapon:          WeaponStaff,
			FleeHealthRatio: 0.25,
			Idle:            IdleCircularPatrol,
			WakeRadius:      60,
			Ability: &AbilityConfig{
				Kind:      AbilityPillar,
				Cooldown:  5,
				WindUp:    0.8,
				Range:     160,
				Radius:    36,
				Damage:    14,
				Knockback: 150,
			},
		},
	}
}
