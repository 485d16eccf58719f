package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WeaponID identifies an entry in the weapon table.
type WeaponID int

const (
	WeaponFists WeaponID = iota
	WeaponSword
	WeaponSpear
	WeaponClaws
	WeaponClub
	WeaponBow
	WeaponStaff
)

var weaponNames = map[WeaponID]string{
	WeaponFists: "fists",
	WeaponSword: "sword",
	WeaponSpear: "spear",
	WeaponClaws: "claws",
	WeaponClub:  "club",
	WeaponBow:   "bow",
	WeaponStaff: "staff",
}

func (id WeaponID) String() string {
	if name, ok := weaponNames[id]; ok {
		return name
	}
	return fmt.Sprintf("weapon(%d)", int(id))
}

// ParseWeaponID resolves a weapon name as used in level files and overrides.
func ParseWeaponID(name string) (WeaponID, bool) {
	for id, n := range weaponNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// UnmarshalYAML accepts weapon names in override files.
func (id *WeaponID) UnmarshalYAML(value *yaml.Node) error {
	parsed, ok := ParseWeaponID(value.Value)
	if !ok {
		return fmt.Errorf("line %d: unknown weapon %q", value.Line, value.Value)
	}
	*id = parsed
	return nil
}

// AttackShape selects the hit test used by a combo stage.
type AttackShape int

const (
	ShapeArc    AttackShape = iota // whole arc live from the first active tick
	ShapeSweep                     // arc grows over the active window
	ShapeThrust                    // rectangle along the facing direction
)

// DashConfig moves the attacker toward the target when a stage starts.
type DashConfig struct {
	Distance float64 `yaml:"distance"`
	Duration float64 `yaml:"duration"`
}

// ComboStageConfig overrides weapon defaults for one stage of a combo.
// Zero values inherit the weapon-level value.
type ComboStageConfig struct {
	RangeMultiplier  float64     `yaml:"range_multiplier"`
	DamageMultiplier float64     `yaml:"damage_multiplier"`
	ArcDegrees       float64     `yaml:"arc_degrees"`
	Duration         float64     `yaml:"duration"`
	StaminaCost      float64     `yaml:"stamina_cost"`
	Shape            AttackShape `yaml:"shape"`
	ThrustWidth      float64     `yaml:"thrust_width"` // full width of a thrust rectangle
	Dash             *DashConfig `yaml:"dash"`
	Knockback        float64     `yaml:"knockback"`
	StunTime         float64     `yaml:"stun_time"`
}

// ChargeConfig scales an attack by how long the input was held.
type ChargeConfig struct {
	MinTime              float64 `yaml:"min_time"`
	MaxTime              float64 `yaml:"max_time"`
	MaxDamageMultiplier  float64 `yaml:"max_damage_multiplier"`
	MaxRangeMultiplier   float64 `yaml:"max_range_multiplier"`
	MaxStaminaMultiplier float64 `yaml:"max_stamina_multiplier"`
}

// BlockConfig lets the wielder block hits coming from inside ArcDegrees.
type BlockConfig struct {
	ArcDegrees      float64 `yaml:"arc_degrees"`
	DamageReduction float64 `yaml:"damage_reduction"` // 0..1 fraction removed
	KnockbackScale  float64 `yaml:"knockback_scale"`
	StaminaCost     float64 `yaml:"stamina_cost"` // per blocked hit
}

// RangedConfig turns a weapon into a projectile launcher. Ranged weapons do
// no melee hit test.
type RangedConfig struct {
	Speed     float64 `yaml:"speed"`
	Range     float64 `yaml:"range"`
	Damage    int     `yaml:"damage"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Pierce    bool    `yaml:"pierce"`
	AoeRadius float64 `yaml:"aoe_radius"`
	AoeDamage int     `yaml:"aoe_damage"` // 0 means Damage
	Knockback float64 `yaml:"knockback"`
}

// WeaponConfig is the immutable stat table of a weapon type.
type WeaponConfig struct {
	Name           string             `yaml:"name"`
	BaseRange      float64            `yaml:"base_range"`
	BaseDamage     int                `yaml:"base_damage"`
	BaseArcDegrees float64            `yaml:"base_arc_degrees"`
	Cooldown       float64            `yaml:"cooldown"` // recovery buffer after an attack ends
	WindUpTime     float64            `yaml:"wind_up_time"`
	Duration       float64            `yaml:"duration"` // default active window
	StaminaCost    float64            `yaml:"stamina_cost"`
	KnockbackForce float64            `yaml:"knockback_force"`
	StunTime       float64            `yaml:"stun_time"`
	Combo          []ComboStageConfig `yaml:"combo"`
	MaxComboStage  int                `yaml:"max_combo_stage"` // 0 means len(Combo)
	ComboWindow    float64            `yaml:"combo_window"`
	Charge         *ChargeConfig      `yaml:"charge"`
	Block          *BlockConfig       `yaml:"block"`
	Ranged         *RangedConfig      `yaml:"ranged"`
}

// MaxStage returns the last combo stage, at least 1.
func (w *WeaponConfig) MaxStage() int {
	n := w.MaxComboStage
	if n <= 0 || n > len(w.Combo) {
		n = len(w.Combo)
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Weapons is the weapon table. Entries are shared read-only by every wielder.
var Weapons map[WeaponID]*WeaponConfig

// Weapon looks up a weapon definition.
func Weapon(id WeaponID) (*WeaponConfig, bool) {
	w, ok := Weapons[id]
	return w, ok && w != nil
}

func init() {
	Weapons = map[WeaponID]*WeaponConfig{
		WeaponFists: {
			Name:           "Fists",
			BaseRange:      26,
			BaseDamage:     6,
			BaseArcDegrees: 90,
			Cooldown:       0.05,
			Duration:       0.15,
			StaminaCost:    5,
			KnockbackForce: 120,
			Combo: []ComboStageConfig{
				{},
				{DamageMultiplier: 1.1},
				{RangeMultiplier: 1.1, DamageMultiplier: 1.6, Duration: 0.25, StaminaCost: 10, Knockback: 220, StunTime: 0.2},
			},
			ComboWindow: 0.8,
		},
		WeaponSword: {
			Name:           "Sword",
			BaseRange:      34,
			BaseDamage:     12,
			BaseArcDegrees: 100,
			Cooldown:       0.1,
			Duration:       0.2,
			StaminaCost:    10,
			KnockbackForce: 160,
			Combo: []ComboStageConfig{
				{Shape: ShapeSweep},
				{Shape: ShapeSweep, DamageMultiplier: 1.2, Dash: &DashConfig{Distance: 24, Duration: 0.1}},
				{Shape: ShapeSweep, ArcDegrees: 360, DamageMultiplier: 1.5, Duration: 0.4, StaminaCost: 20, Knockback: 260},
			},
			ComboWindow: 1.5,
			Charge: &ChargeConfig{
				MinTime:              0.3,
				MaxTime:              1.3,
				MaxDamageMultiplier:  2.5,
				MaxRangeMultiplier:   1.5,
				MaxStaminaMultiplier: 2,
			},
			Block: &BlockConfig{
				ArcDegrees:      120,
				DamageReduction: 0.7,
				KnockbackScale:  0.3,
				StaminaCost:     10,
			},
		},
		WeaponSpear: {
			Name:           "Spear",
			BaseRange:      52,
			BaseDamage:     10,
			BaseArcDegrees: 30,
			Cooldown:       0.15,
			Duration:       0.2,
			StaminaCost:    8,
			KnockbackForce: 140,
			Combo: []ComboStageConfig{
				{Shape: ShapeThrust, ThrustWidth: 12},
				{Shape: ShapeThrust, ThrustWidth: 12, RangeMultiplier: 1.2, DamageMultiplier: 1.4, Dash: &DashConfig{Distance: 32, Duration: 0.12}},
			},
			ComboWindow: 1,
			Charge: &ChargeConfig{
				MinTime:              0.4,
				MaxTime:              1.2,
				MaxDamageMultiplier:  2,
				MaxRangeMultiplier:   1.3,
				MaxStaminaMultiplier: 1.5,
			},
		},
		WeaponClaws: {
			Name:           "Claws",
			BaseRange:      30,
			BaseDamage:     8,
			BaseArcDegrees: 110,
			Cooldown:       0.3,
			WindUpTime:     0.25,
			Duration:       0.15,
			KnockbackForce: 140,
			Combo:          []ComboStageConfig{{}},
			ComboWindow:    0.5,
		},
		WeaponClub: {
			Name:           "Club",
			BaseRange:      32,
			BaseDamage:     18,
			BaseArcDegrees: 140,
			Cooldown:       0.5,
			WindUpTime:     0.5,
			Duration:       0.25,
			KnockbackForce: 300,
			StunTime:       0.4,
			Combo:          []ComboStageConfig{{Shape: ShapeSweep}},
			ComboWindow:    0.5,
		},
		WeaponBow: {
			Name:        "Bow",
			Cooldown:    0.6,
			WindUpTime:  0.4,
			Duration:    0.1,
			Combo:       []ComboStageConfig{{}},
			ComboWindow: 0.5,
			Ranged: &RangedConfig{
				Speed:     240,
				Range:     300,
				Damage:    8,
				Width:     6,
				Height:    6,
				Pierce:    true,
				Knockback: 80,
			},
		},
		WeaponStaff: {
			Name:        "Staff",
			Cooldown:    1,
			WindUpTime:  0.6,
			Duration:    0.1,
			Combo:       []ComboStageConfig{{}},
			ComboWindow: 0.5,
			Ranged: &RangedConfig{
				Speed:     160,
				Range:     260,
				Damage:    6,
				Width:     8,
				Height:    8,
				AoeRadius: 40,
				AoeDamage: 10,
				Knockback: 60,
			},
		},
	}
}
