package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type overrideDoc struct {
	Sim         SimConfig            `yaml:"sim"`
	Movement    MovementConfig       `yaml:"movement"`
	Combat      CombatConfig         `yaml:"combat"`
	Pathfinding PathfindingConfig    `yaml:"pathfinding"`
	Projectile  ProjectileConfig     `yaml:"projectile"`
	AI          AIConfig             `yaml:"ai"`
	Weapons     map[string]yaml.Node `yaml:"weapons"`
	Enemies     map[string]yaml.Node `yaml:"enemies"`
}

// LoadOverrides patches the global tables from a YAML document. Only the keys
// present are changed:
//
//	sim:
//	  tick_rate: 30
//	weapons:
//	  sword:
//	    base_damage: 20
//	enemies:
//	  grunt:
//	    health: 50
//	    idle: guard
//
// Nothing is applied unless the whole document is valid. Entities spawned
// earlier keep the definitions they were created with.
func LoadOverrides(r io.Reader) error {
	doc := overrideDoc{
		Sim:         Sim,
		Movement:    Movement,
		Combat:      Combat,
		Pathfinding: Pathfinding,
		Projectile:  Projectile,
		AI:          AI,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode overrides: %w", err)
	}

	if err := doc.Pathfinding.validate(); err != nil {
		return fmt.Errorf("override pathfinding: %w", err)
	}

	weapons := make(map[WeaponID]*WeaponConfig, len(doc.Weapons))
	for name, node := range doc.Weapons {
		id, ok := ParseWeaponID(name)
		if !ok {
			return fmt.Errorf("override weapon %q: unknown weapon", name)
		}
		var w WeaponConfig
		if base, ok := Weapon(id); ok {
			w = base.clone()
		}
		if err := node.Decode(&w); err != nil {
			return fmt.Errorf("override weapon %q: %w", name, err)
		}
		weapons[id] = &w
	}

	enemies := make(map[EnemyTypeID]*EnemyTypeConfig, len(doc.Enemies))
	for name, node := range doc.Enemies {
		id, ok := ParseEnemyType(name)
		if !ok {
			return fmt.Errorf("override enemy %q: unknown enemy type", name)
		}
		var e EnemyTypeConfig
		if base, ok := EnemyType(id); ok {
			e = base.clone()
		}
		if err := node.Decode(&e); err != nil {
			return fmt.Errorf("override enemy %q: %w", name, err)
		}
		enemies[id] = &e
	}

	Sim = doc.Sim
	Movement = doc.Movement
	Combat = doc.Combat
	Pathfinding = doc.Pathfinding
	Projectile = doc.Projectile
	AI = doc.AI
	for id, w := range weapons {
		Weapons[id] = w
	}
	for id, e := range enemies {
		EnemyTypes[id] = e
	}
	return nil
}

func (p PathfindingConfig) validate() error {
	switch {
	case p.CellSize <= 0:
		return fmt.Errorf("cell_size must be positive, got %v", p.CellSize)
	case p.MaxOpenNodes <= 0:
		return fmt.Errorf("max_open_nodes must be positive, got %d", p.MaxOpenNodes)
	case p.RecoveryRadius < 0:
		return fmt.Errorf("recovery_radius must not be negative, got %d", p.RecoveryRadius)
	case p.RepathInterval <= 0:
		return fmt.Errorf("repath_interval must be positive, got %v", p.RepathInterval)
	}
	return nil
}

// clone copies a weapon deeply enough that decoding into the copy never
// touches the shared original.
func (w *WeaponConfig) clone() WeaponConfig {
	c := *w
	c.Combo = make([]ComboStageConfig, len(w.Combo))
	for i, stage := range w.Combo {
		if stage.Dash != nil {
			dash := *stage.Dash
			stage.Dash = &dash
		}
		c.Combo[i] = stage
	}
	if w.Charge != nil {
		charge := *w.Charge
		c.Charge = &charge
	}
	if w.Block != nil {
		block := *w.Block
		c.Block = &block
	}
	if w.Ranged != nil {
		ranged := *w.Ranged
		c.Ranged = &ranged
	}
	return c
}

func (e *EnemyTypeConfig) clone() EnemyTypeConfig {
	c := *e
	if e.Lunge != nil {
		lunge := *e.Lunge
		c.Lunge = &lunge
	}
	if e.Ability != nil {
		ability := *e.Ability
		c.Ability = &ability
	}
	return c
}
