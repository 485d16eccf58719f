package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/ai"
	"github.com/automoto/doomerang-arena/shared/combat"
)

type EnemyData struct {
	Type       config.EnemyTypeID
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	// AI state management
	State    ai.State
	Previous ai.State
	Awake    bool // sleepers wake on proximity or on being hit

	// Combat
	AttackCooldown float64 // seconds until the next attack may start
	Lunge          *combat.Lunge
	Ability        *combat.Ability

	// Navigation
	Path        []math2.Vec2
	PathIndex   int
	RepathTimer float64
	PathGoal    math2.Vec2
	PathFailed  bool // last plan found no route; wait for RepathTimer

	// Idle behaviours
	Wander ai.Wander
	Guard  ai.Guard
	Patrol ai.Patrol
	Circle ai.CircularPatrol

	// Pack membership. Pack is the zero entity when the enemy hunts alone.
	Pack      donburi.Entity
	PackIndex int
}

// ClearPath drops the current route so the next chase tick plans a new one.
func (e *EnemyData) ClearPath() {
	e.Path = nil
	e.PathIndex = 0
	e.RepathTimer = 0
	e.PathFailed = false
}

var Enemy = donburi.NewComponentType[EnemyData]()
