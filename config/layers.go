package config

import "github.com/yohamta/donburi/ecs"

// Render/entity layers.
const (
	Default ecs.LayerID = iota
	Overlay
)
