package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int

	// InvulnTime is the time in seconds during which new hits are ignored.
	InvulnTime float64
}

// IsDead reports whether health has run out.
func (h *HealthData) IsDead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
