package components

import "github.com/yohamta/donburi"

type StaminaData struct {
	Current float64
	Max     float64

	// RegenDelay counts down after spending; regeneration waits for zero.
	RegenDelay float64
}

// Spend deducts cost if there is enough stamina.
func (s *StaminaData) Spend(cost, delay float64) bool {
	if cost <= 0 {
		return true
	}
	if s.Current < cost {
		return false
	}
	s.Current -= cost
	s.RegenDelay = delay
	return true
}

var Stamina = donburi.NewComponentType[StaminaData]()
