package gamemath

// ChargeRatio maps a hold duration onto [0, 1] between minTime and maxTime.
// Durations at or below minTime give 0, at or above maxTime give 1.
func ChargeRatio(held, minTime, maxTime float64) float64 {
	if maxTime <= minTime {
		if held >= minTime {
			return 1
		}
		return 0
	}
	return Clamp((held-minTime)/(maxTime-minTime), 0, 1)
}

// ScaleByCharge returns the multiplier for a charge ratio, 1.0 at no charge
// and maxMultiplier at full charge. A maxMultiplier of 0 means "no scaling".
func ScaleByCharge(maxMultiplier, ratio float64) float64 {
	if maxMultiplier == 0 {
		return 1
	}
	return Lerp(1, maxMultiplier, Clamp(ratio, 0, 1))
}
