package strategy

// FromBipolar maps a native [-1,1] polarity onto the canonical [0,1] scale.
func FromBipolar(native float64) float64 {
	return clamp01((native + 1) / 2)
}

// FromDistribution maps a three-way negative/neutral/positive probability
// distribution onto the canonical scale. A zero total yields the neutral
// midpoint rather than a division fault.
func FromDistribution(negative, neutral, positive float64) float64 {
	total := positive + neutral + negative
	if total == 0 {
		return 0.5
	}
	return clamp01((positive + 0.5*neutral) / total)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
