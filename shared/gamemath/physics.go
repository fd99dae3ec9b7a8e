package gamemath

// Clamp limits v to [lo, hi]. lo wins when the range is inverted.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		return lo
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// StepToward returns how far to move to close a gap of delta when at most
// maxStep may be covered in one frame. Gaps smaller than maxStep are closed
// exactly so the mover settles instead of oscillating around the target.
func StepToward(delta, maxStep float64) float64 {
	if delta < maxStep && delta > -maxStep {
		return delta
	}
	if delta > 0 {
		return maxStep
	}
	return -maxStep
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
