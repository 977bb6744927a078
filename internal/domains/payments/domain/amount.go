package domain

import "math"

// ToMinorUnits converts a decimal currency amount to integer minor
// units (e.g. rupees to paise) by rounding to the nearest unit. The
// rounding must be deterministic so the displayed total and the charged
// total can never drift by a paisa.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
