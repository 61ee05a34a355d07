// Package jump holds the measurement math: deriving height from hang time,
// reducing records to per-day series and computing progress windows. Every
// function here is a pure transform over in-memory data so the rules stay
// testable without HTTP or a database.
package jump

import (
	"github.com/johnzhangfit/verttracker/internal/apperrors"
)

// gravity is the free-fall acceleration used for the flight-time model, m/s^2.
const gravity = 9.81

// HeightFromHangTime derives jump height in meters from airborne time in
// seconds. The jumper spends half the hang time rising, so the rise height is
// g*(t/2)^2. The user's tip-toe offset is deliberately not folded in here; it
// stays a stored calibration constant.
func HeightFromHangTime(hangTime float64) (float64, error) {
	if hangTime <= 0 {
		return 0, apperrors.Validation("hang-time must be a positive floating point value")
	}
	half := hangTime / 2
	return gravity * half * half, nil
}
