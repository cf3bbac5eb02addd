package atxt

import "math"

const brokenCode = "broken code"

// Rounds half up: -0.5 becomes 0 and 0.5 becomes 1.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
