package inventory

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DaysToExpiry días (redondeados hacia arriba) hasta el vencimiento. Negativo si ya venció.
func DaysToExpiry(expiry, now time.Time) int {
	return int(math.Ceil(float64(expiry.Sub(now)) / float64(day)))
}

// ExpiresWithin indica si el vencimiento cae en o antes de now + days. Compara en días
// para que ventanas enormes no desborden time.Duration.
func ExpiresWithin(expiry, now time.Time, days int) bool {
	return DaysToExpiry(expiry, now) <= days
}
