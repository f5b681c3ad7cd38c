package odds

import (
	"errors"
	"math"
)

// ErrZeroOdds is returned for American odds of 0, which have no meaning.
var ErrZeroOdds = errors.New("american odds of 0 are invalid")

// AmericanToImplied converts American odds to implied probability.
// Example: -150 → 0.6 (60%), +150 → 0.4 (40%)
func AmericanToImplied(american int) (float64, error) {
	if american == 0 {
		return 0, ErrZeroOdds
	}

	if american > 0 {
		// Underdog: probability = 100 / (odds + 100)
		return 100.0 / (float64(american) + 100.0), nil
	}
	// Favorite: probability = |odds| / (|odds| + 100)
	abs := math.Abs(float64(american))
	return abs / (abs + 100.0), nil
}

// AmericanToDecimal converts American odds to decimal (European) odds.
// Example: -150 → 1.6667, +150 → 2.5
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, ErrZeroOdds
	}

	if american > 0 {
		return 1.0 + float64(american)/100.0, nil
	}
	return 1.0 + 100.0/math.Abs(float64(american)), nil
}

// DecimalToAmerican converts decimal odds back to a rounded American price.
// This is for display only; combination arithmetic stays in probability and
// decimal space so rounding never compounds.
func DecimalToAmerican(decimal float64) int {
	if decimal >= 2.0 {
		return int(math.Round(100.0 * (decimal - 1.0)))
	}
	return int(math.Round(-100.0 / (decimal - 1.0)))
}

// DecimalToImplied converts decimal odds to implied probability.
func DecimalToImplied(decimal float64) float64 {
	if decimal <= 0 {
		return 0
	}
	return 1.0 / decimal
}
