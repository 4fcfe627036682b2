// Package moneymath provides the rounding and comparison primitives every
// balance and journal computation is built on. Amounts are binary floats, so
// a tiny bias is folded in before rounding to keep values that are
// mathematically on a rounding boundary (e.g. exactly .005) from flipping
// down due to representation error.
package moneymath

import "math"

// machineEpsilon is the bias added before rounding. It must be applied on
// every rounding step, not only at the end, so repeated computations over the
// same snapshot stay bit-identical.
var machineEpsilon = math.Nextafter(1, 2) - 1

// RoundToPrecision rounds amount to the given number of decimal places using
// round((amount + eps) * 10^precision) / 10^precision.
func RoundToPrecision(amount float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round((amount+machineEpsilon)*factor) / factor
}

// Epsilon returns the tolerance below which two amounts are considered equal
// at the given precision: 10^-(precision+1).
func Epsilon(precision int) float64 {
	return math.Pow(10, -float64(precision+1))
}

// AmountsAreEqual reports whether a and b round to the same value at the
// given precision.
func AmountsAreEqual(a, b float64, precision int) bool {
	return RoundToPrecision(a, precision) == RoundToPrecision(b, precision)
}

// SafeAdd adds b to a and immediately rounds, preventing drift from
// accumulating across sequential additions.
func SafeAdd(a, b float64, precision int) float64 {
	return RoundToPrecision(a+b, precision)
}

// SafeSubtract subtracts b from a and immediately rounds.
func SafeSubtract(a, b float64, precision int) float64 {
	return RoundToPrecision(a-b, precision)
}
