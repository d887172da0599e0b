package fairness

import "math"

// SQFR converts a raw lower-is-better measure (GC or MDG) into a
// higher-is-better fairness ratio: 1 - m.
func SQFR(m float64) float64 {
	return 1 - m
}

// CSQFR is the cubed fairness ratio (1 - m)^3, which punishes small
// inequalities harder than SQFR.
func CSQFR(m float64) float64 {
	return math.Pow(1-m, 3)
}
