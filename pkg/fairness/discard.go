package fairness

import (
	"slices"

	"github.com/pkg/errors"
)

// DiscardPercentage returns the fraction of d strictly below threshold.
func DiscardPercentage(d Distribution, threshold int) (float64, error) {
	if d.kind == KindNone {
		return 0, errors.Wrap(ErrType, "expected a typed score distribution, got none")
	}
	if len(d.values) == 0 {
		return 0, errors.Wrap(ErrDivision, "discard percentage of empty distribution")
	}

	t := float64(threshold)
	var discarded int
	for _, v := range d.values {
		if v < t {
			discarded++
		}
	}
	return float64(discarded) / float64(len(d.values)), nil
}

// MinMaxDistance returns max(p) - min(p) for the discard percentages of all
// groups at one threshold.
func MinMaxDistance(p []float64) (float64, error) {
	if p == nil {
		return 0, errors.Wrap(ErrType, "expected a list of discard percentages, got nil")
	}
	if len(p) == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "min-max distance of empty list")
	}
	return slices.Max(p) - slices.Min(p), nil
}

// EnforceIntegerScores fails with ErrType unless d holds integer scores.
func EnforceIntegerScores(d Distribution) error {
	if d.kind != KindInt {
		return errors.Wrapf(ErrType, "expected quality scores of type int, got %s", d.kind)
	}
	return nil
}
