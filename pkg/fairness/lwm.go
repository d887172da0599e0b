package fairness

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/pkg/errors"
)

// DefaultUpperLimit is the highest quality score on the default [0,100] scale.
const DefaultUpperLimit = 100

// DefaultScale covers integer quality scores in [0,100], i.e. 101 bins.
var DefaultScale = Scale{UpperLimit: DefaultUpperLimit}

// Scale describes the discrete integer range [0, UpperLimit] quality scores
// are drawn from.
type Scale struct {
	UpperLimit int `json:"upper_limit" yaml:"upper_limit"`
}

// Bins returns the number of possible score values.
func (s Scale) Bins() int {
	return s.UpperLimit + 1
}

// Validate checks the scale can index an accumulator.
func (s Scale) Validate() error {
	if s.UpperLimit <= 0 {
		return errors.Wrapf(ErrInvalidInput, "scale upper limit must be positive, got %d", s.UpperLimit)
	}
	return nil
}

// LowWeightedMeanScore computes the LWM score of group on the default scale.
// all holds the scores of every evaluated group and only sets the min-max
// normalization bounds.
func LowWeightedMeanScore(group, all []int) (float64, error) {
	return DefaultScale.LowWeightedMean(group, all)
}

// LowWeightedMean computes the Low-Weighted-Mean score of group. Each score
// is weighted by its inverted min-max normalized value over all, so the low
// tail of the group dominates the result.
func (s Scale) LowWeightedMean(group, all []int) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if len(all) == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "low-weighted mean needs the union of all scores")
	}

	lo, hi := slices.Min(all), slices.Max(all)
	if hi == lo {
		return 0, errors.Wrapf(ErrDivision, "all scores equal %d, normalization range is zero", lo)
	}
	span := float64(hi - lo)

	acc := make([]float64, s.Bins())
	for _, q := range group {
		if q < 0 || q > s.UpperLimit {
			return 0, errors.Wrapf(ErrInvalidInput, "score %d outside [0,%d]", q, s.UpperLimit)
		}
		acc[q] += 1 - float64(q-lo)/span
	}

	var total float64
	for _, w := range acc {
		total += w
	}
	if total == 0 {
		return 0, errors.Wrapf(ErrDivision, "total weight of %d group scores is zero", len(group))
	}

	var lwm float64
	for v, w := range acc {
		lwm += 100 * (float64(v) / float64(s.UpperLimit)) * (w / total)
	}

	slog.Debug(fmt.Sprintf("lwm: %.6f (n=%d, min=%d, max=%d, weight=%.4f)", lwm, len(group), lo, hi, total))
	return lwm, nil
}
