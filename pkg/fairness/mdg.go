package fairness

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
)

// MeanDiscardGap returns the MDG of a set of demographic groups: the mean,
// over every integer threshold in (min, max] of all scores, of the spread
// between the highest and lowest group discard percentage.
//
// Only integer scores are supported.
func MeanDiscardGap(groups []Distribution) (float64, error) {
	all, err := Concat(groups...)
	if err != nil {
		return 0, errors.Wrap(err, "combining group distributions")
	}
	if err := EnforceIntegerScores(all); err != nil {
		return 0, err
	}

	lo, hi, err := all.MinMax()
	if err != nil {
		return 0, err
	}
	minThreshold, maxThreshold := int(lo), int(hi)
	if minThreshold == maxThreshold {
		return 0, errors.Wrapf(ErrDivision, "all scores equal %d, no discard threshold to evaluate", minThreshold)
	}

	var sum float64
	percentages := make([]float64, len(groups))
	for t := minThreshold + 1; t <= maxThreshold; t++ {
		for i, g := range groups {
			if percentages[i], err = DiscardPercentage(g, t); err != nil {
				return 0, errors.Wrapf(err, "group %d at threshold %d", i, t)
			}
		}
		d, err := MinMaxDistance(percentages)
		if err != nil {
			return 0, err
		}
		sum += d
	}

	mdg := sum / float64(maxThreshold-minThreshold)
	slog.Debug(fmt.Sprintf("mdg: %.6f (groups=%d, thresholds=%d..%d)", mdg, len(groups), minThreshold+1, maxThreshold))
	return mdg, nil
}
