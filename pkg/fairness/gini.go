package fairness

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

// GiniCoefficient returns the bias-corrected Gini coefficient of descriptive
// scores, one value (e.g. mean or median) per demographic group.
// 0 means perfect equality.
func GiniCoefficient(x []float64) (float64, error) {
	n := len(x)
	if n <= 1 {
		return 0, errors.Wrapf(ErrInvalidInput,
			"gini coefficient needs more than one score, got %d", n)
	}

	var numerator, sum float64
	for i := range x {
		sum += x[i]
		for j := range x {
			numerator += math.Abs(x[i] - x[j])
		}
	}

	fn := float64(n)
	denominator := 2 * fn * fn * (sum / fn)
	if denominator == 0 {
		return 0, errors.Wrap(ErrDivision, "gini coefficient denominator is zero, mean of scores is 0")
	}

	gc := numerator / denominator

	// small sample correction
	correction := fn / (fn - 1)

	slog.Debug(fmt.Sprintf("gini: %.6f (raw=%.6f, n=%d)", gc*correction, gc, n))
	return gc * correction, nil
}
