package fairness

import (
	"sort"

	"github.com/pkg/errors"
)

// Kind is the element type tag of a Distribution.
type Kind int

const (
	// KindNone marks the zero Distribution, which holds no typed values.
	KindNone Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "none"
	}
}

// Distribution is an immutable, typed container of quality scores for one
// demographic group.
type Distribution struct {
	kind   Kind
	values []float64
}

// Ints creates an integer-typed distribution.
func Ints(scores ...int) Distribution {
	v := make([]float64, len(scores))
	for i, s := range scores {
		v[i] = float64(s)
	}
	return Distribution{kind: KindInt, values: v}
}

// Floats creates a floating point distribution. Values are copied.
func Floats(scores ...float64) Distribution {
	return Distribution{kind: KindFloat, values: append([]float64{}, scores...)}
}

// Kind returns the element type of the distribution.
func (d Distribution) Kind() Kind {
	return d.kind
}

// Len returns the number of scores.
func (d Distribution) Len() int {
	return len(d.values)
}

// Values returns a copy of the scores.
func (d Distribution) Values() []float64 {
	return append([]float64{}, d.values...)
}

// IntValues returns the scores as ints. Fails with ErrType unless the
// distribution is integer-typed.
func (d Distribution) IntValues() ([]int, error) {
	if err := EnforceIntegerScores(d); err != nil {
		return nil, err
	}
	v := make([]int, len(d.values))
	for i, s := range d.values {
		v[i] = int(s)
	}
	return v, nil
}

// MinMax returns the smallest and largest score.
func (d Distribution) MinMax() (lo, hi float64, err error) {
	if d.kind == KindNone {
		return 0, 0, errors.Wrap(ErrType, "expected a typed distribution, got none")
	}
	if len(d.values) == 0 {
		return 0, 0, errors.Wrap(ErrInvalidInput, "empty distribution has no min or max")
	}
	lo, hi = d.values[0], d.values[0]
	for _, v := range d.values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, nil
}

// Mean returns the arithmetic mean of the scores.
func (d Distribution) Mean() (float64, error) {
	if len(d.values) == 0 {
		return 0, errors.Wrap(ErrDivision, "mean of empty distribution")
	}
	var sum float64
	for _, v := range d.values {
		sum += v
	}
	return sum / float64(len(d.values)), nil
}

// Median returns the middle score, or the mean of the two middle scores.
func (d Distribution) Median() (float64, error) {
	n := len(d.values)
	if n == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "median of empty distribution")
	}
	s := d.Values()
	sort.Float64s(s)
	if n%2 == 1 {
		return s[n/2], nil
	}
	return (s[n/2-1] + s[n/2]) / 2, nil
}

// Concat joins distributions in order. The result is integer-typed only when
// every input is; any floating point input promotes the result to KindFloat.
func Concat(ds ...Distribution) (Distribution, error) {
	if len(ds) == 0 {
		return Distribution{}, errors.Wrap(ErrInvalidInput, "need at least one distribution to concatenate")
	}
	out := Distribution{kind: KindInt}
	for i, d := range ds {
		switch d.kind {
		case KindNone:
			return Distribution{}, errors.Wrapf(ErrType, "distribution %d has no element type", i)
		case KindFloat:
			out.kind = KindFloat
		}
		out.values = append(out.values, d.values...)
	}
	return out, nil
}
