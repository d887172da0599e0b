package fairness

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution(t *testing.T) {
	d := Ints(4, 1, 3, 2)
	assert.Equal(t, KindInt, d.Kind())
	assert.Equal(t, 4, d.Len())

	lo, hi, err := d.MinMax()
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 4.0, hi)

	mean, err := d.Mean()
	require.NoError(t, err)
	assert.Equal(t, 2.5, mean)

	med, err := d.Median()
	require.NoError(t, err)
	assert.Equal(t, 2.5, med)

	ints, err := d.IntValues()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 3, 2}, ints)
}

func TestDistribution_Immutable(t *testing.T) {
	in := []float64{1, 2}
	d := Floats(in...)
	in[0] = 9

	v := d.Values()
	v[1] = 9
	assert.Equal(t, []float64{1, 2}, d.Values())
}

func TestDistribution_Errors(t *testing.T) {
	_, _, err := Distribution{}.MinMax()
	assert.True(t, errors.Is(err, ErrType))

	_, _, err = Ints().MinMax()
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Floats(1.5).IntValues()
	assert.True(t, errors.Is(err, ErrType))

	_, err = Ints().Mean()
	assert.True(t, errors.Is(err, ErrDivision))

	_, err = Ints().Median()
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestConcat(t *testing.T) {
	d, err := Concat(Ints(1, 2), Ints(3))
	require.NoError(t, err)
	assert.Equal(t, KindInt, d.Kind())
	assert.Equal(t, []float64{1, 2, 3}, d.Values())

	d, err = Concat(Ints(1), Floats(2.5))
	require.NoError(t, err)
	assert.Equal(t, KindFloat, d.Kind())

	_, err = Concat()
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Concat(Ints(1), Distribution{})
	assert.True(t, errors.Is(err, ErrType))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "none", KindNone.String())
}
