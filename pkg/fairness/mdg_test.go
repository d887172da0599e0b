package fairness

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanDiscardGap(t *testing.T) {
	groups := []Distribution{
		Ints(76, 76, 77, 77, 78, 79, 80, 82, 82, 84),
		Ints(84, 84, 84, 84, 85, 85, 87, 87, 88, 88),
		Ints(82, 82, 82, 84, 84, 86, 87, 87, 88, 88),
	}

	mdg, err := MeanDiscardGap(groups)
	require.NoError(t, err)
	assert.InDelta(t, 0.55, mdg, delta)
	assert.InDelta(t, 0.45, SQFR(mdg), delta)
}

func TestMeanDiscardGap_IdenticalGroups(t *testing.T) {
	g := Ints(10, 20, 20, 35, 90)
	mdg, err := MeanDiscardGap([]Distribution{g, g, Ints(90, 35, 20, 20, 10)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, mdg)
}

func TestMeanDiscardGap_Disjoint(t *testing.T) {
	mdg, err := MeanDiscardGap([]Distribution{Ints(0, 0), Ints(1, 1)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, mdg)
}

func TestMeanDiscardGap_Bounded(t *testing.T) {
	mdg, err := MeanDiscardGap([]Distribution{
		Ints(3, 50, 61, 99),
		Ints(12, 12, 40),
		Ints(70, 71, 80, 81, 82),
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, mdg, 0.0)
	assert.LessOrEqual(t, mdg, 1.0)
}

func TestMeanDiscardGap_Errors(t *testing.T) {
	tests := []struct {
		name   string
		groups []Distribution
		want   error
	}{
		{"float scores", []Distribution{Ints(1, 2, 3), Floats(1.5, 2, 3)}, ErrType},
		{"untyped group", []Distribution{Ints(1, 2), {}}, ErrType},
		{"no groups", nil, ErrInvalidInput},
		{"single score value", []Distribution{Ints(5, 5), Ints(5)}, ErrDivision},
		{"empty group", []Distribution{Ints(1, 2), Ints()}, ErrDivision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MeanDiscardGap(tt.groups)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
