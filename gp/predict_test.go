package gp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ogp/gp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate_ThreePoint reproduces the canonical 1-D example.
func TestEvaluate_ThreePoint(t *testing.T) {
	p := threePoint(t, 0.01, 10)

	cases := []struct {
		name     string
		x        float64
		mean     float64
		variance float64
	}{
		{"on training point", 0, 0.97279680894045, 0.00972796808940457},
		{"between points", 0.5, 0.661667575007564, 0.025020486661309738},
		{"far from data", 3, -0.16522571310141523, 0.9715108906595914},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mean, variance, err := p.Evaluate([]float64{tc.x})
			require.NoError(t, err)
			assert.InDelta(t, tc.mean, mean, 1e-9)
			assert.InDelta(t, tc.variance, variance, 1e-9)
		})
	}

	mean, variance, err := p.Evaluate([]float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 1, mean, 0.05, "mean at a training point is close to its target")
	assert.Less(t, variance, 1.0, "posterior variance shrinks near data")
}

// TestEvaluate_FarQueryApproachesPrior checks the variance tends to the prior.
func TestEvaluate_FarQueryApproachesPrior(t *testing.T) {
	p := threePoint(t, 0.01, 10)

	mean, variance, err := p.Evaluate([]float64{50})
	require.NoError(t, err)
	assert.InDelta(t, 0, mean, 1e-12)
	assert.InDelta(t, 1, variance, 1e-12)
}

// TestEvaluate_VarianceBounds checks 0 ≤ variance ≤ 1 on a dense grid.
func TestEvaluate_VarianceBounds(t *testing.T) {
	pts, ys := smoothSample(25, 9)
	p, err := gp.NewWithTargets(rbf(t, 0.8, 0.8), 0.01, pts, ys, 30)
	require.NoError(t, err)

	for x := -3.0; x <= 3; x += 0.25 {
		for y := -3.0; y <= 3; y += 0.25 {
			_, variance, err := p.Evaluate([]float64{x, y})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, variance, -1e-12, "(%v,%v)", x, y)
			assert.LessOrEqual(t, variance, 1+1e-12, "(%v,%v)", x, y)
		}
	}
}

// TestEvaluate_Errors covers query validation.
func TestEvaluate_Errors(t *testing.T) {
	p := threePoint(t, 0.01, 10)

	_, _, err := p.Evaluate([]float64{0, 1})
	assert.ErrorIs(t, err, gp.ErrDimensionMismatch)
	_, _, err = p.Evaluate(nil)
	assert.ErrorIs(t, err, gp.ErrDimensionMismatch)
	_, _, err = p.Evaluate([]float64{math.NaN()})
	assert.ErrorIs(t, err, gp.ErrNonFinite)
}

// TestEvaluate_NoiselessLimit interpolates the targets as noise vanishes.
func TestEvaluate_NoiselessLimit(t *testing.T) {
	p := threePoint(t, 1e-8, 10)

	mean, variance, err := p.Evaluate([]float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.9999999715865294, mean, 1e-9)
	assert.InDelta(t, 0, variance, 1e-6)

	for i, want := range p.Targets() {
		m, _, err := p.EvaluateTrainingPoint(i)
		require.NoError(t, err)
		assert.InDelta(t, want, m, 1e-6, "training point %d", i)
	}
}

// TestEvaluateTrainingPoint_MatchesEvaluate compares both prediction paths.
func TestEvaluateTrainingPoint_MatchesEvaluate(t *testing.T) {
	pts, ys := smoothSample(12, 4)
	p, err := gp.NewWithTargets(rbf(t, 1, 0.6), 0.05, pts, ys, 20)
	require.NoError(t, err)

	for i, x := range p.Points() {
		m1, v1, err := p.EvaluateTrainingPoint(i)
		require.NoError(t, err)
		m2, v2, err := p.Evaluate(x)
		require.NoError(t, err)
		assert.InDelta(t, m2, m1, 1e-12, "mean %d", i)
		assert.InDelta(t, v2, v1, 1e-12, "variance %d", i)
	}
}

// TestEvaluateTrainingPoint_Index covers out-of-range indices.
func TestEvaluateTrainingPoint_Index(t *testing.T) {
	p := threePoint(t, 0.01, 10)

	for _, i := range []int{-1, 3, 100} {
		_, _, err := p.EvaluateTrainingPoint(i)
		assert.ErrorIs(t, err, gp.ErrIndexOutOfRange, "index %d", i)
	}

	empty, err := gp.New(rbf(t, 1), 0.01, 1, 5)
	require.NoError(t, err)
	_, _, err = empty.EvaluateTrainingPoint(0)
	assert.ErrorIs(t, err, gp.ErrIndexOutOfRange)
}
