package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ogp/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRBF_Validation verifies constructor guards on length scales.
func TestNewRBF_Validation(t *testing.T) {
	_, err := kernel.NewRBF(nil)
	assert.ErrorIs(t, err, kernel.ErrNoParameters, "empty lengths must error")

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = kernel.NewRBF([]float64{1, bad})
		assert.ErrorIs(t, err, kernel.ErrLengthScale, "length %v must be rejected", bad)
	}

	k, err := kernel.NewRBF([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, k.NumParameters())

	var d kernel.Dimensioned = k
	assert.Equal(t, 2, d.Dimension(), "one length scale per input dimension")
}

// TestRBF_Evaluate checks the closed form, symmetry and the (0,1] range.
func TestRBF_Evaluate(t *testing.T) {
	k, err := kernel.NewRBF([]float64{1, 2})
	require.NoError(t, err)

	x := []float64{0.5, -1}
	y := []float64{-0.5, 1}
	want := math.Exp(-0.5 * (1.0 + 1.0)) // (1/1)² + (2/2)²
	assert.InDelta(t, want, k.Evaluate(x, y), 1e-15)
	assert.Equal(t, k.Evaluate(x, y), k.Evaluate(y, x), "kernel must be symmetric")
	assert.Equal(t, 1.0, k.Evaluate(x, x), "self-similarity is exactly 1")

	far := []float64{100, 100}
	v := k.Evaluate(x, far)
	assert.True(t, v >= 0 && v < 1, "distant points stay in [0,1): got %v", v)
}

// TestRBF_PartialMatchesFiniteDifference compares the analytic length-scale
// derivative with a central difference.
func TestRBF_PartialMatchesFiniteDifference(t *testing.T) {
	lengths := []float64{0.7, 1.3, 2.1}
	k, err := kernel.NewRBF(lengths)
	require.NoError(t, err)
	x := []float64{0.2, -0.4, 1.1}
	y := []float64{-0.3, 0.5, 0.0}

	const h = 1e-6
	for i := range lengths {
		got, err := k.Partial(x, y, i)
		require.NoError(t, err)

		plus := append([]float64(nil), lengths...)
		minus := append([]float64(nil), lengths...)
		plus[i] += h
		minus[i] -= h
		kp, _ := kernel.NewRBF(plus)
		km, _ := kernel.NewRBF(minus)
		fd := (kp.Evaluate(x, y) - km.Evaluate(x, y)) / (2 * h)

		assert.InDelta(t, fd, got, 1e-8, "partial %d", i)
	}
}

// TestRBF_PartialIndex ensures out-of-range indices are rejected.
func TestRBF_PartialIndex(t *testing.T) {
	k, err := kernel.NewRBF([]float64{1})
	require.NoError(t, err)

	_, err = k.Partial([]float64{0}, []float64{1}, 1)
	assert.ErrorIs(t, err, kernel.ErrParameterIndex)
	_, err = k.Partial([]float64{0}, []float64{1}, -1)
	assert.ErrorIs(t, err, kernel.ErrParameterIndex)
}

// TestRBF_GradientEqualsPartials checks Gradient element-wise against Partial
// and that a correctly sized dst is reused.
func TestRBF_GradientEqualsPartials(t *testing.T) {
	k, err := kernel.NewRBF([]float64{0.5, 1.5})
	require.NoError(t, err)
	x := []float64{1, 2}
	y := []float64{0, 0.5}

	dst := make([]float64, 2)
	g := k.Gradient(x, y, dst)
	assert.Same(t, &dst[0], &g[0], "dst of matching length must be reused")

	for i := range g {
		p, err := k.Partial(x, y, i)
		require.NoError(t, err)
		assert.InDelta(t, p, g[i], 1e-15, "gradient[%d]", i)
	}

	g2 := k.Gradient(x, y, nil)
	assert.Equal(t, g, g2, "nil dst allocates the same values")
}

// TestRBF_SetParameters covers count/positivity validation and atomicity.
func TestRBF_SetParameters(t *testing.T) {
	k, err := kernel.NewRBF([]float64{1, 1})
	require.NoError(t, err)

	assert.ErrorIs(t, k.SetParameters([]float64{1}), kernel.ErrParameterCount)
	assert.ErrorIs(t, k.SetParameters([]float64{1, -2}), kernel.ErrLengthScale)
	assert.Equal(t, []float64{1, 1}, k.Parameters(), "failed set leaves kernel unchanged")

	require.NoError(t, k.SetParameters([]float64{2, 3}))
	assert.Equal(t, []float64{2, 3}, k.Parameters())

	p := k.Parameters()
	p[0] = 99
	assert.Equal(t, 2.0, k.Parameters()[0], "Parameters returns a copy")
}

// TestRBF_CloneIsIndependent verifies that clones do not share state.
func TestRBF_CloneIsIndependent(t *testing.T) {
	k, err := kernel.NewRBF([]float64{1})
	require.NoError(t, err)

	c := k.Clone()
	require.NoError(t, c.SetParameters([]float64{5}))
	assert.Equal(t, []float64{1}, k.Parameters())
	assert.Equal(t, []float64{5}, c.Parameters())
}
