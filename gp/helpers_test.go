package gp_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/ogp/gp"
	"github.com/katalvlaran/ogp/kernel"
	"github.com/katalvlaran/ogp/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const invariantTol = 1e-9

// rbf returns an RBF kernel or fails the test.
func rbf(t testing.TB, lengths ...float64) *kernel.RBF {
	t.Helper()
	k, err := kernel.NewRBF(lengths)
	require.NoError(t, err)
	return k
}

// threePoint builds the canonical 1-D model: points {-1,0,1}, targets {0,1,0}.
func threePoint(t testing.TB, noise float64, capacity int, opts ...gp.Option) *gp.Process {
	t.Helper()
	p, err := gp.NewWithTargets(rbf(t, 1), noise,
		[][]float64{{-1}, {0}, {1}}, []float64{0, 1, 0}, capacity, opts...)
	require.NoError(t, err)
	return p
}

// smoothSample draws n points in [-2,2]^2 with targets from a smooth surface.
func smoothSample(n int, seed uint64) ([][]float64, []float64) {
	r := rand.New(rand.NewPCG(seed, 3))
	pts := make([][]float64, n)
	ys := make([]float64, n)
	for i := range pts {
		pts[i] = []float64{4*r.Float64() - 2, 4*r.Float64() - 2}
		ys[i] = math.Sin(pts[i][0]) * math.Cos(0.5*pts[i][1])
	}
	return pts, ys
}

// assertInvariants checks the structural invariants of a Process:
// symmetry, diagonal 1+noise, kernel off-diagonals, L·Lᵀ = K and, unless
// stale, K·regressed = targets.
func assertInvariants(t *testing.T, p *gp.Process) {
	t.Helper()
	n := p.Len()
	require.LessOrEqual(t, n, p.Capacity())
	if n == 0 {
		assert.Nil(t, p.Covariance())
		assert.Nil(t, p.Factor())
		return
	}

	cov := p.Covariance()
	pts := p.Points()
	k := p.Kernel()
	for i := 0; i < n; i++ {
		assert.Equal(t, 1+p.Noise(), cov.At(i, i), "diagonal %d", i)
		for j := 0; j < i; j++ {
			assert.Equal(t, cov.At(i, j), cov.At(j, i), "symmetry (%d,%d)", i, j)
			assert.InDelta(t, k.Evaluate(pts[i], pts[j]), cov.At(i, j), 1e-15, "kernel value (%d,%d)", i, j)
		}
	}

	l := p.Factor()
	require.NotNil(t, l)
	var rec mat.Dense
	rec.Mul(l, l.T())
	assert.True(t, mat.EqualApprox(&rec, cov, invariantTol), "L·Lᵀ must reconstruct the covariance block")

	if p.Stale() {
		return
	}
	var kr mat.VecDense
	kr.MulVec(cov, mat.NewVecDense(n, p.Regressed()))
	targets := p.Targets()
	for i := 0; i < n; i++ {
		assert.InDelta(t, targets[i], kr.AtVec(i), invariantTol, "K·regressed[%d]", i)
	}
}

// stubOptimizer returns a fixed result and counts calls.
type stubOptimizer struct {
	result optim.Result
	calls  int
	start  []float64
}

func (s *stubOptimizer) Minimize(cost optim.Cost, initial []float64) optim.Result {
	s.calls++
	s.start = append([]float64(nil), initial...)
	return s.result
}

// laplace is a minimal non-RBF kernel, k(x,y) = exp(-Σ|x_d−y_d|/ℓ), used to
// show the engine only relies on the kernel contract.
type laplace struct{ l float64 }

func (k *laplace) dist(x, y []float64) float64 {
	var s float64
	for d := range x {
		s += math.Abs(x[d] - y[d])
	}
	return s
}

func (k *laplace) Evaluate(x, y []float64) float64 { return math.Exp(-k.dist(x, y) / k.l) }

func (k *laplace) Partial(x, y []float64, i int) (float64, error) {
	if i != 0 {
		return 0, kernel.ErrParameterIndex
	}
	r := k.dist(x, y)
	return k.Evaluate(x, y) * r / (k.l * k.l), nil
}

func (k *laplace) Gradient(x, y, dst []float64) []float64 {
	if len(dst) != 1 {
		dst = make([]float64, 1)
	}
	dst[0], _ = k.Partial(x, y, 0)
	return dst
}

func (k *laplace) NumParameters() int    { return 1 }
func (k *laplace) Parameters() []float64 { return []float64{k.l} }

func (k *laplace) SetParameters(p []float64) error {
	if len(p) != 1 {
		return kernel.ErrParameterCount
	}
	if !(p[0] > 0) {
		return kernel.ErrLengthScale
	}
	k.l = p[0]
	return nil
}

func (k *laplace) Clone() kernel.Kernel { return &laplace{l: k.l} }
