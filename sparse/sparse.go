// Package sparse implements variational sparse Gaussian process
// regression with a squared exponential kernel. The collapsed
// evidence lower bound of Titsias is maximized jointly over the
// kernel hyperparameters, the noise, and the inducing locations,
// bounding the per-evaluation cost by O(N M^2) for M inducing
// points instead of O(N^3) over all N training points.
package sparse

import (
	"fmt"
	"math"

	"github.com/probtools/gpcourse/kernel"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distmv"
)

const jitter = 1e-6

// SGPR is a sparse Gaussian process regression model. The
// parameters are mutated in place by Fit; there is no
// snapshotting.
type SGPR struct {
	X [][]float64 // training inputs
	Y []float64   // training outputs
	Z [][]float64 // inducing locations

	// log output scale, log length scale, log noise std
	theta [3]float64
}

// New validates the data and returns a model with unit output
// and length scales and noise standard deviation 0.1.
func New(X [][]float64, Y []float64, Z [][]float64) (*SGPR, error) {
	if len(X) != len(Y) {
		return nil, fmt.Errorf("sparse: %d inputs for %d outputs",
			len(X), len(Y))
	}
	if len(Z) == 0 || len(Z) > len(X) {
		return nil, fmt.Errorf(
			"sparse: %d inducing points for %d training points",
			len(Z), len(X))
	}
	s := &SGPR{X: X, Y: Y, Z: Z}
	s.SetHyper(1, 1, 0.1)
	return s, nil
}

// SetHyper sets the kernel output variance, length scale, and
// noise standard deviation. All three must be positive.
func (s *SGPR) SetHyper(outVar, scale, noiseStd float64) {
	s.theta[0] = 0.5 * math.Log(outVar)
	s.theta[1] = math.Log(scale)
	s.theta[2] = math.Log(noiseStd)
}

// Hyper returns the kernel output variance, length scale, and
// noise standard deviation.
func (s *SGPR) Hyper() (outVar, scale, noiseStd float64) {
	return math.Exp(2 * s.theta[0]),
		math.Exp(s.theta[1]),
		math.Exp(s.theta[2])
}

func (s *SGPR) cov() kernel.Cov {
	outVar, scale, _ := s.Hyper()
	return kernel.RBFCov{Var: outVar, Scale: scale}
}

// pack lays the parameters out for the optimizer: the three
// hyperparameters followed by the flattened inducing locations.
func (s *SGPR) pack() []float64 {
	ndim := len(s.X[0])
	x := make([]float64, 3+len(s.Z)*ndim)
	copy(x, s.theta[:])
	k := 3
	for _, z := range s.Z {
		copy(x[k:], z)
		k += ndim
	}
	return x
}

func (s *SGPR) unpack(x []float64) {
	copy(s.theta[:], x)
	ndim := len(s.X[0])
	k := 3
	for i := range s.Z {
		copy(s.Z[i], x[k:k+ndim])
		k += ndim
	}
}

// grams builds the inducing Gram matrix (with jitter), the
// cross-covariances to the training inputs, and the matrix
// Sigma = Kmm + Kmn Knm / noiseVar shared by the bound and the
// predictions.
func (s *SGPR) grams() (kmm *mat.SymDense, kmn *mat.Dense, sigma *mat.SymDense) {
	cov := s.cov()
	_, _, noiseStd := s.Hyper()
	nv := noiseStd * noiseStd

	kmm = kernel.GramSym(cov, s.Z)
	for i := 0; i != len(s.Z); i++ {
		kmm.SetSym(i, i, kmm.At(i, i)+jitter)
	}
	kmn = kernel.Gram(cov, s.Z, s.X)

	sigma = &mat.SymDense{}
	sigma.SymOuterK(1/nv, kmn)
	sigma.AddSym(sigma, kmm)
	return kmm, kmn, sigma
}

// Bound computes the collapsed evidence lower bound at the
// current parameters: the log-density of the outputs under the
// Nystrom approximation plus noise, minus the trace term
// penalizing the discarded variance.
func (s *SGPR) Bound() (float64, error) {
	n, m := len(s.X), len(s.Z)
	outVar, _, noiseStd := s.Hyper()
	nv := noiseStd * noiseStd

	kmm, kmn, sigma := s.grams()

	var cholM, cholS mat.Cholesky
	if !cholM.Factorize(kmm) {
		return 0, fmt.Errorf(
			"sparse: inducing covariance is not positive definite")
	}
	if !cholS.Factorize(sigma) {
		return 0, fmt.Errorf(
			"sparse: bound covariance is not positive definite")
	}

	// Quadratic term, through the matrix inversion lemma.
	y := mat.NewVecDense(n, s.Y)
	var kmny, v mat.VecDense
	kmny.MulVec(kmn, y)
	if err := v.SolveVec(sigma, &kmny); err != nil {
		return 0, err
	}
	quad := (mat.Dot(y, y) - mat.Dot(&kmny, &v)/nv) / nv

	// Log-determinant, through the determinant lemma.
	logdet := float64(n)*math.Log(nv) + cholS.LogDet() - cholM.LogDet()

	// Trace term: tr(Knn - Qnn) / (2 noiseVar), with
	// tr(Qnn) = sum_ij (Kmm^-1 Kmn)_ij (Kmn)_ij.
	var minv mat.Dense
	if err := minv.Solve(kmm, kmn); err != nil {
		return 0, err
	}
	trq := 0.
	for j := 0; j != n; j++ {
		for i := 0; i != m; i++ {
			trq += minv.At(i, j) * kmn.At(i, j)
		}
	}
	trace := (float64(n)*outVar - trq) / (2 * nv)

	return -0.5*(float64(n)*math.Log(2*math.Pi)+logdet+quad) - trace, nil
}

// Fit maximizes the bound over the hyperparameters and the
// inducing locations jointly. No gradient is supplied; the
// optimizer falls back to its default derivative-free method,
// with library-default convergence criteria.
func (s *SGPR) Fit() error {
	p := optimize.Problem{
		Func: func(x []float64) float64 {
			s.unpack(x)
			lb, err := s.Bound()
			if err != nil {
				return math.Inf(1)
			}
			return -lb
		},
	}

	result, err := optimize.Minimize(p, s.pack(), nil, nil)
	if result != nil {
		s.unpack(result.X)
	}
	return err
}

// PredictFull returns the joint approximate posterior over the
// latent function at Xs, suitable for drawing sample paths.
func (s *SGPR) PredictFull(Xs [][]float64, src rand.Source) (*distmv.Normal, error) {
	cov := s.cov()
	_, _, noiseStd := s.Hyper()
	nv := noiseStd * noiseStd
	m := len(s.Z)

	kmm, kmn, sigma := s.grams()
	ksm := kernel.Gram(cov, Xs, s.Z)
	kss := kernel.GramSym(cov, Xs)

	// Posterior mean: Ksm Sigma^-1 Kmn y / noiseVar.
	y := mat.NewVecDense(len(s.X), s.Y)
	var kmny, w, mean mat.VecDense
	kmny.MulVec(kmn, y)
	if err := w.SolveVec(sigma, &kmny); err != nil {
		return nil, err
	}
	mean.MulVec(ksm, &w)
	mean.ScaleVec(1/nv, &mean)

	// Posterior covariance:
	// Kss - Ksm Kmm^-1 Kms + Ksm Sigma^-1 Kms.
	var a, b mat.Dense
	if err := a.Solve(kmm, ksm.T()); err != nil {
		return nil, err
	}
	if err := b.Solve(sigma, ksm.T()); err != nil {
		return nil, err
	}
	post := mat.NewSymDense(len(Xs), nil)
	for i := 0; i != len(Xs); i++ {
		for j := i; j != len(Xs); j++ {
			v := kss.At(i, j)
			for k := 0; k != m; k++ {
				v += ksm.At(i, k) * (b.At(k, j) - a.At(k, j))
			}
			if i == j {
				v += jitter
			}
			post.SetSym(i, j, v)
		}
	}

	normal, ok := distmv.NewNormal(mean.RawVector().Data, post, src)
	if !ok {
		return nil, fmt.Errorf(
			"sparse: posterior covariance over %d points is not positive definite",
			len(Xs))
	}
	return normal, nil
}

// Predict returns the approximate posterior mean and standard
// deviation of the latent function at Xs.
func (s *SGPR) Predict(Xs [][]float64) (mu, sd []float64, err error) {
	post, err := s.PredictFull(Xs, nil)
	if err != nil {
		return nil, nil, err
	}
	mu = post.Mean(nil)
	var cov mat.SymDense
	post.CovarianceMatrix(&cov)
	sd = make([]float64, len(Xs))
	for i := range sd {
		sd[i] = math.Sqrt(cov.At(i, i))
	}
	return mu, sd, nil
}
