package transform

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FactorCov — covariance factoring into partial correlations and scales
//
// Description:
//
//	FactorCov decomposes a K×K symmetric positive-definite matrix into
//	K scales (sds — the square roots of the diagonal) and K·(K−1)/2
//	canonical partial correlations (cpcs), returned atanh-transformed so
//	they are unconstrained. Together they parameterize the matrix with
//	exactly as many free values as it has degrees of freedom.
//
// Algorithm Outline:
//  1. sds[i] = sqrt(Σ[i][i]); fail if any diagonal entry is non-positive.
//  2. Rescale Σ to its correlation matrix R = D⁻¹ Σ D⁻¹, forcing the
//     diagonal to exactly one to absorb floating-point error.
//  3. Cholesky-factor R = UᵀU; fail if the factorization does not exist.
//  4. Peel U into partial correlations: row 0 of U holds the plain
//     correlations z₀ⱼ; for each later row i the entry U[i][j] divided by
//     the accumulated sqrt(∏_{k<i}(1−z²ₖⱼ)) is the partial correlation of
//     variables i and j given 0..i−1.
//  5. atanh every cpc.
//
// Enumeration order of cpcs is row-major over pairs:
// (0,1)..(0,K−1), (1,2)..(1,K−1), ..., (K−2,K−1). This order is
// normative; the paired constraining reader rebuilds the matrix from it
// positionally.
//
// Errors:
//   - ErrEmptyMatrix          — K = 0.
//   - ErrNotPositiveDefinite  — non-positive diagonal entry, or the
//     Cholesky factorization failed.
//
// Complexity: O(K³) time, O(K²) memory.
func FactorCov(sigma mat.Symmetric) (cpcs, sds []float64, err error) {
	k := sigma.SymmetricDim()
	if k == 0 {
		return nil, nil, ErrEmptyMatrix
	}

	sds = make([]float64, k)
	for i := 0; i < k; i++ {
		d := sigma.At(i, i)
		if !(d > 0) {
			return nil, nil, ErrNotPositiveDefinite
		}
		sds[i] = math.Sqrt(d)
	}

	// Rescale to the correlation matrix; pin the diagonal to one so the
	// factorization below never trips on representation error.
	r := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		r.SetSym(i, i, 1)
		for j := i + 1; j < k; j++ {
			r.SetSym(i, j, sigma.At(i, j)/(sds[i]*sds[j]))
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(r) {
		return nil, nil, ErrNotPositiveDefinite
	}
	var u mat.TriDense
	chol.UTo(&u)

	cpcs = make([]float64, k*(k-1)/2)
	if k == 1 {
		return cpcs, sds, nil
	}

	// acc[j] tracks ∏_{k<i}(1 − z²ₖⱼ) as rows are consumed.
	acc := make([]float64, k)
	for j := 1; j < k; j++ {
		z := u.At(0, j)
		cpcs[j-1] = z
		acc[j] = 1 - z*z
	}
	pos := k - 1
	for i := 1; i < k-1; i++ {
		for j := i + 1; j < k; j++ {
			z := u.At(i, j) / math.Sqrt(acc[j])
			cpcs[pos] = z
			pos++
			acc[j] *= 1 - z*z
		}
	}
	for i, z := range cpcs {
		cpcs[i] = math.Atanh(z)
	}

	return cpcs, sds, nil
}
