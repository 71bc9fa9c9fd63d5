// Package transform converts constrained model parameters into the
// unconstrained real values that gradient-based and ensemble samplers
// explore.
//
// 🚀 What is transform?
//
//	A Writer appends, for each constrained input, its unconstrained image
//	to a flat buffer of reals (plus a parallel buffer of integers for
//	discrete data):
//	  • scalar            — identity
//	  • positive          — ln(y)
//	  • lower-bounded     — ln(y−lb)
//	  • upper-bounded     — ln(ub−y)
//	  • doubly-bounded    — logit((y−lb)/(ub−lb))
//	  • correlation       — atanh(y)
//	  • probability       — logit(y)
//	  • positive ordered  — ln(y₀), then ln(yᵢ−yᵢ₋₁)
//	  • simplex           — ln(yᵢ)−ln(y_{K−1}) for i < K−1
//	  • correlation matrix — canonical partial correlations
//	  • covariance matrix  — partial correlations, then scales
//
// Each transform is the algebraic inverse of a constraining transform
// applied by a paired downstream reader. The representation is positional,
// not tagged: the reader consumes values in exactly the order they were
// written, so the append order of every transform here is normative.
//
// Numerical slack:
//
//	Inputs that should already satisfy their own constraint (a simplex
//	summing to one, a correlation matrix with unit variances) are checked
//	against ConstraintTolerance (1e-8) to absorb floating-point drift.
//
// Errors (sentinel):
//
//	– ErrConstraint          a value violates its domain precondition;
//	                         errors.As recovers the ConstraintError with
//	                         the transform name, value and violated bound
//	– ErrNotPositiveDefinite the covariance factoring failed
//	– ErrEmptyMatrix         a matrix transform received a 0×0 input
//
// A failed transform appends nothing: multi-value transforms validate (or
// stage) all output before the first append, so the buffer never holds a
// partial encoding.
//
// Complexity:
//
//	– scalars: O(1); vectors: O(K)
//	– matrices: O(K³) for the Cholesky factorization, O(K²) reduction
package transform
