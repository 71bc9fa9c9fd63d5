package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ConstraintTolerance is the numerical slack allowed when checking that a
// value already satisfies its defining constraint (simplex sum, unit
// variance of a correlation matrix).
const ConstraintTolerance = 1e-8

// Writer appends unconstrained values to a flat buffer of reals and a
// parallel buffer of integers. The backing slices are supplied by the
// caller at construction and handed back (possibly regrown) through Real
// and Ints; the Writer holds them only for the duration of one flattening
// pass. Writers are not safe for concurrent use.
//
// Append order is normative: the paired constraining reader consumes the
// buffers positionally, in exactly the order values were written.
type Writer struct {
	real []float64
	ints []int
}

// NewWriter returns a Writer appending onto the given buffers. Either
// slice may be nil to start from an empty buffer.
func NewWriter(real []float64, ints []int) *Writer {
	return &Writer{real: real, ints: ints}
}

// Real returns the real-valued buffer written so far.
func (w *Writer) Real() []float64 { return w.real }

// Ints returns the integer buffer written so far.
func (w *Writer) Ints() []int { return w.ints }

// Scalar appends an unconstrained scalar unchanged.
func (w *Writer) Scalar(y float64) {
	w.real = append(w.real, y)
}

// Int appends a discrete value to the integer buffer unchanged.
func (w *Writer) Int(v int) {
	w.ints = append(w.ints, v)
}

// Positive appends ln(y) for a non-negative scalar.
func (w *Writer) Positive(y float64) error {
	if !(y >= 0) {
		return constraintErr("Positive", y, "y >= 0")
	}
	w.real = append(w.real, math.Log(y))

	return nil
}

// LowerBound appends ln(y−lb) for a scalar bounded below by lb.
func (w *Writer) LowerBound(lb, y float64) error {
	if !(y >= lb) {
		return constraintErr("LowerBound", y, fmt.Sprintf("y >= %v", lb))
	}
	w.real = append(w.real, math.Log(y-lb))

	return nil
}

// UpperBound appends ln(ub−y) for a scalar bounded above by ub.
func (w *Writer) UpperBound(ub, y float64) error {
	if !(y <= ub) {
		return constraintErr("UpperBound", y, fmt.Sprintf("y <= %v", ub))
	}
	w.real = append(w.real, math.Log(ub-y))

	return nil
}

// Bounded appends logit((y−lb)/(ub−lb)) for a scalar within [lb, ub].
func (w *Writer) Bounded(lb, ub, y float64) error {
	if !(y >= lb) {
		return constraintErr("Bounded", y, fmt.Sprintf("y >= %v", lb))
	}
	if !(y <= ub) {
		return constraintErr("Bounded", y, fmt.Sprintf("y <= %v", ub))
	}
	w.real = append(w.real, logit((y-lb)/(ub-lb)))

	return nil
}

// Corr appends atanh(y) for a correlation within [−1, 1].
func (w *Writer) Corr(y float64) error {
	if !(y >= -1) {
		return constraintErr("Corr", y, "y >= -1")
	}
	if !(y <= 1) {
		return constraintErr("Corr", y, "y <= 1")
	}
	w.real = append(w.real, math.Atanh(y))

	return nil
}

// Prob appends logit(y) for a probability within [0, 1].
func (w *Writer) Prob(y float64) error {
	if !(y >= 0) {
		return constraintErr("Prob", y, "y >= 0")
	}
	if !(y <= 1) {
		return constraintErr("Prob", y, "y <= 1")
	}
	w.real = append(w.real, logit(y))

	return nil
}

// PositiveOrdered appends ln(y₀) followed by ln(yᵢ−yᵢ₋₁) for i = 1..K−1.
// The input must be non-negative and non-decreasing; an empty input
// appends nothing. The whole vector is validated before the first append.
func (w *Writer) PositiveOrdered(y []float64) error {
	if len(y) == 0 {
		return nil
	}
	if !(y[0] >= 0) {
		return constraintErr("PositiveOrdered", y[0], "y[0] >= 0")
	}
	for i := 1; i < len(y); i++ {
		if !(y[i] >= y[i-1]) {
			return constraintErr("PositiveOrdered", y[i], fmt.Sprintf("y[%d] >= y[%d]", i, i-1))
		}
	}
	w.real = append(w.real, math.Log(y[0]))
	for i := 1; i < len(y); i++ {
		w.real = append(w.real, math.Log(y[i]-y[i-1]))
	}

	return nil
}

// Simplex appends ln(yᵢ)−ln(y_{K−1}) for i = 0..K−2, exactly K−1 values
// for a size-K simplex. Entries must be non-negative and the sum must be
// within K·ConstraintTolerance of one (each entry may carry up to one
// tolerance of drift, so the slack on the sum accumulates). The whole
// vector is validated before the first append.
func (w *Writer) Simplex(y []float64) error {
	if len(y) == 0 {
		return constraintErr("Simplex", 0, "len(y) > 0")
	}
	for i, v := range y {
		if !(v >= 0) {
			return constraintErr("Simplex", v, fmt.Sprintf("y[%d] >= 0", i))
		}
	}
	tol := ConstraintTolerance * float64(len(y))
	if sum := floats.Sum(y); math.Abs(1-sum) >= tol {
		return constraintErr("Simplex", sum, "sum(y) == 1 within tolerance")
	}
	logYK := math.Log(y[len(y)-1])
	for _, v := range y[:len(y)-1] {
		w.real = append(w.real, math.Log(v)-logYK)
	}

	return nil
}

// CorrMatrix appends the K·(K−1)/2 canonical partial correlations of a
// K×K correlation matrix, in FactorCov enumeration order. The scales
// recovered by the factoring must all be within ConstraintTolerance of
// one (a correlation matrix has unit variances by definition); they are
// checked and discarded, never appended.
func (w *Writer) CorrMatrix(y mat.Symmetric) error {
	cpcs, sds, err := FactorCov(y)
	if err != nil {
		return err
	}
	for i, sd := range sds {
		if math.Abs(sd-1) >= ConstraintTolerance {
			return constraintErr("CorrMatrix", sd, fmt.Sprintf("sd[%d] == 1 within 1e-8", i))
		}
	}
	w.real = append(w.real, cpcs...)

	return nil
}

// CovMatrix appends the K·(K−1)/2 canonical partial correlations of a
// K×K covariance matrix followed by its K scales, in that order.
func (w *Writer) CovMatrix(y mat.Symmetric) error {
	cpcs, sds, err := FactorCov(y)
	if err != nil {
		return err
	}
	w.real = append(w.real, cpcs...)
	w.real = append(w.real, sds...)

	return nil
}

// logit is the log-odds function ln(p/(1−p)).
func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}
