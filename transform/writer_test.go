package transform_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbayes/transform"
)

// TestWriter_ScalarAndInt verifies identity appends land in the right
// buffer and preserve order.
func TestWriter_ScalarAndInt(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	w.Scalar(-3.25)
	w.Int(7)
	w.Scalar(0.5)
	w.Int(-1)

	assert.Equal(t, []float64{-3.25, 0.5}, w.Real(), "scalars append unchanged, in order")
	assert.Equal(t, []int{7, -1}, w.Ints(), "integers append unchanged, in order")
}

// TestWriter_CallerSeededBuffers verifies the writer appends after
// whatever the caller already wrote.
func TestWriter_CallerSeededBuffers(t *testing.T) {
	w := transform.NewWriter([]float64{9}, []int{4})

	w.Scalar(1)
	w.Int(2)

	assert.Equal(t, []float64{9, 1}, w.Real(), "real buffer grows in place")
	assert.Equal(t, []int{4, 2}, w.Ints(), "int buffer grows in place")
}

// TestWriter_Positive verifies ln(y), including ln(e)=1 and the
// boundary case y=0.
func TestWriter_Positive(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	require.NoError(t, w.Positive(math.E))
	require.NoError(t, w.Positive(0))

	require.Len(t, w.Real(), 2)
	assert.InDelta(t, 1.0, w.Real()[0], 1e-12, "ln(e) must be 1")
	assert.True(t, math.IsInf(w.Real()[1], -1), "ln(0) is -Inf, still a valid encoding")
}

// TestWriter_Positive_Violation verifies a negative input fails with the
// constraint error and appends nothing.
func TestWriter_Positive_Violation(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	err := w.Positive(-1e-9)
	assert.ErrorIs(t, err, transform.ErrConstraint, "negative value must violate Positive")

	var cerr *transform.ConstraintError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Positive", cerr.Transform)
	assert.Equal(t, -1e-9, cerr.Value)
	assert.Empty(t, w.Real(), "no output on failure")
}

// TestWriter_LowerBound verifies ln(y-lb) and its boundary violation.
func TestWriter_LowerBound(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	require.NoError(t, w.LowerBound(2, 2+math.E))
	assert.InDelta(t, 1.0, w.Real()[0], 1e-12, "ln(y-lb) with y-lb=e must be 1")

	err := w.LowerBound(2, 2-1e-9)
	assert.ErrorIs(t, err, transform.ErrConstraint, "y below lb must violate LowerBound")
	assert.Len(t, w.Real(), 1, "failed transform appends nothing")
}

// TestWriter_UpperBound verifies ln(ub-y) and its boundary violation.
func TestWriter_UpperBound(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	require.NoError(t, w.UpperBound(5, 5-math.E))
	assert.InDelta(t, 1.0, w.Real()[0], 1e-12, "ln(ub-y) with ub-y=e must be 1")

	err := w.UpperBound(5, 5+1e-9)
	assert.ErrorIs(t, err, transform.ErrConstraint, "y above ub must violate UpperBound")
	assert.Len(t, w.Real(), 1)
}

// TestWriter_Bounded verifies the midpoint maps to zero and both bound
// violations error.
func TestWriter_Bounded(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	require.NoError(t, w.Bounded(0, 1, 0.5))
	assert.InDelta(t, 0.0, w.Real()[0], 1e-12, "logit(0.5) must be 0")

	assert.ErrorIs(t, w.Bounded(0, 1, -1e-9), transform.ErrConstraint, "below lb must fail")
	assert.ErrorIs(t, w.Bounded(0, 1, 1+1e-9), transform.ErrConstraint, "above ub must fail")
	assert.Len(t, w.Real(), 1)
}

// TestWriter_Corr verifies atanh(0.5) and the [-1,1] bound violations.
func TestWriter_Corr(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	require.NoError(t, w.Corr(0.5))
	assert.InDelta(t, 0.5493, w.Real()[0], 1e-4, "atanh(0.5) ≈ 0.5493")

	require.NoError(t, w.Corr(1))
	assert.True(t, math.IsInf(w.Real()[1], 1), "atanh(1) is +Inf, boundary is inclusive")

	assert.ErrorIs(t, w.Corr(-1-1e-9), transform.ErrConstraint, "below -1 must fail")
	assert.ErrorIs(t, w.Corr(1+1e-9), transform.ErrConstraint, "above 1 must fail")
	assert.Len(t, w.Real(), 2)
}

// TestWriter_Prob verifies logit on the unit interval and its bound
// violations.
func TestWriter_Prob(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	require.NoError(t, w.Prob(0.5))
	assert.InDelta(t, 0.0, w.Real()[0], 1e-12, "logit(0.5) must be 0")

	assert.ErrorIs(t, w.Prob(-1e-9), transform.ErrConstraint, "below 0 must fail")
	assert.ErrorIs(t, w.Prob(1+1e-9), transform.ErrConstraint, "above 1 must fail")
	assert.Len(t, w.Real(), 1)
}

// TestWriter_PositiveOrdered verifies the log-gap encoding, the empty
// input no-op, and output count K.
func TestWriter_PositiveOrdered(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	require.NoError(t, w.PositiveOrdered([]float64{1, 2, 4}))
	require.Len(t, w.Real(), 3, "size-K input yields K outputs")
	assert.InDelta(t, 0.0, w.Real()[0], 1e-12, "ln(1)")
	assert.InDelta(t, 0.0, w.Real()[1], 1e-12, "ln(2-1)")
	assert.InDelta(t, math.Log(2), w.Real()[2], 1e-12, "ln(4-2)")

	require.NoError(t, w.PositiveOrdered(nil))
	assert.Len(t, w.Real(), 3, "empty input appends nothing")
}

// TestWriter_PositiveOrdered_Violations verifies negative head and
// ordering violations fail without partial output.
func TestWriter_PositiveOrdered_Violations(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	err := w.PositiveOrdered([]float64{-1e-9, 1})
	assert.ErrorIs(t, err, transform.ErrConstraint, "negative first entry must fail")

	err = w.PositiveOrdered([]float64{1, 2, 2 - 1e-9})
	assert.ErrorIs(t, err, transform.ErrConstraint, "decreasing entry must fail")

	var cerr *transform.ConstraintError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "PositiveOrdered", cerr.Transform)
	assert.Empty(t, w.Real(), "no partial output on failure")
}

// TestWriter_Simplex verifies the K-1 log-ratio outputs for the
// canonical [0.2 0.3 0.5] example.
func TestWriter_Simplex(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	require.NoError(t, w.Simplex([]float64{0.2, 0.3, 0.5}))
	require.Len(t, w.Real(), 2, "size-K simplex yields K-1 outputs")
	assert.InDelta(t, -0.9163, w.Real()[0], 1e-4, "ln(0.2/0.5)")
	assert.InDelta(t, -0.5108, w.Real()[1], 1e-4, "ln(0.3/0.5)")
}

// TestWriter_Simplex_SumTolerance verifies the boundary-adjacent sums:
// drift of 2e-8 on a 3-simplex passes, 1e-6 fails.
func TestWriter_Simplex_SumTolerance(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	assert.NoError(t, w.Simplex([]float64{0.2, 0.3, 0.5 + 2e-8}),
		"sum 1+2e-8 is within accumulated tolerance")
	assert.Len(t, w.Real(), 2)

	err := w.Simplex([]float64{0.2, 0.3, 0.5 + 1e-6})
	assert.ErrorIs(t, err, transform.ErrConstraint, "sum 1+1e-6 must fail")
	assert.Len(t, w.Real(), 2, "no partial output on failure")
}

// TestWriter_Simplex_Violations verifies negative entries and empty
// input fail.
func TestWriter_Simplex_Violations(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	assert.ErrorIs(t, w.Simplex([]float64{1.5, -0.5}), transform.ErrConstraint,
		"negative entry must fail even when the sum is 1")
	assert.ErrorIs(t, w.Simplex(nil), transform.ErrConstraint, "empty simplex must fail")
	assert.Empty(t, w.Real())
}

// TestWriter_OutputOrdering verifies a mixed flattening pass writes the
// buffer in exactly call order — the positional contract the downstream
// reader depends on.
func TestWriter_OutputOrdering(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	w.Scalar(10)
	require.NoError(t, w.Positive(1))                       // ln(1) = 0
	require.NoError(t, w.PositiveOrdered([]float64{1, 3})) // 0, ln(2)
	require.NoError(t, w.Bounded(0, 2, 1))                  // logit(0.5) = 0
	w.Scalar(-10)

	got := w.Real()
	require.Len(t, got, 6)
	assert.Equal(t, 10.0, got[0])
	assert.Equal(t, 0.0, got[1])
	assert.Equal(t, 0.0, got[2])
	assert.InDelta(t, math.Log(2), got[3], 1e-12)
	assert.Equal(t, 0.0, got[4])
	assert.Equal(t, -10.0, got[5])
}

// TestConstraintError_Fields verifies the structured error carries the
// transform name, the offending value and the violated bound, and
// unwraps to the sentinel.
func TestConstraintError_Fields(t *testing.T) {
	w := transform.NewWriter(nil, nil)

	err := w.Bounded(0, 1, 2)
	require.Error(t, err)

	var cerr *transform.ConstraintError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "Bounded", cerr.Transform)
	assert.Equal(t, 2.0, cerr.Value)
	assert.Equal(t, "y <= 1", cerr.Bound)
	assert.True(t, errors.Is(err, transform.ErrConstraint))
	assert.Contains(t, err.Error(), "transform: Bounded")
}
