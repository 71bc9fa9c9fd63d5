package ensemble

import (
	"fmt"
	"math"
)

// metricLine is the entire diagnostic report for this sampler variant.
const metricLine = "# no free parameters for walk move ensemble sampler\n"

// WalkMove advances an ensemble of walkers with the affine-invariant walk
// move. The sampler itself holds no sampling state between sweeps — only
// its capabilities (oracle, randomness) and scratch buffers — so a sweep
// is a pure function of the current positions and the random stream.
// WalkMove is not safe for concurrent use: the shared random stream is
// consumed in a fixed documented order.
type WalkMove struct {
	model   LogProb
	rnd     Rand
	opts    Options
	walkers int
	dim     int

	// scratch reused across sweeps
	companions []int
	mean       []float64
}

// New validates the ensemble shape and capabilities and returns a sampler
// for numWalkers walkers of dimension dim.
//
// Errors: ErrTooFewWalkers if numWalkers < 3, ErrBadDim if dim < 1,
// ErrNilModel / ErrNilRand for missing capabilities.
func New(numWalkers, dim int, model LogProb, rnd Rand, opts ...Option) (*WalkMove, error) {
	if numWalkers < 3 {
		return nil, ErrTooFewWalkers
	}
	if dim < 1 {
		return nil, ErrBadDim
	}
	if model == nil {
		return nil, ErrNilModel
	}
	if rnd == nil {
		return nil, ErrNilRand
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &WalkMove{
		model:      model,
		rnd:        rnd,
		opts:       o,
		walkers:    numWalkers,
		dim:        dim,
		companions: make([]int, 0, numWalkers-1),
		mean:       make([]float64, dim),
	}, nil
}

// Sweep advances every walker by one Metropolis step. It reads the
// pre-sweep positions cur (untouched for the whole sweep), and writes the
// post-sweep position, log-density and acceptance probability of walker i
// to next[i], logp[i] and accept[i]. All four buffers are caller-owned;
// the caller swaps cur and next between sweeps.
//
// Errors: ErrShape if any buffer does not match the ensemble shape.
func (s *WalkMove) Sweep(cur, next [][]float64, logp, accept []float64) error {
	if err := s.checkShape(cur, next, logp, accept); err != nil {
		return err
	}

	for i := range cur {
		logp0 := s.model(cur[i])

		set := s.chooseCompanions(i)
		mean := s.companionMean(set, cur)

		copy(next[i], cur[i])
		for _, j := range set {
			z := s.rnd.Normal(0, 1)
			for d := range next[i] {
				next[i][d] += z * (cur[j][d] - mean[d])
			}
		}

		lp := s.model(next[i])
		if math.IsNaN(lp) {
			lp = math.Inf(1)
		}

		ap := math.Exp(lp - logp0)
		if ap > 1 {
			ap = 1
		}

		if s.rnd.Uniform() > ap {
			copy(next[i], cur[i])
			lp = logp0
		}

		logp[i] = lp
		accept[i] = ap
	}

	return nil
}

// NumWalkers returns the ensemble's walker count.
func (s *WalkMove) NumWalkers() int { return s.walkers }

// Dim returns the ensemble's parameter-space dimension.
func (s *WalkMove) Dim() int { return s.dim }

// WriteMetric writes the one-line tuning report to the configured
// diagnostics sink. This variant has no free parameters, and the line
// says so. Without a configured sink it is a no-op.
func (s *WalkMove) WriteMetric() {
	if s.opts.Diagnostics == nil {
		return
	}
	fmt.Fprint(s.opts.Diagnostics, metricLine)
}

// chooseCompanions draws the companion set for the given mover: one
// Bernoulli(0.5) indicator per other walker, in index order, redrawing
// the entire set while it has fewer than two members. The mover's own
// index is never eligible. Terminates almost surely for 3+ walkers,
// which New guarantees.
func (s *WalkMove) chooseCompanions(mover int) []int {
	set := s.companions[:0]
	for len(set) <= 1 {
		set = set[:0]
		for k := 0; k < s.walkers-1; k++ {
			if !s.rnd.Bernoulli(0.5) {
				continue
			}
			if k >= mover {
				set = append(set, k+1)
			} else {
				set = append(set, k)
			}
		}
	}
	s.companions = set

	return set
}

// companionMean computes the coordinate-wise arithmetic mean of the
// companions' pre-sweep positions into the sampler's scratch buffer.
func (s *WalkMove) companionMean(set []int, cur [][]float64) []float64 {
	mean := s.mean
	for d := range mean {
		mean[d] = 0
	}
	inv := 1 / float64(len(set))
	for _, j := range set {
		for d, v := range cur[j] {
			mean[d] += v * inv
		}
	}

	return mean
}

// checkShape verifies every sweep buffer against the ensemble shape.
func (s *WalkMove) checkShape(cur, next [][]float64, logp, accept []float64) error {
	if len(cur) != s.walkers || len(next) != s.walkers {
		return ErrShape
	}
	if len(logp) != s.walkers || len(accept) != s.walkers {
		return ErrShape
	}
	for i := 0; i < s.walkers; i++ {
		if len(cur[i]) != s.dim || len(next[i]) != s.dim {
			return ErrShape
		}
	}

	return nil
}
