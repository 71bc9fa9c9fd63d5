package ensemble

import (
	"errors"
	"io"
)

// Sentinel errors returned by sampler construction and sweeps.
var (
	// ErrTooFewWalkers indicates an ensemble of fewer than 3 walkers. The
	// companion-selection loop retries until it finds at least two
	// companions among the other walkers, so 2 walkers would never
	// terminate; the bound is enforced up front rather than by capping
	// retries, which would bias the proposal distribution.
	ErrTooFewWalkers = errors.New("ensemble: walk move requires at least 3 walkers")

	// ErrBadDim indicates a non-positive parameter-space dimension.
	ErrBadDim = errors.New("ensemble: dimension must be positive")

	// ErrNilModel indicates a nil log-density oracle.
	ErrNilModel = errors.New("ensemble: log-density oracle is nil")

	// ErrNilRand indicates a nil random source.
	ErrNilRand = errors.New("ensemble: random source is nil")

	// ErrShape indicates a sweep buffer whose length does not match the
	// ensemble's walker count or dimension.
	ErrShape = errors.New("ensemble: buffer shape does not match ensemble")
)

// LogProb is the host model's log-density oracle: it maps a position
// vector of the ensemble's dimension to a scalar log-density. It may
// return NaN for out-of-support positions; see the package documentation
// for how a NaN is treated during a sweep.
type LogProb func(position []float64) float64

// Rand supplies the random primitives a sweep consumes, in the fixed
// order documented on the package. Implementations decide the stream
// model; Source provides a single seeded serialized stream.
type Rand interface {
	// Bernoulli reports an independent success with probability p.
	Bernoulli(p float64) bool
	// Normal draws an independent Normal(mu, sigma) variate.
	Normal(mu, sigma float64) float64
	// Uniform draws an independent variate in [0, 1).
	Uniform() float64
}

// Options configures a WalkMove sampler.
//
// Diagnostics – optional sink for WriteMetric's one-line report; a nil
// sink disables it entirely.
type Options struct {
	Diagnostics io.Writer
}

// Option is a functional option for configuring a WalkMove sampler.
type Option func(*Options)

// WithDiagnostics directs WriteMetric's output to w.
func WithDiagnostics(w io.Writer) Option {
	return func(o *Options) {
		o.Diagnostics = w
	}
}

// DefaultOptions returns the default sampler configuration: no
// diagnostics sink.
func DefaultOptions() Options {
	return Options{}
}
