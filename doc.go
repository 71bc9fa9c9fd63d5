// Package lvlbayes is the numerical core of a Bayesian model-fitting
// engine: constrained-parameter transforms plus an affine-invariant
// ensemble MCMC sampler.
//
// 🚀 What is lvlbayes?
//
//	A small, focused library providing the two hardest pieces of a
//	sampling engine:
//		• transform/ — exact, invertible, numerically stable bijections
//		  from constrained parameter spaces (bounds, probabilities,
//		  simplexes, ordered vectors, correlation & covariance matrices)
//		  to the unconstrained reals that samplers explore
//		• ensemble/  — a walk-move ensemble sampler (Goodman–Weare
//		  family) advancing a population of walkers with an
//		  affine-invariant Metropolis proposal
//
// ✨ Why choose lvlbayes?
//
//   - Bit-for-bit positional encoding — the unconstrained buffer order is
//     normative, so a paired constraining reader can consume it blindly
//   - Loud failures — every domain precondition surfaces as a sentinel or
//     structured error, never as silent corrupted output
//   - Reproducible — one seeded stream, one documented draw order; equal
//     seeds give bit-identical sweeps
//   - Pure call-return — no goroutines, no I/O, no hidden state between
//     sweeps
//
// What lvlbayes is not: a model compiler, an autodiff engine, or a CLI.
// It expects the host to supply a log-density oracle and to own every
// buffer crossing the API.
//
//	go get github.com/katalvlaran/lvlbayes
package lvlbayes
