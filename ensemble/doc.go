// Package ensemble advances a population of parameter-space walkers with
// an affine-invariant walk-move proposal (Goodman–Weare family).
//
// 🚀 What is the walk move?
//
//	Each walker is proposed a step built from the spread of a random
//	subset of the other walkers around their mean. Because the proposal's
//	scale and direction come from the ensemble itself, the sampler behaves
//	identically under any linear rescaling of parameter space — no step
//	size to tune, no mass matrix to adapt. This variant has no free
//	parameters at all.
//
// One sweep updates every walker exactly once:
//  1. logp0 = logProb(cur[i])
//  2. draw a companion set: one Bernoulli(0.5) per other walker, in index
//     order; redraw the whole set while it has fewer than two members
//  3. mean the companions' current positions coordinate-wise
//  4. propose cur[i] + Σⱼ zⱼ·(cur[j] − mean), zⱼ ~ Normal(0,1) per
//     companion
//  5. logpNew = logProb(proposal); a NaN result is replaced by +Inf
//  6. accept[i] = min(1, exp(logpNew − logp0))
//  7. one Uniform[0,1) draw; if it exceeds accept[i] the proposal is
//     rejected and next[i], logp[i] revert to the current values
//
// Note the step-5 substitution makes a NaN log-density always accepted
// (exp(+Inf − logp0) clamps to one). That is the behavior of the system
// this sampler interoperates with, preserved deliberately; models that
// want out-of-support proposals rejected should return −Inf, not NaN.
//
// Reproducibility:
//
//	All randomness flows through one shared Rand serialized across
//	walkers, consumed in the fixed order above: per walker, N−1 Bernoulli
//	draws per companion-selection attempt, one Normal draw per chosen
//	companion, then one Uniform accept draw. Equal seeds give
//	bit-identical sweeps. The per-walker bodies only read pre-sweep
//	positions and write their own slots, but sweeps are not run in
//	parallel precisely to keep that draw order stable.
//
// Buffers:
//
//	The caller owns cur, next, logp and accept and swaps cur/next between
//	sweeps; the sampler reads cur and overwrites its own slot in the
//	other three. No state persists inside the sampler between sweeps.
//
// Errors (sentinel):
//
//	– ErrTooFewWalkers  fewer than 3 walkers (the companion retry loop
//	                    could never terminate)
//	– ErrBadDim         non-positive dimension
//	– ErrNilModel       nil log-density oracle
//	– ErrNilRand        nil random source
//	– ErrShape          a sweep buffer does not match the ensemble shape
//
// Complexity per sweep: O(N·(N + D + C)) where C is the cost of one
// log-density evaluation (two evaluations per walker).
package ensemble
