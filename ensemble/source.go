package ensemble

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the production Rand: a single seeded stream shared by all
// three primitives, serialized across walkers. Equal seeds replay equal
// draw sequences, which makes whole sweeps bit-reproducible. Source is
// not safe for concurrent use.
type Source struct {
	src rand.Source
}

// NewSource returns a Source drawing from one stream seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{src: rand.NewSource(seed)}
}

// Bernoulli reports a success with probability p.
func (s *Source) Bernoulli(p float64) bool {
	return distuv.Bernoulli{P: p, Src: s.src}.Rand() == 1
}

// Normal draws a Normal(mu, sigma) variate.
func (s *Source) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Uniform draws a variate in [0, 1).
func (s *Source) Uniform() float64 {
	return distuv.Uniform{Min: 0, Max: 1, Src: s.src}.Rand()
}
