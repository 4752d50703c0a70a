package gibbs

import "math/rand"

type chainPhase int

const (
	phaseInitialized chainPhase = iota
	phaseIterating
	phaseConverged
)

// Chain is one independent Gibbs sampling run: a mutable offset vector
// refined step by step until the best-so-far score stops improving. Each
// chain owns its offsets, counters and RNG; chains share nothing mutable.
type Chain struct {
	set *Set
	cfg Config
	bg  *Background
	rng *rand.Rand

	offsets []int
	phase   chainPhase
	iters   int
	stale   int

	best *Result
}

// newChain assigns every sequence a uniformly random offset and records
// the initial configuration as the chain's first best.
func newChain(set *Set, cfg Config, bg *Background, rng *rand.Rand) *Chain {
	span := set.SeqLen() - cfg.MotifLen
	offsets := make([]int, set.Size())
	for i := range offsets {
		offsets[i] = rng.Intn(span + 1)
	}

	c := &Chain{
		set:     set,
		cfg:     cfg,
		bg:      bg,
		rng:     rng,
		offsets: offsets,
		phase:   phaseInitialized,
	}
	c.record(buildProfile(set, offsets, -1, cfg.MotifLen))
	return c
}

func (c *Chain) record(full *Profile) {
	snapshot := make([]int, len(c.offsets))
	copy(snapshot, c.offsets)
	c.best = &Result{
		Motif:   full.Consensus(),
		Score:   full.Quality(),
		Profile: full,
		Offsets: snapshot,
	}
}

// Step performs one sampling step: exclude the next sequence in cyclic
// order, rebuild the profile from the rest, and draw that sequence a new
// offset proportional to its likelihood-ratio weight. Returns false once
// the chain has converged.
func (c *Chain) Step() bool {
	if c.phase == phaseConverged {
		return false
	}
	c.phase = phaseIterating

	excluded := c.iters % c.set.Size()
	profile := buildProfile(c.set, c.offsets, excluded, c.cfg.MotifLen)
	freqs := profile.Frequencies()

	bases := c.set.Seq(excluded).Bases
	span := c.set.SeqLen() - c.cfg.MotifLen
	weights := make([]float64, span+1)
	total := 0.0
	for off := range weights {
		w := scoreWindow(freqs, c.bg, c.set.Alphabet(), bases, off, c.cfg.MotifLen)
		weights[off] = w
		total += w
	}

	// Inverse-CDF draw. The weights are strictly positive, so total > 0
	// even when a sequence has a single legal offset.
	draw := c.rng.Float64() * total
	chosen := span
	cum := 0.0
	for off, w := range weights {
		cum += w
		if draw < cum {
			chosen = off
			break
		}
	}
	c.offsets[excluded] = chosen
	c.iters++

	full := buildProfile(c.set, c.offsets, -1, c.cfg.MotifLen)
	if q := full.Quality(); q > c.best.Score {
		c.record(full)
		c.stale = 0
	} else {
		c.stale++
	}

	if c.stale >= c.cfg.Patience || c.iters >= c.cfg.MaxIterations {
		c.phase = phaseConverged
	}
	return c.phase != phaseConverged
}

// Converged reports whether the chain has reached its terminal state.
func (c *Chain) Converged() bool {
	return c.phase == phaseConverged
}

// Iterations returns the number of sampling steps taken so far.
func (c *Chain) Iterations() int {
	return c.iters
}

// Offsets returns a copy of the chain's current offset vector.
func (c *Chain) Offsets() []int {
	out := make([]int, len(c.offsets))
	copy(out, c.offsets)
	return out
}

// Best returns the chain's best-so-far record.
func (c *Chain) Best() *Result {
	return c.best
}

// run drives the chain to convergence and yields its best record.
func (c *Chain) run() *Result {
	for c.Step() {
	}
	r := c.best
	r.Iterations = c.iters
	return r
}
