// Package gibbs implements Gibbs-sampling motif discovery: a stochastic
// search for a short, over-represented subsequence shared by a set of
// equal-length sequences.
//
// One chain keeps a guessed motif offset per sequence and repeatedly
// resamples the offset of one sequence from the likelihood surface
// induced by a pseudocounted profile of the others. Sampling, rather
// than hill-climbing, lets a chain escape local optima; independent
// random restarts cover the rest.
package gibbs

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
)

// Configuration defaults and bounds.
const (
	DefaultMotifLen      = 7
	DefaultPatience      = 3
	DefaultSamples       = 100
	DefaultMaxIterations = 5000

	MinMotifLen = 5
	MinPatience = 2
)

// Config holds the parameters of a motif search.
type Config struct {
	// MotifLen is the length of the motif to search for. Minimum 5.
	MotifLen int
	// Patience is the number of consecutive non-improving steps after
	// which a chain is considered converged. Minimum 2.
	Patience int
	// Samples is the number of independent restarts. Minimum 1.
	Samples int
	// Seed controls the random streams; chain i draws from a stream
	// seeded with Seed+i, so results are reproducible for a fixed seed.
	Seed int64
	// MaxIterations caps the sampling steps of a single chain, bounding
	// runtime when the score plateaus. 0 means DefaultMaxIterations.
	MaxIterations int
	// Workers is the number of chains run concurrently. 0 means
	// runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		MotifLen:      DefaultMotifLen,
		Patience:      DefaultPatience,
		Samples:       DefaultSamples,
		MaxIterations: DefaultMaxIterations,
	}
}

func (c Config) normalized() Config {
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}

func (c Config) validate(set *Set) error {
	if c.MotifLen < MinMotifLen {
		return &InvalidConfigError{
			Field:  "motif_len",
			Reason: fmt.Sprintf("must be at least %d, got %d", MinMotifLen, c.MotifLen),
		}
	}
	if c.Patience < MinPatience {
		return &InvalidConfigError{
			Field:  "patience",
			Reason: fmt.Sprintf("must be at least %d, got %d", MinPatience, c.Patience),
		}
	}
	if c.Samples < 1 {
		return &InvalidConfigError{
			Field:  "nsamples",
			Reason: fmt.Sprintf("must be at least 1, got %d", c.Samples),
		}
	}
	if c.MaxIterations < 1 {
		return &InvalidConfigError{
			Field:  "max_iterations",
			Reason: fmt.Sprintf("must be positive, got %d", c.MaxIterations),
		}
	}
	if c.MotifLen > set.SeqLen() {
		return &InvalidInputError{
			Reason: fmt.Sprintf("motif length %d exceeds sequence length %d",
				c.MotifLen, set.SeqLen()),
		}
	}
	return nil
}

// Result is the best-scoring configuration found by a chain or a search.
type Result struct {
	// Motif is the consensus string of the winning profile.
	Motif string
	// Score is the consensus score of the winning profile.
	Score float64
	// Profile is the pseudocounted count matrix over all sequences.
	Profile *Profile
	// Offsets is the winning offset vector, one start per sequence.
	Offsets []int
	// Chain is the index of the restart that produced this result.
	Chain int
	// Iterations is the number of sampling steps taken: for a chain
	// result its own steps, for a search result the total over all
	// chains.
	Iterations int
}

// Format renders the result in the fixed report layout: the labeled
// motif and score lines followed by the profile table.
func (r *Result) Format() string {
	return fmt.Sprintf("Motif: %s\nScore: %.4f\n%s", r.Motif, r.Score, r.Profile.Format())
}

// Search runs cfg.Samples independent sampling chains over the set and
// returns the single best result. Chains are embarrassingly parallel and
// run on a worker pool; ties between chains break to the lowest chain
// index, so a fixed seed always yields the same result.
func Search(set *Set, cfg Config) (*Result, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(set); err != nil {
		return nil, err
	}

	bg := EmpiricalBackground(set)
	results := make([]*Result, cfg.Samples)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				rng := rand.New(rand.NewSource(cfg.Seed + int64(idx)))
				results[idx] = newChain(set, cfg, bg, rng).run()
			}
		}()
	}
	for i := 0; i < cfg.Samples; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	best := results[0]
	best.Chain = 0
	totalIters := results[0].Iterations
	for i := 1; i < len(results); i++ {
		totalIters += results[i].Iterations
		if results[i].Score > best.Score {
			best = results[i]
			best.Chain = i
		}
	}
	best.Iterations = totalIters
	return best, nil
}
