package gibbs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MotifLen = 5
	cfg.Samples = 1
	return cfg.normalized()
}

func TestChainDegenerateSingleOffset(t *testing.T) {
	// Sequence length equals motif length: one legal offset per
	// sequence, so the chain is deterministic and converges at once.
	set := mustSet(t, "ATGCA", "ATGCA", "ATGCA")
	cfg := testConfig()

	c := newChain(set, cfg, EmpiricalBackground(set), rand.New(rand.NewSource(1)))

	for c.Step() {
	}

	require.True(t, c.Converged())
	best := c.Best()
	assert.Equal(t, "ATGCA", best.Motif)
	assert.InDelta(t, float64(5*(3+1)), best.Score, 1e-12)
	assert.Equal(t, []int{0, 0, 0}, best.Offsets)
	assert.Equal(t, cfg.Patience, c.Iterations(),
		"no step can improve, so the chain stops after patience steps")
}

func TestChainBestScoreMonotone(t *testing.T) {
	set := mustSet(t,
		"ATGCATGCATGCATGC",
		"TTGCATGCATGCATGA",
		"GGGCATGCATGCATGT",
		"CCGCATGCATGCATGG",
	)
	cfg := testConfig()

	c := newChain(set, cfg, EmpiricalBackground(set), rand.New(rand.NewSource(42)))

	prev := c.Best().Score
	for c.Step() {
		score := c.Best().Score
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
	require.True(t, c.Converged())
}

func TestChainOffsetsStayInRange(t *testing.T) {
	set := mustSet(t,
		"ATGCATGCATGC",
		"TTGCATGCATGA",
		"GGGCATGCATGT",
	)
	cfg := testConfig()
	span := set.SeqLen() - cfg.MotifLen

	c := newChain(set, cfg, EmpiricalBackground(set), rand.New(rand.NewSource(7)))
	for {
		for _, off := range c.Offsets() {
			assert.GreaterOrEqual(t, off, 0)
			assert.LessOrEqual(t, off, span)
		}
		if !c.Step() {
			break
		}
	}
}

func TestChainIterationCap(t *testing.T) {
	set := mustSet(t,
		"ATGCATGCATGC",
		"TTGCATGCATGA",
		"GGGCATGCATGT",
	)
	cfg := testConfig()
	cfg.MaxIterations = 4
	cfg.Patience = 1000 // patience alone would never trigger in 4 steps

	c := newChain(set, cfg, EmpiricalBackground(set), rand.New(rand.NewSource(3)))
	for c.Step() {
	}

	require.True(t, c.Converged())
	assert.LessOrEqual(t, c.Iterations(), 4)
}

func TestChainStepAfterConvergence(t *testing.T) {
	set := mustSet(t, "ATGCA", "ATGCA")
	cfg := testConfig()

	c := newChain(set, cfg, EmpiricalBackground(set), rand.New(rand.NewSource(1)))
	for c.Step() {
	}

	iters := c.Iterations()
	assert.False(t, c.Step(), "a converged chain stays converged")
	assert.Equal(t, iters, c.Iterations())
}
