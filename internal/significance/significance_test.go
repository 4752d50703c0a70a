package significance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNontargetProbabilityBounds(t *testing.T) {
	tests := []struct {
		name     string
		nSeqs    int
		motifLen int
		seqLen   int
		alphabet int
	}{
		{"small", 3, 5, 10, 4},
		{"medium", 50, 7, 1000, 4},
		{"large", 400, 6, 50000, 4},
		{"binary alphabet", 10, 5, 100, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NontargetProbability(tt.nSeqs, tt.motifLen, tt.seqLen, tt.alphabet)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		})
	}
}

func TestNontargetProbabilityDecreasesWithLength(t *testing.T) {
	prev := 2.0
	for _, seqLen := range []int{6, 10, 100, 1000, 10000, 100000} {
		p, err := NontargetProbability(400, 6, seqLen, 4)
		require.NoError(t, err)
		assert.LessOrEqual(t, p, prev, "seqLen %d", seqLen)
		prev = p
	}
}

func TestNontargetProbabilityDegenerate(t *testing.T) {
	// Sequence length equal to motif length: a shared motif at that
	// length is expected by construction, not chance.
	p, err := NontargetProbability(5, 7, 7, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)
}

func TestNontargetProbabilityDomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		nSeqs    int
		motifLen int
		seqLen   int
		alphabet int
	}{
		{"alphabet size 1", 10, 5, 100, 1},
		{"alphabet size 0", 10, 5, 100, 0},
		{"motif longer than sequence", 10, 8, 7, 4},
		{"zero sequences", 0, 5, 100, 4},
		{"zero motif length", 10, 0, 100, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NontargetProbability(tt.nSeqs, tt.motifLen, tt.seqLen, tt.alphabet)
			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
		})
	}
}

func TestMinSequenceLengthTightBoundary(t *testing.T) {
	length, err := MinSequenceLength(0.01, 400, 6, 4)
	require.NoError(t, err)
	require.Greater(t, length, 6)

	at, err := NontargetProbability(400, 6, length, 4)
	require.NoError(t, err)
	assert.LessOrEqual(t, at, 0.01)

	before, err := NontargetProbability(400, 6, length-1, 4)
	require.NoError(t, err)
	assert.Greater(t, before, 0.01)
}

func TestMinSequenceLengthMatchesLinearScan(t *testing.T) {
	const (
		p        = 0.5
		nSeqs    = 2
		motifLen = 5
		alphabet = 4
	)

	got, err := MinSequenceLength(p, nSeqs, motifLen, alphabet)
	require.NoError(t, err)

	want := motifLen
	for {
		prob, err := NontargetProbability(nSeqs, motifLen, want, alphabet)
		require.NoError(t, err)
		if prob <= p {
			break
		}
		want++
	}
	assert.Equal(t, want, got)
}

func TestMinSequenceLengthDomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		p        float64
		nSeqs    int
		motifLen int
		alphabet int
	}{
		{"threshold zero", 0.0, 10, 5, 4},
		{"threshold one", 1.0, 10, 5, 4},
		{"threshold negative", -0.5, 10, 5, 4},
		{"alphabet size 1", 0.01, 10, 5, 1},
		{"zero sequences", 0.01, 0, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MinSequenceLength(tt.p, tt.nSeqs, tt.motifLen, tt.alphabet)
			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
		})
	}
}
