package motifflow

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFASTA = `>seq1 first promoter
ATGCATGC
ATGCATGC
>seq2
TTGCATGCATGCATGA
`

func TestParseFASTA(t *testing.T) {
	seqs, err := ParseFASTA(strings.NewReader(testFASTA))
	require.NoError(t, err)
	require.Len(t, seqs, 2)

	assert.Equal(t, "seq1", seqs[0].ID)
	assert.Equal(t, "first promoter", seqs[0].Description)
	assert.Equal(t, "ATGCATGCATGCATGC", seqs[0].Bases, "wrapped lines are joined")

	assert.Equal(t, "seq2", seqs[1].ID)
	assert.Equal(t, "", seqs[1].Description)
	assert.Equal(t, 16, seqs[1].Len())
}

func TestParseFASTAInvalidBases(t *testing.T) {
	_, err := ParseFASTA(strings.NewReader(">bad\nATXC\n"))
	require.Error(t, err)
}

func TestReadWriteFASTARoundtrip(t *testing.T) {
	seqs, err := ParseFASTA(strings.NewReader(testFASTA))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.fa")
	require.NoError(t, WriteFASTA(path, seqs))

	back, err := ReadFASTA(path)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.True(t, seqs[0].Equal(back[0]))
	assert.True(t, seqs[1].Equal(back[1]))
}

func TestReadFASTAMissingFile(t *testing.T) {
	_, err := ReadFASTA(filepath.Join(t.TempDir(), "missing.fa"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSearchThroughFacade(t *testing.T) {
	seqs, err := ParseFASTA(strings.NewReader(`>a
GATTACA
>b
GATTACA
>c
GATTACA
`))
	require.NoError(t, err)

	set, err := NewSet(seqs)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.MotifLen = 7
	cfg.Samples = 2
	cfg.Seed = 1

	result, err := Search(set, cfg)
	require.NoError(t, err)
	assert.Equal(t, "GATTACA", result.Motif)
}

func TestSignificanceThroughFacade(t *testing.T) {
	length, err := MinSequenceLength(0.01, 400, 6, 4)
	require.NoError(t, err)

	p, err := NontargetProbability(400, 6, length, 4)
	require.NoError(t, err)
	assert.LessOrEqual(t, p, 0.01)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())
	assert.Contains(t, Info(), Version())
}
