package gibbs

import (
	"fmt"

	"github.com/gibbslab/motifflow/internal/sequence"
)

// Alphabets used by the sampler. Ambiguous bases are rejected at set
// construction, so every base of every sequence maps to a profile row.
const (
	AlphabetDNA = "ACGT"
	AlphabetRNA = "ACGU"
)

// Set is an ordered, index-addressable collection of equal-length
// sequences sharing one unambiguous alphabet. The sampler only reads it.
type Set struct {
	seqs     []*sequence.Sequence
	seqLen   int
	alphabet string
}

// NewSet validates and wraps a collection of sequences for motif search.
func NewSet(seqs []*sequence.Sequence) (*Set, error) {
	if len(seqs) == 0 {
		return nil, &InvalidInputError{Reason: "sequence set is empty"}
	}

	seqType := seqs[0].SeqType
	alphabet := AlphabetDNA
	if seqType == sequence.RNA {
		alphabet = AlphabetRNA
	}

	seqLen := seqs[0].Len()
	for i, s := range seqs {
		if s.SeqType != seqType {
			return nil, &InvalidInputError{
				Reason: fmt.Sprintf("sequence %d is %s, expected %s",
					i, s.SeqType, seqType),
			}
		}
		if s.Len() != seqLen {
			return nil, &InvalidInputError{
				Reason: fmt.Sprintf("sequence %d has length %d, expected %d",
					i, s.Len(), seqLen),
			}
		}
		if s.HasAmbiguous() {
			return nil, &InvalidInputError{
				Reason: fmt.Sprintf("sequence %d contains ambiguous bases", i),
			}
		}
	}

	return &Set{
		seqs:     seqs,
		seqLen:   seqLen,
		alphabet: alphabet,
	}, nil
}

// Size returns the number of sequences in the set.
func (s *Set) Size() int {
	return len(s.seqs)
}

// SeqLen returns the shared length of the sequences.
func (s *Set) SeqLen() int {
	return s.seqLen
}

// Alphabet returns the symbol alphabet of the set.
func (s *Set) Alphabet() string {
	return s.alphabet
}

// Seq returns the sequence at index i.
func (s *Set) Seq(i int) *sequence.Sequence {
	return s.seqs[i]
}

// Sequences returns the underlying sequences in order.
func (s *Set) Sequences() []*sequence.Sequence {
	return s.seqs
}
