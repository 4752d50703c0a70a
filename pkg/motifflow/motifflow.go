// Package motifflow provides a high-level API for Gibbs-sampling motif
// discovery in sets of equal-length DNA or RNA sequences.
//
// Example usage:
//
//	seqs, err := motifflow.ReadFASTA("promoters.fa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	set, err := motifflow.NewSet(seqs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := motifflow.Search(set, motifflow.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Format())
package motifflow

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gibbslab/motifflow/internal/gibbs"
	"github.com/gibbslab/motifflow/internal/sequence"
	"github.com/gibbslab/motifflow/internal/significance"
	"github.com/gibbslab/motifflow/internal/stats"
)

// Re-export types for convenience
type (
	Sequence     = sequence.Sequence
	SequenceType = sequence.SequenceType
	Set          = gibbs.Set
	Config       = gibbs.Config
	Result       = gibbs.Result
	Profile      = gibbs.Profile
	Background   = gibbs.Background
)

// Constants
const (
	DNA     = sequence.DNA
	RNA     = sequence.RNA
	Unknown = sequence.Unknown
)

// NewSequence creates a new DNA sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a new sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// NewSet validates a collection of sequences for motif search.
func NewSet(seqs []*Sequence) (*Set, error) {
	return gibbs.NewSet(seqs)
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return gibbs.DefaultConfig()
}

// Search runs a multi-restart Gibbs sampling search over the set.
func Search(set *Set, cfg Config) (*Result, error) {
	return gibbs.Search(set, cfg)
}

// MinSequenceLength returns the smallest sequence length at which the
// chance non-occurrence probability drops to pThreshold or below.
func MinSequenceLength(pThreshold float64, nSeqs, motifLen, alphabetSize int) (int, error) {
	return significance.MinSequenceLength(pThreshold, nSeqs, motifLen, alphabetSize)
}

// NontargetProbability returns the probability that a random motif fails
// to occur by chance in all nSeqs sequences of length seqLen.
func NontargetProbability(nSeqs, motifLen, seqLen, alphabetSize int) (float64, error) {
	return significance.NontargetProbability(nSeqs, motifLen, seqLen, alphabetSize)
}

// SequenceStats calculates statistics for a sequence.
func SequenceStats(seq *Sequence) *stats.SequenceStats {
	return stats.FromSequence(seq)
}

// SequenceSetStats calculates statistics for multiple sequences.
func SequenceSetStats(sequences []*Sequence) (*stats.SequenceSetStats, error) {
	return stats.FromSequences(sequences)
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(filename string) ([]*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses FASTA format from a reader.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	sequences := make([]*Sequence, 0)
	scanner := bufio.NewScanner(r)

	var currentID, currentDesc string
	var currentBases strings.Builder

	flushSequence := func() error {
		if currentBases.Len() > 0 {
			seq, err := sequence.WithMetadata(
				currentBases.String(),
				currentID,
				currentDesc,
				sequence.DNA,
			)
			if err != nil {
				return err
			}
			sequences = append(sequences, seq)
			currentBases.Reset()
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			// Flush previous sequence
			if err := flushSequence(); err != nil {
				return nil, err
			}

			// Parse header
			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
		} else {
			currentBases.WriteString(line)
		}
	}

	// Flush last sequence
	if err := flushSequence(); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return sequences, nil
}

// WriteFASTA writes sequences to a FASTA file.
func WriteFASTA(filename string, sequences []*Sequence) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	for _, seq := range sequences {
		_, err := file.WriteString(seq.ToFASTA())
		if err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}

	return nil
}

// Version returns the MotifFlow version.
func Version() string {
	return "1.0.0"
}

// Info returns information about MotifFlow.
func Info() string {
	return fmt.Sprintf(`MotifFlow v%s - Gibbs Motif Sampling Library

A Go implementation of Gibbs-sampling motif discovery for DNA/RNA
sequence sets.

Features:
  - DNA/RNA sequence handling with validation
  - Pseudocounted position frequency profiles
  - Gibbs sampling with multi-restart search
  - Motif significance estimation
  - Sequence set statistics
  - FASTA file parsing

For more information, see: https://github.com/gibbslab/motifflow
`, Version())
}
