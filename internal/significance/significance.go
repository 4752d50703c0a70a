// Package significance provides closed-form probability routines for
// judging whether a shared motif could have arisen by chance.
//
// The model: a specific random motif of length L matches a fixed window
// of a random sequence with probability a^-L over an alphabet of size a,
// occurs somewhere in a sequence of length M with probability
// 1-(1-a^-L)^(M-L+1), and occurs in all n independent sequences with
// that value raised to the n-th power.
package significance

import (
	"fmt"
	"math"
)

// DomainError is returned when significance parameters fall outside the
// domain of the probability model.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return "domain error: " + e.Reason
}

// maxSearchLength bounds the monotonic search in MinSequenceLength.
const maxSearchLength = 1 << 40

func validate(nSeqs, motifLen, alphabetSize int) error {
	if alphabetSize < 2 {
		return &DomainError{Reason: fmt.Sprintf("alphabet size must be at least 2, got %d", alphabetSize)}
	}
	if motifLen < 1 {
		return &DomainError{Reason: fmt.Sprintf("motif length must be positive, got %d", motifLen)}
	}
	if nSeqs < 1 {
		return &DomainError{Reason: fmt.Sprintf("sequence count must be positive, got %d", nSeqs)}
	}
	return nil
}

// NontargetProbability returns the probability that a specific random
// motifLen-mer fails to occur by chance in every one of nSeqs random
// sequences of length seqLen. The result is in [0, 1], decreases as
// seqLen grows, and approaches 1 when seqLen equals motifLen: a motif
// shared at that length is expected by construction, not chance.
func NontargetProbability(nSeqs, motifLen, seqLen, alphabetSize int) (float64, error) {
	if err := validate(nSeqs, motifLen, alphabetSize); err != nil {
		return 0, err
	}
	if seqLen < motifLen {
		return 0, &DomainError{
			Reason: fmt.Sprintf("sequence length %d is shorter than motif length %d",
				seqLen, motifLen),
		}
	}

	single := math.Pow(float64(alphabetSize), -float64(motifLen))
	perSeq := 1 - math.Pow(1-single, float64(seqLen-motifLen+1))
	inAll := math.Pow(perSeq, float64(nSeqs))
	return 1 - inAll, nil
}

// MinSequenceLength returns the smallest sequence length M for which
// NontargetProbability(nSeqs, motifLen, M, alphabetSize) drops to
// pThreshold or below. The probability is monotonically decreasing in M,
// so the boundary is located by doubling followed by binary search
// rather than a closed-form inverse.
func MinSequenceLength(pThreshold float64, nSeqs, motifLen, alphabetSize int) (int, error) {
	if err := validate(nSeqs, motifLen, alphabetSize); err != nil {
		return 0, err
	}
	if pThreshold <= 0 || pThreshold >= 1 {
		return 0, &DomainError{
			Reason: fmt.Sprintf("probability threshold must be in (0, 1), got %g", pThreshold),
		}
	}

	at := func(m int) float64 {
		p, _ := NontargetProbability(nSeqs, motifLen, m, alphabetSize)
		return p
	}

	if at(motifLen) <= pThreshold {
		return motifLen, nil
	}

	// Find an upper bracket, then bisect down to the tight boundary.
	lo, hi := motifLen, motifLen*2
	for at(hi) > pThreshold {
		lo = hi
		hi *= 2
		if hi > maxSearchLength {
			return 0, &DomainError{
				Reason: fmt.Sprintf("no length below %d satisfies threshold %g",
					maxSearchLength, pThreshold),
			}
		}
	}
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if at(mid) <= pThreshold {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}
