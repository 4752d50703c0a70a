package gibbs

import (
	"fmt"
	"strings"
)

// pseudocount seeds every profile cell so no symbol ever has zero
// probability (Laplace's rule).
const pseudocount = 1

// Background holds per-symbol chance frequencies used as the null model
// in likelihood-ratio scoring. Every frequency is strictly positive.
type Background struct {
	alphabet string
	freqs    []float64
}

// UniformBackground returns a background assigning equal probability to
// every symbol of the alphabet.
func UniformBackground(alphabet string) *Background {
	freqs := make([]float64, len(alphabet))
	for i := range freqs {
		freqs[i] = 1.0 / float64(len(alphabet))
	}
	return &Background{alphabet: alphabet, freqs: freqs}
}

// EmpiricalBackground returns a background estimated from the base
// composition of the whole set, pseudocounted so every symbol keeps a
// nonzero frequency.
func EmpiricalBackground(set *Set) *Background {
	alphabet := set.Alphabet()
	counts := make([]int, len(alphabet))
	total := 0

	for _, s := range set.Sequences() {
		bc := s.BaseCounts()
		byBase := map[byte]int{'A': bc.A, 'C': bc.C, 'G': bc.G, 'T': bc.T, 'U': bc.T}
		for i := 0; i < len(alphabet); i++ {
			counts[i] += byBase[alphabet[i]]
		}
		total += s.Len()
	}

	freqs := make([]float64, len(alphabet))
	denom := float64(total + len(alphabet)*pseudocount)
	for i, c := range counts {
		freqs[i] = float64(c+pseudocount) / denom
	}
	return &Background{alphabet: alphabet, freqs: freqs}
}

// Freq returns the background frequency of the symbol at alphabet index i.
func (b *Background) Freq(i int) float64 {
	return b.freqs[i]
}

// Profile is a pseudocounted position count matrix with one row per
// alphabet symbol and one column per motif position. It is rebuilt at
// every sampling step and never shared between chains.
type Profile struct {
	alphabet string
	counts   [][]int // [symbol][position]
	windows  int     // contributing motif windows, excluding pseudocounts
}

func newProfile(alphabet string, length int) *Profile {
	counts := make([][]int, len(alphabet))
	for i := range counts {
		counts[i] = make([]int, length)
		for j := range counts[i] {
			counts[i][j] = pseudocount
		}
	}
	return &Profile{alphabet: alphabet, counts: counts}
}

// add accumulates one motif window into the profile.
func (p *Profile) add(window string) {
	for j := 0; j < len(window); j++ {
		row := strings.IndexByte(p.alphabet, window[j])
		if row < 0 {
			continue
		}
		p.counts[row][j]++
	}
	p.windows++
}

// Len returns the number of motif positions (columns).
func (p *Profile) Len() int {
	if len(p.counts) == 0 {
		return 0
	}
	return len(p.counts[0])
}

// Alphabet returns the symbol alphabet of the profile.
func (p *Profile) Alphabet() string {
	return p.alphabet
}

// Windows returns the number of motif windows counted into the profile.
func (p *Profile) Windows() int {
	return p.windows
}

// Count returns the pseudocounted count for symbol row sym at position pos.
func (p *Profile) Count(sym, pos int) int {
	return p.counts[sym][pos]
}

// ColumnSum returns the total count in one position column. For a profile
// over w windows this is always w + len(alphabet).
func (p *Profile) ColumnSum(pos int) int {
	sum := 0
	for sym := range p.counts {
		sum += p.counts[sym][pos]
	}
	return sum
}

// Frequencies returns the column-normalized form of the profile. Each
// column sums to 1 and every cell is strictly positive.
func (p *Profile) Frequencies() [][]float64 {
	freqs := make([][]float64, len(p.counts))
	for sym := range freqs {
		freqs[sym] = make([]float64, p.Len())
	}
	for pos := 0; pos < p.Len(); pos++ {
		sum := float64(p.ColumnSum(pos))
		for sym := range p.counts {
			freqs[sym][pos] = float64(p.counts[sym][pos]) / sum
		}
	}
	return freqs
}

// Consensus returns the motif string formed by the most frequent symbol
// of each column. Ties resolve to the earlier alphabet symbol.
func (p *Profile) Consensus() string {
	var sb strings.Builder
	for pos := 0; pos < p.Len(); pos++ {
		best := 0
		for sym := 1; sym < len(p.counts); sym++ {
			if p.counts[sym][pos] > p.counts[best][pos] {
				best = sym
			}
		}
		sb.WriteByte(p.alphabet[best])
	}
	return sb.String()
}

// Quality returns the consensus score of the profile: the sum over
// columns of the maximum count in that column. Higher means a more
// conserved motif. The same metric is used at every best-so-far
// comparison, within and across chains.
func (p *Profile) Quality() float64 {
	score := 0.0
	for pos := 0; pos < p.Len(); pos++ {
		max := p.counts[0][pos]
		for sym := 1; sym < len(p.counts); sym++ {
			if p.counts[sym][pos] > max {
				max = p.counts[sym][pos]
			}
		}
		score += float64(max)
	}
	return score
}

// Format renders the profile as a fixed-width table: a position header
// row, then one row of counts per alphabet symbol.
func (p *Profile) Format() string {
	var sb strings.Builder

	sb.WriteString("Pos")
	for pos := 1; pos <= p.Len(); pos++ {
		fmt.Fprintf(&sb, "%5d", pos)
	}
	sb.WriteByte('\n')

	for sym := 0; sym < len(p.alphabet); sym++ {
		sb.WriteByte(p.alphabet[sym])
		sb.WriteString("  ")
		for pos := 0; pos < p.Len(); pos++ {
			fmt.Fprintf(&sb, "%5d", p.counts[sym][pos])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// buildProfile counts the current motif window of every sequence except
// the excluded one. Pass excluded = -1 to include all sequences.
func buildProfile(set *Set, offsets []int, excluded, motifLen int) *Profile {
	p := newProfile(set.Alphabet(), motifLen)
	for i := 0; i < set.Size(); i++ {
		if i == excluded {
			continue
		}
		bases := set.Seq(i).Bases
		off := offsets[i]
		p.add(bases[off : off+motifLen])
	}
	return p
}

// scoreWindow computes the likelihood-ratio weight of the window starting
// at offset: the product over motif positions of profile frequency over
// background frequency. Strictly positive for any window because both
// profile and background are pseudocounted.
func scoreWindow(freqs [][]float64, bg *Background, alphabet, bases string, offset, motifLen int) float64 {
	weight := 1.0
	for j := 0; j < motifLen; j++ {
		sym := strings.IndexByte(alphabet, bases[offset+j])
		weight *= freqs[sym][j] / bg.Freq(sym)
	}
	return weight
}
