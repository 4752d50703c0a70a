// Command motifflow provides a CLI for Gibbs-sampling motif discovery.
//
// Usage:
//
//	motifflow [command] [options]
//
// Commands:
//
//	find        Search a sequence set for a shared motif
//	minlen      Minimum suggested sequence length for a significance threshold
//	chance      Chance non-occurrence probability of a motif
//	info        Show sequence information
//	stats       Calculate sequence set statistics
//	version     Show version information
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/gibbslab/motifflow/internal/runstore"
	"github.com/gibbslab/motifflow/pkg/motifflow"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "find":
		findCmd(os.Args[2:])
	case "minlen":
		minlenCmd(os.Args[2:])
	case "chance":
		chanceCmd(os.Args[2:])
	case "info":
		infoCmd(os.Args[2:])
	case "stats":
		statsCmd(os.Args[2:])
	case "version":
		fmt.Println(motifflow.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`MotifFlow - Gibbs Motif Sampling Tool

Usage:
  motifflow <command> [options]

Commands:
  find      Search a sequence set for a shared motif
  minlen    Minimum suggested sequence length for a significance threshold
  chance    Chance non-occurrence probability of a motif
  info      Show sequence information
  stats     Calculate sequence set statistics
  version   Show version information
  help      Show this help message

Use "motifflow <command> -h" for more information about a command.`)
}

// seqList collects repeated -seq flags.
type seqList []string

func (l *seqList) String() string {
	return strings.Join(*l, ",")
}

func (l *seqList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func loadSequences(file string, literals seqList) []*motifflow.Sequence {
	if file != "" {
		sequences, err := motifflow.ReadFASTA(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		return sequences
	}

	sequences := make([]*motifflow.Sequence, 0, len(literals))
	for _, bases := range literals {
		s, err := motifflow.NewSequence(bases)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating sequence: %v\n", err)
			os.Exit(1)
		}
		sequences = append(sequences, s)
	}
	return sequences
}

func findCmd(args []string) {
	fs := flag.NewFlagSet("find", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file with the sequence set")
	var literals seqList
	fs.Var(&literals, "seq", "Sequence string (repeatable)")
	motifLen := fs.Int("len", motifflow.DefaultConfig().MotifLen, "Motif length")
	patience := fs.Int("k", motifflow.DefaultConfig().Patience, "Convergence patience")
	samples := fs.Int("nsamples", motifflow.DefaultConfig().Samples, "Number of random restarts")
	seed := fs.Int64("seed", time.Now().UnixNano(), "Random seed")
	workers := fs.Int("workers", 0, "Concurrent chains (0 = all CPUs)")
	out := fs.String("out", "", "Write the report to a file instead of stdout")
	db := fs.String("db", "", "SQLite database to archive the run in")
	fs.Parse(args)

	if *file == "" && len(literals) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Either -file or -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	sequences := loadSequences(*file, literals)
	set, err := motifflow.NewSet(sequences)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sequence set: %v\n", err)
		os.Exit(1)
	}

	cfg := motifflow.DefaultConfig()
	cfg.MotifLen = *motifLen
	cfg.Patience = *patience
	cfg.Samples = *samples
	cfg.Seed = *seed
	cfg.Workers = *workers

	start := time.Now()
	result, err := motifflow.Search(set, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching for motif: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	fmt.Fprint(w, result.Format())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Offsets:")
	for i, off := range result.Offsets {
		id := set.Seq(i).ID
		if id == "" {
			id = fmt.Sprintf("sequence %d", i+1)
		}
		fmt.Fprintf(w, "  %s: %d\n", id, off)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exact consensus occurrences:")
	for i, s := range set.Sequences() {
		positions, err := s.FindMotifPositions(result.Motif)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  sequence %d: %v\n", i+1, positions)
	}

	fmt.Fprintf(w, "\n%s restarts, %s sampling steps, winning chain %d, %s elapsed\n",
		humanize.Comma(int64(cfg.Samples)),
		humanize.Comma(int64(result.Iterations)),
		result.Chain,
		elapsed.Round(time.Millisecond))

	if *db != "" {
		archiveRun(*db, set, cfg, result)
	}
}

func archiveRun(path string, set *motifflow.Set, cfg motifflow.Config, result *motifflow.Result) {
	ctx := context.Background()
	store := runstore.New(path)
	if err := store.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run := runstore.Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Motif:     result.Motif,
		Score:     result.Score,
		MotifLen:  cfg.MotifLen,
		Samples:   cfg.Samples,
		Sequences: set.Size(),
		SeqLen:    set.SeqLen(),
		Profile:   result.Profile.Format(),
	}
	if err := store.SaveRun(ctx, run); err != nil {
		fmt.Fprintf(os.Stderr, "Error archiving run: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Archived run %s\n", run.ID)
}

func minlenCmd(args []string) {
	fs := flag.NewFlagSet("minlen", flag.ExitOnError)
	p := fs.Float64("p", 0.01, "Probability threshold")
	n := fs.Int("n", 0, "Number of sequences")
	motifLen := fs.Int("len", motifflow.DefaultConfig().MotifLen, "Motif length")
	alphabet := fs.Int("alphabet", 4, "Alphabet size")
	fs.Parse(args)

	if *n < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n is required")
		fs.Usage()
		os.Exit(1)
	}

	length, err := motifflow.MinSequenceLength(*p, *n, *motifLen, *alphabet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Minimum suggested sequence length: %s\n", humanize.Comma(int64(length)))
}

func chanceCmd(args []string) {
	fs := flag.NewFlagSet("chance", flag.ExitOnError)
	n := fs.Int("n", 0, "Number of sequences")
	motifLen := fs.Int("len", motifflow.DefaultConfig().MotifLen, "Motif length")
	seqLen := fs.Int("seqlen", 0, "Sequence length")
	alphabet := fs.Int("alphabet", 4, "Alphabet size")
	fs.Parse(args)

	if *n < 1 || *seqLen < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n and -seqlen are required")
		fs.Usage()
		os.Exit(1)
	}

	prob, err := motifflow.NontargetProbability(*n, *motifLen, *seqLen, *alphabet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Chance non-occurrence probability: %.6g\n", prob)
}

func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file to analyze")
	var literals seqList
	fs.Var(&literals, "seq", "Sequence string (repeatable)")
	fs.Parse(args)

	if *file == "" && len(literals) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Either -file or -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	sequences := loadSequences(*file, literals)
	for i, s := range sequences {
		stats := motifflow.SequenceStats(s)
		fmt.Printf("Sequence %d:\n", i+1)
		if s.ID != "" {
			fmt.Printf("  ID: %s\n", s.ID)
		}
		fmt.Printf("  Length: %d bp\n", stats.Length)
		fmt.Printf("  GC Content: %.2f%%\n", stats.GCContent*100)
		fmt.Printf("  AT Content: %.2f%%\n", stats.ATContent*100)
		fmt.Printf("  Base Counts: A=%d, C=%d, G=%d, T=%d, N=%d\n",
			stats.ACount, stats.CCount, stats.GCount, stats.TCount, stats.NCount)
		fmt.Println()
	}
}

func statsCmd(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file to analyze")
	fs.Parse(args)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		fs.Usage()
		os.Exit(1)
	}

	sequences, err := motifflow.ReadFASTA(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	if len(sequences) == 0 {
		fmt.Fprintln(os.Stderr, "No sequences found in file")
		os.Exit(1)
	}

	stats, err := motifflow.SequenceSetStats(sequences)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Sequence Set Statistics")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Number of sequences: %d\n", stats.Count)
	fmt.Printf("Total bases: %s\n", humanize.Comma(int64(stats.TotalBases)))
	fmt.Printf("Length range: %d - %d bp\n", stats.MinLength, stats.MaxLength)
	fmt.Printf("Mean length: %.1f bp\n", stats.MeanLength)
	fmt.Printf("Median length: %d bp\n", stats.MedianLength)
	fmt.Printf("N50: %d bp\n", stats.N50)
	fmt.Printf("Mean GC content: %.2f%%\n", stats.MeanGCContent*100)
	fmt.Printf("Total ambiguous bases: %d\n", stats.TotalAmbiguous)
}
