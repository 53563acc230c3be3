// Command seqgrep searches files (or stdin) for a pattern and prints the
// byte offset of each match. The matcher is constructed once and reused
// across all inputs, so pattern analysis is paid a single time.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhr3/seqalg/hexcodec"
	"github.com/mhr3/seqalg/search"
)

type matcher interface {
	Index(haystack []byte) int
}

var (
	algo       string
	hexPattern bool
	allMatches bool
	countOnly  bool

	matched bool
)

var rootCmd = &cobra.Command{
	Use:   "seqgrep [flags] <pattern> [file ...]",
	Short: "Substring search with precomputed pattern tables",
	Long: `seqgrep searches its inputs for a pattern and prints one
"file:offset" line per match. With no files it reads standard input.

Algorithms:
  bm        Boyer-Moore (bad-character + good-suffix, linear worst case)
  horspool  Boyer-Moore-Horspool (simpler tables, fast on average)
  kmp       Knuth-Morris-Pratt (linear, alphabet-independent)

Examples:
  seqgrep needle haystack.txt
  seqgrep --algo kmp --all needle *.log
  seqgrep --hex DEADBEEF core.dump`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&algo, "algo", "a", "bm", "search algorithm: bm, horspool or kmp")
	rootCmd.Flags().BoolVar(&hexPattern, "hex", false, "interpret the pattern as hex-encoded bytes")
	rootCmd.Flags().BoolVar(&allMatches, "all", false, "report every occurrence, overlapping included")
	rootCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print only a match count per input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "seqgrep: %v\n", err)
		os.Exit(2)
	}
	if !matched {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	pattern := []byte(args[0])
	if hexPattern {
		decoded, err := hexcodec.Decode[byte](args[0])
		if err != nil {
			return fmt.Errorf("pattern: %w", err)
		}
		pattern = decoded
	}

	m, err := newMatcher(algo, pattern)
	if err != nil {
		return err
	}

	files := args[1:]
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		report(cmd, "(standard input)", offsets(m, data))
		return nil
	}

	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		report(cmd, name, offsets(m, data))
	}
	return nil
}

func newMatcher(algo string, pattern []byte) (matcher, error) {
	switch algo {
	case "bm":
		return search.NewBoyerMoore(pattern), nil
	case "horspool":
		return search.NewHorspool(pattern), nil
	case "kmp":
		return search.NewKnuthMorrisPratt(pattern), nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (want bm, horspool or kmp)", algo)
}

// offsets collects match positions. Matches may overlap: the scan resumes
// one symbol past each match start, so the empty pattern terminates too.
func offsets(m matcher, data []byte) []int {
	var offs []int
	for base := 0; base <= len(data); {
		i := m.Index(data[base:])
		if i < 0 {
			break
		}
		offs = append(offs, base+i)
		if !allMatches {
			break
		}
		base += i + 1
	}
	return offs
}

func report(cmd *cobra.Command, name string, offs []int) {
	if len(offs) > 0 {
		matched = true
	}
	if countOnly {
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d\n", name, len(offs))
		return
	}
	for _, off := range offs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d\n", name, off)
	}
}
