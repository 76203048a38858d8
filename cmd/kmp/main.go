// Command kmp scans lines of standard input for a fixed byte pattern.
//
// Usage:
//
//	kmp [OPTIONS] PATTERN < text
//
// Each input line is searched independently; the leftmost occurrence offset
// is printed as "match at N", absence as "no match". The exit status is 0
// when every line matched, 1 when any line did not, and 2 on usage or
// compile errors.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/coregx/kmp"
	"github.com/coregx/kmp/meta"
)

type Opts struct {
	Verbose bool `short:"v" long:"verbose" description:"print automaton details and per-scan timing"`
	MaxLine int  `long:"max-line" description:"line length cap in bytes; longer lines are truncated" value-name:"N" default:"4096"`
}

const (
	exitAllMatched = 0
	exitSomeMissed = 1
	exitUsage      = 2
)

func main() {
	var opts Opts

	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		if flags.WroteHelp(err) {
			os.Exit(exitAllMatched)
		}
		os.Exit(exitUsage)
	}

	os.Exit(run(opts, args, os.Stdin, os.Stdout, os.Stderr))
}

func run(opts Opts, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: kmp [OPTIONS] PATTERN < text")
		return exitUsage
	}

	automaton, err := kmp.Compile([]byte(args[0]))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if opts.Verbose {
		printSummary(stderr, automaton)
	}

	code := exitAllMatched
	reader := NewLineReader(stdin, opts.MaxLine)
	for reader.Scan() {
		if reader.Truncated() {
			fmt.Fprintf(stderr, "kmp: line %d truncated to %d bytes\n",
				reader.LineNumber(), opts.MaxLine)
		}

		start := time.Now()
		idx := automaton.FindIndex(reader.Line())
		elapsed := time.Since(start)

		switch {
		case idx >= 0 && opts.Verbose:
			fmt.Fprintf(stdout, "match at %d (%v)\n", idx, elapsed)
		case idx >= 0:
			fmt.Fprintf(stdout, "match at %d\n", idx)
		case opts.Verbose:
			fmt.Fprintf(stdout, "no match (%v)\n", elapsed)
		default:
			fmt.Fprintln(stdout, "no match")
		}

		if idx < 0 {
			code = exitSomeMissed
		}
	}
	if err := reader.Err(); err != nil {
		fmt.Fprintln(stderr, "kmp: read error:", err)
		return exitUsage
	}

	return code
}

// printSummary writes the compiled automaton's vitals to stderr so verbose
// output stays separable from the per-line results on stdout.
func printSummary(w io.Writer, a *kmp.Automaton) {
	strategy := a.Strategy()
	fmt.Fprintf(w, "pattern:  %q (%d bytes)\n", a.String(), len(a.Pattern()))
	fmt.Fprintf(w, "strategy: %s\n", strategy)
	fmt.Fprintf(w, "reason:   %s\n", meta.StrategyReason(strategy, a.Pattern(), kmp.DefaultConfig()))
	fmt.Fprintf(w, "memory:   %d bytes\n", a.MemoryUsage())
	if err := a.Verify(); err != nil {
		fmt.Fprintf(w, "verify:   %v\n", err)
	}
}
