// Program parents prints every ancestor of the paths provided, e.g.
// /usr/bin/tail => /usr /usr/bin /usr/bin/tail
//
// Usage:
//    parents [-skip n] [-unique] [-o output] path...
//    find . -type f | parents -skip 1
//
// If no paths are given, they are read one per line from stdin. Default
// flags may be set in $PARENTS_FLAGS.
//
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/creachadair/parents"
	"golang.org/x/term"
)

var (
	configPath = flag.String("config", os.Getenv("PARENTS_CONFIG"), "Configuration file")
	skipCount  = flag.Uint("skip", 0, "Do not print the first n ancestors of each path")
	doUnique   = flag.Bool("unique", false, "Print each ancestor only once")
	outputPath = flag.String("o", "", "Write output to this file instead of stdout")
	debugLog   = flag.Bool("log", false, "Enable debug logging")
)

func init() { flag.UintVar(skipCount, "s", 0, "Short for -skip") }

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [path...]\n\n"+
			"Print every parent of the paths provided, e.g. /usr/bin/tail => /usr /usr/bin /usr/bin/tail\n"+
			"If zero paths are provided, reads paths from stdin.\n\nOptions:\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	env, err := parents.EnvFlags("PARENTS_FLAGS")
	if err != nil {
		log.Fatalf("Default flags: %v", err)
	}
	flag.CommandLine.Parse(append(env, os.Args[1:]...))

	var cfg parents.Config
	if err := parents.LoadConfig(*configPath, &cfg); err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	applyConfig(&cfg)

	opts := &parents.ListOptions{
		Skip:   skipValue(*skipCount),
		Unique: *doUnique,
	}
	if *debugLog {
		opts.Logger = log.New(os.Stderr, "[parents] ", log.LstdFlags)
	}
	if flag.NArg() == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "(reading paths from stdin, one per line)")
		}
		opts.Stdin = os.Stdin
	}

	out, err := parents.List(flag.Args(), opts)
	if err != nil {
		log.Fatalf("Reading paths: %v", err)
	}
	if err := parents.WriteOutput(*outputPath, os.Stdout, []byte(out+"\n")); err != nil {
		log.Fatalf("Writing output: %v", err)
	}
}

// applyConfig sets flags not given on the command line from cfg.
func applyConfig(cfg *parents.Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["skip"] && !set["s"] {
		*skipCount = uint(cfg.Skip)
	}
	if !set["unique"] {
		*doUnique = cfg.Unique
	}
	if !set["o"] && cfg.Output != "" {
		*outputPath = cfg.Output
	}
	if !set["log"] {
		*debugLog = cfg.DebugLog
	}
}

// skipValue converts a skip count to an int, saturating at math.MaxInt.
func skipValue(n uint) int {
	if uint64(n) > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
