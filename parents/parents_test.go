package main

import (
	"flag"
	"math"
	"testing"

	"github.com/creachadair/parents"
)

func TestSkipValue(t *testing.T) {
	tests := []struct {
		input uint
		want  int
	}{
		{0, 0},
		{3, 3},
		{uint(math.MaxInt), math.MaxInt},
		{math.MaxUint, math.MaxInt},
	}
	for _, test := range tests {
		if got := skipValue(test.input); got != test.want {
			t.Errorf("skipValue(%d): got %d, want %d", test.input, got, test.want)
		}
	}

	// A huge skip count suppresses every ancestor.
	if got := parents.Expand("/usr/bin/cat", skipValue(math.MaxUint)); len(got) != 0 {
		t.Errorf("Expand with huge skip: got %q, want none", got)
	}
}

func TestShortSkipFlag(t *testing.T) {
	defer func() { *skipCount = 0 }()
	for _, args := range [][]string{{"-s", "3"}, {"-skip", "3"}} {
		*skipCount = 0
		fs := flag.NewFlagSet("parents", flag.ContinueOnError)
		flag.VisitAll(func(f *flag.Flag) { fs.Var(f.Value, f.Name, f.Usage) })
		if err := fs.Parse(append(args, "/usr/bin/cat")); err != nil {
			t.Fatalf("Parse %q: %v", args, err)
		}
		if *skipCount != 3 {
			t.Errorf("Parse %q: skip = %d, want 3", args, *skipCount)
		}
		if got := fs.Args(); len(got) != 1 || got[0] != "/usr/bin/cat" {
			t.Errorf("Parse %q: args = %q, want [/usr/bin/cat]", args, got)
		}
	}
}
