// Program catfiles copies the concatenated contents of the named files, or of
// stdin if no files are named, to stdout or to an output file.
//
// Usage:
//    catfiles [-o output [-tee]] [file...]
//
// All the named files are opened before anything is copied; if any of them
// cannot be opened, nothing is written. Default flags may be set in
// $CATFILES_FLAGS.
//
package main

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"

	"github.com/creachadair/parents"
)

var (
	outputPath = flag.String("o", "", "Write output atomically to this file")
	doTee      = flag.Bool("tee", false, "Also copy output to stdout (with -o)")
)

func main() {
	env, err := parents.EnvFlags("CATFILES_FLAGS")
	if err != nil {
		log.Fatalf("Default flags: %v", err)
	}
	flag.CommandLine.Parse(append(env, os.Args[1:]...))

	in, err := parents.StdinOrFiles(flag.Args())
	if err != nil {
		log.Fatalf("Opening input: %v", err)
	}
	defer in.Close()

	if *outputPath == "" {
		if _, err := io.Copy(os.Stdout, in); err != nil {
			log.Fatalf("Copying input: %v", err)
		}
		return
	}

	var buf bytes.Buffer
	var w io.Writer = &buf
	if *doTee {
		w = io.MultiWriter(&buf, os.Stdout)
	}
	if _, err := io.Copy(w, in); err != nil {
		log.Fatalf("Reading input: %v", err)
	}
	if err := parents.WriteOutput(*outputPath, os.Stdout, buf.Bytes()); err != nil {
		log.Fatalf("Writing output: %v", err)
	}
}
