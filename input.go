package parents

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// StdinOrFiles returns a reader for the concatenated contents of the named
// files. If no files are named, it returns a reader for os.Stdin instead.
// Closing the result does not close os.Stdin.
func StdinOrFiles(paths []string) (io.ReadCloser, error) { return Input(paths, os.Stdin) }

// Input returns a reader for the concatenated contents of the named files, or
// for stdin if paths is empty. In either case the result is a *MultiReader.
// Any error from opening the files is returned unchanged.
func Input(paths []string, stdin io.Reader) (io.ReadCloser, error) {
	if len(paths) == 0 {
		return NewMultiReader(io.NopCloser(stdin)), nil
	}
	mr, err := Open(paths...)
	if err != nil {
		return nil, err
	}
	return mr, nil
}

// ReadLines reads newline-delimited records from r until EOF. A trailing
// carriage return is removed from each record, and an unterminated final
// record is included. Records may be of any length.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return lines, nil
		} else if err != nil {
			return lines, err
		}
	}
}
