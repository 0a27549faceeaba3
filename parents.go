// Package parents lists the ancestors of filesystem paths, and provides a
// reader for the concatenation of several input files.
package parents

import (
	"io"
	"log"
	"strings"

	"bitbucket.org/creachadair/stringset"
)

// Components splits path into its components using Unix path rules. A leading
// run of slashes is reported as a single root component "/", and a leading
// "." is kept. Empty components and other "." components are dropped, and
// ".." components are kept as-is. An empty path has no components.
func Components(path string) []string {
	var out []string
	rest := path
	if strings.HasPrefix(path, "/") {
		out = append(out, "/")
		rest = strings.TrimLeft(path, "/")
	} else if path == "." || strings.HasPrefix(path, "./") {
		out = append(out, ".")
		rest = path[1:]
	}
	for _, c := range strings.Split(rest, "/") {
		if c != "" && c != "." {
			out = append(out, c)
		}
	}
	return out
}

// Expand returns the ancestors of path, shallowest first and ending with the
// path itself. The prefix ending at component i is included only if i > skip,
// so the root alone is never reported and each unit of skip drops one more
// leading ancestor. A negative skip is treated as zero.
//
// For example, Expand("/usr/bin/cat", 1) returns ["/usr/bin", "/usr/bin/cat"].
func Expand(path string, skip int) []string {
	if skip < 0 {
		skip = 0
	}
	var out []string
	var cur string
	for i, c := range Components(path) {
		cur = joinComponent(cur, c)
		if i > skip {
			out = append(out, cur)
		}
	}
	return out
}

func joinComponent(prefix, c string) string {
	if prefix == "" {
		return c
	} else if strings.HasSuffix(prefix, "/") {
		return prefix + c
	}
	return prefix + "/" + c
}

// ListOptions control the behavior of List.
type ListOptions struct {
	// The number of leading ancestors to omit for each path (see Expand).
	Skip int

	// If true, an ancestor already reported for an earlier path is omitted.
	Unique bool

	// If no paths are given, paths are read one per line from Stdin.
	// If Stdin == nil, no paths are read.
	Stdin io.Reader

	// If set, debug logs are written here.
	Logger *log.Logger
}

func (o *ListOptions) logf(msg string, args ...interface{}) {
	if o != nil && o.Logger != nil {
		o.Logger.Printf(msg, args...)
	}
}

// List expands each of paths and returns all the results joined by newlines,
// without a trailing newline. If paths is empty, the paths are read from the
// input selected by Input with no file names.
func List(paths []string, opts *ListOptions) (string, error) {
	if opts == nil {
		opts = new(ListOptions)
	}
	if len(paths) == 0 && opts.Stdin != nil {
		in, err := Input(nil, opts.Stdin)
		if err != nil {
			return "", err
		}
		defer in.Close()
		paths, err = ReadLines(in)
		if err != nil {
			return "", err
		}
		opts.logf("Read %d paths from input", len(paths))
	}

	var out []string
	seen := stringset.New()
	for _, path := range paths {
		anc := Expand(path, opts.Skip)
		opts.logf("Path %q: %d ancestors", path, len(anc))
		for _, a := range anc {
			if opts.Unique {
				if seen.Contains(a) {
					continue
				}
				seen.Add(a)
			}
			out = append(out, a)
		}
	}
	return strings.Join(out, "\n"), nil
}
