package parents

import (
	"io"
	"os"
)

// maxEmptyReads bounds the number of consecutive (0, nil) reads tolerated
// from a single source before Read reports io.ErrNoProgress.
const maxEmptyReads = 100

// A MultiReader implements io.ReadCloser for the concatenation of a queue of
// sources. Data are read from the first source until it reports io.EOF, then
// the source is closed and removed and reading continues with the next.
//
// A source that reports an error other than io.EOF is not removed, so a later
// call to Read will try the same source again.
type MultiReader struct {
	srcs     []io.ReadCloser
	closeErr error // first error closing an exhausted source
}

// Open opens each of the specified paths for reading, in order, and returns a
// MultiReader over their contents. If any path cannot be opened, Open closes
// the files it already opened and returns the error from os.Open.
func Open(paths ...string) (*MultiReader, error) {
	srcs := make([]io.ReadCloser, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			for _, src := range srcs {
				src.Close()
			}
			return nil, err
		}
		srcs = append(srcs, f)
	}
	return &MultiReader{srcs: srcs}, nil
}

// NewMultiReader returns a MultiReader over the given sources, which are read
// in order. The MultiReader takes ownership of the sources, and closes each
// one when it is exhausted or when the reader is closed.
func NewMultiReader(srcs ...io.ReadCloser) *MultiReader {
	cp := make([]io.ReadCloser, len(srcs))
	copy(cp, srcs)
	return &MultiReader{srcs: cp}
}

// Len reports the number of sources that have not yet been exhausted.
func (m *MultiReader) Len() int { return len(m.srcs) }

// Read implements the io.Reader interface. A single call never returns data
// from more than one source. It reports io.EOF once all the sources have been
// exhausted, and on every call after that.
func (m *MultiReader) Read(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	empty := 0
	for len(m.srcs) != 0 {
		nr, err := m.srcs[0].Read(data)
		if nr > 0 {
			// The source may report io.EOF along with its last data. Hold the
			// EOF back; the next Read will see it again and pop the source.
			if err == io.EOF {
				err = nil
			}
			return nr, err
		} else if err == io.EOF {
			m.pop()
			empty = 0
			continue
		} else if err != nil {
			return 0, err
		}

		empty++
		if empty >= maxEmptyReads {
			return 0, io.ErrNoProgress
		}
	}
	return 0, io.EOF
}

// pop closes and removes the head of the queue.
func (m *MultiReader) pop() {
	if err := m.srcs[0].Close(); err != nil && m.closeErr == nil {
		m.closeErr = err
	}
	m.srcs[0] = nil
	m.srcs = m.srcs[1:]
}

// Close implements the io.Closer interface. It closes all the sources that
// have not yet been exhausted, and reports the first error from closing any
// source. After Close, any further reads report io.EOF.
func (m *MultiReader) Close() error {
	for len(m.srcs) != 0 {
		m.pop()
	}
	err := m.closeErr
	m.closeErr = nil
	return err
}
