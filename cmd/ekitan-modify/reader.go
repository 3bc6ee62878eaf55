package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// stdinPath selects standard input instead of a file.
const stdinPath = "-"

// reader loads a route dump from a file path or standard input.
// This is CLI-specific logic and is not part of the transducer.
type reader struct {
	fs    afero.Fs
	stdin io.Reader
}

// newReader creates a reader over fsys; "-" reads from stdin
func newReader(fsys afero.Fs, stdin io.Reader) *reader {
	return &reader{fs: fsys, stdin: stdin}
}

// read returns the raw, still encoded bytes of the input.
func (r *reader) read(path string) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
