// Package textsource reads the text to be encoded.
package textsource

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinPath names standard input.
const StdinPath = "-"

// ErrTooLarge is returned when the source exceeds the configured byte limit.
var ErrTooLarge = errors.New("text source exceeds size limit")

// SourceUnavailableError reports that the named text source could not be
// read.  No text is returned alongside it.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("cannot read text source %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// Read returns the whole content of path, or of stdin when path is StdinPath.
// A positive maxBytes bounds the size of the content.
func Read(path string, maxBytes int64, stdin io.Reader) (string, error) {
	if path == StdinPath {
		return ReadFrom(stdin, "<stdin>", maxBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &SourceUnavailableError{Path: path, Err: err}
	}
	defer f.Close()

	return ReadFrom(f, path, maxBytes)
}

// ReadFrom returns the whole content of r, labelled name in errors.
func ReadFrom(r io.Reader, name string, maxBytes int64) (string, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return "", &SourceUnavailableError{Path: name, Err: err}
	}
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return "", &SourceUnavailableError{
			Path: name,
			Err:  fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxBytes),
		}
	}
	return string(content), nil
}
