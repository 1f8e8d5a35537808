package analyze

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments indicates the caller supplied no usable file path.
var ErrInvalidArguments = errors.New("invalid arguments")

// ErrInvalidUTF8 marks a line whose bytes do not form valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// OpenError reports a file that could not be opened for reading.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot read the file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// LineError reports a line that could not be read or decoded. Line is the
// zero-based line number within the file.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("could not read line no %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
