// Package parsererror defines the typed errors surfaced by loading and aggregation.
package parsererror

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrEmptyInput is matched by every EmptyInputError through errors.Is.
var ErrEmptyInput = errors.New("empty input")

// ParseError represents a malformed field on a specific input line.
type ParseError struct {
	Line  int    // 1-based line number in the input
	Raw   string // the offending line as read
	Field string
	Value string
	Err   error
}

// Error omits the value part when no single field value was isolated,
// as for record-level CSV errors.
func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("line %d: failed to parse %s in %q: %v", e.Line, e.Field, e.Raw, e.Err)
	}
	return fmt.Sprintf("line %d: failed to parse %s='%s' in %q: %v",
		e.Line, e.Field, e.Value, e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FileNotFoundError reports a missing input path.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// Is lets callers match with errors.Is(err, fs.ErrNotExist).
func (e *FileNotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// EmptyInputError is returned when an operation needs at least one record
// or aggregation entry and got none.
type EmptyInputError struct {
	Operation string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: no entries to evaluate", e.Operation)
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}
