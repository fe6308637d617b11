package vartext

import (
	"fmt"

	"github.com/gateboxlab/variant"
)

// ParseError reports a lexical or structural problem found while parsing
// source text, located by a 1-based line and 0-based column, matching the
// convention most text editors display.
type ParseError struct {
	Line   int
	Column int
	Offset int64
	msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vartext: parse error at line %d, column %d: %s", e.Line, e.Column, e.msg)
}

// Is reports whether target is the package's shared error sentinel, so
// callers can write errors.Is(err, variant.Error) without caring which
// concrete error type fired.
func (e *ParseError) Is(target error) bool { return target == variant.Error }

func newParseError(line, column int, offset int64, msg string) *ParseError {
	return &ParseError{Line: line, Column: column, Offset: offset, msg: msg}
}

// FormatError reports a problem encountered while emitting a Variant tree:
// the configured maximum depth was exceeded, or a non-finite float was
// encountered under SpecialFloatThrow.
type FormatError struct {
	Depth int
	msg   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("vartext: format error at depth %d: %s", e.Depth, e.msg)
}

// Is reports whether target is the package's shared error sentinel.
func (e *FormatError) Is(target error) bool { return target == variant.Error }

func newFormatError(depth int, msg string) *FormatError {
	return &FormatError{Depth: depth, msg: msg}
}
