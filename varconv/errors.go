package varconv

import (
	"fmt"

	"github.com/gateboxlab/variant"
)

// ConversionError reports a conversion-context failure: the configured
// maximum depth was exceeded, or a registered converter explicitly
// refused to handle a value.
type ConversionError struct {
	Depth int
	msg   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("varconv: conversion error at depth %d: %s", e.Depth, e.msg)
}

// Is reports whether target is the package's shared error sentinel.
func (e *ConversionError) Is(target error) bool { return target == variant.Error }

func newConversionError(depth int, msg string) *ConversionError {
	return &ConversionError{Depth: depth, msg: msg}
}
