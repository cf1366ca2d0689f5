package sated

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJSON is returned by Decode when the input is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Build-time errors.
var (
	// ErrDuplicateTag is returned by Build when two cases share a tag.
	ErrDuplicateTag = errors.New("duplicate tag")

	// ErrMultipleFallbacks is returned by Build when more than one
	// fallback case was registered.
	ErrMultipleFallbacks = errors.New("multiple fallback cases")
)

// Selector-resolution errors. These are returned only when the registry has
// no fallback; with a fallback registered, the same situations route to the
// fallback decoder instead.
var (
	// ErrNotAMapping is returned when the input is not a JSON object.
	ErrNotAMapping = errors.New("input is not a JSON object")

	// ErrMissingTagField is returned when the tag field is absent.
	ErrMissingTagField = errors.New("missing tag field")

	// ErrTagNotAString is returned when the tag field holds a non-string
	// value. With WithStrictTagType this is returned even when a fallback
	// exists.
	ErrTagNotAString = errors.New("tag field is not a string")

	// ErrUnknownTag is the sentinel wrapped by UnknownTagError.
	ErrUnknownTag = errors.New("unknown tag")
)

// DuplicateTagError reports which tag was registered twice.
type DuplicateTagError struct {
	Tag string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("duplicate tag %q", e.Tag)
}

func (e *DuplicateTagError) Unwrap() error { return ErrDuplicateTag }

// UnknownTagError reports a tag value that names no registered case.
// Known lists every registered tag for diagnostics.
type UnknownTagError struct {
	Value string
	Known []string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag %q, expected one of: %s", e.Value, strings.Join(e.Known, ", "))
}

func (e *UnknownTagError) Unwrap() error { return ErrUnknownTag }

// ContentError reports that a tag matched a registered case but the case's
// content decoder failed. It wraps the decoder's error verbatim. A
// ContentError is always terminal: the fallback is never consulted for it.
type ContentError struct {
	Index int
	Tag   string
	Err   error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("decode content for tag %q: %v", e.Tag, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }

// FallbackError reports that the fallback decoder itself failed. A fallback
// type that accepts any JSON value makes this unreachable in practice.
type FallbackError struct {
	Err error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("decode fallback: %v", e.Err)
}

func (e *FallbackError) Unwrap() error { return e.Err }
