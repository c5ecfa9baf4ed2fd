package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. The typed errors below carry
// the context (raw output, offending line) and answer Is for their sentinel.
var (
	ErrNoDependencyTree = errors.New("no dependency tree found")
	ErrMalformedLine    = errors.New("malformed dependency line")
	ErrBrokenHierarchy  = errors.New("broken tree hierarchy")
	ErrUpstreamFailure  = errors.New("upstream build failed")
)

// NoTreeFoundError means the build output contains no dependency tree at
// all. It is fatal for the analysis; Output carries the raw text so callers
// can surface it verbatim.
type NoTreeFoundError struct {
	Output string
}

func (e *NoTreeFoundError) Error() string {
	return "no dependency tree found in build output"
}

func (e *NoTreeFoundError) Is(target error) bool {
	return target == ErrNoDependencyTree
}

// UpstreamFailureError means the build tool itself failed before producing
// a tree. Output carries the raw text verbatim; it is never parsed.
type UpstreamFailureError struct {
	Output string
}

func (e *UpstreamFailureError) Error() string {
	return "upstream build failed before producing a dependency tree"
}

func (e *UpstreamFailureError) Is(target error) bool {
	return target == ErrUpstreamFailure
}

// MalformedLineError records a line whose coordinates could not be split.
// It is recoverable: the analysis continues with a placeholder node and the
// issue is kept on the report.
type MalformedLineError struct {
	LineNumber int
	Line       string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed dependency line %d: %q", e.LineNumber, e.Line)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// BrokenHierarchyError means a tree line's depth has no parent on the
// assembly stack. The tree cannot be trusted, so the analysis stops.
type BrokenHierarchyError struct {
	LineNumber int
	Line       string
}

func (e *BrokenHierarchyError) Error() string {
	return fmt.Sprintf("broken tree hierarchy at line %d: %q has no parent", e.LineNumber, e.Line)
}

func (e *BrokenHierarchyError) Is(target error) bool {
	return target == ErrBrokenHierarchy
}
