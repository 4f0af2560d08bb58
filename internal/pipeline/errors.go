package pipeline

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the failure class of a pipeline run. Every kind
// maps to a distinct process exit code so automation can branch on it.
type ErrorKind int

const (
	KindNotARepository ErrorKind = iota + 1
	KindMissingDependency
	KindInvalidConfiguration
	KindNoEvidence
	KindMutuallyExclusiveOptions
	KindBackendFailure
	KindRefinementFailure
	KindCommitFailure
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindNotARepository:
		return "not a repository"
	case KindMissingDependency:
		return "missing dependency"
	case KindInvalidConfiguration:
		return "invalid configuration"
	case KindNoEvidence:
		return "no evidence"
	case KindMutuallyExclusiveOptions:
		return "mutually exclusive options"
	case KindBackendFailure:
		return "backend failure"
	case KindRefinementFailure:
		return "refinement failure"
	case KindCommitFailure:
		return "commit failure"
	default:
		return "unknown"
	}
}

// exitCode returns the process exit code for the kind (2..9; 1 is the
// generic failure code)
func (k ErrorKind) exitCode() int {
	return 1 + int(k)
}

// Error is a terminal pipeline failure carrying its kind and the step
// that produced it
type Error struct {
	Kind ErrorKind
	Step string
	Err  error
}

// Error returns the formatted message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Step, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Step)
}

// Unwrap returns the wrapped cause
func (e *Error) Unwrap() error {
	return e.Err
}

// failf creates a pipeline Error with a formatted step description
func failf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Step: fmt.Sprintf(format, args...)}
}

// wrap creates a pipeline Error around a cause
func wrap(kind ErrorKind, step string, err error) *Error {
	return &Error{Kind: kind, Step: step, Err: err}
}

// ExitCode maps an error to the process exit code: a distinct code per
// error kind, 1 for anything untyped, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind.exitCode()
	}
	return 1
}
