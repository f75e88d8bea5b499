package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed unit of work. No kind aborts a build.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindMissingResource: an expected file or directory is absent.
	KindMissingResource
	// KindCompilation: a template or partial failed to compile or execute.
	KindCompilation
	// KindIO: a read or write failed.
	KindIO
	// KindInvalidData: a data file exists but cannot be used.
	KindInvalidData
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingResource:
		return "missing resource"
	case KindCompilation:
		return "compilation failure"
	case KindIO:
		return "io failure"
	case KindInvalidData:
		return "invalid data"
	default:
		return "unknown"
	}
}

// BuildError is the typed result of a loader, compiler or writer.
type BuildError struct {
	Kind ErrorKind
	Unit string // template, partial or file the error belongs to
	Err  error
}

func (e *BuildError) Error() string {
	if e.Unit == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Unit, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// NewError wraps err as a BuildError of the given kind.
func NewError(kind ErrorKind, unit string, err error) *BuildError {
	return &BuildError{Kind: kind, Unit: unit, Err: err}
}

// KindOf returns the kind of the first BuildError in err's chain.
func KindOf(err error) ErrorKind {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}
