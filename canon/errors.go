package canon

import "fmt"

type ErrorKind int

const (
	// The axis limit table or unit configuration is inconsistent.
	KindConfig ErrorKind = iota
	// A curve fit could not converge.
	KindGeometry
	// An index or argument was out of range.
	KindArgument
	// A side file could not be opened or written.
	KindFile
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindGeometry:
		return "geometry"
	case KindArgument:
		return "argument"
	case KindFile:
		return "file"
	}
	return "unknown"
}

// Error is a structured operator error. Formatting is deferred to the
// reporting boundary; callers inspect Kind and the parameters.
type Error struct {
	Kind   ErrorKind
	Op     string
	Axis   string
	Detail string
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s", e.Kind, e.Op)
	if e.Axis != "" {
		s += fmt.Sprintf(" (axis %s)", e.Axis)
	}
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

func configError(op, axis, detail string) *Error {
	return &Error{Kind: KindConfig, Op: op, Axis: axis, Detail: detail}
}

func geometryError(op, detail string) *Error {
	return &Error{Kind: KindGeometry, Op: op, Detail: detail}
}

func argumentError(op, detail string) *Error {
	return &Error{Kind: KindArgument, Op: op, Detail: detail}
}
