package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error returned by the analysis kernel, per the
// error-handling design: LogicError, ValidityError, IOError,
// AnalysisError, Cancelled. Warning is intentionally not a Kind — it
// is not an error at all, see Warning below.
type Kind int

const (
	// KindLogic marks a violated internal invariant (empty name,
	// malformed attribute). Never a
	// user-facing error; callers should treat it as a bug report.
	KindLogic Kind = iota
	// KindValidity marks a model that fails syntactic or semantic
	// validation: cycles, undefined references, out-of-range
	// probabilities, bad ATLEAST parameters.
	KindValidity
	// KindIO marks a failure to read or write a file, or to validate
	// a document against its schema.
	KindIO
	// KindAnalysis marks exhaustion of a cutoff where results would
	// be unsound, or a numerical failure while sampling a
	// distribution.
	KindAnalysis
)

func (k Kind) String() string {
	switch k {
	case KindLogic:
		return "logic"
	case KindValidity:
		return "validity"
	case KindIO:
		return "io"
	case KindAnalysis:
		return "analysis"
	default:
		return "unknown"
	}
}

// Error is a kinded, wrapped error. Use errors.Is/errors.As against
// the sentinel kinds below, or inspect Kind directly.
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "pdag.NewGate"
	Ref     string // offending identifier, if any (gate id, event id)
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("%s: %s [%s]: %s", e.Op, e.Kind, e.Ref, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is reports whether target is the sentinel for e's Kind, so that
// errors.Is(err, errs.ErrValidity) works across wrapped errors.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrLogic:
		return e.Kind == KindLogic
	case ErrValidity:
		return e.Kind == KindValidity
	case ErrIO:
		return e.Kind == KindIO
	case ErrAnalysis:
		return e.Kind == KindAnalysis
	}
	return false
}

// Sentinel errors, one per Kind, for errors.Is comparisons.
var (
	ErrLogic    = errors.New("errs: logic error")
	ErrValidity = errors.New("errs: validity error")
	ErrIO       = errors.New("errs: io error")
	ErrAnalysis = errors.New("errs: analysis error")

	// ErrCancelled is returned whenever a cooperative cancellation
	// flag or context is observed mid-analysis. It is not wrapped in
	// *Error because callers compare it directly against
	// context.Canceled-shaped cancellation the same way the standard
	// library does.
	ErrCancelled = errors.New("errs: analysis cancelled")
)

// Logicf builds a *Error of KindLogic.
func Logicf(op, ref, format string, args ...interface{}) *Error {
	return &Error{Kind: KindLogic, Op: op, Ref: ref, Message: fmt.Sprintf(format, args...)}
}

// Validityf builds a *Error of KindValidity.
func Validityf(op, ref, format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidity, Op: op, Ref: ref, Message: fmt.Sprintf(format, args...)}
}

// IOf builds a *Error of KindIO wrapping the underlying cause.
func IOf(op string, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindIO, Op: op, Message: fmt.Sprintf(format, args...), Wrapped: cause}
}

// Analysisf builds a *Error of KindAnalysis.
func Analysisf(op, ref, format string, args ...interface{}) *Error {
	return &Error{Kind: KindAnalysis, Op: op, Ref: ref, Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned by the kernel to the CLI exit codes
// from §6: 0 success, 1 input error, 2 analysis error, 3 internal
// error. nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindValidity, KindIO:
			return 1
		case KindAnalysis:
			return 2
		case KindLogic:
			return 3
		}
	}
	if errors.Is(err, ErrCancelled) {
		return 2
	}
	return 3
}
