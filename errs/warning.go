package errs

// WarningCode enumerates the non-error conditions that attach to a
// finished analysis instead of aborting it: an approximation that had
// to be clamped, a cutoff that truncated results, a simplified PFH
// approximation.
type WarningCode int

const (
	// WarnClampedToOne marks a rare-event sum that exceeded 1 and was
	// clamped.
	WarnClampedToOne WarningCode = iota
	// WarnCutoffTruncated marks a product-size or count cutoff that
	// discarded results; the reported family is an over- or
	// under-approximation depending on the engine.
	WarnCutoffTruncated
	// WarnSimplifiedPFH marks the §4.H PFH figure as an
	// order-of-magnitude approximation only.
	WarnSimplifiedPFH
	// WarnNonCoherentMCUB marks an MCUB estimate computed on a
	// non-coherent tree, where the bound is not guaranteed
	// conservative.
	WarnNonCoherentMCUB
)

func (c WarningCode) String() string {
	switch c {
	case WarnClampedToOne:
		return "clamped-to-one"
	case WarnCutoffTruncated:
		return "cutoff-truncated"
	case WarnSimplifiedPFH:
		return "simplified-pfh"
	case WarnNonCoherentMCUB:
		return "non-coherent-mcub"
	default:
		return "unknown-warning"
	}
}

// Warning is a single accumulated, non-fatal condition.
type Warning struct {
	Code    WarningCode
	Detail  string
}

// Warnings is an ordered, append-only accumulator carried by an
// analysis from the moment it starts until the final report is built.
// It is not safe for concurrent use from multiple goroutines without
// external synchronization.
type Warnings []Warning

// Add appends a warning and returns the receiver, so call sites can
// chain w = w.Add(...).
func (w Warnings) Add(code WarningCode, detail string) Warnings {
	return append(w, Warning{Code: code, Detail: detail})
}

// Has reports whether any warning with the given code was recorded.
func (w Warnings) Has(code WarningCode) bool {
	for _, x := range w {
		if x.Code == code {
			return true
		}
	}
	return false
}
