// Package errs defines the error taxonomy shared by every analysis
// package: LogicError, ValidityError, IOError, AnalysisError and the
// cooperative-cancellation sentinel ErrCancelled, plus an accumulating
// Warnings list that rides along with a finished analysis instead of
// aborting it.
//
// Propagation policy (mirrors the design notes): the loader (out of
// scope for this module) raises ValidityError and stops; the core
// raises LogicError only on assertion-class invariant violations;
// engines never swallow errors returned by sub-engines. Warnings are
// not errors — they are collected and attached to the final report.
package errs
