// Package engine drives the analysis lifecycle of §4's state machine:
// Built -> Preprocessed -> Compiled -> Analyzed -> Reported. It owns
// no algorithm of its own; it sequences pdag, preprocess, bdd, zbdd,
// mocus, ccf, probability, importance and uncertainty, and assembles
// the result into a report.Report.
//
// States move one way. A failed transition out of Compiled (cutoff
// exhaustion) still reaches Analyzed, carrying a warning instead of
// aborting, the same way preprocess.Run treats a pass that changes
// nothing as a fixpoint rather than an error.
package engine
