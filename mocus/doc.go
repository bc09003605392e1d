// Package mocus implements the top-down MOCUS-style cut-set expansion
// of §4.E: a bottom-up translation of a preprocessed PDAG into a ZBDD
// product family (AND nodes combine by zbdd.Product, OR nodes combine
// by zbdd.Union), interleaved with periodic minimization and a
// product-size cutoff so the intermediate family never grows past
// what the caller is willing to pay for.
//
// With an unbounded cutoff the result is exactly zbdd.Minimize applied
// to zbdd.Build's output; MOCUS exists because minimizing eagerly
// after every gate, rather than once at the end, keeps the
// intermediate ZBDDs small enough that the cutoff can actually bite
// before memory does.
//
// The iterative, context-cancellation-aware walk follows a familiar
// shape: a single exported entry point threading a context.Context
// through a worklist loop, checking ctx.Err() between units of work
// instead of only at the boundary.
package mocus
