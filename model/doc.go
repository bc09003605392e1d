// Package model holds the fault-tree data model shared by every
// downstream package: basic events, house events, gates and their
// connectives, probability expressions (distributions), and the
// per-analysis Settings record.
//
// model is deliberately dumb: it has no algorithms beyond expression
// evaluation. Everything that rewrites or analyzes the tree (pdag,
// preprocess, bdd, zbdd, mocus, probability, importance, uncertainty)
// consumes these types without mutating them. The one package that
// does mutate a Model is ccf: ccf.Expand, run by engine.New, rewrites
// CCF group members in place.
package model
