// Package zbdd implements the zero-suppressed decision diagram engine
// of §4.D: a canonical representation of a family of products (sets
// of signed basic-event literals), with the classical zero-suppression
// rule (a node whose "then" branch is the empty family collapses to
// its "else" branch), set algebra (union, intersection, difference,
// product), minimal-subset extraction, and the two non-exact
// probability modes (rare-event, MCUB).
//
// The NodeTable/Build shape mirrors the go-zdd package's NodeID +
// NodeTable + context-aware Build idiom; the set-algebra recursions
// themselves follow the standard ZDD algorithms (Minato 1993) that
// idiom was built to host.
package zbdd
