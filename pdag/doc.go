// Package pdag implements the normalized Boolean propagation DAG
// (§3, §4.A): a rooted, acyclic, structurally-hashed DAG of AND/OR/
// ATLEAST/XOR gates over literal-referenced basic/house events, with
// negation carried on edges rather than by NOT gates.
//
// A Graph owns an arena of Nodes addressed by integer index, mirroring
// the arena-and-handle idiom used throughout this codebase's ancestry:
// two structurally equal subgraphs always collapse to the same index
// (structural hashing / hash-consing), so node identity can be
// compared by index equality once a Graph is frozen.
package pdag
