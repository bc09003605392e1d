// Package bdd implements the reduced ordered binary decision diagram
// engine of §4.C: a single shared terminal node, attributed
// (complement) edges, a unique-table for canonicity, an apply-cache
// for memoized binary operations, and a probability-cache invalidated
// per analysis.
//
// The interface shape (an Apply covering AND/OR/XOR/AND-NOT with NOT
// given by Ref.Not, an
// Ite short-circuiting the three-operation if-then-else, Node handles
// as opaque references) follows the rudd BDD package's BDD interface;
// the canonicalization rule — complement bits live on the high edge
// and on the edge handed back to a caller, never on a node's low
// edge — is this package's own choice, consistent with §3's
// "complement-edge flag on high only".
package bdd
