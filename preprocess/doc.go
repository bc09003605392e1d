// Package preprocess implements the §4.B rewrite pipeline applied to
// a frozen pdag.Graph. Connective normalization already happens
// inline while pdag.Build constructs the graph from a model.Model
// (there is no reason to allocate a node for a connective that never
// survives to the decision-diagram engines); what remains for this
// package is the whole-graph rewriting that needs a second pass over
// an already-built DAG: De Morgan literal sinking, chain coalescing,
// absorption, module extraction and bounded gate decomposition.
//
// De Morgan sinking runs first and once: pdag.Build's normalization of
// NAND/NOR/IFF/IMPLY/NOT-of-a-gate leaves the complement sitting on
// the edge into the AND/OR/XOR node it built, and every pass after
// this one — as well as bdd.Build, zbdd.Build and mocus.Expand —
// assumes that can no longer happen.
//
// Every pass is a pure function from one frozen pdag.Graph to another:
// none of them mutate their input, matching pdag's frozen/immutable
// contract. Run re-applies the rewriting passes to a fixpoint
// (bounded by Config.MaxPasses), mirroring the optimizer-pipeline
// shape used elsewhere in this codebase's lineage for pass-ordered DAG
// rewriting.
package preprocess
