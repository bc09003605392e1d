// Package scram is a probabilistic risk analysis kernel: fault-tree
// and event-tree preprocessing, binary and zero-suppressed decision
// diagram compilation, MOCUS cut-set enumeration, probability and
// importance calculation, common-cause failure expansion, and Monte
// Carlo uncertainty/SIL analysis.
//
// The kernel is organized as one package per stage of the pipeline:
//
//	model/       — the in-memory fault-tree representation and Settings
//	pdag/        — the frozen propagation DAG built from a model.Model
//	preprocess/  — coalescing, distribution and module-detection passes
//	ccf/         — common-cause failure group expansion
//	bdd/         — the canonical reduced BDD with complement edges
//	zbdd/        — the zero-suppressed decision diagram (cut-set families)
//	mocus/       — top-down ZBDD-backed cut-set expansion with a cutoff
//	probability/ — exact, rare-event and MCUB top-event probability
//	importance/  — MIF/CIF/DIF/RAW/RRW per basic event
//	uncertainty/ — Monte Carlo propagation and the SIL histogram
//	report/      — the external-facing Report and its output sinks
//	engine/      — the Built->Preprocessed->Compiled->Analyzed->Reported
//	               state machine orchestrating every stage above
//	modelio/     — a minimal YAML model-fixture loader
//
// cmd/scram is the thin CLI shell over engine.Engine; it holds no
// analysis logic of its own.
package scram
