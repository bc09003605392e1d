// Package importance computes the per-basic-event importance measures
// of §4.G: the Birnbaum measure (MIF) and Criticality Importance
// Factor (CIF) from a BDD's two cofactors, the Fussell-Vesely measure
// (DIF) from the ZBDD cut-set family, and the risk-achievement and
// risk-reduction worths (RAW, RRW) from the same two cofactor
// evaluations MIF already needs.
//
// When only a ZBDD cut-set family is available (no BDD was compiled,
// e.g. after an MCUB-only run) ApproximateFromCutSets falls back to
// summing cut-set probabilities, the same approximation RareEvent uses
// for the top-event probability itself.
package importance
