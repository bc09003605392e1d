// Package probability implements the top-event probability calculator
// of §4.F: exact evaluation through a BDD, plus the two approximations
// (rare-event, MCUB) backed by a ZBDD product family, and the
// time-dependent mission-mode sampler that walks mission time at N+1
// equally spaced points.
//
// Exact and approximate calculators share one Result/Warnings shape so
// callers (package report, package engine) don't need to branch on
// which mode produced a value.
package probability
