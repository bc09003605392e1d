// Package report assembles the external-facing Report of §6: cut
// sets with their contributions, the top-event probability and the
// approximation mode that produced it, importance factors per basic
// event, Monte Carlo uncertainty statistics, and the SIL histogram.
// Sink is the output boundary — engine builds a Report and hands it to
// whatever Sink the CLI layer wired up (a console summary on stdout by
// default, YAML when an output file is given).
package report
