package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// YAMLSink serializes a Report as YAML to an underlying writer — the
// machine-readable output format named in §6.
type YAMLSink struct{ W io.Writer }

func (s YAMLSink) Write(r *Report) error {
	enc := yaml.NewEncoder(s.W)
	defer enc.Close()
	return enc.Encode(r)
}

// ConsoleSink prints a short, colorized human summary: the top-event
// probability, cut-set count, and any warnings in yellow (errors would
// have aborted the run before a Report ever exists).
type ConsoleSink struct{ W io.Writer }

func (s ConsoleSink) Write(r *Report) error {
	bold := color.New(color.Bold).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	if _, err := fmt.Fprintf(s.W, "%s  %s = %.6g (%s), %d cut sets\n",
		bold(r.ModelName), bold("P(top)"), r.TopEventProbability, r.Approximation, len(r.CutSets)); err != nil {
		return err
	}
	for _, f := range r.SILFractions {
		if _, err := fmt.Fprintf(s.W, "  %s %.1f%% of mission time\n", bold(f.Class.String()+":"), f.Fraction*100); err != nil {
			return err
		}
	}
	for _, w := range r.Warnings {
		if _, err := fmt.Fprintf(s.W, "  %s %s\n", warn("warning:"), w); err != nil {
			return err
		}
	}
	return nil
}
