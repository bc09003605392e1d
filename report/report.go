package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/importance"
	"github.com/scram-ng/scram-core/model"
	"github.com/scram-ng/scram-core/uncertainty"
)

// CutSet is one minimal cut set with its individually-computed
// contribution to the top-event probability.
type CutSet struct {
	Literals     []string `yaml:"literals"`
	Probability  float64  `yaml:"probability"`
	Contribution float64  `yaml:"contribution"` // fraction of the top-event probability
}

// Report is the full output of one analysis run (§6).
type Report struct {
	RunID       string    `yaml:"run_id"`
	ModelName   string    `yaml:"model_name"`
	GeneratedAt time.Time `yaml:"generated_at"`

	TopEventProbability float64                    `yaml:"top_event_probability"`
	Approximation       model.Approximation        `yaml:"approximation"`
	CutSets             []CutSet                   `yaml:"cut_sets"`
	Importance          []importance.Factors       `yaml:"importance"`
	Uncertainty         *uncertainty.Statistics    `yaml:"uncertainty,omitempty"`
	SIL                 []uncertainty.SILBucket    `yaml:"sil,omitempty"`
	SILFractions        []uncertainty.SILFraction  `yaml:"sil_fractions,omitempty"`
	Warnings            []string                   `yaml:"warnings,omitempty"`
}

// New stamps a fresh Report with a random run id and the current time,
// leaving every analysis field at its zero value for the caller to
// fill in.
func New(modelName string, now time.Time) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		ModelName:   modelName,
		GeneratedAt: now,
	}
}

// WithWarnings renders w onto r in the stable string form a Sink would
// serialize; called once, right before handing the Report to a Sink.
func (r *Report) WithWarnings(w errs.Warnings) *Report {
	for _, warning := range w {
		msg := warning.Code.String()
		if warning.Detail != "" {
			msg += ": " + warning.Detail
		}
		r.Warnings = append(r.Warnings, msg)
	}
	return r
}

// Sink is the output boundary a finished Report is handed to — the
// collaborator the engine depends on but does not implement, matching
// how a loader (also out of scope) produces the model.Model the engine
// consumes.
type Sink interface {
	Write(r *Report) error
}
