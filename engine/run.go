package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/scram-ng/scram-core/model"
	"github.com/scram-ng/scram-core/report"
)

// Run drives a freshly-built Engine through every transition to
// Reported in one call, for callers (cmd/scram, tests) that don't need
// to inspect intermediate states. On cancellation or error it returns
// whatever error the failing stage produced.
func Run(ctx context.Context, mdl *model.Model, settings model.Settings, mode DiagramMode, log zerolog.Logger) (*report.Report, error) {
	e, err := New(mdl, settings, mode, log)
	if err != nil {
		return nil, err
	}
	if err := e.Preprocess(ctx); err != nil {
		return nil, err
	}
	if err := e.Compile(ctx); err != nil {
		return nil, err
	}
	if err := e.Analyze(ctx); err != nil {
		return nil, err
	}
	return e.Report(time.Now())
}
