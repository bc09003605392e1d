package preprocess

import "github.com/scram-ng/scram-core/pdag"

// Result bundles the preprocessed graph with the side information
// gathered while producing it.
type Result struct {
	Graph      *pdag.Graph
	Modules    []ModuleInfo
	PassesRun  int
	ShortCircuit bool // true if the top event proved constant
}

// Run sinks complement edges to literals once (De Morgan is already
// its own fixpoint in a single bottom-up pass), then applies the
// coalescing/distribution rewrites to a fixpoint (bounded by
// cfg.MaxPasses), then runs module detection once on the stable
// result. Passes are total: malformed input is rejected upstream by
// model.Model.Validate and pdag.Build, so Run itself only returns an
// error on an internal invariant violation.
func Run(g *pdag.Graph, cfg Config) (*Result, error) {
	current := g
	passes := 0

	if cfg.EnableComplementSinking {
		next, _, err := sinkComplements(current)
		if err != nil {
			return nil, err
		}
		current = next
		passes++
	}

	for i := 0; i < cfg.MaxPasses; i++ {
		anyChange := false

		if cfg.EnableCoalescing {
			next, changed, err := coalesce(current)
			if err != nil {
				return nil, err
			}
			current = next
			passes++
			anyChange = anyChange || changed
		}

		if cfg.EnableDistribution {
			next, changed, err := distribute(current, cfg)
			if err != nil {
				return nil, err
			}
			current = next
			passes++
			anyChange = anyChange || changed
		}

		if !anyChange {
			break
		}
	}

	var modules []ModuleInfo
	if cfg.EnableModuleDetection {
		var err error
		modules, err = detectModules(current)
		if err != nil {
			return nil, err
		}
	}

	root := current.Root()
	shortCircuit := root.Index == pdag.TrueIndex || root.Index == pdag.FalseIndex

	return &Result{
		Graph:        current,
		Modules:      modules,
		PassesRun:    passes,
		ShortCircuit: shortCircuit,
	}, nil
}
