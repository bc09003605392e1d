package preprocess

// Config exposes the knobs design note §9 asks for: module-detection
// and decomposition thresholds are implementation choices, but
// defaults are kept matched to the benchmark expectations referenced
// in spec §8.4.
type Config struct {
	// EnableComplementSinking runs the De Morgan pass that pushes
	// every complement edge pointing at an AND/OR/ATLEAST/XOR node
	// down to the literals below it. Disabling this is only ever
	// correct for a model already known to be coherent (no NOT, NAND,
	// NOR, IMPLY, IFF, or complemented Reference).
	EnableComplementSinking bool
	// EnableCoalescing flattens nested same-connective chains, e.g.
	// AND(AND(x,y),z) -> AND(x,y,z).
	EnableCoalescing bool
	// EnableModuleDetection reports single-parent gates with at least
	// two variables in their support as modules, without altering
	// graph structure; disjointness of that support from the rest of
	// the tree is not checked.
	EnableModuleDetection bool
	// EnableDistribution runs the bounded OR-of-ANDs factoring pass.
	EnableDistribution bool
	// MaxDistributionFanout bounds how many terms the distribution
	// pass will factor in one OR node, to avoid the classical
	// distribution blow-up.
	MaxDistributionFanout int
	// MaxPasses bounds the fixpoint loop so a cyclic rewrite (which
	// should not happen, since every pass strictly coalesces or
	// leaves the graph unchanged) cannot loop forever.
	MaxPasses int
}

// DefaultConfig returns the preprocessor configuration used unless the
// caller overrides it.
func DefaultConfig() Config {
	return Config{
		EnableComplementSinking: true,
		EnableCoalescing:        true,
		EnableModuleDetection:   true,
		EnableDistribution:      true,
		MaxDistributionFanout:   4,
		MaxPasses:               8,
	}
}
