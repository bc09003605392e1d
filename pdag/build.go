// build.go translates a validated model.Model into a frozen Graph,
// performing connective normalization (§4.B pass 1) inline as it
// walks the gate DAG bottom-up: NAND/NOR/IMPLY are rewritten into
// AND/OR with complement edges, IFF into a complemented XOR node, and
// NULL/CONSTANT are forwarded or folded, immediately, since there is
// no reason to allocate PDAG nodes for connectives that never survive
// to the decision-diagram engines. XOR itself stays a KindXor node.
package pdag

import (
	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/model"
)

type builder struct {
	g        *Graph
	m        *model.Model
	visiting map[string]bool
	done     map[string]Edge
}

// Build walks m from its root gate and returns a frozen Graph whose
// root edge corresponds to m's top event. The caller must have already
// run model.Model.Validate; Build additionally detects cycles, which
// Validate does not check (§4.B: "malformed input (cycles...) is
// rejected by the loader before reaching the preprocessor").
func Build(m *model.Model) (*Graph, error) {
	g := NewGraph()
	b := &builder{g: g, m: m, visiting: make(map[string]bool), done: make(map[string]Edge)}

	root, err := b.resolve(model.Reference{Kind: refKindOf(m, m.Root), ID: m.Root})
	if err != nil {
		return nil, err
	}
	g.SetRoot(root)
	if err := g.Freeze(); err != nil {
		return nil, err
	}
	return g, nil
}

func refKindOf(m *model.Model, id string) model.RefKind {
	if _, ok := m.Gates[id]; ok {
		return model.RefGate
	}
	if _, ok := m.HouseEvents[id]; ok {
		return model.RefHouseEvent
	}
	return model.RefBasicEvent
}

func (b *builder) resolve(ref model.Reference) (Edge, error) {
	switch ref.Kind {
	case model.RefBasicEvent:
		e, err := b.g.NewVar(ref.ID, false)
		if err != nil {
			return Edge{}, err
		}
		return applyComplement(e, ref.Complement), nil
	case model.RefHouseEvent:
		h, ok := b.m.HouseEvents[ref.ID]
		if !ok {
			return Edge{}, errs.Validityf("pdag.Build", ref.ID, "undefined house event")
		}
		idx := FalseIndex
		if h.State {
			idx = TrueIndex
		}
		return applyComplement(Pos(idx), ref.Complement), nil
	case model.RefGate:
		return b.resolveGate(ref)
	default:
		return Edge{}, errs.Logicf("pdag.Build", ref.ID, "unknown reference kind")
	}
}

func (b *builder) resolveGate(ref model.Reference) (Edge, error) {
	if e, ok := b.done[ref.ID]; ok {
		return applyComplement(e, ref.Complement), nil
	}
	if b.visiting[ref.ID] {
		return Edge{}, errs.Validityf("pdag.Build", ref.ID, "cycle detected in gate graph")
	}
	gate, ok := b.m.Gates[ref.ID]
	if !ok {
		return Edge{}, errs.Validityf("pdag.Build", ref.ID, "undefined gate")
	}
	b.visiting[ref.ID] = true
	edge, err := b.build(gate)
	delete(b.visiting, ref.ID)
	if err != nil {
		return Edge{}, err
	}
	b.done[ref.ID] = edge
	return applyComplement(edge, ref.Complement), nil
}

func (b *builder) build(gate *model.Gate) (Edge, error) {
	args := make([]Edge, len(gate.Args))
	for i, a := range gate.Args {
		e, err := b.resolve(a)
		if err != nil {
			return Edge{}, err
		}
		args[i] = e
	}

	switch gate.Connective {
	case model.AND:
		return b.g.NewGate(KindAnd, 0, args)
	case model.OR:
		return b.g.NewGate(KindOr, 0, args)
	case model.XOR:
		return b.g.NewGate(KindXor, 0, args)
	case model.ATLEAST:
		return b.g.NewGate(KindAtLeast, gate.K, args)
	case model.NOT:
		if len(args) != 1 {
			return Edge{}, errs.Validityf("pdag.Build", gate.ID, "NOT requires exactly one argument")
		}
		return args[0].Not(), nil
	case model.NAND:
		e, err := b.g.NewGate(KindAnd, 0, args)
		if err != nil {
			return Edge{}, err
		}
		return e.Not(), nil
	case model.NOR:
		e, err := b.g.NewGate(KindOr, 0, args)
		if err != nil {
			return Edge{}, err
		}
		return e.Not(), nil
	case model.NULLGate:
		if len(args) != 1 {
			return Edge{}, errs.Validityf("pdag.Build", gate.ID, "NULL requires exactly one argument")
		}
		return args[0], nil
	case model.IMPLY:
		if len(args) != 2 {
			return Edge{}, errs.Validityf("pdag.Build", gate.ID, "IMPLY requires exactly two arguments")
		}
		return b.g.NewGate(KindOr, 0, []Edge{args[0].Not(), args[1]})
	case model.IFF:
		if len(args) != 2 {
			return Edge{}, errs.Validityf("pdag.Build", gate.ID, "IFF requires exactly two arguments")
		}
		x, err := b.g.NewGate(KindXor, 0, args)
		if err != nil {
			return Edge{}, err
		}
		return x.Not(), nil
	case model.CONSTANT:
		if gate.Value {
			return Pos(TrueIndex), nil
		}
		return Pos(FalseIndex), nil
	default:
		return Edge{}, errs.Logicf("pdag.Build", gate.ID, "unsupported connective %v", gate.Connective)
	}
}

func applyComplement(e Edge, complement bool) Edge {
	if complement {
		return e.Not()
	}
	return e
}
