package ccf

import (
	"fmt"
	"sort"

	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/model"
)

// maxGroupSize bounds the combinatorial explosion of the explicit
// method: a group of n members needs 2^n - 1 combination events in the
// worst case (every model but beta-factor only ever populates a
// handful of levels, but the guard protects against a pathological
// alpha-factor/MGL group).
const maxGroupSize = 12

// Expand rewrites every CCF group in m in place: each member basic
// event's id becomes an OR gate over a fresh independent-failure event
// and the combination events it belongs to, and m.CCFGroups is left
// untouched for reporting but no longer drives any analysis directly.
func Expand(m *model.Model) error {
	for _, group := range sortedGroups(m) {
		if err := expandGroup(m, group); err != nil {
			return err
		}
	}
	return nil
}

func sortedGroups(m *model.Model) []*model.CCFGroup {
	groups := make([]*model.CCFGroup, 0, len(m.CCFGroups))
	for _, g := range m.CCFGroups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups
}

func expandGroup(m *model.Model, group *model.CCFGroup) error {
	n := len(group.Members)
	if n < 2 {
		return errs.Validityf("ccf.Expand", group.ID, "CCF group needs at least two members")
	}
	if n > maxGroupSize {
		return errs.Analysisf("ccf.Expand", group.ID, "group has %d members, explicit expansion is bounded to %d", n, maxGroupSize)
	}

	members := append([]string(nil), group.Members...)
	sort.Strings(members)

	levelProb, err := levelProbabilities(group, n)
	if err != nil {
		return err
	}

	// representative is the group's shared failure distribution for
	// combination events, per the homogeneous-group assumption the
	// beta/MGL/alpha/phi formulas are all defined under: every member
	// of a CCF group is taken to share one underlying failure rate.
	representative, ok := m.BasicEvents[members[0]]
	if !ok {
		return errs.Validityf("ccf.Expand", members[0], "CCF member is not a known basic event")
	}
	representativeDist := representative.Probability

	// originalArgs[member] accumulates the References the OR
	// replacement gate for that member will use.
	originalArgs := make(map[string][]model.Reference, n)

	for _, member := range members {
		be, ok := m.BasicEvents[member]
		if !ok {
			return errs.Validityf("ccf.Expand", member, "CCF member is not a known basic event")
		}
		indID := fmt.Sprintf("%s.ccf-ind", member)
		baseDist := be.Probability
		delete(m.BasicEvents, member)
		if err := m.AddBasicEvent(&model.BasicEvent{
			ID:          indID,
			Probability: model.Scaled{Factor: levelProb[1], Base: baseDist},
			CCFGroupID:  group.ID,
		}); err != nil {
			return err
		}
		originalArgs[member] = append(originalArgs[member], model.Reference{Kind: model.RefBasicEvent, ID: indID})
	}

	for k := 2; k <= n; k++ {
		if levelProb[k] == 0 {
			continue
		}
		for _, combo := range combinations(members, k) {
			comboID := fmt.Sprintf("%s.ccf-%s", group.ID, joinIDs(combo))
			if err := m.AddBasicEvent(&model.BasicEvent{
				ID:          comboID,
				Probability: model.Scaled{Factor: levelProb[k], Base: representativeDist},
				CCFGroupID:  group.ID,
			}); err != nil {
				return err
			}
			for _, member := range combo {
				originalArgs[member] = append(originalArgs[member], model.Reference{Kind: model.RefBasicEvent, ID: comboID})
			}
		}
	}

	for _, member := range members {
		if err := m.AddGate(&model.Gate{
			ID:         member,
			Connective: model.OR,
			Args:       originalArgs[member],
		}); err != nil {
			return err
		}
	}

	retagReferences(m, members)
	return nil
}

// retagReferences flips Kind to RefGate on every Reference elsewhere
// in m that points at one of members, now that expandGroup has turned
// each of them from a basic event into a gate. Reference.Kind is set
// by the loader before CCF groups exist, so it cannot already be
// correct for these ids.
func retagReferences(m *model.Model, members []string) {
	converted := make(map[string]bool, len(members))
	for _, id := range members {
		converted[id] = true
	}
	for _, g := range m.Gates {
		for i, arg := range g.Args {
			if arg.Kind == model.RefBasicEvent && converted[arg.ID] {
				g.Args[i].Kind = model.RefGate
			}
		}
	}
}

func joinIDs(ids []string) string {
	out := ids[0]
	for _, id := range ids[1:] {
		out += "+" + id
	}
	return out
}

// combinations returns every k-element subset of xs, in lexicographic
// order of index.
func combinations(xs []string, k int) [][]string {
	n := len(xs)
	if k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	var out [][]string
	for {
		combo := make([]string, k)
		for i, v := range idx {
			combo[i] = xs[v]
		}
		out = append(out, combo)

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
