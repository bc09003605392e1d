package modelio

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/model"
)

// doc is the on-disk shape of a model.Model fixture. Every field maps
// one-to-one onto the in-memory types model.Model's Add* methods and
// ccf.Expand expect.
type doc struct {
	Name        string        `yaml:"name"`
	Root        string        `yaml:"root"`
	Events      []eventDoc    `yaml:"events"`
	HouseEvents []houseDoc    `yaml:"house_events"`
	Gates       []gateDoc     `yaml:"gates"`
	CCFGroups   []ccfGroupDoc `yaml:"ccf_groups"`
}

type eventDoc struct {
	ID           string           `yaml:"id"`
	Distribution distributionDoc  `yaml:"distribution"`
}

type distributionDoc struct {
	Kind    string    `yaml:"kind"`
	P       float64   `yaml:"p"`
	Lambda  float64   `yaml:"lambda"`
	LambdaD float64   `yaml:"lambda_dormant"`
	Mu      float64   `yaml:"mu"`
	Tau     float64   `yaml:"tau"`
	Min     float64   `yaml:"min"`
	Max     float64   `yaml:"max"`
	Mean    float64   `yaml:"mean"`
	Sigma   float64   `yaml:"sigma"`
	Shape   float64   `yaml:"shape"`
	Scale   float64   `yaml:"scale"`
	Buckets []bktDoc  `yaml:"buckets"`
}

type bktDoc struct {
	UpperBound  float64 `yaml:"upper_bound"`
	Probability float64 `yaml:"probability"`
}

type houseDoc struct {
	ID    string `yaml:"id"`
	State bool   `yaml:"state"`
}

type refDoc struct {
	Kind       string `yaml:"kind"` // "gate", "basic_event", "house_event"
	ID         string `yaml:"id"`
	Complement bool   `yaml:"complement"`
}

type gateDoc struct {
	ID         string   `yaml:"id"`
	Connective string   `yaml:"connective"`
	K          int      `yaml:"k"`
	Value      bool     `yaml:"value"`
	Args       []refDoc `yaml:"args"`
}

type ccfGroupDoc struct {
	ID      string    `yaml:"id"`
	Model   string    `yaml:"model"`
	Members []string  `yaml:"members"`
	Beta    float64   `yaml:"beta"`
	Factors []float64 `yaml:"factors"`
}

// Load parses a YAML model document from r into a model.Model. It
// does not call model.Model.Validate; callers run that (and
// ccf.Expand) as part of engine.New.
func Load(r io.Reader) (*model.Model, error) {
	var d doc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, errs.IOf("modelio.Load", err, "decoding model document")
	}
	return convert(d)
}

func convert(d doc) (*model.Model, error) {
	m := model.NewModel(d.Name, d.Root)

	for _, ev := range d.Events {
		dist, err := toDistribution(ev.Distribution)
		if err != nil {
			return nil, err
		}
		if err := m.AddBasicEvent(&model.BasicEvent{ID: ev.ID, Probability: dist}); err != nil {
			return nil, errs.Validityf("modelio.Load", ev.ID, "%v", err)
		}
	}
	for _, h := range d.HouseEvents {
		if err := m.AddHouseEvent(&model.HouseEvent{ID: h.ID, State: h.State}); err != nil {
			return nil, errs.Validityf("modelio.Load", h.ID, "%v", err)
		}
	}
	for _, g := range d.Gates {
		conn, err := toConnective(g.Connective)
		if err != nil {
			return nil, errs.Validityf("modelio.Load", g.ID, "%v", err)
		}
		args := make([]model.Reference, len(g.Args))
		for i, a := range g.Args {
			kind, err := toRefKind(a.Kind)
			if err != nil {
				return nil, errs.Validityf("modelio.Load", g.ID, "%v", err)
			}
			args[i] = model.Reference{Kind: kind, ID: a.ID, Complement: a.Complement}
		}
		if err := m.AddGate(&model.Gate{ID: g.ID, Connective: conn, K: g.K, Value: g.Value, Args: args}); err != nil {
			return nil, errs.Validityf("modelio.Load", g.ID, "%v", err)
		}
	}
	for _, c := range d.CCFGroups {
		ccfModel, err := toCCFModel(c.Model)
		if err != nil {
			return nil, errs.Validityf("modelio.Load", c.ID, "%v", err)
		}
		m.CCFGroups[c.ID] = &model.CCFGroup{
			ID:      c.ID,
			Model:   ccfModel,
			Members: c.Members,
			Beta:    c.Beta,
			Factors: c.Factors,
		}
	}
	return m, nil
}
