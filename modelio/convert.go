package modelio

import (
	"fmt"

	"github.com/scram-ng/scram-core/model"
)

func toDistribution(d distributionDoc) (model.Distribution, error) {
	switch d.Kind {
	case "constant", "":
		return model.Constant{P: d.P}, nil
	case "exponential":
		return model.Exponential{Lambda: d.Lambda}, nil
	case "exponential_dormant":
		return model.ExponentialDormant{Lambda: d.Lambda, LambdaDormant: d.LambdaD, Mu: d.Mu, Tau: d.Tau}, nil
	case "uniform":
		return model.Uniform{Min: d.Min, Max: d.Max}, nil
	case "normal":
		return model.Normal{Mu: d.Mean, Sigma: d.Sigma}, nil
	case "lognormal":
		return model.LogNormal{Mu: d.Mean, Sigma: d.Sigma}, nil
	case "weibull":
		return model.Weibull{Shape: d.Shape, Scale: d.Scale}, nil
	case "histogram":
		buckets := make([]model.HistogramBucket, len(d.Buckets))
		for i, b := range d.Buckets {
			buckets[i] = model.HistogramBucket{UpperBound: b.UpperBound, Probability: b.Probability}
		}
		return model.Histogram{Buckets: buckets}, nil
	default:
		return nil, fmt.Errorf("unknown distribution kind %q", d.Kind)
	}
}

func toConnective(s string) (model.Connective, error) {
	switch s {
	case "AND":
		return model.AND, nil
	case "OR":
		return model.OR, nil
	case "ATLEAST":
		return model.ATLEAST, nil
	case "XOR":
		return model.XOR, nil
	case "NOT":
		return model.NOT, nil
	case "NAND":
		return model.NAND, nil
	case "NOR":
		return model.NOR, nil
	case "NULL":
		return model.NULLGate, nil
	case "IMPLY":
		return model.IMPLY, nil
	case "IFF":
		return model.IFF, nil
	case "CONSTANT":
		return model.CONSTANT, nil
	default:
		return 0, fmt.Errorf("unknown connective %q", s)
	}
}

func toRefKind(s string) (model.RefKind, error) {
	switch s {
	case "gate":
		return model.RefGate, nil
	case "basic_event":
		return model.RefBasicEvent, nil
	case "house_event":
		return model.RefHouseEvent, nil
	default:
		return 0, fmt.Errorf("unknown reference kind %q", s)
	}
}

func toCCFModel(s string) (model.CCFModel, error) {
	switch s {
	case "beta_factor":
		return model.CCFBetaFactor, nil
	case "mgl":
		return model.CCFMultipleGreekLetter, nil
	case "alpha_factor":
		return model.CCFAlphaFactor, nil
	case "phi_factor":
		return model.CCFPhiFactor, nil
	default:
		return 0, fmt.Errorf("unknown ccf model %q", s)
	}
}
