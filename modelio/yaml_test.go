package modelio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/model"
)

const fixture = `
name: demo
root: top
events:
  - id: a
    distribution: {kind: exponential, lambda: 1.0e-5}
  - id: b
    distribution: {kind: constant, p: 0.01}
gates:
  - id: top
    connective: OR
    args:
      - {kind: basic_event, id: a}
      - {kind: basic_event, id: b}
`

func TestLoad_ParsesBasicModel(t *testing.T) {
	m, err := Load(strings.NewReader(fixture))
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Name)
	assert.Equal(t, "top", m.Root)
	require.Contains(t, m.BasicEvents, "a")
	assert.IsType(t, model.Exponential{}, m.BasicEvents["a"].Probability)
	require.Contains(t, m.Gates, "top")
	assert.Equal(t, model.OR, m.Gates["top"].Connective)
	require.NoError(t, m.Validate())
}

func TestLoad_RejectsUnknownConnective(t *testing.T) {
	doc := `
name: bad
root: top
gates:
  - id: top
    connective: BOGUS
`
	_, err := Load(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("not: [valid"))
	assert.Error(t, err)
}
