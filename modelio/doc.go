// Package modelio loads a model.Model from the YAML fixture format
// used by cmd/scram and by this repository's own tests. §6 names the
// Open-PSA Model Exchange Format XML document as the real external
// loader, and leaves it out of scope for the core; modelio exists
// only so cmd/scram has something concrete to read before handing a
// model.Model to engine.Engine, and so golden fixtures can be written
// in the format gopkg.in/yaml.v3 already serializes model.Settings as.
package modelio
