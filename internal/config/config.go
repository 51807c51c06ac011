// Package config loads simulation scenarios from YAML files.
//
// A scenario file lists named parameter sets. Fields left out of a scenario
// fall back to the file's defaults section, and from there to
// lti.DefaultParams:
//
//	defaults:
//	  n_points: 200
//	scenarios:
//	  - name: lab
//	    c: 1.5
//	  - name: fast-decay
//	    d: -0.5
//	    k: 0
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-lti/dsp/lti"
	"github.com/cwbudde/algo-lti/simulate"
)

var (
	// ErrInvalidParameter is returned when a field cannot be decoded or
	// fails validation.
	ErrInvalidParameter = errors.New("config: invalid parameter")
	// ErrNoScenarios is returned for a file without scenarios.
	ErrNoScenarios = errors.New("config: no scenarios defined")
	// ErrDuplicateName is returned when two scenarios share a name.
	ErrDuplicateName = errors.New("config: duplicate scenario name")
)

// paramSpec mirrors lti.Params with optional fields.
type paramSpec struct {
	Name    string   `yaml:"name"`
	A       *float64 `yaml:"a"`
	B       *float64 `yaml:"b"`
	C       *float64 `yaml:"c"`
	D       *float64 `yaml:"d"`
	K       *float64 `yaml:"k"`
	NPoints *int     `yaml:"n_points"`
}

type fileSpec struct {
	Defaults  paramSpec   `yaml:"defaults"`
	Scenarios []paramSpec `yaml:"scenarios"`
}

// File is a decoded scenario file.
type File struct {
	Defaults  lti.Params
	Scenarios []simulate.Scenario
}

// Load reads and parses the scenario file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a scenario file. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec fileSpec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	if len(spec.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	f := &File{Defaults: spec.Defaults.apply(lti.DefaultParams())}
	seen := make(map[string]bool, len(spec.Scenarios))
	for i, s := range spec.Scenarios {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("scenario-%d", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = true

		p := s.apply(f.Defaults)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: scenario %q: %w", ErrInvalidParameter, name, err)
		}
		f.Scenarios = append(f.Scenarios, simulate.Scenario{Name: name, Params: p})
	}
	return f, nil
}

// Scenario returns the scenario with the given name.
func (f *File) Scenario(name string) (simulate.Scenario, bool) {
	for _, s := range f.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return simulate.Scenario{}, false
}

func (s paramSpec) apply(base lti.Params) lti.Params {
	p := base
	if s.A != nil {
		p.A = *s.A
	}
	if s.B != nil {
		p.B = *s.B
	}
	if s.C != nil {
		p.C = *s.C
	}
	if s.D != nil {
		p.D = *s.D
	}
	if s.K != nil {
		p.K = *s.K
	}
	if s.NPoints != nil {
		p.NPoints = *s.NPoints
	}
	return p
}
