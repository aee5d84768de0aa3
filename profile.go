package statgen

import (
	"fmt"
	"os"

	"github.com/markphelps/optional"
	"gopkg.in/yaml.v3"
)

// Profile describes a generator in YAML:
//
//	seed: 42
//	gate:
//	  step: 3
//	  window_start: 3
//	  window_end: 12
//	attributes:
//	  CLOUDLET_LENGTH: {dist: normal, mean: 25, stddev: 2}
//	  CLOUDLET_RAM:    {dist: normal, mean: 200, stddev: 10}
type Profile struct {
	Seed       uint64              `yaml:"seed"`
	Gate       GateConfig          `yaml:"gate"`
	Attributes map[string]DistSpec `yaml:"attributes"`
}

type GateConfig struct {
	Step        *float64 `yaml:"step"`
	WindowStart *float64 `yaml:"window_start"`
	WindowEnd   *float64 `yaml:"window_end"`
}

func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProfile(raw)
}

func ParseProfile(raw []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	p.applyDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) applyDefaults() {
	for name, spec := range p.Attributes {
		if spec.Dist == "" {
			spec.Dist = "normal"
			p.Attributes[name] = spec
		}
	}
}

func (p *Profile) validate() error {
	if len(p.Attributes) == 0 {
		return ErrNoSamplers
	}
	for _, req := range requiredAttributes {
		if _, ok := p.Attributes[req]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingAttribute, req)
		}
	}
	return p.Gate.TimeGate().validate()
}

func optFloat(v *float64) optional.Float64 {
	if v == nil {
		return optional.Float64{}
	}
	return optional.NewFloat64(*v)
}

func (gc GateConfig) TimeGate() TimeGate {
	return TimeGate{
		Step:        optFloat(gc.Step),
		WindowStart: optFloat(gc.WindowStart),
		WindowEnd:   optFloat(gc.WindowEnd),
	}
}

// NewGenerator builds a generator for owner with freshly seeded samplers.
// Two generators from the same profile draw identical sequences.
func (p *Profile) NewGenerator(owner IdProvider) (*StatGenerator, error) {
	samplers, err := NewSamplers(p.Attributes, p.Seed)
	if err != nil {
		return nil, err
	}
	return NewStatGeneratorWithGate(owner, samplers, p.Gate.TimeGate())
}
