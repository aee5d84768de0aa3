package statgen

import (
	"fmt"
	"sort"
)

// Sampler yields one draw per call. Every gonum distuv distribution
// satisfies it.
type Sampler interface {
	Rand() float64
}

// SamplerRegistry maps attribute names to independent samplers. The set of
// attributes is fixed once built.
type SamplerRegistry struct {
	samplers map[string]Sampler
	names    []string
}

func NewSamplerRegistry(samplers map[string]Sampler) (*SamplerRegistry, error) {
	if len(samplers) == 0 {
		return nil, ErrNoSamplers
	}
	reg := &SamplerRegistry{
		samplers: make(map[string]Sampler, len(samplers)),
		names:    make([]string, 0, len(samplers)),
	}
	for name, s := range samplers {
		if name == "" {
			return nil, fmt.Errorf("%w: empty attribute name", ErrMissingAttribute)
		}
		if s == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilSampler, name)
		}
		reg.samplers[name] = s
		reg.names = append(reg.names, name)
	}
	sort.Strings(reg.names)
	for _, req := range requiredAttributes {
		if _, ok := reg.samplers[req]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, req)
		}
	}
	return reg, nil
}

// DrawAll draws once from every sampler, in attribute-name order.
func (reg *SamplerRegistry) DrawAll() map[string]float64 {
	vals := make(map[string]float64, len(reg.names))
	for _, name := range reg.names {
		vals[name] = reg.samplers[name].Rand()
	}
	return vals
}

func (reg *SamplerRegistry) Attributes() []string {
	return append([]string(nil), reg.names...)
}

func (reg *SamplerRegistry) Has(name string) bool {
	_, ok := reg.samplers[name]
	return ok
}
