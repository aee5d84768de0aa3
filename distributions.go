package statgen

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DistSpec names a distribution and its parameters. Which fields are read
// depends on Dist.
type DistSpec struct {
	Dist   string  `yaml:"dist"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Rate   float64 `yaml:"rate"`
	Xm     float64 `yaml:"xm"`
	Alpha  float64 `yaml:"alpha"`
	Lambda float64 `yaml:"lambda"`
	K      float64 `yaml:"k"`
	Value  float64 `yaml:"value"`
}

// Constant always yields the same value.
type Constant float64

func (c Constant) Rand() float64 { return float64(c) }

func bad(spec DistSpec, why string) error {
	return fmt.Errorf("%w: %s: %s", ErrBadDistribution, spec.Dist, why)
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NewSampler builds a seeded gonum sampler for spec.
func NewSampler(spec DistSpec, seed uint64) (Sampler, error) {
	src := rand.NewSource(seed)
	switch strings.ToLower(spec.Dist) {
	case "normal", "gaussian":
		if !finite(spec.Mean, spec.StdDev) || spec.StdDev < 0 {
			return nil, bad(spec, "stddev must be non-negative")
		}
		return distuv.Normal{Mu: spec.Mean, Sigma: spec.StdDev, Src: src}, nil
	case "lognormal":
		if !finite(spec.Mean, spec.StdDev) || spec.StdDev < 0 {
			return nil, bad(spec, "stddev must be non-negative")
		}
		return distuv.LogNormal{Mu: spec.Mean, Sigma: spec.StdDev, Src: src}, nil
	case "uniform":
		if !finite(spec.Min, spec.Max) || spec.Min > spec.Max {
			return nil, bad(spec, "min must not exceed max")
		}
		return distuv.Uniform{Min: spec.Min, Max: spec.Max, Src: src}, nil
	case "exponential":
		if !finite(spec.Rate) || spec.Rate <= 0 {
			return nil, bad(spec, "rate must be positive")
		}
		return distuv.Exponential{Rate: spec.Rate, Src: src}, nil
	case "pareto":
		if !finite(spec.Xm, spec.Alpha) || spec.Xm <= 0 || spec.Alpha <= 0 {
			return nil, bad(spec, "xm and alpha must be positive")
		}
		return distuv.Pareto{Xm: spec.Xm, Alpha: spec.Alpha, Src: src}, nil
	case "poisson":
		if !finite(spec.Lambda) || spec.Lambda <= 0 {
			return nil, bad(spec, "lambda must be positive")
		}
		return distuv.Poisson{Lambda: spec.Lambda, Src: src}, nil
	case "weibull":
		if !finite(spec.K, spec.Lambda) || spec.K <= 0 || spec.Lambda <= 0 {
			return nil, bad(spec, "k and lambda must be positive")
		}
		return distuv.Weibull{K: spec.K, Lambda: spec.Lambda, Src: src}, nil
	case "constant":
		if !finite(spec.Value) {
			return nil, bad(spec, "value must be finite")
		}
		return Constant(spec.Value), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, spec.Dist)
}

// NewSamplers builds one sampler per attribute, each on its own stream
// derived from seed and the attribute name.
func NewSamplers(specs map[string]DistSpec, seed uint64) (map[string]Sampler, error) {
	samplers := make(map[string]Sampler, len(specs))
	for name, spec := range specs {
		s, err := NewSampler(spec, deriveSeed(seed, name))
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		samplers[name] = s
	}
	return samplers, nil
}

// NewGaussian is a shorthand for a seeded normal sampler.
func NewGaussian(mean, stdDev float64, seed uint64) Sampler {
	return distuv.Normal{Mu: mean, Sigma: stdDev, Src: rand.NewSource(seed)}
}
