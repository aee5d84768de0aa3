package statgen

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func drawN(s Sampler, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = s.Rand()
	}
	return xs
}

func TestNewSamplerKinds(t *testing.T) {
	cases := []struct {
		spec DistSpec
		mean float64
		tol  float64
	}{
		{DistSpec{Dist: "normal", Mean: 50, StdDev: 5}, 50, 1},
		{DistSpec{Dist: "Gaussian", Mean: -3, StdDev: 1}, -3, 0.3},
		{DistSpec{Dist: "uniform", Min: 10, Max: 20}, 15, 0.5},
		{DistSpec{Dist: "exponential", Rate: 0.5}, 2, 0.3},
		{DistSpec{Dist: "poisson", Lambda: 4}, 4, 0.3},
		{DistSpec{Dist: "pareto", Xm: 1, Alpha: 5}, 1.25, 0.1},
		{DistSpec{Dist: "constant", Value: 7}, 7, 0},
	}
	for _, tc := range cases {
		s, err := NewSampler(tc.spec, 1)
		if err != nil {
			t.Fatalf("%s: %v", tc.spec.Dist, err)
		}
		mean := stat.Mean(drawN(s, 2000), nil)
		if mean < tc.mean-tc.tol || mean > tc.mean+tc.tol {
			t.Fatalf("%s: mean %.3f, want %v +- %v", tc.spec.Dist, mean, tc.mean, tc.tol)
		}
	}
}

func TestNewSamplerRejectsBadParams(t *testing.T) {
	bad := []DistSpec{
		{Dist: "normal", Mean: 1, StdDev: -1},
		{Dist: "uniform", Min: 5, Max: 1},
		{Dist: "exponential"},
		{Dist: "pareto", Xm: 1},
		{Dist: "weibull", K: 1},
	}
	for _, spec := range bad {
		if _, err := NewSampler(spec, 1); !errors.Is(err, ErrBadDistribution) {
			t.Fatalf("%+v: expected ErrBadDistribution, got %v", spec, err)
		}
	}
	if _, err := NewSampler(DistSpec{Dist: "zipf"}, 1); !errors.Is(err, ErrUnknownDistribution) {
		t.Fatalf("expected ErrUnknownDistribution, got %v", err)
	}
}

func TestSamplersAreSeededPerAttribute(t *testing.T) {
	specs := map[string]DistSpec{
		CLOUDLET_LENGTH: {Dist: "normal", Mean: 0, StdDev: 1},
		CLOUDLET_RAM:    {Dist: "normal", Mean: 0, StdDev: 1},
	}
	a, err := NewSamplers(specs, 42)
	if err != nil {
		t.Fatalf("samplers: %v", err)
	}
	b, err := NewSamplers(specs, 42)
	if err != nil {
		t.Fatalf("samplers: %v", err)
	}
	la, lb := drawN(a[CLOUDLET_LENGTH], 5), drawN(b[CLOUDLET_LENGTH], 5)
	ra := drawN(a[CLOUDLET_RAM], 5)
	for i := range la {
		if la[i] != lb[i] {
			t.Fatalf("same seed gave different draws at %d", i)
		}
	}
	same := 0
	for i := range la {
		if la[i] == ra[i] {
			same++
		}
	}
	if same == len(la) {
		t.Fatalf("attributes share a stream")
	}
}
