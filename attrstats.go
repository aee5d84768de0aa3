package statgen

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution is a running mean / population std dev of one attribute.
type Distribution struct {
	avg   float64
	count int
	m2    float64
}

func (d *Distribution) update(newVal float64) {
	d.count += 1
	delta := newVal - d.avg
	d.avg += delta / float64(d.count)
	d.m2 += delta * (newVal - d.avg)
}

func (d Distribution) Mean() float64 { return d.avg }
func (d Distribution) Count() int { return d.count }

func (d Distribution) StdDev() float64 {
	if d.count == 0 {
		return 0
	}
	return math.Sqrt(d.m2 / float64(d.count))
}

func (d Distribution) String() string {
	return fmt.Sprintf("avg: %.3f, stdDev: %.3f (n=%d)", d.avg, d.StdDev(), d.count)
}

type AttrDistributions map[string]*Distribution

func newAttrDistributions(names []string) AttrDistributions {
	ad := make(AttrDistributions, len(names))
	for _, n := range names {
		ad[n] = &Distribution{}
	}
	return ad
}

func (ad AttrDistributions) update(vals map[string]float64) {
	for name, v := range vals {
		if d, ok := ad[name]; ok {
			d.update(v)
		}
	}
}

func (ad AttrDistributions) String() string {
	names := make([]string, 0, len(ad))
	for n := range ad {
		names = append(names, n)
	}
	sort.Strings(names)
	str := ""
	for _, n := range names {
		str += n + ": " + ad[n].String() + "\n"
	}
	return str
}

type AttrSummary struct {
	Mean   float64
	StdDev float64
	N      int
}

// Summarize computes the sample mean and (unbiased) std dev of every
// attribute across a batch of polled cloudlets.
func Summarize(cs []*Cloudlet) map[string]AttrSummary {
	cols := map[string][]float64{}
	for _, c := range cs {
		for name, v := range c.attrs {
			cols[name] = append(cols[name], v)
		}
	}
	out := make(map[string]AttrSummary, len(cols))
	for name, xs := range cols {
		if len(xs) < 2 {
			out[name] = AttrSummary{Mean: xs[0], N: len(xs)}
			continue
		}
		mean, std := stat.MeanStdDev(xs, nil)
		out[name] = AttrSummary{Mean: mean, StdDev: std, N: len(xs)}
	}
	return out
}
