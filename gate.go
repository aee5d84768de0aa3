package statgen

import (
	"fmt"
	"math"

	"github.com/markphelps/optional"
)

// TimeGate decides which clock instants produce a cloudlet. Unset bounds
// default to [0, +Inf]. With no step every instant inside the window is of
// interest; with a step only instants start, start+step, ... are.
type TimeGate struct {
	Step        optional.Float64
	WindowStart optional.Float64
	WindowEnd   optional.Float64
}

type gateVerdict int

const (
	gateAccept gateVerdict = iota
	gateOutsideWindow
	gateMisaligned
)

func (v gateVerdict) String() string {
	return []string{"accepted", "outside_window", "misaligned"}[v]
}

func DefaultTimeGate() TimeGate {
	return TimeGate{}
}

func NewWindowGate(start, end float64) (TimeGate, error) {
	g := TimeGate{
		WindowStart: optional.NewFloat64(start),
		WindowEnd:   optional.NewFloat64(end),
	}
	return g, g.validate()
}

func NewTimeGate(step, start, end float64) (TimeGate, error) {
	g := TimeGate{
		Step:        optional.NewFloat64(step),
		WindowStart: optional.NewFloat64(start),
		WindowEnd:   optional.NewFloat64(end),
	}
	return g, g.validate()
}

func (g TimeGate) start() float64 {
	return g.WindowStart.OrElse(0)
}

func (g TimeGate) end() float64 {
	return g.WindowEnd.OrElse(math.Inf(1))
}

func (g TimeGate) validate() error {
	if step, err := g.Step.Get(); err == nil {
		if math.IsNaN(step) || step <= 0 || math.IsInf(step, 0) {
			return fmt.Errorf("%w: %v", ErrBadStep, step)
		}
	}
	start, end := g.start(), g.end()
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) {
		return fmt.Errorf("%w: [%v, %v]", ErrBadWindow, start, end)
	}
	if start > end {
		return fmt.Errorf("%w: start %v after end %v", ErrBadWindow, start, end)
	}
	return nil
}

func (g TimeGate) check(t float64) gateVerdict {
	start := g.start()
	// NaN fails both comparisons
	if !(t >= start && t <= g.end()) {
		return gateOutsideWindow
	}
	if step, err := g.Step.Get(); err == nil && !isMultiple(t-start, step) {
		return gateMisaligned
	}
	return gateAccept
}

func (g TimeGate) ofInterest(t float64) bool {
	return g.check(t) == gateAccept
}

func (g TimeGate) String() string {
	str := fmt.Sprintf("[%v, %v]", g.start(), g.end())
	if step, err := g.Step.Get(); err == nil {
		str += fmt.Sprintf(" every %v", step)
	}
	return str
}
