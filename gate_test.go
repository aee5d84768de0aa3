package statgen

import (
	"errors"
	"math"
	"testing"

	"github.com/markphelps/optional"
)

func TestDefaultGateAcceptsNonNegative(t *testing.T) {
	g := DefaultTimeGate()
	for _, tm := range []float64{0, 1, 2.5, 1e9} {
		if !g.ofInterest(tm) {
			t.Fatalf("expected %v to be of interest", tm)
		}
	}
	if g.ofInterest(-1) {
		t.Fatalf("negative instants are before the default window")
	}
}

func TestGateVerdicts(t *testing.T) {
	g, err := NewTimeGate(3, 3, 12)
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	cases := map[float64]gateVerdict{
		2:  gateOutsideWindow,
		3:  gateAccept,
		5:  gateMisaligned,
		9:  gateAccept,
		12: gateAccept,
		15: gateOutsideWindow,
	}
	for tm, want := range cases {
		if got := g.check(tm); got != want {
			t.Fatalf("check(%v) = %v, want %v", tm, got, want)
		}
	}
}

func TestGateFractionalStep(t *testing.T) {
	g, err := NewTimeGate(0.1, 0, math.Inf(1))
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	if !g.ofInterest(0.3) || !g.ofInterest(1000.7) {
		t.Fatalf("expected multiples of 0.1 to pass despite float drift")
	}
	if g.ofInterest(0.35) {
		t.Fatalf("0.35 is not a multiple of 0.1")
	}
}

func TestGateValidation(t *testing.T) {
	if _, err := NewTimeGate(0, 0, 10); !errors.Is(err, ErrBadStep) {
		t.Fatalf("expected ErrBadStep, got %v", err)
	}
	if _, err := NewTimeGate(-2, 0, 10); !errors.Is(err, ErrBadStep) {
		t.Fatalf("expected ErrBadStep, got %v", err)
	}
	if _, err := NewTimeGate(1, 5, 2); !errors.Is(err, ErrBadWindow) {
		t.Fatalf("expected ErrBadWindow, got %v", err)
	}
	if _, err := NewWindowGate(math.NaN(), 2); !errors.Is(err, ErrBadWindow) {
		t.Fatalf("expected ErrBadWindow, got %v", err)
	}
	if _, err := NewWindowGate(4, 4); err != nil {
		t.Fatalf("single-instant window should be valid: %v", err)
	}
}

func TestGateStepHoldsForLargeInstants(t *testing.T) {
	g, err := NewTimeGate(3, 0, math.Inf(1))
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	if !g.ofInterest(3e9) || !g.ofInterest(3e9+3) {
		t.Fatalf("expected multiples of 3 to pass at 3e9")
	}
	for _, tm := range []float64{3e9 + 1, 3e9 + 1.5, 3e12 + 2} {
		if g.ofInterest(tm) {
			t.Fatalf("%v is off the step but was accepted", tm)
		}
	}

	fine, err := NewTimeGate(0.001, 0, math.Inf(1))
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	if fine.ofInterest(500000.0004) {
		t.Fatalf("500000.0004 is not a multiple of 0.001")
	}
	if !fine.ofInterest(500000.001) {
		t.Fatalf("500000.001 is a multiple of 0.001")
	}
}

func TestGateRejectsNaN(t *testing.T) {
	for _, g := range []TimeGate{DefaultTimeGate(), {Step: optional.NewFloat64(1)}} {
		if got := g.check(math.NaN()); got != gateOutsideWindow {
			t.Fatalf("check(NaN) = %v, want %v", got, gateOutsideWindow)
		}
	}
}
