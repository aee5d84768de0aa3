package statgen

import (
	"fmt"
	"hash/fnv"
	"math"
)

type Tid int
type Tmem int

// simulation clock instant
type Ttime float64

func (t Ttime) String() string {
	return fmt.Sprintf("%.3fT", float64(t))
}

// isMultiple reports whether x is an integer multiple of step. The slack is
// a few ulps of x plus a sliver of step, so it never grows to a whole step.
func isMultiple(x, step float64) bool {
	r := math.Remainder(x, step)
	tol := 1e-9*step + 16*math.Abs(x)*epsilon
	return math.Abs(r) <= tol
}

const epsilon = 0x1p-52

// deriveSeed gives every attribute its own stream: seed XOR fnv(name)
func deriveSeed(seed uint64, name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return seed ^ h.Sum64()
}
