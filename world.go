package statgen

import "fmt"

const (
	VERBOSE_WORLD_STATS = false
)

// World advances an integer clock and, on every tick, notifies each tenant's
// generator and drains it.
type World struct {
	currTick Ttime
	tenants  []*Ttenant
	nSubmit  int
}

func NewWorld() *World {
	return &World{currTick: Ttime(0)}
}

func (w *World) AddTenant(tn *Ttenant) {
	w.tenants = append(w.tenants, tn)
}

func (w *World) String() string {
	str := fmt.Sprintf("tick %v submitted %d tenants: \n", w.currTick, w.nSubmit)
	for _, tn := range w.tenants {
		str += "   " + tn.gen.String()
	}
	return str
}

func (w *World) Tick() {
	for _, tn := range w.tenants {
		tn.gen.NotifyOfTime(float64(w.currTick))
		w.nSubmit += len(tn.genLoad())
	}
	if VERBOSE_WORLD_STATS {
		fmt.Printf("after tick %v", w)
	}
	w.currTick += 1
}

func (w *World) Run(nTick int) {
	for i := 0; i < nTick; i++ {
		w.Tick()
	}
}

func (w *World) CurrTick() Ttime {
	return w.currTick
}

func (w *World) NumSubmitted() int {
	return w.nSubmit
}
