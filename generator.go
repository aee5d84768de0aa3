package statgen

import (
	"fmt"
	"math"
)

const (
	VERBOSE_GEN_STATS = false
)

// StatGenerator produces cloudlets whose attributes are drawn from a fixed
// set of samplers, one per clock instant that passes its time gate. Produced
// cloudlets wait in a FIFO until polled.
//
// A StatGenerator is driven by a single simulation loop and does no locking.
type StatGenerator struct {
	owner    IdProvider
	samplers *SamplerRegistry
	gate     TimeGate
	lastTime float64 // last instant a cloudlet was produced for
	nextId   Tid
	q        *Queue
	dists    AttrDistributions
	metrics  *GenMetrics
}

func NewStatGenerator(owner IdProvider, samplers map[string]Sampler) (*StatGenerator, error) {
	return NewStatGeneratorWithGate(owner, samplers, DefaultTimeGate())
}

// NewWindowedStatGenerator only produces cloudlets for instants in
// [start, end].
func NewWindowedStatGenerator(owner IdProvider, samplers map[string]Sampler, start, end float64) (*StatGenerator, error) {
	gate, err := NewWindowGate(start, end)
	if err != nil {
		return nil, err
	}
	return NewStatGeneratorWithGate(owner, samplers, gate)
}

func NewStatGeneratorWithGate(owner IdProvider, samplers map[string]Sampler, gate TimeGate) (*StatGenerator, error) {
	if owner == nil {
		return nil, ErrNilOwner
	}
	if err := gate.validate(); err != nil {
		return nil, err
	}
	reg, err := NewSamplerRegistry(samplers)
	if err != nil {
		return nil, err
	}
	return &StatGenerator{
		owner:    owner,
		samplers: reg,
		gate:     gate,
		lastTime: math.Inf(-1),
		q:        newQueue(),
		dists:    newAttrDistributions(reg.Attributes()),
	}, nil
}

// AttachMetrics starts reporting to m. A nil m turns reporting off.
func (g *StatGenerator) AttachMetrics(m *GenMetrics) {
	g.metrics = m
}

func (g *StatGenerator) String() string {
	return fmt.Sprintf("generator owner %d gate %v produced %d queued %d\n", g.owner.Id(), g.gate, g.nextId, g.q.qlen()) +
		g.dists.String()
}

// NotifyOfTime tells the generator the clock reached t. If t passes the gate
// and is later than the last instant a cloudlet was produced for, one new
// cloudlet is sampled and queued.
func (g *StatGenerator) NotifyOfTime(t float64) {
	verdict := g.gate.check(t)
	if verdict != gateAccept {
		g.metrics.notified(g.owner.Id(), verdict.String())
		return
	}
	if t <= g.lastTime {
		g.metrics.notified(g.owner.Id(), "repeated")
		return
	}
	g.lastTime = t

	vals := g.samplers.DrawAll()
	c := newCloudlet(g.nextId, g.owner.Id(), Ttime(t), vals)
	g.nextId += 1
	g.q.enq(c)
	g.dists.update(vals)

	g.metrics.notified(g.owner.Id(), verdict.String())
	g.metrics.producedOne(g.owner.Id(), g.q.qlen())
	if VERBOSE_GEN_STATS {
		fmt.Printf("%v: generated %v\n", Ttime(t), c)
	}
}

func (g *StatGenerator) IsEmpty() bool {
	return g.q.qlen() == 0
}

// Peek returns the oldest queued cloudlet without removing it, or nil. Until
// the next Poll every call returns the same pointer.
func (g *StatGenerator) Peek() *Cloudlet {
	return g.q.front()
}

// Poll removes and returns the oldest queued cloudlet, or nil.
func (g *StatGenerator) Poll() *Cloudlet {
	c := g.q.deq()
	if c != nil {
		g.metrics.polledOne(g.owner.Id(), g.q.qlen())
	}
	return c
}

func (g *StatGenerator) Len() int {
	return g.q.qlen()
}

// Produced is the number of cloudlets generated so far, polled or not.
func (g *StatGenerator) Produced() int {
	return int(g.nextId)
}

func (g *StatGenerator) Gate() TimeGate {
	return g.gate
}

func (g *StatGenerator) Attributes() []string {
	return g.samplers.Attributes()
}

// Stats returns the running distribution of each attribute over every
// cloudlet produced so far.
func (g *StatGenerator) Stats() map[string]Distribution {
	out := make(map[string]Distribution, len(g.dists))
	for name, d := range g.dists {
		out[name] = *d
	}
	return out
}
