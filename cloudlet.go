package statgen

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// attribute names understood by the cloudlet assembler
const (
	CLOUDLET_LENGTH = "CLOUDLET_LENGTH" // in MI
	CLOUDLET_RAM    = "CLOUDLET_RAM"    // in MB
	CLOUDLET_IO     = "CLOUDLET_IO"
)

var requiredAttributes = []string{CLOUDLET_LENGTH, CLOUDLET_RAM}

// IdProvider is all the generator needs to know about the entity that owns
// the cloudlets it produces (in practice, the broker).
type IdProvider interface {
	Id() Tid
}

// Cloudlet is one synthetic unit of work. It is never modified after the
// generator builds it.
type Cloudlet struct {
	id         Tid
	uid        uuid.UUID
	ownerId    Tid
	submitTime Ttime
	attrs      map[string]float64
}

func newCloudlet(id Tid, ownerId Tid, submitTime Ttime, attrs map[string]float64) *Cloudlet {
	return &Cloudlet{
		id:         id,
		uid:        uuid.New(),
		ownerId:    ownerId,
		submitTime: submitTime,
		attrs:      attrs,
	}
}

func (c *Cloudlet) Id() Tid { return c.id }
func (c *Cloudlet) UID() uuid.UUID { return c.uid }
func (c *Cloudlet) OwnerId() Tid { return c.ownerId }
func (c *Cloudlet) SubmitTime() Ttime { return c.submitTime }
func (c *Cloudlet) Length() float64 { return c.attrs[CLOUDLET_LENGTH] }
func (c *Cloudlet) IO() float64 { return c.attrs[CLOUDLET_IO] }

// Ram is the sampled memory rounded to whole MB, clamped to [0, MaxInt].
func (c *Cloudlet) Ram() Tmem {
	v := math.Round(c.attrs[CLOUDLET_RAM])
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt:
		return Tmem(math.MaxInt)
	}
	return Tmem(v)
}

func (c *Cloudlet) Attr(name string) (float64, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

// Attrs returns a copy of every sampled value.
func (c *Cloudlet) Attrs() map[string]float64 {
	out := make(map[string]float64, len(c.attrs))
	for k, v := range c.attrs {
		out[k] = v
	}
	return out
}

func (c *Cloudlet) String() string {
	names := make([]string, 0, len(c.attrs))
	for k := range c.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	var sb strings.Builder
	fmt.Fprintf(&sb, "cloudlet %d (owner %d) at %v:", c.id, c.ownerId, c.submitTime)
	for _, k := range names {
		fmt.Fprintf(&sb, " %s=%.3f", k, c.attrs[k])
	}
	return sb.String()
}
