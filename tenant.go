package statgen

// Ttenant is a broker-side owner of one generator. It collects every
// cloudlet its generator hands out.
type Ttenant struct {
	id        Tid
	gen       *StatGenerator
	submitted []*Cloudlet
}

func NewTenant(id Tid, p *Profile) (*Ttenant, error) {
	tn := &Ttenant{id: id}
	gen, err := p.NewGenerator(tn)
	if err != nil {
		return nil, err
	}
	tn.gen = gen
	return tn, nil
}

func (tn *Ttenant) Id() Tid {
	return tn.id
}

func (tn *Ttenant) Generator() *StatGenerator {
	return tn.gen
}

// genLoad drains everything the generator has buffered.
func (tn *Ttenant) genLoad() []*Cloudlet {
	cs := make([]*Cloudlet, 0, tn.gen.Len())
	for !tn.gen.IsEmpty() {
		cs = append(cs, tn.gen.Poll())
	}
	tn.submitted = append(tn.submitted, cs...)
	return cs
}

func (tn *Ttenant) Submitted() []*Cloudlet {
	return tn.submitted
}
