package statgen

// FIFO of produced cloudlets. Items only ever leave from the front.
type Queue struct {
	q []*Cloudlet
}

func newQueue() *Queue {
	q := &Queue{q: make([]*Cloudlet, 0)}
	return q
}

func (q *Queue) String() string {
	str := ""
	for _, c := range q.q {
		str += c.String() + "\n"
	}
	return str
}

func (q *Queue) enq(c *Cloudlet) {
	q.q = append(q.q, c)
}

func (q *Queue) front() *Cloudlet {
	if len(q.q) == 0 {
		return nil
	}
	return q.q[0]
}

func (q *Queue) deq() *Cloudlet {
	if len(q.q) == 0 {
		return nil
	}
	c := q.q[0]
	q.q[0] = nil
	q.q = q.q[1:]
	return c
}

func (q *Queue) qlen() int {
	return len(q.q)
}
