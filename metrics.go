package statgen

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// GenMetrics exports generator activity. One instance can be shared by
// several generators; series are split by owner.
type GenMetrics struct {
	notifications *prometheus.CounterVec
	produced      *prometheus.CounterVec
	polled        *prometheus.CounterVec
	queueLen      *prometheus.GaugeVec
}

func NewGenMetrics(reg prometheus.Registerer) (*GenMetrics, error) {
	m := &GenMetrics{
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statgen_time_notifications_total",
			Help: "Time notifications received, by gate outcome.",
		}, []string{"owner", "outcome"}),
		produced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statgen_cloudlets_produced_total",
			Help: "Cloudlets sampled and buffered.",
		}, []string{"owner"}),
		polled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statgen_cloudlets_polled_total",
			Help: "Cloudlets handed out by Poll.",
		}, []string{"owner"}),
		queueLen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "statgen_queue_length",
			Help: "Cloudlets currently buffered awaiting Poll.",
		}, []string{"owner"}),
	}
	for _, c := range []prometheus.Collector{m.notifications, m.produced, m.polled, m.queueLen} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func ownerLabel(id Tid) string {
	return strconv.Itoa(int(id))
}

func (m *GenMetrics) notified(owner Tid, outcome string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(ownerLabel(owner), outcome).Inc()
}

func (m *GenMetrics) producedOne(owner Tid, qlen int) {
	if m == nil {
		return
	}
	m.produced.WithLabelValues(ownerLabel(owner)).Inc()
	m.queueLen.WithLabelValues(ownerLabel(owner)).Set(float64(qlen))
}

func (m *GenMetrics) polledOne(owner Tid, qlen int) {
	if m == nil {
		return
	}
	m.polled.WithLabelValues(ownerLabel(owner)).Inc()
	m.queueLen.WithLabelValues(ownerLabel(owner)).Set(float64(qlen))
}
