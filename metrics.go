package consumable

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	items         prometheus.Gauge
	itemsAdded    prometheus.Counter
	itemsConsumed prometheus.Counter
	consumes      *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	m := metrics{
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items",
			Help:      "Number of records in the collection",
		}),
		itemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_added",
			Help:      "Number of records added to the collection",
		}),
		itemsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_consumed",
			Help:      "Number of records taken out of the collection by consume calls",
		}),
		consumes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "consumes_total",
			Help:      "Number of consume calls by result",
		}, []string{"result"}),
	}

	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "consumable"},
			registerer,
		)
		registerer.MustRegister(
			m.items,
			m.itemsAdded,
			m.itemsConsumed,
			m.consumes,
		)
	}

	return &m
}

func (m *metrics) added(n int) {
	if m == nil {
		return
	}
	m.itemsAdded.Add(float64(n))
}

func (m *metrics) consumed(n int) {
	if m == nil {
		return
	}
	if n == 0 {
		m.consumes.WithLabelValues("miss").Inc()
		return
	}
	m.consumes.WithLabelValues("hit").Inc()
	m.itemsConsumed.Add(float64(n))
}

// size must be called with the collection lock held, so gauge updates follow mutation order.
func (m *metrics) size(n int) {
	if m == nil {
		return
	}
	m.items.Set(float64(n))
}
