package consumable

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a SharedCollection created by NewShared.
type Option func(*config)

type config struct {
	metrics *metrics
}

// WithPrometheus instruments the collection with Prometheus metrics.
//
// If registerer is nil, metrics are still maintained but not registered.
//
// Example:
//
//	c := consumable.NewShared(nil, consumable.WithPrometheus(prometheus.DefaultRegisterer, "app", "replies"))
func WithPrometheus(registerer prometheus.Registerer, namespace, subsystem string) Option {
	return func(c *config) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

func newDefaultConfig() *config {
	return &config{}
}
