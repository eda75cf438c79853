package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/beagleboard/gbridge/pkg/greybus"
	"github.com/beagleboard/gbridge/pkg/sdio/wire"
)

type MetricsConfig struct {
	Namespace string
	SubSDIO   string
}

func DefaultConfig() *MetricsConfig {
	return &MetricsConfig{
		Namespace: "gbridge",
		SubSDIO:   "sdio",
	}
}

// Metrics counts sdio operations by type and result.
type Metrics struct {
	reg        prometheus.Registerer
	config     *MetricsConfig
	operations *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	return NewWithConfig(reg, DefaultConfig())
}

func NewWithConfig(reg prometheus.Registerer, config *MetricsConfig) *Metrics {
	met := &Metrics{
		reg:    reg,
		config: config,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.SubSDIO,
			Name:      "operations_total",
			Help:      "Operations handled, by type and result",
		}, []string{"op", "result"}),
	}

	reg.MustRegister(met.operations)
	return met
}

func (m *Metrics) ObserveOperation(opType byte, result greybus.Result) {
	m.operations.WithLabelValues(wire.OpString(opType), result.String()).Inc()
}
