// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "disco"

// knownWarnings bounds the label values of the warnings counter.
var knownWarnings = map[string]bool{
	"unsupported_cone_type": true,
	"rotated_cone_size":     true,
	"cut_frequency":         true,
	"global_cut_frequency":  true,
}

func warningLabel(kind string) string {
	if knownWarnings[kind] {
		return kind
	}

	return "unknown"
}

// Collectors groups every metric of the module.
type Collectors struct {
	modelsLoaded  prometheus.Counter
	columns       prometheus.Gauge
	rows          prometheus.Gauge
	cones         prometheus.Gauge
	liftedColumns prometheus.Gauge
	warnings      *prometheus.CounterVec
	cutFamilies   *prometheus.GaugeVec

	encoded      prometheus.Counter
	decoded      prometheus.Counter
	encodedBytes prometheus.Histogram
	released     prometheus.Counter

	checkpointOps *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
// It panics if a collector is already registered, like promauto.
func New(reg prometheus.Registerer) *Collectors {
	f := promauto.With(reg)

	return &Collectors{
		modelsLoaded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "model", Name: "loaded_total",
			Help: "Models read and canonicalized.",
		}),
		columns: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "model", Name: "columns",
			Help: "Columns of the last canonical problem, lifted ones included.",
		}),
		rows: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "model", Name: "rows",
			Help: "Rows of the last canonical problem.",
		}),
		cones: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "model", Name: "cones",
			Help: "Cone records of the last canonical problem.",
		}),
		liftedColumns: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "model", Name: "lifted_columns",
			Help: "Columns added to move row cones onto variables.",
		}),
		warnings: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "model", Name: "warnings_total",
			Help: "Configuration warnings by kind.",
		}, []string{"kind"}),
		cutFamilies: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "cuts", Name: "registered_families",
			Help: "Registered cut families by strategy.",
		}, []string{"strategy"}),
		encoded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "nodedesc", Name: "encoded_total",
			Help: "Node descriptors encoded.",
		}),
		decoded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "nodedesc", Name: "decoded_total",
			Help: "Node descriptors decoded.",
		}),
		encodedBytes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "nodedesc", Name: "encoded_bytes",
			Help:    "Size of encoded node descriptors.",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}),
		released: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "nodedesc", Name: "warm_starts_released_total",
			Help: "Warm starts released on replacement, close or decode.",
		}),
		checkpointOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "checkpoint", Name: "operations_total",
			Help: "Checkpoint store operations by op and status.",
		}, []string{"op", "status"}),
	}
}

// ObserveModel records the shape of a freshly canonicalized problem.
func (c *Collectors) ObserveModel(cols, rows, cones, lifted int) {
	if c == nil {
		return
	}
	c.modelsLoaded.Inc()
	c.columns.Set(float64(cols))
	c.rows.Set(float64(rows))
	c.cones.Set(float64(cones))
	c.liftedColumns.Set(float64(lifted))
}

// Warning counts one configuration warning. Unknown kinds are recorded as "unknown".
func (c *Collectors) Warning(kind string) {
	if c == nil {
		return
	}
	c.warnings.WithLabelValues(warningLabel(kind)).Inc()
}

// SetCutFamilies records how many families resolved to strategy.
func (c *Collectors) SetCutFamilies(strategy string, n int) {
	if c == nil {
		return
	}
	c.cutFamilies.WithLabelValues(strategy).Set(float64(n))
}

// Encoded records one encoded descriptor of n bytes.
func (c *Collectors) Encoded(n int) {
	if c == nil {
		return
	}
	c.encoded.Inc()
	c.encodedBytes.Observe(float64(n))
}

// Decoded records one decoded descriptor.
func (c *Collectors) Decoded() {
	if c == nil {
		return
	}
	c.decoded.Inc()
}

// Released records one released warm start.
func (c *Collectors) Released() {
	if c == nil {
		return
	}
	c.released.Inc()
}

// CheckpointOp records a checkpoint store operation.
func (c *Collectors) CheckpointOp(op string, err error) {
	if c == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.checkpointOps.WithLabelValues(op, status).Inc()
}
