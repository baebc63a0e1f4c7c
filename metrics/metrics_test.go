package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disco/metrics"
)

func TestCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	c.ObserveModel(10, 4, 2, 3)
	c.Warning("rotated_cone_size")
	c.Warning("rotated_cone_size")
	c.Warning("bogus")
	c.SetCutFamilies("root", 6)
	c.Encoded(100)
	c.Encoded(300)
	c.Decoded()
	c.Released()
	c.CheckpointOp("put", nil)
	c.CheckpointOp("get", errors.New("boom"))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, count)

	assert.Equal(t, 1.0, metricValue(t, reg, "disco_model_loaded_total", "", ""))
	assert.Equal(t, 2.0, metricValue(t, reg, "disco_model_warnings_total", "kind", "rotated_cone_size"))
	assert.Equal(t, 1.0, metricValue(t, reg, "disco_model_warnings_total", "kind", "unknown"))
	assert.Equal(t, 3.0, metricValue(t, reg, "disco_model_lifted_columns", "", ""))
	assert.Equal(t, 6.0, metricValue(t, reg, "disco_cuts_registered_families", "strategy", "root"))
	assert.Equal(t, 2.0, metricValue(t, reg, "disco_nodedesc_encoded_total", "", ""))
	assert.Equal(t, 1.0, metricValue(t, reg, "disco_checkpoint_operations_total", "status", "error"))
}

func TestNilCollectors(t *testing.T) {
	var c *metrics.Collectors
	require.NotPanics(t, func() {
		c.ObserveModel(1, 1, 1, 1)
		c.Warning("x")
		c.SetCutFamilies("root", 1)
		c.Encoded(1)
		c.Decoded()
		c.Released()
		c.CheckpointOp("put", nil)
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	require.Panics(t, func() { metrics.New(reg) })
}

// metricValue returns the value of the first sample of name whose label
// matches; an empty label matches any sample.
func metricValue(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if label != "" {
				var ok bool
				for _, lp := range m.GetLabel() {
					ok = ok || (lp.GetName() == label && lp.GetValue() == value)
				}
				if !ok {
					continue
				}
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			}
		}
	}
	t.Fatalf("metric %s{%s=%q} not found", name, label, value)

	return 0
}
