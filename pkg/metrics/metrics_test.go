package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "smc-store.availability")

	m.StoreOpen.Set(1)
	m.OpenStateRefreshes.WithLabelValues("ok").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["smc_store_availability_store_open"])
	assert.True(t, names["smc_store_availability_open_state_refresh_total"])
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreOpen))
}
