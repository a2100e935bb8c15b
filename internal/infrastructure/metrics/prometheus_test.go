package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMetrics_ObserveRequest(t *testing.T) {
	m := NewSyncMetrics()
	m.ObserveRequest("fetchAll", "fulfilled")
	m.ObserveRequest("fetchAll", "fulfilled")
	m.ObserveRequest("create", "rejected")

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "smartorders_sync_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			counts[labels["kind"]+"/"+labels["outcome"]] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"fetchAll/fulfilled": 2, "create/rejected": 1}, counts)
}

func TestSyncMetrics_Handler(t *testing.T) {
	m := NewSyncMetrics()
	m.ObserveRequest("delete", "stale")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	assert.Equal(t, 200, w.Code)
	assert.True(t, strings.Contains(string(body), `smartorders_sync_requests_total{kind="delete",outcome="stale"} 1`))
}
