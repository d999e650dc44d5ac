package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncMatchesRecorded()
	s.IncMatchesRecorded()
	s.IncMatchesDeleted()
	s.IncDraftRequests("tournament")
	s.IncDraftFailures("teams")
	s.ObserveRecomputeDuration(0.02)
	s.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.MatchesRecorded))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.MatchesDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.DraftRequests.WithLabelValues("tournament")))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.DraftRequests.WithLabelValues("teams")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.DraftFailures.WithLabelValues("teams")))
	assert.Equal(t, 1.5, testutil.ToFloat64(s.StartupTimeSeconds))
	assert.Equal(t, 1, testutil.CollectAndCount(s.RecomputeDuration))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncSlackNotifSent()

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "puckpal_slack_notifications_sent_total 1")
}
