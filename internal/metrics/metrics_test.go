package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("Should count calculations by validity", func(t *testing.T) {
		m := New()
		m.ObserveCalculation(true)
		m.ObserveCalculation(true)
		m.ObserveCalculation(false)

		assert.Equal(t, 2.0, testutil.ToFloat64(m.Calculations.WithLabelValues("true")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues("false")))
	})

	t.Run("Should keep registries independent", func(t *testing.T) {
		a, b := New(), New()
		a.CardViews.Inc()
		assert.Equal(t, 1.0, testutil.ToFloat64(a.CardViews))
		assert.Equal(t, 0.0, testutil.ToFloat64(b.CardViews))
	})

	t.Run("Should serve the text exposition", func(t *testing.T) {
		m := New()
		m.ObserveRequest("/card", http.StatusOK)

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body, _ := io.ReadAll(rec.Body)
		assert.Contains(t, string(body), `timeworth_http_requests_total{code="200",path="/card"} 1`)
	})
}
