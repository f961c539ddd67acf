package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAttempt(t *testing.T) {
	Init()
	Init()

	before := testutil.ToFloat64(AttemptsRecorded.WithLabelValues("true"))
	RecordAttempt(true)
	assert.Equal(t, before+1, testutil.ToFloat64(AttemptsRecorded.WithLabelValues("true")))
}

func TestPrometheusHandlerExposesCounters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()
	RecordAttempt(false)

	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/metrics", PrometheusHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "quiz_attempts_recorded_total"))
}
