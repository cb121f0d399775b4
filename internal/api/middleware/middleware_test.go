package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rohits-web03/filedock/internal/api/middleware"
	"github.com/rohits-web03/filedock/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("generates a request id and exposes a context logger", func(t *testing.T) {
		var buf bytes.Buffer
		prev := log.Logger
		log.Logger = zerolog.New(&buf)
		t.Cleanup(func() { log.Logger = prev })

		h := middleware.Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zerolog.Ctx(r.Context()).Info().Msg("inside handler")
			w.WriteHeader(http.StatusTeapot)
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		requestID := w.Header().Get(middleware.RequestIDHeader)
		assert.Equal(t, http.StatusTeapot, w.Code)
		require.NotEmpty(t, requestID)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
			assert.Equal(t, requestID, entry["request_id"])
		}
	})

	t.Run("keeps a caller supplied request id", func(t *testing.T) {
		h := middleware.Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-1")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestMetrics(t *testing.T) {
	counter := metrics.RequestsTotal.WithLabelValues("metrics-test", http.MethodPost, "201")
	before := testutil.ToFloat64(counter)

	h := middleware.Metrics("metrics-test", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/upload", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
