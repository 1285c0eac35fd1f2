package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteOf(t *testing.T) {
	var got string
	m := chi.NewRouter()
	m.Get("/v1/things/{id}", func(w http.ResponseWriter, r *http.Request) { got = routeOf(r) })

	m.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/things/42", nil))
	assert.Equal(t, "/v1/things/{id}", got)

	// outside a chi router the raw path is used
	assert.Equal(t, "/plain/path", routeOf(httptest.NewRequest(http.MethodGet, "/plain/path", nil)))
}

func TestLogger_RecordsRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithTimeout(0), WithLogger(zerolog.New(&buf)))
	s.mux.Get("/v1/things/{id}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusAccepted) })
	s.mux.Get("/broken", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) })

	s.Mux().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/things/42", nil))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "/v1/things/{id}", rec["route"])
	assert.Equal(t, "GET", rec["method"])
	assert.EqualValues(t, http.StatusAccepted, rec["status"])
	assert.NotEmpty(t, rec["request_id"])

	buf.Reset()
	s.Mux().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))
	rec = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "error", rec["level"])
	assert.EqualValues(t, http.StatusBadGateway, rec["status"])
}

func TestRemoteIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.7:5555"
	assert.Equal(t, "10.0.0.7", remoteIP(r))

	r.Header.Set("X-Real-IP", "192.0.2.4")
	assert.Equal(t, "192.0.2.4", remoteIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", remoteIP(r))
}
