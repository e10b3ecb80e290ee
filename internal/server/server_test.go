package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/blueprint"
	"github.com/papapumpkin/bodygraph/internal/bodygraph"
	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/fault"
	"github.com/papapumpkin/bodygraph/internal/metrics"
)

const adaJSON = `{"name":"Ada Lovelace","date":"1815-12-10","time":"12:00","timezone":"UTC"}`

type routeRecorder struct {
	mu     sync.Mutex
	routes []string
	codes  []int
}

func (r *routeRecorder) ObserveRequest(route string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
	r.codes = append(r.codes, status)
}

// brokenCharter fails every request with a non-validation error.
type brokenCharter struct{}

func (brokenCharter) Request(birth.Request, string) (*engine.Chart, error) {
	return nil, &fault.CalculationError{Body: "moon", Quantity: "longitude", Err: fault.ErrNonFinite}
}

func (brokenCharter) Blueprint(birth.Request, string) (blueprint.Blueprint, error) {
	return blueprint.Blueprint{}, errors.New("boom")
}

func newServer(t *testing.T, c Charter, opts ...Option) *httptest.Server {
	t.Helper()
	if c == nil {
		e, err := engine.New(zaptest.NewLogger(t))
		require.NoError(t, err)
		c = e
	}
	s, err := New(c, zaptest.NewLogger(t), opts...)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestBodygraph(t *testing.T) {
	t.Parallel()

	ts := newServer(t, nil)
	resp := post(t, ts.URL+"/v1/bodygraph", adaJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	var bg bodygraph.Bodygraph
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bg))
	assert.Contains(t, bodygraph.Types[:], bg.Type)
	assert.Len(t, bg.Gates.ConsciousPersonality, 13)
	assert.Len(t, bg.Gates.UnconsciousDesign, 13)
}

func TestBodygraphYAML(t *testing.T) {
	t.Parallel()

	ts := newServer(t, nil)
	resp := post(t, ts.URL+"/v1/bodygraph?format=yaml", adaJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))

	var bg bodygraph.Bodygraph
	require.NoError(t, yaml.NewDecoder(resp.Body).Decode(&bg))
	assert.NotEmpty(t, bg.Profile)
}

func TestBlueprint(t *testing.T) {
	t.Parallel()

	ts := newServer(t, nil)
	resp := post(t, ts.URL+"/v1/blueprint", adaJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bp blueprint.Blueprint
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bp))
	assert.Equal(t, "Ada", bp.UserMeta.PreferredName)
	assert.Equal(t, "Sagittarius", bp.Western.Sun.Sign)
	assert.Equal(t, "Pig", bp.Chinese.Animal)
	assert.Equal(t, blueprint.DefaultMBTI, bp.Cognition.Type)
	assert.True(t, bp.Cognition.Assumed)
	assert.Len(t, bp.HumanDesign.Cross.Gates, 4)
}

func TestTables(t *testing.T) {
	t.Parallel()

	ts := newServer(t, nil)
	resp, err := http.Get(ts.URL + "/v1/tables?format=toml")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "wheel_offset")
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		charter Charter
		path    string
		body    string
		status  int
		class   string
	}{
		{"malformed json", nil, "/v1/bodygraph", `{"date":`, http.StatusBadRequest, "validation"},
		{"unknown field", nil, "/v1/bodygraph", `{"date":"2000-01-01","time":"00:00","colour":"red"}`, http.StatusBadRequest, "validation"},
		{"bad date", nil, "/v1/bodygraph", `{"date":"2000-02-30","time":"00:00"}`, http.StatusBadRequest, "validation"},
		{"bad zone", nil, "/v1/blueprint", `{"date":"2000-01-01","time":"00:00","timezone":"Mars/Olympus"}`, http.StatusBadRequest, "validation"},
		{"text format", nil, "/v1/bodygraph?format=text", adaJSON, http.StatusBadRequest, "validation"},
		{"too large", nil, "/v1/bodygraph", `{"name":"` + strings.Repeat("x", 70<<10) + `"}`, http.StatusRequestEntityTooLarge, "validation"},
		{"calculation", brokenCharter{}, "/v1/bodygraph", adaJSON, http.StatusInternalServerError, "calculation"},
		{"other", brokenCharter{}, "/v1/blueprint", adaJSON, http.StatusInternalServerError, "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newServer(t, tt.charter)
			resp := post(t, ts.URL+tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body errorBody
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.class, body.Class)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, resp.Header.Get(HeaderRequestID), body.RequestID)
		})
	}
}

func TestRequestIDPropagates(t *testing.T) {
	t.Parallel()

	ts := newServer(t, nil)
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	rec := &routeRecorder{}
	e, err := engine.New(zaptest.NewLogger(t), engine.WithRecorder(m))
	require.NoError(t, err)

	ts := newServer(t, e, WithGatherer(reg), WithRecorder(multiRecorder{m, rec}))
	post(t, ts.URL+"/v1/bodygraph", adaJSON)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "bodygraph_charts_total")
	assert.Contains(t, string(body), "bodygraph_http_requests_total")

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Contains(t, rec.routes, "/v1/bodygraph")
}

func TestMetricsNotMountedWithoutGatherer(t *testing.T) {
	t.Parallel()

	ts := newServer(t, nil)
	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListenAndServe(t *testing.T) {
	t.Parallel()

	e, err := engine.New(zaptest.NewLogger(t))
	require.NoError(t, err)
	s, err := New(e, zaptest.NewLogger(t))
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, addr, time.Second, nil) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

type multiRecorder []RequestRecorder

func (m multiRecorder) ObserveRequest(route string, status int, d time.Duration) {
	for _, r := range m {
		r.ObserveRequest(route, status, d)
	}
}
