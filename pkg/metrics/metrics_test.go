package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripperCountsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	client := &http.Client{Transport: m.RoundTripper(srv.Client().Transport)}
	for _, path := range []string{"/a", "/b", "/missing"} {
		resp, err := client.Get(srv.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues("200", "get")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues("404", "get")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InFlight))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))
}

func TestNewRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

type closeCounter struct {
	http.RoundTripper
	closed int
}

func (c *closeCounter) CloseIdleConnections() { c.closed++ }

func TestRoundTripperForwardsCloseIdleConnections(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	next := &closeCounter{RoundTripper: http.DefaultTransport}
	client := &http.Client{Transport: m.RoundTripper(next)}
	client.CloseIdleConnections()

	assert.Equal(t, 1, next.closed)
}
