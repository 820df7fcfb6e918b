package litmus

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.uber.org/zap/zaptest"

	"github.com/saturnines/litmus-go/pkg/errors"
	"github.com/saturnines/litmus-go/pkg/litmus/model"
	"github.com/saturnines/litmus-go/pkg/transport/graphql"
)

// recorded is one request seen by the fake control plane.
type recorded struct {
	Method        string
	Path          string
	Query         map[string][]string
	Authorization string
	Body          string
	Document      string
}

// controlPlane fakes both the auth server and the GraphQL endpoint.
type controlPlane struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	requests []recorded
	rest     map[string]string
	graphql  string
	status   int
}

func newControlPlane(t *testing.T) *controlPlane {
	t.Helper()
	cp := &controlPlane{t: t, rest: make(map[string]string), status: http.StatusOK}
	cp.srv = httptest.NewServer(http.HandlerFunc(cp.handle))
	t.Cleanup(cp.srv.Close)
	return cp
}

func (cp *controlPlane) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rec := recorded{
		Method:        r.Method,
		Path:          r.URL.EscapedPath(),
		Query:         r.URL.Query(),
		Authorization: r.Header.Get("Authorization"),
		Body:          string(body),
	}

	cp.mu.Lock()
	status := cp.status
	response := cp.rest[r.URL.Path]
	if r.URL.Path == graphqlPath {
		var req struct {
			Query string `json:"query"`
		}
		assert.NoError(cp.t, json.Unmarshal(body, &req))
		rec.Document = req.Query
		response = cp.graphql
	}
	cp.requests = append(cp.requests, rec)
	cp.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(response))
}

func (cp *controlPlane) last() recorded {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	require.NotEmpty(cp.t, cp.requests)
	return cp.requests[len(cp.requests)-1]
}

func (cp *controlPlane) client(t *testing.T, token string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithHTTPClient(cp.srv.Client()), WithLogger(zaptest.NewLogger(t))}, opts...)
	c, err := New(cp.srv.URL+"/", token, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func requireValidGraphQL(t *testing.T, doc string) {
	t.Helper()
	_, err := parser.ParseQuery(&ast.Source{Input: doc})
	require.Nil(t, err, "invalid document: %s", doc)
}

func TestNew_SanitizesHost(t *testing.T) {
	c, err := New("http://host.ns:8080/", "tok")
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "http://host.ns:8080", c.Host())
	assert.Equal(t, "http://host.ns:8080/api/query", c.GraphQLURL())
	assert.Equal(t, "http://host.ns:8080/auth", c.AuthURL())

	c2, err := New("http://host.ns:8080///", "")
	require.NoError(t, err)
	assert.Equal(t, "http://host.ns:8080/api/query", c2.GraphQLURL())
}

func TestNew_EmptyHost(t *testing.T) {
	_, err := New(" / ", "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestClient_Token(t *testing.T) {
	cp := newControlPlane(t)
	cp.rest["/auth/get_user/u1"] = `{"userID":"u1","username":"admin"}`
	cp.graphql = `{"data":{"deleteInfra":"ok"}}`

	c := cp.client(t, "first")
	assert.Equal(t, "first", c.Token())

	_, err := c.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer first", cp.last().Authorization)

	c.SetToken("second")
	assert.Equal(t, "second", c.Token())

	_, err = c.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer second", cp.last().Authorization)

	_, err = c.DeleteInfra(context.Background(), "p", "i")
	require.NoError(t, err)
	assert.Equal(t, "Bearer second", cp.last().Authorization)
}

func TestClient_Close(t *testing.T) {
	c, err := New("http://localhost:9091", "")
	require.NoError(t, err)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestClient_CloseReleasesConnections(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "plain"},
		{name: "metrics", opts: []Option{WithMetrics(prometheus.NewRegistry())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var closed atomic.Int32
			srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"dex":{"enabled":false}}`))
			}))
			srv.Config.ConnState = func(_ net.Conn, state http.ConnState) {
				if state == http.StateClosed {
					closed.Add(1)
				}
			}
			srv.Start()
			t.Cleanup(srv.Close)

			// An idle connection on the shared default transport must survive.
			resp, err := http.DefaultClient.Get(srv.URL + "/auth/capabilities")
			require.NoError(t, err)
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()

			c, err := New(srv.URL, "", tt.opts...)
			require.NoError(t, err)
			_, err = c.Capabilities(context.Background())
			require.NoError(t, err)
			require.Zero(t, closed.Load())

			require.NoError(t, c.Close())
			assert.Eventually(t, func() bool { return closed.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
			assert.Never(t, func() bool { return closed.Load() > 1 }, 100*time.Millisecond, 10*time.Millisecond)
		})
	}
}

func TestClient_WithMetrics(t *testing.T) {
	cp := newControlPlane(t)
	cp.rest["/auth/capabilities"] = `{"dex":{"enabled":true}}`

	reg := prometheus.NewRegistry()
	c, err := New(cp.srv.URL, "", WithMetrics(reg), WithUserAgent("litmusctl/test"))
	require.NoError(t, err)
	defer c.Close()

	got, err := c.Capabilities(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Dex.Enabled)

	n, err := testutil.GatherAndCount(reg, "litmus_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClient_GraphQLDefaultsAreValidDocuments(t *testing.T) {
	for name, p := range map[string]*graphql.Projection{
		"environment":      EnvironmentProjection(),
		"listEnvironments": ListEnvironmentProjection(),
		"infra":            InfraProjection(),
		"listInfras":       ListInfraProjection(),
		"infraStats":       InfraStatsProjection(),
		"confirm":          ConfirmInfraRegistrationProjection(),
		"register":         RegisterInfraProjection(),
		"chaosHub":         ChaosHubProjection(),
		"chaosHubStats":    ChaosHubStatsProjection(),
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := graphql.NewRequest(graphql.NewQuery("x"), p).Serialize()
			require.NoError(t, err)
			requireValidGraphQL(t, doc)
			assert.True(t, strings.HasSuffix(doc, "} }"))
		})
	}
}

func TestClient_StatusErrorPassesThrough(t *testing.T) {
	cp := newControlPlane(t)
	cp.status = http.StatusUnauthorized
	cp.rest["/auth/users"] = `{"error":"unauthorized","errorDescription":"token is expired"}`

	c := cp.client(t, "stale")
	_, err := c.GetUsers(context.Background())

	var ce *errors.ClientError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, http.StatusUnauthorized, ce.StatusCode)
	assert.Equal(t, "token is expired", ce.Message)
}

func TestClient_ListProjectsSendsAllParams(t *testing.T) {
	cp := newControlPlane(t)
	cp.rest["/auth/list_projects"] = `{"projects":[{"projectID":"p1","name":"default"}],"totalNumberOfProjects":1}`

	c := cp.client(t, "tok")
	got, err := c.ListProjects(context.Background(), model.ListProjectRequest{Page: 0, Limit: 15, SortField: "name"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalNumberOfProjects)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "p1", got.Projects[0].ID)

	q := cp.last().Query
	assert.Equal(t, []string{"0"}, q["page"])
	assert.Equal(t, []string{"15"}, q["limit"])
	assert.Equal(t, []string{"name"}, q["sortField"])
	assert.Equal(t, []string{"false"}, q["createdByMe"])
}

func unescape(p string) string {
	return strings.ReplaceAll(p, "%2F", "/")
}
