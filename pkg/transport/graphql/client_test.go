package graphql

import (
	"context"
	"math"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnines/litmus-go/pkg/auth"
	"github.com/saturnines/litmus-go/pkg/errors"
)

func newExecutor(t *testing.T, token string, handler http.HandlerFunc) *Executor {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	ex := NewExecutor(srv.URL+"/api/query", auth.NewBearerAuth(token), WithHTTPDoer(srv.Client()))
	t.Cleanup(func() { _ = ex.Close() })
	return ex
}

func decodeQuery(t *testing.T, r *http.Request) string {
	t.Helper()
	var body struct {
		Query string `json:"query"`
	}
	assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body.Query
}

func TestQuery_SendsDocumentWithBearer(t *testing.T) {
	ex := newExecutor(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/query", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, `mutation { deleteInfra(projectID: "p", infraID: "infra-123") }`, decodeQuery(t, r))
		_, _ = w.Write([]byte(`{"data":{"deleteInfra":"infra-123"}}`))
	})

	got, err := ExecuteValue(context.Background(), ex,
		NewRequest(NewMutation("deleteInfra", Arg("projectID", "p"), Arg("infraID", "infra-123")), nil))
	require.NoError(t, err)
	assert.Equal(t, "infra-123", got)
}

func TestExecute_TypedResult(t *testing.T) {
	ex := newExecutor(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `query { getChaosHub(projectID: "p", chaosHubID: "h1") { id name } }`, decodeQuery(t, r))
		_, _ = w.Write([]byte(`{"data":{"getChaosHub":{"id":"h1","name":"hub-a"}}}`))
	})

	got, err := Execute[hub](context.Background(), ex,
		NewRequest(NewQuery("getChaosHub", Arg("projectID", "p"), Arg("chaosHubID", "h1")), NewProjection("id", "name")))
	require.NoError(t, err)
	assert.Equal(t, hub{ID: "h1", Name: "hub-a"}, got)
}

func TestQuery_EmptyTokenSendsNoHeader(t *testing.T) {
	ex := newExecutor(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"data":{}}`))
	})

	_, err := ex.Query(context.Background(), `query { listChaosHub { id } }`)
	require.NoError(t, err)
}

func TestQuery_TokenRotationIsPickedUp(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	bearer := auth.NewBearerAuth("old")
	ex := NewExecutor(srv.URL, bearer, WithHTTPDoer(srv.Client()))

	_, err := ex.Query(context.Background(), `query { a }`)
	require.NoError(t, err)
	bearer.SetToken("new")
	_, err = ex.Query(context.Background(), `query { a }`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer old", "Bearer new"}, seen)
}

func TestQuery_GraphQLErrorsSurfaceOnExtract(t *testing.T) {
	ex := newExecutor(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"chaos hub not found"}],"data":null}`))
	})

	env, err := ex.Query(context.Background(), `query { getChaosHub(projectID: "p", chaosHubID: "x") { id } }`)
	require.NoError(t, err)
	require.Len(t, env.Errors, 1)

	_, err = ExtractAs[hub](env, "data.getChaosHub")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrGraphQL))
	assert.Contains(t, err.Error(), "chaos hub not found")
}

func TestQuery_StatusError(t *testing.T) {
	ex := newExecutor(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Cannot query field \"nope\""}]}`))
	})

	_, err := ex.Query(context.Background(), `query { nope }`)
	require.Error(t, err)

	var ce *errors.ClientError
	require.True(t, errors.As(err, &ce))
	assert.True(t, errors.Is(err, errors.ErrHTTPStatus))
	assert.Equal(t, http.StatusUnprocessableEntity, ce.StatusCode)
	require.Len(t, ce.GraphQLErrors, 1)
	assert.Equal(t, `Cannot query field "nope"`, ce.Message)
}

func TestQuery_UnauthorizedWithoutEnvelope(t *testing.T) {
	ex := newExecutor(t, "bad", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := ex.Query(context.Background(), `query { a }`)
	assert.True(t, errors.Is(err, errors.ErrHTTPStatus))
	assert.Equal(t, http.StatusUnauthorized, errors.StatusCode(err))
}

func TestQuery_MalformedBody(t *testing.T) {
	ex := newExecutor(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	})

	_, err := ex.Query(context.Background(), `query { a }`)
	assert.True(t, errors.Is(err, errors.ErrDecode))
}

func TestQuery_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	ex := NewExecutor(url+"/api/query", nil)
	_, err := ex.Query(context.Background(), `query { a }`)
	assert.True(t, errors.Is(err, errors.ErrTransport))
}

func TestExecute_SerializeError(t *testing.T) {
	ex := NewExecutor("http://unused.invalid/api/query", nil)
	_, err := Execute[hub](context.Background(), ex, NewRequest(NewQuery(""), nil))
	assert.True(t, errors.Is(err, errors.ErrEncode))
}

func TestExecute_NonFiniteFloatIsEncodeError(t *testing.T) {
	ex := NewExecutor("http://unused.invalid/api/query", nil)
	req := NewRequest(NewQuery("q", Arg("weight", math.Inf(1))), NewProjection("id"))
	_, err := Execute[hub](context.Background(), ex, req)
	assert.True(t, errors.Is(err, errors.ErrEncode))
}

func TestOptions(t *testing.T) {
	ex := newExecutor(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "litmusctl/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "x", r.Header.Get("X-Trace"))
		_, _ = w.Write([]byte(`{"data":{}}`))
	})
	ex.ApplyOptions(WithUserAgent("litmusctl/1.0"), WithHeader("X-Trace", "x"))

	_, err := ex.Query(context.Background(), `query { a }`)
	require.NoError(t, err)
	assert.NoError(t, ex.Close())
	assert.NoError(t, ex.Close())
}
