// Package litmus is a typed client for the chaos control plane. REST calls
// go to <host>/auth and GraphQL operations to <host>/api/query; both share
// one HTTP client and one bearer token.
package litmus

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/saturnines/litmus-go/pkg/auth"
	"github.com/saturnines/litmus-go/pkg/errors"
	"github.com/saturnines/litmus-go/pkg/metrics"
	"github.com/saturnines/litmus-go/pkg/transport/graphql"
	"github.com/saturnines/litmus-go/pkg/transport/rest"
)

const (
	authPath    = "/auth"
	graphqlPath = "/api/query"
)

// Client is the facade over the REST and GraphQL transports.
// It is safe for concurrent use. Rotating the token with SetToken while
// calls are in flight is allowed; each call sees either the old or new one.
type Client struct {
	host     string
	bearer   *auth.BearerAuth
	invoker  *rest.Invoker
	executor *graphql.Executor
	logger   *zap.Logger

	closeOnce sync.Once
}

// New builds a client for host, e.g. "http://chaos-litmus-frontend-service.litmus:9091".
// Trailing slashes on host are dropped. token may be empty.
func New(host, token string, opts ...Option) (*Client, error) {
	s := &settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	host = sanitizeHost(host)
	if host == "" {
		return nil, errors.WrapError(fmt.Errorf("host is empty"), errors.ErrConfiguration, "create client")
	}

	// Copy so timeout and instrumentation never leak into the caller's client.
	httpClient := &http.Client{}
	if s.httpClient != nil {
		clone := *s.httpClient
		httpClient = &clone
	}
	// Own pool, so Close never drops connections of http.DefaultTransport users.
	if httpClient.Transport == nil {
		httpClient.Transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	if s.timeout > 0 {
		httpClient.Timeout = s.timeout
	}
	if s.metrics {
		m, err := metrics.New(s.registerer)
		if err != nil {
			return nil, errors.WrapError(err, errors.ErrConfiguration, "register metrics")
		}
		httpClient.Transport = m.RoundTripper(httpClient.Transport)
	}

	restOpts := []rest.Option{rest.WithHTTPDoer(httpClient), rest.WithLogger(s.logger)}
	gqlOpts := []graphql.Option{graphql.WithHTTPDoer(httpClient), graphql.WithLogger(s.logger)}
	if s.userAgent != "" {
		restOpts = append(restOpts, rest.WithUserAgent(s.userAgent))
		gqlOpts = append(gqlOpts, graphql.WithUserAgent(s.userAgent))
	}

	bearer := auth.NewBearerAuth(token)
	c := &Client{
		host:     host,
		bearer:   bearer,
		invoker:  rest.NewInvoker(host+authPath, restOpts...),
		executor: graphql.NewExecutor(host+graphqlPath, bearer, gqlOpts...),
		logger:   s.logger,
	}
	c.logger.Debug("litmus client created",
		zap.String("auth_url", c.invoker.BaseURL()),
		zap.String("graphql_url", c.executor.Endpoint()),
	)
	return c, nil
}

func sanitizeHost(host string) string {
	return strings.TrimRight(strings.TrimSpace(host), "/")
}

// Host returns the sanitized host.
func (c *Client) Host() string { return c.host }

// AuthURL is the base of every REST call.
func (c *Client) AuthURL() string { return c.invoker.BaseURL() }

// GraphQLURL is where GraphQL documents are POSTed.
func (c *Client) GraphQLURL() string { return c.executor.Endpoint() }

// Token returns the current bearer token.
func (c *Client) Token() string { return c.bearer.Token() }

// SetToken replaces the bearer token for subsequent calls.
func (c *Client) SetToken(token string) { c.bearer.SetToken(token) }

// Close releases idle connections. It is safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		_ = c.invoker.Close()
		_ = c.executor.Close()
	})
	return nil
}
