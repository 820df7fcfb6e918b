package litmus

import (
	"context"

	"github.com/saturnines/litmus-go/pkg/litmus/model"
	"github.com/saturnines/litmus-go/pkg/transport/graphql"
)

// ListChaosHub lists the project's hubs. req may be nil.
func (c *Client) ListChaosHub(ctx context.Context, projectID string, req *model.ListChaosHubRequest, p *graphql.Projection) ([]model.ChaosHub, error) {
	op := graphql.NewQuery("listChaosHub",
		graphql.Arg("projectID", projectID),
		graphql.Arg("request", req),
	)
	return graphql.Execute[[]model.ChaosHub](ctx, c.executor, graphql.NewRequest(op, orDefault(p, ChaosHubProjection)))
}

func (c *Client) GetChaosHub(ctx context.Context, projectID, chaosHubID string, p *graphql.Projection) (model.ChaosHub, error) {
	op := graphql.NewQuery("getChaosHub",
		graphql.Arg("projectID", projectID),
		graphql.Arg("chaosHubID", chaosHubID),
	)
	return graphql.Execute[model.ChaosHub](ctx, c.executor, graphql.NewRequest(op, orDefault(p, ChaosHubProjection)))
}

func (c *Client) GetChaosHubStats(ctx context.Context, projectID string, p *graphql.Projection) (model.GetChaosHubStatsResponse, error) {
	op := graphql.NewQuery("getChaosHubStats", graphql.Arg("projectID", projectID))
	return graphql.Execute[model.GetChaosHubStatsResponse](ctx, c.executor, graphql.NewRequest(op, orDefault(p, ChaosHubStatsProjection)))
}

// AddChaosHub adds a git-backed hub.
func (c *Client) AddChaosHub(ctx context.Context, projectID string, req model.CreateChaosHubRequest, p *graphql.Projection) (model.ChaosHub, error) {
	return c.chaosHubMutation(ctx, "addChaosHub", projectID, req, p)
}

// AddRemoteChaosHub adds a hub served from a remote URL.
func (c *Client) AddRemoteChaosHub(ctx context.Context, projectID string, req model.CreateRemoteChaosHub, p *graphql.Projection) (model.ChaosHub, error) {
	return c.chaosHubMutation(ctx, "addRemoteChaosHub", projectID, req, p)
}

// SaveChaosHub stores hub details without cloning the repository.
func (c *Client) SaveChaosHub(ctx context.Context, projectID string, req model.CreateChaosHubRequest, p *graphql.Projection) (model.ChaosHub, error) {
	return c.chaosHubMutation(ctx, "saveChaosHub", projectID, req, p)
}

func (c *Client) UpdateChaosHub(ctx context.Context, projectID string, req model.UpdateChaosHubRequest, p *graphql.Projection) (model.ChaosHub, error) {
	return c.chaosHubMutation(ctx, "updateChaosHub", projectID, req, p)
}

func (c *Client) chaosHubMutation(ctx context.Context, name, projectID string, req interface{}, p *graphql.Projection) (model.ChaosHub, error) {
	op := graphql.NewMutation(name,
		graphql.Arg("projectID", projectID),
		graphql.Arg("request", req),
	)
	return graphql.Execute[model.ChaosHub](ctx, c.executor, graphql.NewRequest(op, orDefault(p, ChaosHubProjection)))
}

// DeleteChaosHub returns "true" once the hub is gone.
func (c *Client) DeleteChaosHub(ctx context.Context, projectID, hubID string) (string, error) {
	op := graphql.NewMutation("deleteChaosHub",
		graphql.Arg("projectID", projectID),
		graphql.Arg("hubID", hubID),
	)
	return graphql.ExecuteValue(ctx, c.executor, graphql.NewRequest(op, nil))
}

// SyncChaosHub pulls the latest faults into the hub.
func (c *Client) SyncChaosHub(ctx context.Context, projectID, hubID string) (string, error) {
	op := graphql.NewMutation("syncChaosHub",
		graphql.Arg("projectID", projectID),
		graphql.Arg("id", hubID),
	)
	return graphql.ExecuteValue(ctx, c.executor, graphql.NewRequest(op, nil))
}
