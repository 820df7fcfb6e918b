package litmus

import (
	"context"

	"github.com/saturnines/litmus-go/pkg/litmus/model"
	"github.com/saturnines/litmus-go/pkg/transport/graphql"
)

// ListInfras lists chaos infrastructures in a project. req may be nil.
func (c *Client) ListInfras(ctx context.Context, projectID string, req *model.ListInfraRequest, p *graphql.Projection) (model.ListInfraResponse, error) {
	op := graphql.NewQuery("listInfras",
		graphql.Arg("projectID", projectID),
		graphql.Arg("request", req),
	)
	return graphql.Execute[model.ListInfraResponse](ctx, c.executor, graphql.NewRequest(op, orDefault(p, ListInfraProjection)))
}

func (c *Client) GetInfraDetails(ctx context.Context, projectID, infraID string, p *graphql.Projection) (model.Infra, error) {
	op := graphql.NewQuery("getInfraDetails",
		graphql.Arg("projectID", projectID),
		graphql.Arg("infraID", infraID),
	)
	return graphql.Execute[model.Infra](ctx, c.executor, graphql.NewRequest(op, orDefault(p, InfraProjection)))
}

// GetInfraStats counts the project's infrastructures by state.
func (c *Client) GetInfraStats(ctx context.Context, projectID string, p *graphql.Projection) (model.GetInfraStatsResponse, error) {
	op := graphql.NewQuery("getInfraStats", graphql.Arg("projectID", projectID))
	return graphql.Execute[model.GetInfraStatsResponse](ctx, c.executor, graphql.NewRequest(op, orDefault(p, InfraStatsProjection)))
}

// GetInfraManifest returns the YAML manifest that installs (or, with
// upgrade, upgrades) the infrastructure agent.
func (c *Client) GetInfraManifest(ctx context.Context, projectID, infraID string, upgrade bool) (string, error) {
	op := graphql.NewQuery("getInfraManifest",
		graphql.Arg("projectID", projectID),
		graphql.Arg("infraID", infraID),
		graphql.Arg("upgrade", upgrade),
	)
	return graphql.ExecuteValue(ctx, c.executor, graphql.NewRequest(op, nil))
}

func (c *Client) ConfirmInfraRegistration(ctx context.Context, req model.InfraIdentity, p *graphql.Projection) (model.ConfirmInfraRegistrationResponse, error) {
	op := graphql.NewMutation("confirmInfraRegistration", graphql.Arg("request", req))
	return graphql.Execute[model.ConfirmInfraRegistrationResponse](ctx, c.executor, graphql.NewRequest(op, orDefault(p, ConfirmInfraRegistrationProjection)))
}

func (c *Client) DeleteInfra(ctx context.Context, projectID, infraID string) (string, error) {
	op := graphql.NewMutation("deleteInfra",
		graphql.Arg("projectID", projectID),
		graphql.Arg("infraID", infraID),
	)
	return graphql.ExecuteValue(ctx, c.executor, graphql.NewRequest(op, nil))
}

func (c *Client) RegisterInfra(ctx context.Context, projectID string, req model.RegisterInfraRequest, p *graphql.Projection) (model.RegisterInfraResponse, error) {
	op := graphql.NewMutation("registerInfra",
		graphql.Arg("projectID", projectID),
		graphql.Arg("request", req),
	)
	return graphql.Execute[model.RegisterInfraResponse](ctx, c.executor, graphql.NewRequest(op, orDefault(p, RegisterInfraProjection)))
}
