package litmus

import (
	"context"

	"github.com/saturnines/litmus-go/pkg/litmus/model"
	"github.com/saturnines/litmus-go/pkg/transport/graphql"
)

func (c *Client) GetEnvironment(ctx context.Context, projectID, environmentID string, p *graphql.Projection) (model.Environment, error) {
	op := graphql.NewQuery("getEnvironment",
		graphql.Arg("projectID", projectID),
		graphql.Arg("environmentID", environmentID),
	)
	return graphql.Execute[model.Environment](ctx, c.executor, graphql.NewRequest(op, orDefault(p, EnvironmentProjection)))
}

// ListEnvironments lists environments in a project. req may be nil.
func (c *Client) ListEnvironments(ctx context.Context, projectID string, req *model.ListEnvironmentRequest, p *graphql.Projection) (model.ListEnvironmentResponse, error) {
	op := graphql.NewQuery("listEnvironments",
		graphql.Arg("projectID", projectID),
		graphql.Arg("request", req),
	)
	return graphql.Execute[model.ListEnvironmentResponse](ctx, c.executor, graphql.NewRequest(op, orDefault(p, ListEnvironmentProjection)))
}

func (c *Client) CreateEnvironment(ctx context.Context, projectID string, req model.CreateEnvironmentRequest, p *graphql.Projection) (model.Environment, error) {
	op := graphql.NewMutation("createEnvironment",
		graphql.Arg("projectID", projectID),
		graphql.Arg("request", req),
	)
	return graphql.Execute[model.Environment](ctx, c.executor, graphql.NewRequest(op, orDefault(p, EnvironmentProjection)))
}

// UpdateEnvironment returns the server's confirmation message.
func (c *Client) UpdateEnvironment(ctx context.Context, projectID string, req model.UpdateEnvironmentRequest) (string, error) {
	op := graphql.NewMutation("updateEnvironment",
		graphql.Arg("projectID", projectID),
		graphql.Arg("request", req),
	)
	return graphql.ExecuteValue(ctx, c.executor, graphql.NewRequest(op, nil))
}

func (c *Client) DeleteEnvironment(ctx context.Context, projectID, environmentID string) (string, error) {
	op := graphql.NewMutation("deleteEnvironment",
		graphql.Arg("projectID", projectID),
		graphql.Arg("environmentID", environmentID),
	)
	return graphql.ExecuteValue(ctx, c.executor, graphql.NewRequest(op, nil))
}
