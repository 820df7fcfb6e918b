package litmus

import (
	"context"

	"github.com/saturnines/litmus-go/pkg/litmus/model"
	"github.com/saturnines/litmus-go/pkg/pagination"
	"github.com/saturnines/litmus-go/pkg/transport/graphql"
)

// ListAllProjects walks every page of ListProjects. A non-positive
// pageSize uses pagination.DefaultPageSize.
func (c *Client) ListAllProjects(ctx context.Context, req model.ListProjectRequest, pageSize int) ([]model.Project, error) {
	pager := pagination.NewPagePager(func(ctx context.Context, page, limit int) (pagination.Page[model.Project], error) {
		req.Page, req.Limit = page, limit
		resp, err := c.ListProjects(ctx, req)
		if err != nil {
			return pagination.Page[model.Project]{}, err
		}
		return pagination.Page[model.Project]{Items: resp.Projects, Total: int(resp.TotalNumberOfProjects)}, nil
	}, 0, pageSize)
	return pagination.Collect(ctx, pager)
}

// ListAllEnvironments walks every page of ListEnvironments. Pagination in
// req is overwritten; req may be nil.
func (c *Client) ListAllEnvironments(ctx context.Context, projectID string, req *model.ListEnvironmentRequest, pageSize int, p *graphql.Projection) ([]model.Environment, error) {
	var base model.ListEnvironmentRequest
	if req != nil {
		base = *req
	}
	pager := pagination.NewPagePager(func(ctx context.Context, page, limit int) (pagination.Page[model.Environment], error) {
		r := base
		r.Pagination = &model.Pagination{Page: page, Limit: limit}
		resp, err := c.ListEnvironments(ctx, projectID, &r, p)
		if err != nil {
			return pagination.Page[model.Environment]{}, err
		}
		return pagination.Page[model.Environment]{Items: resp.Environments, Total: resp.TotalNoOfEnvironments}, nil
	}, 0, pageSize)
	return pagination.Collect(ctx, pager)
}

// ListAllInfras walks every page of ListInfras. Pagination in req is
// overwritten; req may be nil.
func (c *Client) ListAllInfras(ctx context.Context, projectID string, req *model.ListInfraRequest, pageSize int, p *graphql.Projection) ([]model.Infra, error) {
	var base model.ListInfraRequest
	if req != nil {
		base = *req
	}
	pager := pagination.NewPagePager(func(ctx context.Context, page, limit int) (pagination.Page[model.Infra], error) {
		r := base
		r.Pagination = &model.Pagination{Page: page, Limit: limit}
		resp, err := c.ListInfras(ctx, projectID, &r, p)
		if err != nil {
			return pagination.Page[model.Infra]{}, err
		}
		return pagination.Page[model.Infra]{Items: resp.Infras, Total: resp.TotalNoOfInfras}, nil
	}, 0, pageSize)
	return pagination.Collect(ctx, pager)
}
