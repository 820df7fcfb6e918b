package litmus

import (
	"context"

	"github.com/saturnines/litmus-go/pkg/litmus/model"
	"github.com/saturnines/litmus-go/pkg/transport/rest"
)

// ListProjects sends page, limit, sortField and createdByMe as query
// parameters; none of them is dropped when empty.
func (c *Client) ListProjects(ctx context.Context, req model.ListProjectRequest) (model.ListProjectsResponse, error) {
	return rest.Get[model.ListProjectsResponse](ctx, c.invoker, "/list_projects", c.Token(), req.Params())
}

func (c *Client) CreateProject(ctx context.Context, req model.CreateProjectRequest) (model.ProjectResponse, error) {
	return rest.Post[model.ProjectResponse](ctx, c.invoker, "/create_project", c.Token(), req)
}

func (c *Client) UpdateProjectName(ctx context.Context, req model.ProjectNameRequest) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/update_project_name", c.Token(), req)
}

func (c *Client) GetProject(ctx context.Context, projectID string) (model.ProjectResponse, error) {
	return rest.Get[model.ProjectResponse](ctx, c.invoker, "/get_project"+segment(projectID), c.Token(), nil)
}

// GetOwnerProjects lists projects owned by the caller.
func (c *Client) GetOwnerProjects(ctx context.Context) ([]model.ProjectResponse, error) {
	return rest.Get[[]model.ProjectResponse](ctx, c.invoker, "/get_owner_projects", c.Token(), nil)
}

func (c *Client) LeaveProject(ctx context.Context, req model.LeaveProjectRequest) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/leave_project", c.Token(), req)
}

func (c *Client) GetProjectRole(ctx context.Context, projectID string) (model.ProjectRoleResponse, error) {
	return rest.Get[model.ProjectRoleResponse](ctx, c.invoker, "/get_project_role"+segment(projectID), c.Token(), nil)
}

func (c *Client) GetUserWithProject(ctx context.Context, username string) (model.UserWithProjectResponse, error) {
	return rest.Get[model.UserWithProjectResponse](ctx, c.invoker, "/get_user_with_project"+segment(username), c.Token(), nil)
}

func (c *Client) GetProjectsStats(ctx context.Context) ([]model.ProjectsStatsResponse, error) {
	return rest.Get[[]model.ProjectsStatsResponse](ctx, c.invoker, "/get_projects_stats", c.Token(), nil)
}

// GetProjectMembers lists members whose invitation is in status
// (e.g. model.InvitationAccepted).
func (c *Client) GetProjectMembers(ctx context.Context, projectID string, status model.Invitation) ([]model.ProjectMemberResponse, error) {
	path := "/get_project_members" + segment(projectID) + segment(string(status))
	return rest.Get[[]model.ProjectMemberResponse](ctx, c.invoker, path, c.Token(), nil)
}

func (c *Client) GetProjectOwners(ctx context.Context, projectID string) ([]model.ProjectMemberResponse, error) {
	return rest.Get[[]model.ProjectMemberResponse](ctx, c.invoker, "/get_project_owners"+segment(projectID), c.Token(), nil)
}

// DeleteProject is a POST with no body.
func (c *Client) DeleteProject(ctx context.Context, projectID string) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/delete_project"+segment(projectID), c.Token(), nil)
}

func (c *Client) SendInvitation(ctx context.Context, req model.SendInvitationRequest) (model.SendInvitationResponse, error) {
	return rest.Post[model.SendInvitationResponse](ctx, c.invoker, "/send_invitation", c.Token(), req)
}

func (c *Client) AcceptInvitation(ctx context.Context, req model.AcceptInvitationRequest) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/accept_invitation", c.Token(), req)
}

func (c *Client) DeclineInvitation(ctx context.Context, req model.DeclineInvitationRequest) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/decline_invitation", c.Token(), req)
}

func (c *Client) RemoveInvitation(ctx context.Context, req model.RemoveInvitationRequest) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/remove_invitation", c.Token(), req)
}

// ListInvitations lists the caller's invitations in status.
func (c *Client) ListInvitations(ctx context.Context, status model.Invitation) ([]model.ListInvitationResponse, error) {
	return rest.Get[[]model.ListInvitationResponse](ctx, c.invoker, "/list_invitations_with_filters"+segment(string(status)), c.Token(), nil)
}

// InviteUsers lists users that can still be invited to projectID.
func (c *Client) InviteUsers(ctx context.Context, projectID string) ([]model.InviteUsersResponse, error) {
	return rest.Get[[]model.InviteUsersResponse](ctx, c.invoker, "/invite_users"+segment(projectID), c.Token(), nil)
}
