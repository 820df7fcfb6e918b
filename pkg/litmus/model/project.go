package model

import "strconv"

// MemberRole is a user's role inside a project.
type MemberRole string

const (
	MemberRoleOwner    MemberRole = "Owner"
	MemberRoleExecutor MemberRole = "Executor"
	MemberRoleViewer   MemberRole = "Viewer"
)

// Invitation is the state of a project membership.
type Invitation string

const (
	InvitationPending  Invitation = "Pending"
	InvitationAccepted Invitation = "Accepted"
	InvitationDeclined Invitation = "Declined"
	InvitationExited   Invitation = "Exited"
)

type Member struct {
	UserID     string     `json:"userID"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       MemberRole `json:"role"`
	Invitation Invitation `json:"invitation"`
	JoinedAt   int64      `json:"joinedAt"`
}

type Project struct {
	ID          string       `json:"projectID"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Members     []Member     `json:"members"`
	State       string       `json:"state,omitempty"`
	IsRemoved   bool         `json:"isRemoved"`
	CreatedAt   int64        `json:"createdAt"`
	UpdatedAt   int64        `json:"updatedAt"`
	CreatedBy   *UserDetails `json:"createdBy,omitempty"`
	UpdatedBy   *UserDetails `json:"updatedBy,omitempty"`
}

// ListProjectRequest is sent as query parameters.
type ListProjectRequest struct {
	Page        int
	Limit       int
	SortField   string
	CreatedByMe bool
}

// Params renders the request as query parameters. Every key is sent, even
// when its value is empty.
func (r ListProjectRequest) Params() map[string]string {
	return map[string]string{
		"page":        strconv.Itoa(r.Page),
		"limit":       strconv.Itoa(r.Limit),
		"sortField":   r.SortField,
		"createdByMe": strconv.FormatBool(r.CreatedByMe),
	}
}

type ListProjectsResponse struct {
	Projects              []Project `json:"projects"`
	TotalNumberOfProjects int64     `json:"totalNumberOfProjects"`
}

type CreateProjectRequest struct {
	ProjectName string   `json:"projectName"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type ProjectNameRequest struct {
	ProjectID   string `json:"projectID"`
	ProjectName string `json:"projectName"`
}

type ProjectResponse = Project

type LeaveProjectRequest struct {
	ProjectID string `json:"projectID"`
	UserID    string `json:"userID"`
}

type ProjectRoleResponse struct {
	Role MemberRole `json:"role"`
}

type UserWithProject struct {
	ID       string    `json:"userID"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Projects []Project `json:"projects"`
}

type UserWithProjectResponse = UserWithProject

type ProjectsStatsResponse struct {
	ProjectID string `json:"projectID"`
	Name      string `json:"name"`
	Members   struct {
		Owner []Member `json:"owner"`
		Total int      `json:"total"`
	} `json:"members"`
}

type ProjectMemberResponse = Member

type SendInvitationRequest struct {
	ProjectID string     `json:"projectID"`
	UserID    string     `json:"userID"`
	Role      MemberRole `json:"role"`
}

type SendInvitationResponse = Member

type AcceptInvitationRequest struct {
	ProjectID string `json:"projectID"`
	UserID    string `json:"userID"`
}

type DeclineInvitationRequest struct {
	ProjectID string `json:"projectID"`
	UserID    string `json:"userID"`
}

type RemoveInvitationRequest struct {
	ProjectID string `json:"projectID"`
	UserID    string `json:"userID"`
}

type ListInvitationResponse struct {
	ProjectID      string     `json:"projectID"`
	ProjectName    string     `json:"projectName"`
	ProjectOwner   Member     `json:"projectOwner"`
	InvitationRole MemberRole `json:"invitationRole"`
}

type InviteUsersResponse struct {
	ID       string `json:"userID"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}
