package model

// EnvironmentType classifies an environment.
type EnvironmentType string

const (
	EnvironmentProd    EnvironmentType = "PROD"
	EnvironmentNonProd EnvironmentType = "NON_PROD"
)

// EnumValue renders the type as a bare GraphQL enum literal.
func (t EnvironmentType) EnumValue() string { return string(t) }

type Environment struct {
	EnvironmentID string          `json:"environmentID"`
	ProjectID     string          `json:"projectID"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	Type          EnvironmentType `json:"type"`
	InfraIDs      []string        `json:"infraIDs,omitempty"`
	IsRemoved     bool            `json:"isRemoved"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
	CreatedBy     *UserDetails    `json:"createdBy,omitempty"`
	UpdatedBy     *UserDetails    `json:"updatedBy,omitempty"`
}

type ListEnvironmentResponse struct {
	TotalNoOfEnvironments int           `json:"totalNoOfEnvironments"`
	Environments          []Environment `json:"environments"`
}

type CreateEnvironmentRequest struct {
	EnvironmentID string          `json:"environmentID"`
	Name          string          `json:"name"`
	Type          EnvironmentType `json:"type,omitempty"`
	Description   string          `json:"description,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
}

type UpdateEnvironmentRequest struct {
	EnvironmentID string          `json:"environmentID"`
	Name          string          `json:"name,omitempty"`
	Type          EnvironmentType `json:"type,omitempty"`
	Description   string          `json:"description,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
}

type EnvironmentFilterInput struct {
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Type        EnvironmentType `json:"type,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

type EnvironmentSortInput struct {
	Field     string `json:"field"`
	Ascending bool   `json:"ascending"`
}

type ListEnvironmentRequest struct {
	EnvironmentIDs []string                `json:"environmentIDs,omitempty"`
	Pagination     *Pagination             `json:"pagination,omitempty"`
	Filter         *EnvironmentFilterInput `json:"filter,omitempty"`
	Sort           *EnvironmentSortInput   `json:"sort,omitempty"`
}
