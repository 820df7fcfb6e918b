package model

// InfrastructureType is the platform a chaos infrastructure runs on.
type InfrastructureType string

const InfrastructureKubernetes InfrastructureType = "Kubernetes"

func (t InfrastructureType) EnumValue() string { return string(t) }

// Infra is a registered chaos infrastructure agent.
type Infra struct {
	ProjectID               string             `json:"projectID"`
	InfraID                 string             `json:"infraID"`
	Name                    string             `json:"name"`
	Description             string             `json:"description,omitempty"`
	Tags                    []string           `json:"tags,omitempty"`
	EnvironmentID           string             `json:"environmentID"`
	PlatformName            string             `json:"platformName"`
	IsActive                bool               `json:"isActive"`
	IsInfraConfirmed        bool               `json:"isInfraConfirmed"`
	IsRemoved               bool               `json:"isRemoved"`
	NoOfExperiments         *int               `json:"noOfExperiments,omitempty"`
	NoOfExperimentRuns      *int               `json:"noOfExperimentRuns,omitempty"`
	Token                   string             `json:"token,omitempty"`
	InfraNamespace          *string            `json:"infraNamespace,omitempty"`
	ServiceAccount          *string            `json:"serviceAccount,omitempty"`
	InfraScope              string             `json:"infraScope"`
	InfraNsExists           *bool              `json:"infraNsExists,omitempty"`
	InfraSaExists           *bool              `json:"infraSaExists,omitempty"`
	LastExperimentTimestamp *string            `json:"lastExperimentTimestamp,omitempty"`
	StartTime               string             `json:"startTime"`
	Version                 string             `json:"version"`
	InfraType               InfrastructureType `json:"infraType,omitempty"`
	UpdateStatus            string             `json:"updateStatus,omitempty"`
	CreatedAt               string             `json:"createdAt"`
	UpdatedAt               string             `json:"updatedAt"`
	CreatedBy               *UserDetails       `json:"createdBy,omitempty"`
	UpdatedBy               *UserDetails       `json:"updatedBy,omitempty"`
}

type ListInfraResponse struct {
	TotalNoOfInfras int     `json:"totalNoOfInfras"`
	Infras          []Infra `json:"infras"`
}

type InfraFilterInput struct {
	Name         string   `json:"name,omitempty"`
	InfraID      string   `json:"infraID,omitempty"`
	Description  string   `json:"description,omitempty"`
	PlatformName string   `json:"platformName,omitempty"`
	InfraScope   string   `json:"infraScope,omitempty"`
	IsActive     *bool    `json:"isActive,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

type ListInfraRequest struct {
	InfraIDs       []string          `json:"infraIDs,omitempty"`
	EnvironmentIDs []string          `json:"environmentIDs,omitempty"`
	Pagination     *Pagination       `json:"pagination,omitempty"`
	Filter         *InfraFilterInput `json:"filter,omitempty"`
}

type GetInfraStatsResponse struct {
	TotalInfrastructures             int `json:"totalInfrastructures"`
	TotalActiveInfrastructure        int `json:"totalActiveInfrastructure"`
	TotalInactiveInfrastructures     int `json:"totalInactiveInfrastructures"`
	TotalConfirmedInfrastructure     int `json:"totalConfirmedInfrastructure"`
	TotalNonConfirmedInfrastructures int `json:"totalNonConfirmedInfrastructures"`
}

// InfraIdentity is what an agent presents when confirming registration.
type InfraIdentity struct {
	InfraID   string `json:"infraID"`
	AccessKey string `json:"accessKey"`
	Version   string `json:"version"`
}

type ConfirmInfraRegistrationResponse struct {
	IsInfraConfirmed bool    `json:"isInfraConfirmed"`
	NewAccessKey     *string `json:"newAccessKey,omitempty"`
	InfraID          *string `json:"infraID,omitempty"`
}

type Toleration struct {
	TolerationSeconds *int   `json:"tolerationSeconds,omitempty"`
	Key               string `json:"key,omitempty"`
	Operator          string `json:"operator,omitempty"`
	Effect            string `json:"effect,omitempty"`
	Value             string `json:"value,omitempty"`
}

type RegisterInfraRequest struct {
	Name               string             `json:"name"`
	EnvironmentID      string             `json:"environmentID"`
	InfraScope         string             `json:"infraScope"`
	InfraNamespace     string             `json:"infraNamespace,omitempty"`
	ServiceAccount     string             `json:"serviceAccount,omitempty"`
	PlatformName       string             `json:"platformName"`
	Description        string             `json:"description,omitempty"`
	InfraNsExists      *bool              `json:"infraNsExists,omitempty"`
	InfraSaExists      *bool              `json:"infraSaExists,omitempty"`
	SkipSSL            *bool              `json:"skipSsl,omitempty"`
	NodeSelector       string             `json:"nodeSelector,omitempty"`
	Tolerations        []Toleration       `json:"tolerations,omitempty"`
	Tags               []string           `json:"tags,omitempty"`
	InfrastructureType InfrastructureType `json:"infrastructureType,omitempty"`
}

type RegisterInfraResponse struct {
	Token    string `json:"token"`
	InfraID  string `json:"infraID"`
	Name     string `json:"name"`
	Manifest string `json:"manifest"`
}
