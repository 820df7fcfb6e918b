package model

// HubType says where a chaos hub's faults come from.
type HubType string

const (
	HubTypeGit    HubType = "GIT"
	HubTypeRemote HubType = "REMOTE"
)

func (t HubType) EnumValue() string { return string(t) }

// AuthType is how a private hub repository is accessed.
type AuthType string

const (
	AuthTypeBasic AuthType = "BASIC"
	AuthTypeNone  AuthType = "NONE"
	AuthTypeSSH   AuthType = "SSH"
)

func (t AuthType) EnumValue() string { return string(t) }

// ChaosHub is a repository of chaos faults and experiments.
type ChaosHub struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	RepoURL          string       `json:"repoURL"`
	RepoBranch       string       `json:"repoBranch"`
	RemoteHub        string       `json:"remoteHub,omitempty"`
	ProjectID        string       `json:"projectID"`
	IsDefault        bool         `json:"isDefault"`
	Tags             []string     `json:"tags,omitempty"`
	Description      string       `json:"description,omitempty"`
	HubType          HubType      `json:"hubType,omitempty"`
	IsPrivate        bool         `json:"isPrivate"`
	AuthType         AuthType     `json:"authType,omitempty"`
	Token            string       `json:"token,omitempty"`
	UserName         string       `json:"userName,omitempty"`
	Password         string       `json:"password,omitempty"`
	SSHPrivateKey    string       `json:"sshPrivateKey,omitempty"`
	SSHPublicKey     string       `json:"sshPublicKey,omitempty"`
	IsAvailable      bool         `json:"isAvailable"`
	TotalFaults      string       `json:"totalFaults,omitempty"`
	TotalExperiments string       `json:"totalExperiments,omitempty"`
	LastSyncedAt     string       `json:"lastSyncedAt,omitempty"`
	IsRemoved        bool         `json:"isRemoved"`
	CreatedAt        string       `json:"createdAt"`
	UpdatedAt        string       `json:"updatedAt"`
	CreatedBy        *UserDetails `json:"createdBy,omitempty"`
	UpdatedBy        *UserDetails `json:"updatedBy,omitempty"`
}

type GetChaosHubStatsResponse struct {
	TotalChaosHubs int `json:"totalChaosHubs"`
}

type ChaosHubFilterInput struct {
	ChaosHubName string   `json:"chaosHubName,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Description  string   `json:"description,omitempty"`
}

type ListChaosHubRequest struct {
	ChaosHubIDs []string             `json:"chaosHubIDs,omitempty"`
	Filter      *ChaosHubFilterInput `json:"filter,omitempty"`
}

// CreateChaosHubRequest is the input of addChaosHub and saveChaosHub.
type CreateChaosHubRequest struct {
	Name          string   `json:"name"`
	Tags          []string `json:"tags,omitempty"`
	Description   string   `json:"description,omitempty"`
	RepoURL       string   `json:"repoURL"`
	RepoBranch    string   `json:"repoBranch"`
	IsPrivate     bool     `json:"isPrivate"`
	AuthType      AuthType `json:"authType,omitempty"`
	Token         string   `json:"token,omitempty"`
	UserName      string   `json:"userName,omitempty"`
	Password      string   `json:"password,omitempty"`
	SSHPrivateKey string   `json:"sshPrivateKey,omitempty"`
	SSHPublicKey  string   `json:"sshPublicKey,omitempty"`
}

type CreateRemoteChaosHub struct {
	Name        string   `json:"name"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	RepoURL     string   `json:"repoURL"`
}

type UpdateChaosHubRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Tags          []string `json:"tags,omitempty"`
	Description   string   `json:"description,omitempty"`
	RepoURL       string   `json:"repoURL"`
	RepoBranch    string   `json:"repoBranch"`
	IsPrivate     bool     `json:"isPrivate"`
	AuthType      AuthType `json:"authType,omitempty"`
	Token         string   `json:"token,omitempty"`
	UserName      string   `json:"userName,omitempty"`
	Password      string   `json:"password,omitempty"`
	SSHPrivateKey string   `json:"sshPrivateKey,omitempty"`
	SSHPublicKey  string   `json:"sshPublicKey,omitempty"`
}
