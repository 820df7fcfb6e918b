package model

// Role is a user's role on the control plane.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// APIToken is a personal access token.
type APIToken struct {
	UserID    string `json:"userID"`
	Name      string `json:"name"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	CreatedAt int64  `json:"createdAt"`
}

type ListTokensResponse struct {
	Tokens []APIToken `json:"apiTokens"`
}

type TokenCreateRequest struct {
	UserID              string `json:"userID"`
	Name                string `json:"name"`
	DaysUntilExpiration int    `json:"days_until_expiration"`
}

type TokenCreateResponse struct {
	AccessToken string `json:"accessToken"`
	Type        string `json:"type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

type TokenDeleteRequest struct {
	Token string `json:"token"`
}

// UserResponse is a user record as returned by the auth server.
type UserResponse struct {
	ID             string       `json:"userID"`
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	Role           Role         `json:"role"`
	IsRemoved      bool         `json:"isRemoved"`
	IsInitialLogin bool         `json:"isInitialLogin"`
	CreatedAt      int64        `json:"createdAt"`
	UpdatedAt      int64        `json:"updatedAt"`
	DeactivatedAt  int64        `json:"deactivatedAt,omitempty"`
	CreatedBy      *UserDetails `json:"createdBy,omitempty"`
	UpdatedBy      *UserDetails `json:"updatedBy,omitempty"`
}

type PasswordUpdateRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type PasswordUpdateResponse struct {
	Message   string `json:"message"`
	ProjectID string `json:"projectID"`
}

type UserCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
}

type PasswordResetRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword,omitempty"`
	NewPassword string `json:"newPassword"`
}

type UserDetailsUpdateRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type UserStateUpdateRequest struct {
	Username     string `json:"username"`
	IsDeactivate bool   `json:"isDeactivate"`
}

// CapabilityResponse lists optional server features.
type CapabilityResponse struct {
	Dex struct {
		Enabled bool `json:"enabled"`
	} `json:"dex"`
}
