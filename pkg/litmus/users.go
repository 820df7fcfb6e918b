package litmus

import (
	"context"
	"net/url"

	"github.com/saturnines/litmus-go/pkg/litmus/model"
	"github.com/saturnines/litmus-go/pkg/transport/rest"
)

// segment escapes a caller-supplied value used as a path segment.
func segment(v string) string {
	return "/" + url.PathEscape(v)
}

// GetTokens lists the API tokens of a user.
func (c *Client) GetTokens(ctx context.Context, userID string) (model.ListTokensResponse, error) {
	return rest.Get[model.ListTokensResponse](ctx, c.invoker, "/token"+segment(userID), c.Token(), nil)
}

func (c *Client) CreateToken(ctx context.Context, req model.TokenCreateRequest) (model.TokenCreateResponse, error) {
	return rest.Post[model.TokenCreateResponse](ctx, c.invoker, "/create_token", c.Token(), req)
}

func (c *Client) DeleteToken(ctx context.Context, req model.TokenDeleteRequest) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/remove_token", c.Token(), req)
}

func (c *Client) GetUser(ctx context.Context, userID string) (model.UserResponse, error) {
	return rest.Get[model.UserResponse](ctx, c.invoker, "/get_user"+segment(userID), c.Token(), nil)
}

func (c *Client) GetUsers(ctx context.Context) ([]model.UserResponse, error) {
	return rest.Get[[]model.UserResponse](ctx, c.invoker, "/users", c.Token(), nil)
}

func (c *Client) UpdatePassword(ctx context.Context, req model.PasswordUpdateRequest) (model.PasswordUpdateResponse, error) {
	return rest.Post[model.PasswordUpdateResponse](ctx, c.invoker, "/update/password", c.Token(), req)
}

func (c *Client) CreateUser(ctx context.Context, req model.UserCreateRequest) (model.UserResponse, error) {
	return rest.Post[model.UserResponse](ctx, c.invoker, "/create_user", c.Token(), req)
}

// ResetPassword sets another user's password. Admin only.
func (c *Client) ResetPassword(ctx context.Context, req model.PasswordResetRequest) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/reset/password", c.Token(), req)
}

func (c *Client) UpdateUserDetails(ctx context.Context, req model.UserDetailsUpdateRequest) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/update/details", c.Token(), req)
}

// UpdateUserState deactivates or reactivates a user. Admin only.
func (c *Client) UpdateUserState(ctx context.Context, req model.UserStateUpdateRequest) (model.CommonResponse, error) {
	return rest.Post[model.CommonResponse](ctx, c.invoker, "/update/state", c.Token(), req)
}

// Capabilities is the one unauthenticated endpoint; no token is sent.
func (c *Client) Capabilities(ctx context.Context) (model.CapabilityResponse, error) {
	return rest.Get[model.CapabilityResponse](ctx, c.invoker, "/capabilities", "", nil)
}
