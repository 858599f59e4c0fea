package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
)

// UsersService is the registry name the admin commands always target.
const UsersService = "users"

// ResetPasswordRequest is the request to set or reset a password. A nil
// Password is sent as JSON null, asking the service to generate one.
type ResetPasswordRequest struct {
	Password *string `json:"password"`
}

// ResetPassword POSTs to /users/<id>/password.
func (c *Client) ResetPassword(ctx context.Context, id string, password *string) (*Response, error) {
	body, err := json.Marshal(ResetPasswordRequest{Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.post(ctx, resourcePath(UsersService, id, "password"), body)
}
