package client

import (
	"context"
	"fmt"

	"github.com/steeped-dev/gitea-client/internal/http"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// AdminClient implements gitea.AdminClient. Every operation here requires
// a token with admin scope.
type AdminClient struct {
	httpClient *http.Client
}

// NewAdminClient creates a new admin client.
func NewAdminClient(httpClient *http.Client) *AdminClient {
	return &AdminClient{httpClient: httpClient}
}

// CreateUser implements gitea.AdminClient.CreateUser.
func (c *AdminClient) CreateUser(ctx context.Context, request *gitea.CreateUserRequest) (*gitea.User, error) {
	resp, err := c.httpClient.Post(ctx, "/admin/users", request)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var user gitea.User

	err = unmarshalResponse(resp.StatusCode, resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// UpdateUser implements gitea.AdminClient.UpdateUser.
func (c *AdminClient) UpdateUser(ctx context.Context, username string, request *gitea.UpdateUserRequest) (*gitea.User, error) {
	resp, err := c.httpClient.Patch(ctx, "/admin/users/"+username, request)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user gitea.User

	err = unmarshalResponse(resp.StatusCode, resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}
