package client

import (
	"context"
	"fmt"

	"github.com/steeped-dev/gitea-client/internal/http"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// UsersClient implements gitea.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Current implements gitea.UsersClient.Current.
func (c *UsersClient) Current(ctx context.Context) (*gitea.User, error) {
	resp, err := c.httpClient.Get(ctx, "/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting authenticated user: %w", err)
	}

	var user gitea.User

	err = unmarshalResponse(resp.StatusCode, resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// Get implements gitea.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, username string) (*gitea.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users/"+username, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user gitea.User

	err = unmarshalResponse(resp.StatusCode, resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// CreateRepository implements gitea.UsersClient.CreateRepository. The
// repository is created under the authenticated user.
func (c *UsersClient) CreateRepository(ctx context.Context, request *gitea.CreateRepoRequest) (*gitea.Repository, error) {
	resp, err := c.httpClient.Post(ctx, "/user/repos", request)
	if err != nil {
		return nil, fmt.Errorf("creating repository: %w", err)
	}

	var repo gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repo)
	if err != nil {
		return nil, fmt.Errorf("parsing repository: %w", err)
	}

	return &repo, nil
}

// ListRepositories implements gitea.UsersClient.ListRepositories. It lists
// the authenticated user's repositories.
func (c *UsersClient) ListRepositories(ctx context.Context, opts *gitea.ListOptions) ([]gitea.Repository, error) {
	resp, err := c.httpClient.Get(ctx, "/user/repos", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	var repos []gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repos)
	if err != nil {
		return nil, fmt.Errorf("parsing repositories: %w", err)
	}

	return repos, nil
}

// ListUserRepositories implements gitea.UsersClient.ListUserRepositories.
func (c *UsersClient) ListUserRepositories(ctx context.Context, username string, opts *gitea.ListOptions) ([]gitea.Repository, error) {
	resp, err := c.httpClient.Get(ctx, "/users/"+username+"/repos", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	var repos []gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repos)
	if err != nil {
		return nil, fmt.Errorf("parsing repositories: %w", err)
	}

	return repos, nil
}

// ListOrganizations implements gitea.UsersClient.ListOrganizations. It
// lists the authenticated user's organizations.
func (c *UsersClient) ListOrganizations(ctx context.Context, opts *gitea.ListOptions) ([]gitea.Organization, error) {
	resp, err := c.httpClient.Get(ctx, "/user/orgs", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	var orgs []gitea.Organization

	err = unmarshalResponse(resp.StatusCode, resp.Body, &orgs)
	if err != nil {
		return nil, fmt.Errorf("parsing organizations: %w", err)
	}

	return orgs, nil
}

// ListUserOrganizations implements gitea.UsersClient.ListUserOrganizations.
func (c *UsersClient) ListUserOrganizations(ctx context.Context, username string, opts *gitea.ListOptions) ([]gitea.Organization, error) {
	resp, err := c.httpClient.Get(ctx, "/users/"+username+"/orgs", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	var orgs []gitea.Organization

	err = unmarshalResponse(resp.StatusCode, resp.Body, &orgs)
	if err != nil {
		return nil, fmt.Errorf("parsing organizations: %w", err)
	}

	return orgs, nil
}

// GetSettings implements gitea.UsersClient.GetSettings.
func (c *UsersClient) GetSettings(ctx context.Context) (*gitea.UserSettings, error) {
	resp, err := c.httpClient.Get(ctx, "/user/settings", nil)
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	var settings gitea.UserSettings

	err = unmarshalResponse(resp.StatusCode, resp.Body, &settings)
	if err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	return &settings, nil
}

// UpdateSettings implements gitea.UsersClient.UpdateSettings.
func (c *UsersClient) UpdateSettings(ctx context.Context, request *gitea.UpdateSettingsRequest) (*gitea.UserSettings, error) {
	resp, err := c.httpClient.Patch(ctx, "/user/settings", request)
	if err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}

	var settings gitea.UserSettings

	err = unmarshalResponse(resp.StatusCode, resp.Body, &settings)
	if err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	return &settings, nil
}

// ListAccessTokens implements gitea.UsersClient.ListAccessTokens. The
// username must match the authenticated user unless it has admin scope.
func (c *UsersClient) ListAccessTokens(ctx context.Context, username string, opts *gitea.ListOptions) ([]gitea.AccessToken, error) {
	resp, err := c.httpClient.Get(ctx, "/users/"+username+"/tokens", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing access tokens: %w", err)
	}

	var tokens []gitea.AccessToken

	err = unmarshalResponse(resp.StatusCode, resp.Body, &tokens)
	if err != nil {
		return nil, fmt.Errorf("parsing access tokens: %w", err)
	}

	return tokens, nil
}

// CreateAccessToken implements gitea.UsersClient.CreateAccessToken. The
// returned token's SHA1 is the secret; the API never serves it again.
func (c *UsersClient) CreateAccessToken(ctx context.Context, username string, request *gitea.CreateAccessTokenRequest) (*gitea.AccessToken, error) {
	resp, err := c.httpClient.Post(ctx, "/users/"+username+"/tokens", request)
	if err != nil {
		return nil, fmt.Errorf("creating access token: %w", err)
	}

	var token gitea.AccessToken

	err = unmarshalResponse(resp.StatusCode, resp.Body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing access token: %w", err)
	}

	return &token, nil
}

// DeleteAccessToken implements gitea.UsersClient.DeleteAccessToken. token
// is the token name or id.
func (c *UsersClient) DeleteAccessToken(ctx context.Context, username, token string) error {
	_, err := c.httpClient.Delete(ctx, "/users/"+username+"/tokens/"+token)
	if err != nil {
		return fmt.Errorf("deleting access token: %w", err)
	}

	return nil
}

// ListStarred implements gitea.UsersClient.ListStarred. It lists the
// repositories starred by the authenticated user.
func (c *UsersClient) ListStarred(ctx context.Context, opts *gitea.ListOptions) ([]gitea.Repository, error) {
	resp, err := c.httpClient.Get(ctx, "/user/starred", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing starred repositories: %w", err)
	}

	var repos []gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repos)
	if err != nil {
		return nil, fmt.Errorf("parsing repositories: %w", err)
	}

	return repos, nil
}

// ListUserStarred implements gitea.UsersClient.ListUserStarred.
func (c *UsersClient) ListUserStarred(ctx context.Context, username string, opts *gitea.ListOptions) ([]gitea.Repository, error) {
	resp, err := c.httpClient.Get(ctx, "/users/"+username+"/starred", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing starred repositories: %w", err)
	}

	var repos []gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repos)
	if err != nil {
		return nil, fmt.Errorf("parsing repositories: %w", err)
	}

	return repos, nil
}

// StarRepository implements gitea.UsersClient.StarRepository.
func (c *UsersClient) StarRepository(ctx context.Context, owner, repo string) error {
	_, err := c.httpClient.Put(ctx, "/user/starred/"+owner+"/"+repo, nil)
	if err != nil {
		return fmt.Errorf("starring repository: %w", err)
	}

	return nil
}

// UnstarRepository implements gitea.UsersClient.UnstarRepository.
func (c *UsersClient) UnstarRepository(ctx context.Context, owner, repo string) error {
	_, err := c.httpClient.Delete(ctx, "/user/starred/"+owner+"/"+repo)
	if err != nil {
		return fmt.Errorf("unstarring repository: %w", err)
	}

	return nil
}

// IsStarred implements gitea.UsersClient.IsStarred.
func (c *UsersClient) IsStarred(ctx context.Context, owner, repo string) (bool, error) {
	_, err := c.httpClient.Get(ctx, "/user/starred/"+owner+"/"+repo, nil)

	starred, err := existence(err)
	if err != nil {
		return false, fmt.Errorf("checking star: %w", err)
	}

	return starred, nil
}
