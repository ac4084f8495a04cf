package client

import (
	"context"
	"fmt"

	"github.com/steeped-dev/gitea-client/internal/http"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// OrganizationsClient implements gitea.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *http.Client) *OrganizationsClient {
	return &OrganizationsClient{httpClient: httpClient}
}

// Create implements gitea.OrganizationsClient.Create.
func (c *OrganizationsClient) Create(ctx context.Context, request *gitea.CreateOrgRequest) (*gitea.Organization, error) {
	resp, err := c.httpClient.Post(ctx, "/orgs", request)
	if err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	var org gitea.Organization

	err = unmarshalResponse(resp.StatusCode, resp.Body, &org)
	if err != nil {
		return nil, fmt.Errorf("parsing organization: %w", err)
	}

	return &org, nil
}

// Get implements gitea.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context, org string) (*gitea.Organization, error) {
	resp, err := c.httpClient.Get(ctx, "/orgs/"+org, nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	var result gitea.Organization

	err = unmarshalResponse(resp.StatusCode, resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing organization: %w", err)
	}

	return &result, nil
}

// Edit implements gitea.OrganizationsClient.Edit.
func (c *OrganizationsClient) Edit(ctx context.Context, org string, request *gitea.EditOrgRequest) (*gitea.Organization, error) {
	resp, err := c.httpClient.Patch(ctx, "/orgs/"+org, request)
	if err != nil {
		return nil, fmt.Errorf("editing organization: %w", err)
	}

	var result gitea.Organization

	err = unmarshalResponse(resp.StatusCode, resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing organization: %w", err)
	}

	return &result, nil
}

// Delete implements gitea.OrganizationsClient.Delete.
func (c *OrganizationsClient) Delete(ctx context.Context, org string) error {
	_, err := c.httpClient.Delete(ctx, "/orgs/"+org)
	if err != nil {
		return fmt.Errorf("deleting organization: %w", err)
	}

	return nil
}

// List implements gitea.OrganizationsClient.List. It lists all
// organizations visible to the authenticated user.
func (c *OrganizationsClient) List(ctx context.Context, opts *gitea.ListOptions) ([]gitea.Organization, error) {
	resp, err := c.httpClient.Get(ctx, "/orgs", gitea.Values(opts))
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

// ListRepositories implements gitea.OrganizationsClient.ListRepositories.
func (c *OrganizationsClient) ListRepositories(ctx context.Context, org string, opts *gitea.ListOptions) ([]gitea.Repository, error) {
	resp, err := c.httpClient.Get(ctx, "/orgs/"+org+"/repos", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing organization repositories: %w", err)
	}

	var repos []gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repos)
	if err != nil {
		return nil, fmt.Errorf("parsing repositories: %w", err)
	}

	return repos, nil
}

// CreateRepository implements gitea.OrganizationsClient.CreateRepository.
func (c *OrganizationsClient) CreateRepository(ctx context.Context, org string, request *gitea.CreateRepoRequest) (*gitea.Repository, error) {
	resp, err := c.httpClient.Post(ctx, "/orgs/"+org+"/repos", request)
	if err != nil {
		return nil, fmt.Errorf("creating organization repository: %w", err)
	}

	var repo gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repo)
	if err != nil {
		return nil, fmt.Errorf("parsing repository: %w", err)
	}

	return &repo, nil
}

// ListMembers implements gitea.OrganizationsClient.ListMembers.
func (c *OrganizationsClient) ListMembers(ctx context.Context, org string, opts *gitea.ListOptions) ([]gitea.User, error) {
	resp, err := c.httpClient.Get(ctx, "/orgs/"+org+"/members", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	var members []gitea.User

	err = unmarshalResponse(resp.StatusCode, resp.Body, &members)
	if err != nil {
		return nil, fmt.Errorf("parsing members: %w", err)
	}

	return members, nil
}

// IsMember implements gitea.OrganizationsClient.IsMember.
func (c *OrganizationsClient) IsMember(ctx context.Context, org, username string) (bool, error) {
	_, err := c.httpClient.Get(ctx, "/orgs/"+org+"/members/"+username, nil)

	isMember, err := existence(err)
	if err != nil {
		return false, fmt.Errorf("checking membership: %w", err)
	}

	return isMember, nil
}

// RemoveMember implements gitea.OrganizationsClient.RemoveMember.
func (c *OrganizationsClient) RemoveMember(ctx context.Context, org, username string) error {
	_, err := c.httpClient.Delete(ctx, "/orgs/"+org+"/members/"+username)
	if err != nil {
		return fmt.Errorf("removing member: %w", err)
	}

	return nil
}

// ListPublicMembers implements gitea.OrganizationsClient.ListPublicMembers.
func (c *OrganizationsClient) ListPublicMembers(ctx context.Context, org string, opts *gitea.ListOptions) ([]gitea.User, error) {
	resp, err := c.httpClient.Get(ctx, "/orgs/"+org+"/public_members", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing public members: %w", err)
	}

	var members []gitea.User

	err = unmarshalResponse(resp.StatusCode, resp.Body, &members)
	if err != nil {
		return nil, fmt.Errorf("parsing members: %w", err)
	}

	return members, nil
}

// IsPublicMember implements gitea.OrganizationsClient.IsPublicMember.
func (c *OrganizationsClient) IsPublicMember(ctx context.Context, org, username string) (bool, error) {
	_, err := c.httpClient.Get(ctx, "/orgs/"+org+"/public_members/"+username, nil)

	isMember, err := existence(err)
	if err != nil {
		return false, fmt.Errorf("checking public membership: %w", err)
	}

	return isMember, nil
}

// PublicizeMembership implements gitea.OrganizationsClient.PublicizeMembership.
func (c *OrganizationsClient) PublicizeMembership(ctx context.Context, org, username string) error {
	_, err := c.httpClient.Put(ctx, "/orgs/"+org+"/public_members/"+username, nil)
	if err != nil {
		return fmt.Errorf("publicizing membership: %w", err)
	}

	return nil
}

// ConcealMembership implements gitea.OrganizationsClient.ConcealMembership.
func (c *OrganizationsClient) ConcealMembership(ctx context.Context, org, username string) error {
	_, err := c.httpClient.Delete(ctx, "/orgs/"+org+"/public_members/"+username)
	if err != nil {
		return fmt.Errorf("concealing membership: %w", err)
	}

	return nil
}

// CreateTeam implements gitea.OrganizationsClient.CreateTeam.
func (c *OrganizationsClient) CreateTeam(ctx context.Context, org string, request *gitea.CreateTeamRequest) (*gitea.Team, error) {
	resp, err := c.httpClient.Post(ctx, "/orgs/"+org+"/teams", request)
	if err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}

	var team gitea.Team

	err = unmarshalResponse(resp.StatusCode, resp.Body, &team)
	if err != nil {
		return nil, fmt.Errorf("parsing team: %w", err)
	}

	return &team, nil
}

// EditTeam implements gitea.OrganizationsClient.EditTeam. Teams are
// addressed by id alone; the organization is implied.
func (c *OrganizationsClient) EditTeam(ctx context.Context, id int64, request *gitea.EditTeamRequest) (*gitea.Team, error) {
	path := fmt.Sprintf("/teams/%d", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("editing team: %w", err)
	}

	var team gitea.Team

	err = unmarshalResponse(resp.StatusCode, resp.Body, &team)
	if err != nil {
		return nil, fmt.Errorf("parsing team: %w", err)
	}

	return &team, nil
}

// UpdateAvatar implements gitea.OrganizationsClient.UpdateAvatar. image is
// the base64-encoded file content.
func (c *OrganizationsClient) UpdateAvatar(ctx context.Context, org, image string) error {
	_, err := c.httpClient.Post(ctx, "/orgs/"+org+"/avatar", &gitea.UpdateAvatarRequest{Image: image})
	if err != nil {
		return fmt.Errorf("updating organization avatar: %w", err)
	}

	return nil
}
