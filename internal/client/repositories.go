package client

import (
	"context"
	"fmt"

	"github.com/steeped-dev/gitea-client/internal/http"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// RepositoriesClient implements gitea.RepositoriesClient.
type RepositoriesClient struct {
	httpClient *http.Client
}

// NewRepositoriesClient creates a new repositories client.
func NewRepositoriesClient(httpClient *http.Client) *RepositoriesClient {
	return &RepositoriesClient{httpClient: httpClient}
}

// Get implements gitea.RepositoriesClient.Get.
func (c *RepositoriesClient) Get(ctx context.Context, owner, repo string) (*gitea.Repository, error) {
	path := "/repos/" + owner + "/" + repo

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting repository: %w", err)
	}

	var repository gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repository)
	if err != nil {
		return nil, fmt.Errorf("parsing repository: %w", err)
	}

	return &repository, nil
}

// Edit implements gitea.RepositoriesClient.Edit.
func (c *RepositoriesClient) Edit(ctx context.Context, owner, repo string, request *gitea.EditRepoRequest) (*gitea.Repository, error) {
	path := "/repos/" + owner + "/" + repo

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("editing repository: %w", err)
	}

	var repository gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repository)
	if err != nil {
		return nil, fmt.Errorf("parsing repository: %w", err)
	}

	return &repository, nil
}

// Delete implements gitea.RepositoriesClient.Delete.
func (c *RepositoriesClient) Delete(ctx context.Context, owner, repo string) error {
	path := "/repos/" + owner + "/" + repo

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting repository: %w", err)
	}

	return nil
}

// Fork implements gitea.RepositoriesClient.Fork.
func (c *RepositoriesClient) Fork(ctx context.Context, owner, repo string, request *gitea.ForkRepoRequest) (*gitea.Repository, error) {
	path := "/repos/" + owner + "/" + repo + "/forks"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("forking repository: %w", err)
	}

	var fork gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &fork)
	if err != nil {
		return nil, fmt.Errorf("parsing fork: %w", err)
	}

	return &fork, nil
}

// ListForks implements gitea.RepositoriesClient.ListForks.
func (c *RepositoriesClient) ListForks(ctx context.Context, owner, repo string, opts *gitea.ListOptions) ([]gitea.Repository, error) {
	path := "/repos/" + owner + "/" + repo + "/forks"

	resp, err := c.httpClient.Get(ctx, path, gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing forks: %w", err)
	}

	var forks []gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &forks)
	if err != nil {
		return nil, fmt.Errorf("parsing forks: %w", err)
	}

	return forks, nil
}

// ListCommits implements gitea.RepositoriesClient.ListCommits.
func (c *RepositoriesClient) ListCommits(ctx context.Context, owner, repo string, opts *gitea.ListCommitsOptions) ([]gitea.Commit, error) {
	path := "/repos/" + owner + "/" + repo + "/commits"

	resp, err := c.httpClient.Get(ctx, path, gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing commits: %w", err)
	}

	var commits []gitea.Commit

	err = unmarshalResponse(resp.StatusCode, resp.Body, &commits)
	if err != nil {
		return nil, fmt.Errorf("parsing commits: %w", err)
	}

	return commits, nil
}

// ListBranches implements gitea.RepositoriesClient.ListBranches.
func (c *RepositoriesClient) ListBranches(ctx context.Context, owner, repo string, opts *gitea.ListOptions) ([]gitea.Branch, error) {
	path := "/repos/" + owner + "/" + repo + "/branches"

	resp, err := c.httpClient.Get(ctx, path, gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	var branches []gitea.Branch

	err = unmarshalResponse(resp.StatusCode, resp.Body, &branches)
	if err != nil {
		return nil, fmt.Errorf("parsing branches: %w", err)
	}

	return branches, nil
}

// GetBranch implements gitea.RepositoriesClient.GetBranch.
func (c *RepositoriesClient) GetBranch(ctx context.Context, owner, repo, branch string) (*gitea.Branch, error) {
	path := "/repos/" + owner + "/" + repo + "/branches/" + branch

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting branch: %w", err)
	}

	var result gitea.Branch

	err = unmarshalResponse(resp.StatusCode, resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing branch: %w", err)
	}

	return &result, nil
}

// CreateBranch implements gitea.RepositoriesClient.CreateBranch.
func (c *RepositoriesClient) CreateBranch(ctx context.Context, owner, repo string, request *gitea.CreateBranchRequest) (*gitea.Branch, error) {
	path := "/repos/" + owner + "/" + repo + "/branches"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating branch: %w", err)
	}

	var branch gitea.Branch

	err = unmarshalResponse(resp.StatusCode, resp.Body, &branch)
	if err != nil {
		return nil, fmt.Errorf("parsing branch: %w", err)
	}

	return &branch, nil
}

// DeleteBranch implements gitea.RepositoriesClient.DeleteBranch.
func (c *RepositoriesClient) DeleteBranch(ctx context.Context, owner, repo, branch string) error {
	path := "/repos/" + owner + "/" + repo + "/branches/" + branch

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting branch: %w", err)
	}

	return nil
}

// CreateLabel implements gitea.RepositoriesClient.CreateLabel.
func (c *RepositoriesClient) CreateLabel(ctx context.Context, owner, repo string, request *gitea.CreateLabelRequest) (*gitea.Label, error) {
	path := "/repos/" + owner + "/" + repo + "/labels"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	var label gitea.Label

	err = unmarshalResponse(resp.StatusCode, resp.Body, &label)
	if err != nil {
		return nil, fmt.Errorf("parsing label: %w", err)
	}

	return &label, nil
}

// EditLabel implements gitea.RepositoriesClient.EditLabel.
func (c *RepositoriesClient) EditLabel(ctx context.Context, owner, repo string, id int64, request *gitea.EditLabelRequest) (*gitea.Label, error) {
	path := fmt.Sprintf("/repos/%s/%s/labels/%d", owner, repo, id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("editing label: %w", err)
	}

	var label gitea.Label

	err = unmarshalResponse(resp.StatusCode, resp.Body, &label)
	if err != nil {
		return nil, fmt.Errorf("parsing label: %w", err)
	}

	return &label, nil
}

// Migrate implements gitea.RepositoriesClient.Migrate.
func (c *RepositoriesClient) Migrate(ctx context.Context, request *gitea.MigrateRepoRequest) (*gitea.Repository, error) {
	resp, err := c.httpClient.Post(ctx, "/repos/migrate", request)
	if err != nil {
		return nil, fmt.Errorf("migrating repository: %w", err)
	}

	var repository gitea.Repository

	err = unmarshalResponse(resp.StatusCode, resp.Body, &repository)
	if err != nil {
		return nil, fmt.Errorf("parsing repository: %w", err)
	}

	return &repository, nil
}

// UpdateAvatar implements gitea.RepositoriesClient.UpdateAvatar. image is
// the base64-encoded file content.
func (c *RepositoriesClient) UpdateAvatar(ctx context.Context, owner, repo, image string) error {
	path := "/repos/" + owner + "/" + repo + "/avatar"

	_, err := c.httpClient.Post(ctx, path, &gitea.UpdateAvatarRequest{Image: image})
	if err != nil {
		return fmt.Errorf("updating repository avatar: %w", err)
	}

	return nil
}
