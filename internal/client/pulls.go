package client

import (
	"context"
	"fmt"

	"github.com/steeped-dev/gitea-client/internal/http"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// PullRequestsClient implements gitea.PullRequestsClient.
type PullRequestsClient struct {
	httpClient *http.Client
}

// NewPullRequestsClient creates a new pull requests client.
func NewPullRequestsClient(httpClient *http.Client) *PullRequestsClient {
	return &PullRequestsClient{httpClient: httpClient}
}

// Create implements gitea.PullRequestsClient.Create.
func (c *PullRequestsClient) Create(ctx context.Context, owner, repo string, request *gitea.CreatePullRequestRequest) (*gitea.PullRequest, error) {
	path := "/repos/" + owner + "/" + repo + "/pulls"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating pull request: %w", err)
	}

	var pull gitea.PullRequest

	err = unmarshalResponse(resp.StatusCode, resp.Body, &pull)
	if err != nil {
		return nil, fmt.Errorf("parsing pull request: %w", err)
	}

	return &pull, nil
}

// Get implements gitea.PullRequestsClient.Get.
func (c *PullRequestsClient) Get(ctx context.Context, owner, repo string, index int64) (*gitea.PullRequest, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, index)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting pull request: %w", err)
	}

	var pull gitea.PullRequest

	err = unmarshalResponse(resp.StatusCode, resp.Body, &pull)
	if err != nil {
		return nil, fmt.Errorf("parsing pull request: %w", err)
	}

	return &pull, nil
}

// GetByBranches implements gitea.PullRequestsClient.GetByBranches. It
// resolves the open pull request from head into base.
func (c *PullRequestsClient) GetByBranches(ctx context.Context, owner, repo, base, head string) (*gitea.PullRequest, error) {
	path := "/repos/" + owner + "/" + repo + "/pulls/" + base + "/" + head

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting pull request: %w", err)
	}

	var pull gitea.PullRequest

	err = unmarshalResponse(resp.StatusCode, resp.Body, &pull)
	if err != nil {
		return nil, fmt.Errorf("parsing pull request: %w", err)
	}

	return &pull, nil
}

// Edit implements gitea.PullRequestsClient.Edit.
func (c *PullRequestsClient) Edit(ctx context.Context, owner, repo string, index int64, request *gitea.EditPullRequestRequest) (*gitea.PullRequest, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, index)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("editing pull request: %w", err)
	}

	var pull gitea.PullRequest

	err = unmarshalResponse(resp.StatusCode, resp.Body, &pull)
	if err != nil {
		return nil, fmt.Errorf("parsing pull request: %w", err)
	}

	return &pull, nil
}

// List implements gitea.PullRequestsClient.List.
func (c *PullRequestsClient) List(ctx context.Context, owner, repo string, opts *gitea.ListPullRequestsOptions) ([]gitea.PullRequest, error) {
	path := "/repos/" + owner + "/" + repo + "/pulls"

	resp, err := c.httpClient.Get(ctx, path, gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing pull requests: %w", err)
	}

	var pulls []gitea.PullRequest

	err = unmarshalResponse(resp.StatusCode, resp.Body, &pulls)
	if err != nil {
		return nil, fmt.Errorf("parsing pull requests: %w", err)
	}

	return pulls, nil
}

// ListPinned implements gitea.PullRequestsClient.ListPinned.
func (c *PullRequestsClient) ListPinned(ctx context.Context, owner, repo string) ([]gitea.PullRequest, error) {
	path := "/repos/" + owner + "/" + repo + "/pulls/pinned"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing pinned pull requests: %w", err)
	}

	var pulls []gitea.PullRequest

	err = unmarshalResponse(resp.StatusCode, resp.Body, &pulls)
	if err != nil {
		return nil, fmt.Errorf("parsing pull requests: %w", err)
	}

	return pulls, nil
}

// ListReviews implements gitea.PullRequestsClient.ListReviews.
func (c *PullRequestsClient) ListReviews(ctx context.Context, owner, repo string, index int64) ([]gitea.PullReview, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d/reviews", owner, repo, index)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}

	var reviews []gitea.PullReview

	err = unmarshalResponse(resp.StatusCode, resp.Body, &reviews)
	if err != nil {
		return nil, fmt.Errorf("parsing reviews: %w", err)
	}

	return reviews, nil
}
