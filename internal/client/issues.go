package client

import (
	"context"
	"fmt"

	"github.com/steeped-dev/gitea-client/internal/http"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// IssuesClient implements gitea.IssuesClient.
type IssuesClient struct {
	httpClient *http.Client
}

// NewIssuesClient creates a new issues client.
func NewIssuesClient(httpClient *http.Client) *IssuesClient {
	return &IssuesClient{httpClient: httpClient}
}

// Create implements gitea.IssuesClient.Create.
func (c *IssuesClient) Create(ctx context.Context, owner, repo string, request *gitea.CreateIssueRequest) (*gitea.Issue, error) {
	path := "/repos/" + owner + "/" + repo + "/issues"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	var issue gitea.Issue

	err = unmarshalResponse(resp.StatusCode, resp.Body, &issue)
	if err != nil {
		return nil, fmt.Errorf("parsing issue: %w", err)
	}

	return &issue, nil
}

// Get implements gitea.IssuesClient.Get.
func (c *IssuesClient) Get(ctx context.Context, owner, repo string, index int64) (*gitea.Issue, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, index)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting issue: %w", err)
	}

	var issue gitea.Issue

	err = unmarshalResponse(resp.StatusCode, resp.Body, &issue)
	if err != nil {
		return nil, fmt.Errorf("parsing issue: %w", err)
	}

	return &issue, nil
}

// Edit implements gitea.IssuesClient.Edit.
func (c *IssuesClient) Edit(ctx context.Context, owner, repo string, index int64, request *gitea.EditIssueRequest) (*gitea.Issue, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, index)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("editing issue: %w", err)
	}

	var issue gitea.Issue

	err = unmarshalResponse(resp.StatusCode, resp.Body, &issue)
	if err != nil {
		return nil, fmt.Errorf("parsing issue: %w", err)
	}

	return &issue, nil
}

// Delete implements gitea.IssuesClient.Delete.
func (c *IssuesClient) Delete(ctx context.Context, owner, repo string, index int64) error {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, index)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting issue: %w", err)
	}

	return nil
}

// List implements gitea.IssuesClient.List.
func (c *IssuesClient) List(ctx context.Context, owner, repo string, opts *gitea.ListIssuesOptions) ([]gitea.Issue, error) {
	path := "/repos/" + owner + "/" + repo + "/issues"

	resp, err := c.httpClient.Get(ctx, path, gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}

	var issues []gitea.Issue

	err = unmarshalResponse(resp.StatusCode, resp.Body, &issues)
	if err != nil {
		return nil, fmt.Errorf("parsing issues: %w", err)
	}

	return issues, nil
}

// CreateComment implements gitea.IssuesClient.CreateComment.
func (c *IssuesClient) CreateComment(ctx context.Context, owner, repo string, index int64, request *gitea.CreateCommentRequest) (*gitea.Comment, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d/comments", owner, repo, index)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	var comment gitea.Comment

	err = unmarshalResponse(resp.StatusCode, resp.Body, &comment)
	if err != nil {
		return nil, fmt.Errorf("parsing comment: %w", err)
	}

	return &comment, nil
}

// GetComment implements gitea.IssuesClient.GetComment.
func (c *IssuesClient) GetComment(ctx context.Context, owner, repo string, id int64) (*gitea.Comment, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues/comments/%d", owner, repo, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting comment: %w", err)
	}

	var comment gitea.Comment

	err = unmarshalResponse(resp.StatusCode, resp.Body, &comment)
	if err != nil {
		return nil, fmt.Errorf("parsing comment: %w", err)
	}

	return &comment, nil
}

// EditComment implements gitea.IssuesClient.EditComment. The server
// answers 204 with an empty body when it considers the comment unchanged;
// that surfaces here as (nil, nil).
func (c *IssuesClient) EditComment(ctx context.Context, owner, repo string, id int64, request *gitea.EditCommentRequest) (*gitea.Comment, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues/comments/%d", owner, repo, id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("editing comment: %w", err)
	}

	if len(resp.Body) == 0 {
		return nil, nil //nolint:nilnil // no body means nothing to return
	}

	var comment gitea.Comment

	err = unmarshalResponse(resp.StatusCode, resp.Body, &comment)
	if err != nil {
		return nil, fmt.Errorf("parsing comment: %w", err)
	}

	return &comment, nil
}

// DeleteComment implements gitea.IssuesClient.DeleteComment.
func (c *IssuesClient) DeleteComment(ctx context.Context, owner, repo string, id int64) error {
	path := fmt.Sprintf("/repos/%s/%s/issues/comments/%d", owner, repo, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	return nil
}

// ListComments implements gitea.IssuesClient.ListComments.
func (c *IssuesClient) ListComments(ctx context.Context, owner, repo string, index int64, opts *gitea.ListCommentsOptions) ([]gitea.Comment, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d/comments", owner, repo, index)

	resp, err := c.httpClient.Get(ctx, path, gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	var comments []gitea.Comment

	err = unmarshalResponse(resp.StatusCode, resp.Body, &comments)
	if err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}

	return comments, nil
}

// ListRepoComments implements gitea.IssuesClient.ListRepoComments. It
// lists comments across every issue in the repository.
func (c *IssuesClient) ListRepoComments(ctx context.Context, owner, repo string, opts *gitea.ListCommentsOptions) ([]gitea.Comment, error) {
	path := "/repos/" + owner + "/" + repo + "/issues/comments"

	resp, err := c.httpClient.Get(ctx, path, gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	var comments []gitea.Comment

	err = unmarshalResponse(resp.StatusCode, resp.Body, &comments)
	if err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}

	return comments, nil
}
