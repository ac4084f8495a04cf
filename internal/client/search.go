package client

import (
	"context"
	"fmt"

	"github.com/steeped-dev/gitea-client/internal/http"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// SearchClient implements gitea.SearchClient.
type SearchClient struct {
	httpClient *http.Client
}

// NewSearchClient creates a new search client.
func NewSearchClient(httpClient *http.Client) *SearchClient {
	return &SearchClient{httpClient: httpClient}
}

// searchEnvelope is the wrapper every search endpoint serves; callers only
// ever see the data inside.
type searchEnvelope[T any] struct {
	OK   bool `json:"ok"`
	Data []T  `json:"data"`
}

// Repositories implements gitea.SearchClient.Repositories.
func (c *SearchClient) Repositories(ctx context.Context, opts *gitea.SearchRepositoriesOptions) ([]gitea.Repository, error) {
	resp, err := c.httpClient.Get(ctx, "/repos/search", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("searching repositories: %w", err)
	}

	var envelope searchEnvelope[gitea.Repository]

	err = unmarshalResponse(resp.StatusCode, resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	return envelope.Data, nil
}

// Users implements gitea.SearchClient.Users.
func (c *SearchClient) Users(ctx context.Context, opts *gitea.SearchUsersOptions) ([]gitea.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users/search", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}

	var envelope searchEnvelope[gitea.User]

	err = unmarshalResponse(resp.StatusCode, resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	return envelope.Data, nil
}

// Issues implements gitea.SearchClient.Issues. Unlike the other search
// endpoints this one serves a bare array.
func (c *SearchClient) Issues(ctx context.Context, opts *gitea.SearchIssuesOptions) ([]gitea.Issue, error) {
	resp, err := c.httpClient.Get(ctx, "/repos/issues/search", gitea.Values(opts))
	if err != nil {
		return nil, fmt.Errorf("searching issues: %w", err)
	}

	var issues []gitea.Issue

	err = unmarshalResponse(resp.StatusCode, resp.Body, &issues)
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	return issues, nil
}
