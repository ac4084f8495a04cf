// Package client implements the gitea.Client interface and its
// per-resource clients.
package client

import (
	"encoding/base64"
	"fmt"

	"github.com/steeped-dev/gitea-client/internal/constants"
	"github.com/steeped-dev/gitea-client/internal/http"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// Client implements the gitea.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     gitea.Logger

	// Resource clients
	repositories  gitea.RepositoriesClient
	issues        gitea.IssuesClient
	pullRequests  gitea.PullRequestsClient
	organizations gitea.OrganizationsClient
	users         gitea.UsersClient
	admin         gitea.AdminClient
	search        gitea.SearchClient
}

// New creates a new Gitea API client from an already-normalized endpoint.
func New(config *gitea.Config) (*Client, error) {
	if config == nil {
		return nil, gitea.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, gitea.ErrEndpointRequired
	}

	authHeader, err := buildAuthHeader(config)
	if err != nil {
		return nil, err
	}

	opts := []http.Option{}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Interceptors != nil {
		opts = append(opts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin == 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax == 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	httpClient := http.NewClient(config.Endpoint, authHeader, opts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.Endpoint,
		logger:     config.Logger,
	}

	client.repositories = NewRepositoriesClient(httpClient)
	client.issues = NewIssuesClient(httpClient)
	client.pullRequests = NewPullRequestsClient(httpClient)
	client.organizations = NewOrganizationsClient(httpClient)
	client.users = NewUsersClient(httpClient)
	client.admin = NewAdminClient(httpClient)
	client.search = NewSearchClient(httpClient)

	return client, nil
}

// buildAuthHeader turns the configured credentials into a fixed
// Authorization header value. Empty when no credentials are set.
func buildAuthHeader(config *gitea.Config) (string, error) {
	if config.Token != "" && (config.Username != "" || config.Password != "") {
		return "", gitea.ErrAmbiguousCredentials
	}

	var header string

	switch {
	case config.Token != "":
		header = "token " + config.Token
	case config.Username != "" && config.Password != "":
		credentials := config.Username + ":" + config.Password
		header = "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
	default:
		return "", nil
	}

	// Header values must be printable ASCII; anything else would be
	// mangled or rejected on the wire.
	for _, r := range header {
		if r < 0x20 || r > 0x7e {
			return "", fmt.Errorf("%w: %q", gitea.ErrInvalidAuthHeader, header)
		}
	}

	return header, nil
}

// Repositories implements gitea.Client.Repositories.
func (c *Client) Repositories() gitea.RepositoriesClient {
	return c.repositories
}

// Issues implements gitea.Client.Issues.
func (c *Client) Issues() gitea.IssuesClient {
	return c.issues
}

// PullRequests implements gitea.Client.PullRequests.
func (c *Client) PullRequests() gitea.PullRequestsClient {
	return c.pullRequests
}

// Organizations implements gitea.Client.Organizations.
func (c *Client) Organizations() gitea.OrganizationsClient {
	return c.organizations
}

// Users implements gitea.Client.Users.
func (c *Client) Users() gitea.UsersClient {
	return c.users
}

// Admin implements gitea.Client.Admin.
func (c *Client) Admin() gitea.AdminClient {
	return c.admin
}

// Search implements gitea.Client.Search.
func (c *Client) Search() gitea.SearchClient {
	return c.search
}
