package gitea

import (
	"context"
	"time"
)

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Repositories() RepositoriesClient
	Issues() IssuesClient
	PullRequests() PullRequestsClient
	Organizations() OrganizationsClient
	Users() UsersClient
	Admin() AdminClient
	Search() SearchClient
}

// Client is the typed Gitea API client. Construct one with
// giteaclient.New.
type Client interface {
	ResourceClients
}

// RepositoriesClient provides access to repository endpoints.
type RepositoriesClient interface {
	Get(ctx context.Context, owner, repo string) (*Repository, error)
	Edit(ctx context.Context, owner, repo string, request *EditRepoRequest) (*Repository, error)
	Delete(ctx context.Context, owner, repo string) error
	Fork(ctx context.Context, owner, repo string, request *ForkRepoRequest) (*Repository, error)
	ListForks(ctx context.Context, owner, repo string, opts *ListOptions) ([]Repository, error)
	ListCommits(ctx context.Context, owner, repo string, opts *ListCommitsOptions) ([]Commit, error)
	ListBranches(ctx context.Context, owner, repo string, opts *ListOptions) ([]Branch, error)
	GetBranch(ctx context.Context, owner, repo, branch string) (*Branch, error)
	CreateBranch(ctx context.Context, owner, repo string, request *CreateBranchRequest) (*Branch, error)
	DeleteBranch(ctx context.Context, owner, repo, branch string) error
	CreateLabel(ctx context.Context, owner, repo string, request *CreateLabelRequest) (*Label, error)
	EditLabel(ctx context.Context, owner, repo string, id int64, request *EditLabelRequest) (*Label, error)
	Migrate(ctx context.Context, request *MigrateRepoRequest) (*Repository, error)
	UpdateAvatar(ctx context.Context, owner, repo, image string) error
}

// IssuesClient provides access to issue and comment endpoints.
type IssuesClient interface {
	Create(ctx context.Context, owner, repo string, request *CreateIssueRequest) (*Issue, error)
	Get(ctx context.Context, owner, repo string, index int64) (*Issue, error)
	Edit(ctx context.Context, owner, repo string, index int64, request *EditIssueRequest) (*Issue, error)
	Delete(ctx context.Context, owner, repo string, index int64) error
	List(ctx context.Context, owner, repo string, opts *ListIssuesOptions) ([]Issue, error)
	CreateComment(ctx context.Context, owner, repo string, index int64, request *CreateCommentRequest) (*Comment, error)
	GetComment(ctx context.Context, owner, repo string, id int64) (*Comment, error)
	// EditComment returns (nil, nil) when the server answers 204 with no
	// body, which it does for comments it considers unchanged.
	EditComment(ctx context.Context, owner, repo string, id int64, request *EditCommentRequest) (*Comment, error)
	DeleteComment(ctx context.Context, owner, repo string, id int64) error
	ListComments(ctx context.Context, owner, repo string, index int64, opts *ListCommentsOptions) ([]Comment, error)
	ListRepoComments(ctx context.Context, owner, repo string, opts *ListCommentsOptions) ([]Comment, error)
}

// PullRequestsClient provides access to pull request endpoints.
type PullRequestsClient interface {
	Create(ctx context.Context, owner, repo string, request *CreatePullRequestRequest) (*PullRequest, error)
	Get(ctx context.Context, owner, repo string, index int64) (*PullRequest, error)
	GetByBranches(ctx context.Context, owner, repo, base, head string) (*PullRequest, error)
	Edit(ctx context.Context, owner, repo string, index int64, request *EditPullRequestRequest) (*PullRequest, error)
	List(ctx context.Context, owner, repo string, opts *ListPullRequestsOptions) ([]PullRequest, error)
	ListPinned(ctx context.Context, owner, repo string) ([]PullRequest, error)
	ListReviews(ctx context.Context, owner, repo string, index int64) ([]PullReview, error)
}

// OrganizationsClient provides access to organization and team endpoints.
type OrganizationsClient interface {
	Create(ctx context.Context, request *CreateOrgRequest) (*Organization, error)
	Get(ctx context.Context, org string) (*Organization, error)
	Edit(ctx context.Context, org string, request *EditOrgRequest) (*Organization, error)
	Delete(ctx context.Context, org string) error
	List(ctx context.Context, opts *ListOptions) ([]Organization, error)
	ListRepositories(ctx context.Context, org string, opts *ListOptions) ([]Repository, error)
	CreateRepository(ctx context.Context, org string, request *CreateRepoRequest) (*Repository, error)
	ListMembers(ctx context.Context, org string, opts *ListOptions) ([]User, error)
	// IsMember reports membership; a 404 from the server means "not a
	// member", not an error.
	IsMember(ctx context.Context, org, username string) (bool, error)
	RemoveMember(ctx context.Context, org, username string) error
	ListPublicMembers(ctx context.Context, org string, opts *ListOptions) ([]User, error)
	IsPublicMember(ctx context.Context, org, username string) (bool, error)
	PublicizeMembership(ctx context.Context, org, username string) error
	ConcealMembership(ctx context.Context, org, username string) error
	CreateTeam(ctx context.Context, org string, request *CreateTeamRequest) (*Team, error)
	EditTeam(ctx context.Context, id int64, request *EditTeamRequest) (*Team, error)
	UpdateAvatar(ctx context.Context, org, image string) error
}

// UsersClient provides access to user endpoints, both for the
// authenticated user and arbitrary users.
type UsersClient interface {
	Current(ctx context.Context) (*User, error)
	Get(ctx context.Context, username string) (*User, error)
	CreateRepository(ctx context.Context, request *CreateRepoRequest) (*Repository, error)
	ListRepositories(ctx context.Context, opts *ListOptions) ([]Repository, error)
	ListUserRepositories(ctx context.Context, username string, opts *ListOptions) ([]Repository, error)
	ListOrganizations(ctx context.Context, opts *ListOptions) ([]Organization, error)
	ListUserOrganizations(ctx context.Context, username string, opts *ListOptions) ([]Organization, error)
	GetSettings(ctx context.Context) (*UserSettings, error)
	UpdateSettings(ctx context.Context, request *UpdateSettingsRequest) (*UserSettings, error)
	ListAccessTokens(ctx context.Context, username string, opts *ListOptions) ([]AccessToken, error)
	CreateAccessToken(ctx context.Context, username string, request *CreateAccessTokenRequest) (*AccessToken, error)
	DeleteAccessToken(ctx context.Context, username, token string) error
	ListStarred(ctx context.Context, opts *ListOptions) ([]Repository, error)
	ListUserStarred(ctx context.Context, username string, opts *ListOptions) ([]Repository, error)
	StarRepository(ctx context.Context, owner, repo string) error
	UnstarRepository(ctx context.Context, owner, repo string) error
	// IsStarred reports whether the authenticated user starred the
	// repository; 404 means "not starred".
	IsStarred(ctx context.Context, owner, repo string) (bool, error)
}

// AdminClient provides access to administrative operations. These require
// a token with admin scope.
type AdminClient interface {
	CreateUser(ctx context.Context, request *CreateUserRequest) (*User, error)
	UpdateUser(ctx context.Context, username string, request *UpdateUserRequest) (*User, error)
}

// SearchClient provides access to instance-wide search endpoints.
type SearchClient interface {
	Repositories(ctx context.Context, opts *SearchRepositoriesOptions) ([]Repository, error)
	Users(ctx context.Context, opts *SearchUsersOptions) ([]User, error)
	Issues(ctx context.Context, opts *SearchIssuesOptions) ([]Issue, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a gitea.Client.
//
// # Authentication
//
// Provide at most one of Token or Username/Password. A token is sent as
// "Authorization: token <value>", basic credentials as standard HTTP Basic.
// With neither, requests go out unauthenticated, which is enough for
// public endpoints. The header is fixed when the client is built;
// construct a new client to change credentials.
type Config struct {
	// Endpoint: base URL of the Gitea instance (e.g.
	// "https://gitea.example.com"). giteaclient.New normalizes this value
	// by trimming a trailing slash and adding "https://" if no scheme is
	// present. The API path prefix is appended per request, never stored
	// here.
	Endpoint string

	// Token: API access token.
	Token string
	// Username and Password: basic authentication credentials.
	Username string
	Password string

	// RetryMax: maximum number of retries for transient failures. Zero
	// disables retrying, which is the default.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Interceptors: optional chain run around every request. Debug logging
	// interceptors are appended to it when Debug and Logger are set.
	Interceptors *InterceptorChain
}
