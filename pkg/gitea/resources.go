package gitea

// Domain models mirror the JSON schemas served by the Gitea API. They are
// plain data records: the library only ever constructs them by decoding
// response bodies.

// StateType is the state of an existing issue or pull request.
type StateType string

const (
	StateOpen   StateType = "open"
	StateClosed StateType = "closed"
)

// StateFilter selects issues/pulls by state in listing endpoints.
type StateFilter string

const (
	StateFilterOpen   StateFilter = "open"
	StateFilterClosed StateFilter = "closed"
	StateFilterAll    StateFilter = "all"
)

// IssueType distinguishes plain issues from pull requests in mixed listings.
type IssueType string

const (
	IssueTypeIssues IssueType = "issues"
	IssueTypePulls  IssueType = "pulls"
)

// Sort orders pull request listings.
type Sort string

const (
	SortOldest       Sort = "oldest"
	SortRecentUpdate Sort = "recentupdate"
	SortLeastUpdate  Sort = "leastupdate"
	SortMostComment  Sort = "mostcomment"
	SortLeastComment Sort = "leastcomment"
	SortPriority     Sort = "priority"
)

// Visibility is the visibility level of a user or organization.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityLimited Visibility = "limited"
	VisibilityPrivate Visibility = "private"
)

// Permission is a team's access level within an organization.
type Permission string

const (
	PermissionNone  Permission = "none"
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
	PermissionAdmin Permission = "admin"
	PermissionOwner Permission = "owner"
)

// ReviewStateType is the state of a pull request review.
type ReviewStateType string

const (
	ReviewStateApproved       ReviewStateType = "APPROVED"
	ReviewStatePending        ReviewStateType = "PENDING"
	ReviewStateComment        ReviewStateType = "COMMENT"
	ReviewStateRequestChanges ReviewStateType = "REQUEST_CHANGES"
	ReviewStateRequestReview  ReviewStateType = "REQUEST_REVIEW"
	ReviewStateUnknown        ReviewStateType = "UNKNOWN"
)

// ObjectFormatName is the hash algorithm of a repository's object database.
type ObjectFormatName string

const (
	ObjectFormatSHA1   ObjectFormatName = "sha1"
	ObjectFormatSHA256 ObjectFormatName = "sha256"
)

// TrustModel determines when commit signatures count as trusted.
type TrustModel string

const (
	TrustModelDefault               TrustModel = "default"
	TrustModelCollaborator          TrustModel = "collaborator"
	TrustModelCommitter             TrustModel = "committer"
	TrustModelCollaboratorCommitter TrustModel = "collaboratorcommitter"
)

// User represents a Gitea user account.
type User struct {
	ID                int64  `json:"id"`
	Login             string `json:"login"`
	LoginName         string `json:"login_name"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	AvatarURL         string `json:"avatar_url"`
	Language          string `json:"language"`
	IsAdmin           bool   `json:"is_admin"`
	LastLogin         string `json:"last_login"`
	Created           string `json:"created"`
	Restricted        bool   `json:"restricted"`
	Active            bool   `json:"active"`
	ProhibitLogin     bool   `json:"prohibit_login"`
	Location          string `json:"location"`
	Pronouns          string `json:"pronouns"`
	Website           string `json:"website"`
	Description       string `json:"description"`
	Visibility        string `json:"visibility"`
	FollowersCount    int64  `json:"followers_count"`
	FollowingCount    int64  `json:"following_count"`
	StarredReposCount int64  `json:"starred_repos_count"`
}

// AccessToken represents an API access token. SHA1 is only populated in the
// create response; store it, the API never returns it again.
type AccessToken struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Scopes         []string `json:"scopes,omitempty"`
	SHA1           string   `json:"sha1"`
	TokenLastEight string   `json:"token_last_eight"`
}

// UserSettings represents the authenticated user's profile settings.
type UserSettings struct {
	FullName            string `json:"full_name"`
	Website             string `json:"website"`
	Description         string `json:"description"`
	Location            string `json:"location"`
	Pronouns            string `json:"pronouns"`
	Language            string `json:"language"`
	Theme               string `json:"theme"`
	DiffViewStyle       string `json:"diff_view_style"`
	HideEmail           bool   `json:"hide_email"`
	HideActivity        bool   `json:"hide_activity"`
	EnableRepoUnitHints bool   `json:"enable_repo_unit_hints"`
}

// ExternalTracker represents settings for an external issue tracker.
type ExternalTracker struct {
	ExternalTrackerURL           string `json:"external_tracker_url"`
	ExternalTrackerFormat        string `json:"external_tracker_format"`
	ExternalTrackerStyle         string `json:"external_tracker_style"`
	ExternalTrackerRegexpPattern string `json:"external_tracker_regexp_pattern"`
}

// ExternalWiki represents settings for an external wiki.
type ExternalWiki struct {
	ExternalWikiURL string `json:"external_wiki_url"`
}

// Repository represents a repository. This is a subset of the full object;
// fields the API serves that no operation here consumes are left out.
type Repository struct {
	ID                            int64            `json:"id"`
	Owner                         User             `json:"owner"`
	Name                          string           `json:"name"`
	FullName                      string           `json:"full_name"`
	Description                   string           `json:"description"`
	Empty                         bool             `json:"empty"`
	Private                       bool             `json:"private"`
	Fork                          bool             `json:"fork"`
	Template                      bool             `json:"template"`
	Mirror                        bool             `json:"mirror"`
	Internal                      bool             `json:"internal"`
	Size                          int64            `json:"size"`
	Language                      string           `json:"language"`
	LanguagesURL                  string           `json:"languages_url"`
	HTMLURL                       string           `json:"html_url"`
	URL                           string           `json:"url"`
	Link                          string           `json:"link"`
	SSHURL                        string           `json:"ssh_url"`
	CloneURL                      string           `json:"clone_url"`
	OriginalURL                   string           `json:"original_url"`
	Website                       string           `json:"website"`
	StarsCount                    int64            `json:"stars_count"`
	ForksCount                    int64            `json:"forks_count"`
	WatchersCount                 int64            `json:"watchers_count"`
	OpenIssuesCount               int64            `json:"open_issues_count"`
	OpenPRCounter                 int64            `json:"open_pr_counter"`
	ReleaseCounter                int64            `json:"release_counter"`
	DefaultBranch                 string           `json:"default_branch"`
	Archived                      bool             `json:"archived"`
	ArchivedAt                    string           `json:"archived_at"`
	CreatedAt                     string           `json:"created_at"`
	UpdatedAt                     string           `json:"updated_at"`
	HasIssues                     bool             `json:"has_issues"`
	ExternalTracker               ExternalTracker  `json:"external_tracker"`
	HasWiki                       bool             `json:"has_wiki"`
	WikiBranch                    string           `json:"wiki_branch"`
	ExternalWiki                  ExternalWiki     `json:"external_wiki"`
	HasPullRequests               bool             `json:"has_pull_requests"`
	HasProjects                   bool             `json:"has_projects"`
	HasReleases                   bool             `json:"has_releases"`
	HasPackages                   bool             `json:"has_packages"`
	HasActions                    bool             `json:"has_actions"`
	IgnoreWhitespaceConflicts     bool             `json:"ignore_whitespace_conflicts"`
	AllowMergeCommits             bool             `json:"allow_merge_commits"`
	AllowRebase                   bool             `json:"allow_rebase"`
	AllowRebaseExplicit           bool             `json:"allow_rebase_explicit"`
	AllowSquashMerge              bool             `json:"allow_squash_merge"`
	AllowRebaseUpdate             bool             `json:"allow_rebase_update"`
	AllowFastForwardOnlyMerge     bool             `json:"allow_fast_forward_only_merge"`
	DefaultDeleteBranchAfterMerge bool             `json:"default_delete_branch_after_merge"`
	DefaultMergeStyle             string           `json:"default_merge_style"`
	DefaultAllowMaintainerEdit    bool             `json:"default_allow_maintainer_edit"`
	AvatarURL                     string           `json:"avatar_url"`
	MirrorInterval                string           `json:"mirror_interval"`
	MirrorUpdated                 string           `json:"mirror_updated"`
	ObjectFormatName              ObjectFormatName `json:"object_format_name"`
}

// CommitUser is the name/email/date recorded in a git commit. Unlike User it
// is whatever the committer claimed, not necessarily a real account.
type CommitUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
}

// RepoCommit is the underlying git commit object of a Commit.
type RepoCommit struct {
	URL       string     `json:"url"`
	Author    CommitUser `json:"author"`
	Committer CommitUser `json:"committer"`
	Message   string     `json:"message"`
}

// Commit represents a commit in a repository. Author and Committer are nil
// when the commit identity does not map to a Gitea account.
type Commit struct {
	URL       string     `json:"url"`
	SHA       string     `json:"sha"`
	HTMLURL   string     `json:"html_url"`
	Commit    RepoCommit `json:"commit"`
	Author    *User      `json:"author"`
	Committer *User      `json:"committer"`
}

// PayloadUser is the commit identity embedded in branch payloads.
type PayloadUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// PayloadCommit is the HEAD commit embedded in a Branch.
type PayloadCommit struct {
	ID        string      `json:"id"`
	Message   string      `json:"message"`
	URL       string      `json:"url"`
	Author    PayloadUser `json:"author"`
	Committer PayloadUser `json:"committer"`
	Added     []string    `json:"added,omitempty"`
	Removed   []string    `json:"removed,omitempty"`
	Modified  []string    `json:"modified,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// Branch represents a repository branch and its protection state.
type Branch struct {
	Name                          string        `json:"name"`
	Commit                        PayloadCommit `json:"commit"`
	Protected                     bool          `json:"protected"`
	RequiredApprovals             int64         `json:"required_approvals"`
	EnableStatusCheck             bool          `json:"enable_status_check"`
	StatusCheckContexts           []string      `json:"status_check_contexts"`
	UserCanPush                   bool          `json:"user_can_push"`
	UserCanMerge                  bool          `json:"user_can_merge"`
	EffectiveBranchProtectionName string        `json:"effective_branch_protection_name"`
}

// Attachment represents a file attached to an issue, pull, or release.
type Attachment struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	DownloadCount      int64  `json:"download_count"`
	CreatedAt          string `json:"created_at"`
	UUID               string `json:"uuid"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Label represents an issue/pull label.
type Label struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Exclusive   bool   `json:"exclusive"`
	IsArchived  bool   `json:"is_archived"`
	Color       string `json:"color"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Issue represents an issue in a repository.
type Issue struct {
	ID               int64        `json:"id"`
	URL              string       `json:"url"`
	HTMLURL          string       `json:"html_url"`
	Number           int64        `json:"number"`
	User             User         `json:"user"`
	OriginalAuthor   string       `json:"original_author"`
	OriginalAuthorID int64        `json:"original_author_id"`
	Title            string       `json:"title"`
	Body             *string      `json:"body"`
	Ref              string       `json:"ref"`
	Assets           []Attachment `json:"assets"`
	Labels           []Label      `json:"labels"`
	Assignee         *User        `json:"assignee"`
	Assignees        []User       `json:"assignees,omitempty"`
	State            StateType    `json:"state"`
	IsLocked         bool         `json:"is_locked"`
	Comments         int64        `json:"comments"`
	CreatedAt        string       `json:"created_at"`
	UpdatedAt        string       `json:"updated_at"`
	ClosedAt         *string      `json:"closed_at"`
	DueDate          *string      `json:"due_date"`
	PinOrder         int64        `json:"pin_order"`
}

// Comment represents a comment on an issue or pull request.
type Comment struct {
	ID               int64        `json:"id"`
	HTMLURL          string       `json:"html_url"`
	IssueURL         string       `json:"issue_url"`
	PullRequestURL   string       `json:"pull_request_url"`
	User             User         `json:"user"`
	OriginalAuthor   string       `json:"original_author"`
	OriginalAuthorID int64        `json:"original_author_id"`
	Body             string       `json:"body"`
	Assets           []Attachment `json:"assets"`
	CreatedAt        string       `json:"created_at"`
	UpdatedAt        string       `json:"updated_at"`
}

// PRBranchInfo is one side (head or base) of a pull request.
type PRBranchInfo struct {
	Label  string     `json:"label"`
	Ref    string     `json:"ref"`
	SHA    string     `json:"sha"`
	RepoID int64      `json:"repo_id"`
	Repo   Repository `json:"repo"`
}

// PullRequest represents a pull request.
type PullRequest struct {
	ID                  int64        `json:"id"`
	URL                 string       `json:"url"`
	Number              int64        `json:"number"`
	User                User         `json:"user"`
	Title               string       `json:"title"`
	Body                string       `json:"body"`
	Labels              []Label      `json:"labels"`
	Assignees           []User       `json:"assignees,omitempty"`
	RequestedReviewers  []*User      `json:"requested_reviewers,omitempty"`
	State               StateType    `json:"state"`
	Draft               bool         `json:"draft"`
	IsLocked            bool         `json:"is_locked"`
	Comments            int64        `json:"comments"`
	ReviewComments      int64        `json:"review_comments"`
	Additions           int64        `json:"additions"`
	Deletions           int64        `json:"deletions"`
	ChangedFiles        int64        `json:"changed_files"`
	HTMLURL             string       `json:"html_url"`
	DiffURL             string       `json:"diff_url"`
	PatchURL            string       `json:"patch_url"`
	Mergeable           bool         `json:"mergeable"`
	Merged              bool         `json:"merged"`
	MergedAt            *string      `json:"merged_at"`
	MergeCommitSHA      *string      `json:"merge_commit_sha"`
	MergedBy            *User        `json:"merged_by"`
	MergeBase           string       `json:"merge_base"`
	AllowMaintainerEdit bool         `json:"allow_maintainer_edit"`
	Base                PRBranchInfo `json:"base"`
	Head                PRBranchInfo `json:"head"`
	DueDate             *string      `json:"due_date"`
	CreatedAt           string       `json:"created_at"`
	UpdatedAt           string       `json:"updated_at"`
	ClosedAt            *string      `json:"closed_at"`
	PinOrder            int64        `json:"pin_order"`
}

// PullReview represents a review on a pull request.
type PullReview struct {
	ID             int64           `json:"id"`
	User           *User           `json:"user"`
	Team           *Team           `json:"team"`
	State          ReviewStateType `json:"state"`
	Body           string          `json:"body"`
	CommitID       string          `json:"commit_id"`
	Stale          bool            `json:"stale"`
	Official       bool            `json:"official"`
	Dismissed      bool            `json:"dismissed"`
	CommentsCount  int64           `json:"comments_count"`
	SubmittedAt    string          `json:"submitted_at"`
	UpdatedAt      string          `json:"updated_at"`
	HTMLURL        string          `json:"html_url"`
	PullRequestURL string          `json:"pull_request_url"`
}

// Organization represents an organization.
type Organization struct {
	ID                        int64      `json:"id"`
	Name                      string     `json:"name"`
	FullName                  *string    `json:"full_name"`
	Email                     *string    `json:"email"`
	AvatarURL                 *string    `json:"avatar_url"`
	Description               *string    `json:"description"`
	Website                   *string    `json:"website"`
	Location                  *string    `json:"location"`
	Visibility                Visibility `json:"visibility"`
	RepoAdminChangeTeamAccess bool       `json:"repo_admin_change_team_access"`
}

// Team represents a team in an organization.
type Team struct {
	ID                      int64             `json:"id"`
	Name                    string            `json:"name"`
	Description             string            `json:"description"`
	Organization            *Organization     `json:"organization"`
	Permission              Permission        `json:"permission"`
	Units                   []string          `json:"units"`
	UnitsMap                map[string]string `json:"units_map"`
	IncludesAllRepositories bool              `json:"includes_all_repositories"`
	CanCreateOrgRepo        bool              `json:"can_create_org_repo"`
}
