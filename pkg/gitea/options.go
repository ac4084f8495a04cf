package gitea

// Request and option structs for every operation. Optional fields are
// pointers (or slices) so an unset field is left out of the request body or
// query string entirely; the server's defaults then apply. Required fields
// are plain values passed to the operation or set at construction.
//
// Query-projected structs use the param tag, consumed by Values. Body
// structs use json tags with omitempty on every optional field.

// CreateIssueRequest is the body for creating an issue. Title is the only
// required field.
type CreateIssueRequest struct {
	Title     string   `json:"title"`
	Assignees []string `json:"assignees,omitempty"`
	Body      *string  `json:"body,omitempty"`
	Closed    *bool    `json:"closed,omitempty"`
	DueDate   *string  `json:"due_date,omitempty"`
	Labels    []int64  `json:"labels,omitempty"`
	Milestone *int64   `json:"milestone,omitempty"`
	Ref       *string  `json:"ref,omitempty"`
}

// EditIssueRequest is the body for editing an issue. Every field is
// optional; unset fields leave the issue untouched.
type EditIssueRequest struct {
	Assignees    []string `json:"assignees,omitempty"`
	Body         *string  `json:"body,omitempty"`
	DueDate      *string  `json:"due_date,omitempty"`
	Milestone    *int64   `json:"milestone,omitempty"`
	Ref          *string  `json:"ref,omitempty"`
	State        *string  `json:"state,omitempty"`
	Title        *string  `json:"title,omitempty"`
	UnsetDueDate *bool    `json:"unset_due_date,omitempty"`
	UpdatedAt    *string  `json:"updated_at,omitempty"`
}

// ListIssuesOptions filters issue listings for a repository.
type ListIssuesOptions struct {
	State       StateFilter `param:"state"`
	Labels      []string    `param:"labels"`
	Query       string      `param:"q"`
	Type        IssueType   `param:"type"`
	Milestones  []string    `param:"milestones"`
	Since       string      `param:"since"`
	Before      string      `param:"before"`
	CreatedBy   string      `param:"created_by"`
	AssignedBy  string      `param:"assigned_by"`
	MentionedBy string      `param:"mentioned_by"`
	ListOptions
}

// CreateCommentRequest is the body for creating a comment on an issue or
// pull request.
type CreateCommentRequest struct {
	Body      string  `json:"body"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// EditCommentRequest is the body for editing an existing comment.
type EditCommentRequest struct {
	Body      string  `json:"body"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// ListCommentsOptions filters comment listings.
type ListCommentsOptions struct {
	Since  string `param:"since"`
	Before string `param:"before"`
	ListOptions
}

// CreateLabelRequest is the body for creating a repository label. Name and
// Color are required.
type CreateLabelRequest struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
	Exclusive   *bool   `json:"exclusive,omitempty"`
	IsArchived  *bool   `json:"is_archived,omitempty"`
}

// EditLabelRequest is the body for editing a repository label.
type EditLabelRequest struct {
	Name        *string `json:"name,omitempty"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
	Exclusive   *bool   `json:"exclusive,omitempty"`
	IsArchived  *bool   `json:"is_archived,omitempty"`
}

// EditRepoRequest is the body for editing a repository's settings. Every
// field is optional.
type EditRepoRequest struct {
	AllowFastForwardOnlyMerge     *bool            `json:"allow_fast_forward_only_merge,omitempty"`
	AllowManualMerge              *bool            `json:"allow_manual_merge,omitempty"`
	AllowMergeCommits             *bool            `json:"allow_merge_commits,omitempty"`
	AllowRebase                   *bool            `json:"allow_rebase,omitempty"`
	AllowRebaseExplicit           *bool            `json:"allow_rebase_explicit,omitempty"`
	AllowRebaseUpdate             *bool            `json:"allow_rebase_update,omitempty"`
	AllowSquashMerge              *bool            `json:"allow_squash_merge,omitempty"`
	Archived                      *bool            `json:"archived,omitempty"`
	AutodetectManualMerge         *bool            `json:"autodetect_manual_merge,omitempty"`
	DefaultAllowMaintainerEdit    *bool            `json:"default_allow_maintainer_edit,omitempty"`
	DefaultBranch                 *string          `json:"default_branch,omitempty"`
	DefaultDeleteBranchAfterMerge *bool            `json:"default_delete_branch_after_merge,omitempty"`
	DefaultMergeStyle             *string          `json:"default_merge_style,omitempty"`
	Description                   *string          `json:"description,omitempty"`
	EnablePrune                   *bool            `json:"enable_prune,omitempty"`
	ExternalTracker               *ExternalTracker `json:"external_tracker,omitempty"`
	ExternalWiki                  *ExternalWiki    `json:"external_wiki,omitempty"`
	HasActions                    *bool            `json:"has_actions,omitempty"`
	HasIssues                     *bool            `json:"has_issues,omitempty"`
	HasPackages                   *bool            `json:"has_packages,omitempty"`
	HasProjects                   *bool            `json:"has_projects,omitempty"`
	HasPullRequests               *bool            `json:"has_pull_requests,omitempty"`
	HasReleases                   *bool            `json:"has_releases,omitempty"`
	HasWiki                       *bool            `json:"has_wiki,omitempty"`
	IgnoreWhitespaceConflicts     *bool            `json:"ignore_whitespace_conflicts,omitempty"`
	MirrorInterval                *string          `json:"mirror_interval,omitempty"`
	Name                          *string          `json:"name,omitempty"`
	Private                       *bool            `json:"private,omitempty"`
	ProjectsMode                  *string          `json:"projects_mode,omitempty"`
	Template                      *bool            `json:"template,omitempty"`
	Website                       *string          `json:"website,omitempty"`
}

// ForkRepoRequest is the body for forking a repository. Leave Name unset to
// keep the original name; set Organization to fork into an organization.
type ForkRepoRequest struct {
	Name         *string `json:"name,omitempty"`
	Organization *string `json:"organization,omitempty"`
}

// ListCommitsOptions filters the commit listing of a repository.
type ListCommitsOptions struct {
	SHA          string `param:"sha"`
	Path         string `param:"path"`
	Stat         *bool  `param:"stat"`
	Verification *bool  `param:"verification"`
	Files        *bool  `param:"files"`
	Not          string `param:"not"`
	ListOptions
}

// CreateBranchRequest is the body for creating a branch. OldRefName is the
// branch, tag, or commit the new branch starts from; unset means the
// repository's default branch.
type CreateBranchRequest struct {
	BranchName string  `json:"new_branch_name"`
	OldRefName *string `json:"old_ref_name,omitempty"`
}

// MigrateRepoRequest is the body for migrating a repository from another
// service. CloneAddr and RepoName are required.
type MigrateRepoRequest struct {
	CloneAddr      string  `json:"clone_addr"`
	RepoName       string  `json:"repo_name"`
	AuthPassword   *string `json:"auth_password,omitempty"`
	AuthToken      *string `json:"auth_token,omitempty"`
	AuthUsername   *string `json:"auth_username,omitempty"`
	Description    *string `json:"description,omitempty"`
	Issues         *bool   `json:"issues,omitempty"`
	Labels         *bool   `json:"labels,omitempty"`
	LFS            *bool   `json:"lfs,omitempty"`
	LFSEndpoint    *string `json:"lfs_endpoint,omitempty"`
	Milestones     *bool   `json:"milestones,omitempty"`
	Mirror         *bool   `json:"mirror,omitempty"`
	MirrorInterval *string `json:"mirror_interval,omitempty"`
	Private        *bool   `json:"private,omitempty"`
	PullRequests   *bool   `json:"pull_requests,omitempty"`
	Releases       *bool   `json:"releases,omitempty"`
	RepoOwner      *string `json:"repo_owner,omitempty"`
	Service        *string `json:"service,omitempty"`
	Wiki           *bool   `json:"wiki,omitempty"`
}

// UpdateAvatarRequest carries a base64-encoded image for a repository or
// organization avatar.
type UpdateAvatarRequest struct {
	Image string `json:"image"`
}

// CreatePullRequestRequest is the body for opening a pull request. Head,
// Base, and Title are required.
type CreatePullRequestRequest struct {
	Head      string   `json:"head"`
	Base      string   `json:"base"`
	Title     string   `json:"title"`
	Assignees []string `json:"assignees,omitempty"`
	Body      *string  `json:"body,omitempty"`
	DueDate   *string  `json:"due_date,omitempty"`
	Labels    []int64  `json:"labels,omitempty"`
	Milestone *int64   `json:"milestone,omitempty"`
}

// EditPullRequestRequest is the body for editing a pull request.
type EditPullRequestRequest struct {
	AllowMaintainerEdit *bool     `json:"allow_maintainer_edit,omitempty"`
	Assignees           []string  `json:"assignees,omitempty"`
	Base                *string   `json:"base,omitempty"`
	Body                *string   `json:"body,omitempty"`
	DueDate             *string   `json:"due_date,omitempty"`
	Labels              []int64   `json:"labels,omitempty"`
	Milestone           *int64    `json:"milestone,omitempty"`
	State               StateType `json:"state,omitempty"`
	Title               *string   `json:"title,omitempty"`
	UnsetDueDate        *bool     `json:"unset_due_date,omitempty"`
}

// ListPullRequestsOptions filters pull request listings for a repository.
type ListPullRequestsOptions struct {
	State     StateFilter `param:"state"`
	Sort      Sort        `param:"sort"`
	Milestone int64       `param:"milestone"`
	Labels    []int64     `param:"labels"`
	ListOptions
}

// CreateOrgRequest is the body for creating an organization. Name is
// required; the API field is historically called username.
type CreateOrgRequest struct {
	Name                      string     `json:"username"`
	Description               *string    `json:"description,omitempty"`
	Email                     *string    `json:"email,omitempty"`
	FullName                  *string    `json:"full_name,omitempty"`
	Location                  *string    `json:"location,omitempty"`
	RepoAdminChangeTeamAccess *bool      `json:"repo_admin_change_team_access,omitempty"`
	Visibility                Visibility `json:"visibility,omitempty"`
	Website                   *string    `json:"website,omitempty"`
}

// EditOrgRequest is the body for editing an organization.
type EditOrgRequest struct {
	Description               *string    `json:"description,omitempty"`
	Email                     *string    `json:"email,omitempty"`
	FullName                  *string    `json:"full_name,omitempty"`
	Location                  *string    `json:"location,omitempty"`
	RepoAdminChangeTeamAccess *bool      `json:"repo_admin_change_team_access,omitempty"`
	Visibility                Visibility `json:"visibility,omitempty"`
	Website                   *string    `json:"website,omitempty"`
}

// CreateRepoRequest is the body for creating a repository under the
// authenticated user or an organization. Name is required.
type CreateRepoRequest struct {
	Name             string           `json:"name"`
	AutoInit         *bool            `json:"auto_init,omitempty"`
	DefaultBranch    *string          `json:"default_branch,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Gitignores       *string          `json:"gitignores,omitempty"`
	IssueLabels      *string          `json:"issue_labels,omitempty"`
	License          *string          `json:"license,omitempty"`
	ObjectFormatName ObjectFormatName `json:"object_format_name,omitempty"`
	Private          *bool            `json:"private,omitempty"`
	Readme           *string          `json:"readme,omitempty"`
	Template         *bool            `json:"template,omitempty"`
	TrustModel       TrustModel       `json:"trust_model,omitempty"`
}

// CreateTeamRequest is the body for creating a team in an organization.
// Name is required.
type CreateTeamRequest struct {
	Name                    string            `json:"name"`
	Description             *string           `json:"description,omitempty"`
	Permission              Permission        `json:"permission,omitempty"`
	Units                   []string          `json:"units,omitempty"`
	UnitsMap                map[string]string `json:"units_map,omitempty"`
	IncludesAllRepositories *bool             `json:"includes_all_repositories,omitempty"`
	CanCreateOrgRepo        *bool             `json:"can_create_org_repo,omitempty"`
}

// EditTeamRequest is the body for editing a team. Name is required by the
// API even when unchanged.
type EditTeamRequest struct {
	Name                    string            `json:"name"`
	Description             *string           `json:"description,omitempty"`
	Permission              Permission        `json:"permission,omitempty"`
	Units                   []string          `json:"units,omitempty"`
	UnitsMap                map[string]string `json:"units_map,omitempty"`
	IncludesAllRepositories *bool             `json:"includes_all_repositories,omitempty"`
	CanCreateOrgRepo        *bool             `json:"can_create_org_repo,omitempty"`
}

// CreateAccessTokenRequest is the body for creating an API access token.
type CreateAccessTokenRequest struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes,omitempty"`
}

// UpdateSettingsRequest is the body for updating the authenticated user's
// settings. Every field is optional.
type UpdateSettingsRequest struct {
	Description         *string `json:"description,omitempty"`
	DiffViewStyle       *string `json:"diff_view_style,omitempty"`
	EnableRepoUnitHints *bool   `json:"enable_repo_unit_hints,omitempty"`
	FullName            *string `json:"full_name,omitempty"`
	HideActivity        *bool   `json:"hide_activity,omitempty"`
	HideEmail           *bool   `json:"hide_email,omitempty"`
	Language            *string `json:"language,omitempty"`
	Location            *string `json:"location,omitempty"`
	Pronouns            *string `json:"pronouns,omitempty"`
	Theme               *string `json:"theme,omitempty"`
	Website             *string `json:"website,omitempty"`
}

// CreateUserRequest is the body for creating a user via the admin API.
// Email, Username, and Password are required.
type CreateUserRequest struct {
	Email              string     `json:"email"`
	Username           string     `json:"username"`
	Password           string     `json:"password"`
	CreatedAt          *string    `json:"created_at,omitempty"`
	FullName           *string    `json:"full_name,omitempty"`
	LoginName          *string    `json:"login_name,omitempty"`
	MustChangePassword *bool      `json:"must_change_password,omitempty"`
	Restricted         *bool      `json:"restricted,omitempty"`
	SendNotify         *bool      `json:"send_notify,omitempty"`
	SourceID           *int64     `json:"source_id,omitempty"`
	Visibility         Visibility `json:"visibility,omitempty"`
}

// UpdateUserRequest is the body for updating a user via the admin API.
// LoginName and SourceID identify the authentication source and are
// required by the API.
type UpdateUserRequest struct {
	LoginName               string     `json:"login_name"`
	SourceID                int64      `json:"source_id"`
	Admin                   *bool      `json:"admin,omitempty"`
	AllowCreateOrganization *bool      `json:"allow_create_organization,omitempty"`
	AllowGitHook            *bool      `json:"allow_git_hook,omitempty"`
	AllowImportLocal        *bool      `json:"allow_import_local,omitempty"`
	Description             *string    `json:"description,omitempty"`
	Email                   *string    `json:"email,omitempty"`
	FullName                *string    `json:"full_name,omitempty"`
	Location                *string    `json:"location,omitempty"`
	MaxRepoCreation         *int64     `json:"max_repo_creation,omitempty"`
	MustChangePassword      *bool      `json:"must_change_password,omitempty"`
	Password                *string    `json:"password,omitempty"`
	ProhibitLogin           *bool      `json:"prohibit_login,omitempty"`
	Restricted              *bool      `json:"restricted,omitempty"`
	Visibility              Visibility `json:"visibility,omitempty"`
	Website                 *string    `json:"website,omitempty"`
}

// SearchRepositoriesOptions are the query parameters for repository search.
type SearchRepositoriesOptions struct {
	Query           string `param:"q"`
	Topic           *bool  `param:"topic"`
	IncludeDesc     *bool  `param:"include_desc"`
	UID             int64  `param:"uid"`
	PriorityOwnerID int64  `param:"priority_owner_id"`
	TeamID          int64  `param:"team_id"`
	StarredBy       int64  `param:"starredBy"`
	Private         *bool  `param:"private"`
	IsPrivate       *bool  `param:"is_private"`
	Template        *bool  `param:"template"`
	Archived        *bool  `param:"archived"`
	Mode            string `param:"mode"`
	Exclusive       *bool  `param:"exclusive"`
	Sort            string `param:"sort"`
	Order           string `param:"order"`
	ListOptions
}

// SearchUsersOptions are the query parameters for user search.
type SearchUsersOptions struct {
	Query string `param:"q"`
	UID   int64  `param:"uid"`
	ListOptions
}

// SearchIssuesOptions are the query parameters for cross-repository issue
// search.
type SearchIssuesOptions struct {
	State           StateFilter `param:"state"`
	Labels          []string    `param:"labels"`
	Milestones      []string    `param:"milestones"`
	Query           string      `param:"q"`
	PriorityRepoID  int64       `param:"priority_repo_id"`
	Type            IssueType   `param:"type"`
	Since           string      `param:"since"`
	Before          string      `param:"before"`
	Assigned        *bool       `param:"assigned"`
	Created         *bool       `param:"created"`
	Mentioned       *bool       `param:"mentioned"`
	ReviewRequested *bool       `param:"review_requested"`
	Reviewed        *bool       `param:"reviewed"`
	Owner           string      `param:"owner"`
	Team            string      `param:"team"`
	ListOptions
}
