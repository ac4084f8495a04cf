package gitea_test

import (
	"testing"

	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/stretchr/testify/assert"
)

func TestValues_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, gitea.Values(nil))
	assert.Empty(t, gitea.Values((*gitea.ListOptions)(nil)))
	assert.Empty(t, gitea.Values(&gitea.ListOptions{}))
}

func TestValues_Pagination(t *testing.T) {
	t.Parallel()

	values := gitea.Values(&gitea.ListOptions{Page: 2, Limit: 10})
	assert.Equal(t, "page=2&limit=10", "page="+values.Get("page")+"&limit="+values.Get("limit"))
	assert.Len(t, values, 2)
}

func TestValues_OmitsUnsetFields(t *testing.T) {
	t.Parallel()

	values := gitea.Values(&gitea.ListIssuesOptions{Query: "panic"})

	assert.Equal(t, "panic", values.Get("q"))
	assert.Len(t, values, 1)
	assert.NotContains(t, values, "state")
	assert.NotContains(t, values, "labels")
	assert.NotContains(t, values, "page")
}

func TestValues_RenamedKeys(t *testing.T) {
	t.Parallel()

	values := gitea.Values(&gitea.ListIssuesOptions{
		Query: "crash",
		Type:  gitea.IssueTypePulls,
	})

	assert.Equal(t, "crash", values.Get("q"))
	assert.Equal(t, "pulls", values.Get("type"))
	assert.NotContains(t, values, "query")
	assert.NotContains(t, values, "issue_type")
}

func TestValues_StarredByCamelCase(t *testing.T) {
	t.Parallel()

	values := gitea.Values(&gitea.SearchRepositoriesOptions{StarredBy: 7})

	assert.Equal(t, "7", values.Get("starredBy"))
}

func TestValues_SlicesCommaJoined(t *testing.T) {
	t.Parallel()

	values := gitea.Values(&gitea.ListIssuesOptions{
		Labels: []string{"bug", "ui"},
	})

	// One key with a joined value, not repeated keys.
	assert.Equal(t, []string{"bug,ui"}, values["labels"])

	values = gitea.Values(&gitea.ListPullRequestsOptions{Labels: []int64{3, 9}})
	assert.Equal(t, []string{"3,9"}, values["labels"])
}

func TestValues_BoolPointers(t *testing.T) {
	t.Parallel()

	values := gitea.Values(&gitea.SearchRepositoriesOptions{
		Topic:    gitea.Bool(false),
		Archived: gitea.Bool(true),
	})

	// An explicit false is still serialized; only nil means unset.
	assert.Equal(t, "false", values.Get("topic"))
	assert.Equal(t, "true", values.Get("archived"))
	assert.NotContains(t, values, "template")
}

func TestValues_EmbeddedListOptions(t *testing.T) {
	t.Parallel()

	values := gitea.Values(&gitea.SearchUsersOptions{
		Query:       "ali",
		ListOptions: gitea.ListOptions{Page: 3, Limit: 25},
	})

	assert.Equal(t, "ali", values.Get("q"))
	assert.Equal(t, "3", values.Get("page"))
	assert.Equal(t, "25", values.Get("limit"))
}

func TestPointerHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", *gitea.String("x"))
	assert.True(t, *gitea.Bool(true))
	assert.Equal(t, 5, *gitea.Int(5))
	assert.Equal(t, int64(9), *gitea.Int64(9))
}
