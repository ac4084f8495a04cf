package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/steeped-dev/gitea-client/internal/client"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuesClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/repos/acme/widgets/issues", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		// Unset optional fields must not appear in the body at all.
		body, _ := io.ReadAll(request.Body)
		assert.JSONEq(t, `{"title":"bug"}`, string(body))

		issue := gitea.Issue{ID: 9, Number: 1, Title: "bug", State: gitea.StateOpen}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(issue)
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	issue, err := c.Issues().Create(context.Background(), "acme", "widgets", &gitea.CreateIssueRequest{
		Title: "bug",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), issue.Number)
	assert.Equal(t, "bug", issue.Title)
	assert.Equal(t, gitea.StateOpen, issue.State)
}

func TestIssuesClient_CreateWithOptionalFields(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "bug", body["title"])
		assert.Equal(t, "it broke", body["body"])
		assert.Equal(t, []interface{}{float64(3), float64(7)}, body["labels"])
		assert.NotContains(t, body, "milestone")
		assert.NotContains(t, body, "due_date")

		_ = json.NewEncoder(writer).Encode(gitea.Issue{Number: 2, Title: "bug"})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = c.Issues().Create(context.Background(), "acme", "widgets", &gitea.CreateIssueRequest{
		Title:  "bug",
		Body:   gitea.String("it broke"),
		Labels: []int64{3, 7},
	})
	require.NoError(t, err)
}

func TestIssuesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/repos/acme/widgets/issues/42", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_ = json.NewEncoder(writer).Encode(gitea.Issue{ID: 5, Number: 42, Title: "crash on start"})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	issue, err := c.Issues().Get(context.Background(), "acme", "widgets", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), issue.Number)
	assert.Equal(t, "crash on start", issue.Title)
}

func TestIssuesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/repos/acme/widgets/issues", request.URL.Path)

		query := request.URL.Query()
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "10", query.Get("limit"))
		assert.Empty(t, query.Get("state"))
		assert.Empty(t, query.Get("q"))

		_ = json.NewEncoder(writer).Encode([]gitea.Issue{{Number: 11}, {Number: 12}})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	issues, err := c.Issues().List(context.Background(), "acme", "widgets", &gitea.ListIssuesOptions{
		ListOptions: gitea.ListOptions{Page: 2, Limit: 10},
	})
	require.NoError(t, err)
	assert.Len(t, issues, 2)
	assert.Equal(t, int64(11), issues[0].Number)
}

func TestIssuesClient_ListRenamedParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		assert.Equal(t, "panic", query.Get("q"))
		assert.Equal(t, "issues", query.Get("type"))
		assert.Equal(t, "bug,regression", query.Get("labels"))
		assert.Equal(t, "open", query.Get("state"))

		_ = json.NewEncoder(writer).Encode([]gitea.Issue{})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = c.Issues().List(context.Background(), "acme", "widgets", &gitea.ListIssuesOptions{
		State:  gitea.StateFilterOpen,
		Query:  "panic",
		Type:   gitea.IssueTypeIssues,
		Labels: []string{"bug", "regression"},
	})
	require.NoError(t, err)
}

func TestIssuesClient_Edit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "closed", body["state"])
		assert.NotContains(t, body, "title")
		assert.NotContains(t, body, "body")

		_ = json.NewEncoder(writer).Encode(gitea.Issue{Number: 42, State: gitea.StateClosed})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	issue, err := c.Issues().Edit(context.Background(), "acme", "widgets", 42, &gitea.EditIssueRequest{
		State: gitea.String("closed"),
	})
	require.NoError(t, err)
	assert.Equal(t, gitea.StateClosed, issue.State)
}

func TestIssuesClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/repos/acme/widgets/issues/42", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	err = c.Issues().Delete(context.Background(), "acme", "widgets", 42)
	require.NoError(t, err)
}

func TestIssuesClient_CreateComment(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/repos/acme/widgets/issues/42/comments", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "same here", body["body"])

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(gitea.Comment{ID: 77, Body: "same here"})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	comment, err := c.Issues().CreateComment(context.Background(), "acme", "widgets", 42, &gitea.CreateCommentRequest{
		Body: "same here",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), comment.ID)
}

func TestIssuesClient_EditCommentNoContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/repos/acme/widgets/issues/comments/77", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	comment, err := c.Issues().EditComment(context.Background(), "acme", "widgets", 77, &gitea.EditCommentRequest{
		Body: "same here, still",
	})
	require.NoError(t, err)
	assert.Nil(t, comment)
}

func TestIssuesClient_EditCommentWithBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_ = json.NewEncoder(writer).Encode(gitea.Comment{ID: 77, Body: "edited"})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	comment, err := c.Issues().EditComment(context.Background(), "acme", "widgets", 77, &gitea.EditCommentRequest{
		Body: "edited",
	})
	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, "edited", comment.Body)
}

func TestIssuesClient_ListComments(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/repos/acme/widgets/issues/42/comments", request.URL.Path)
		assert.Equal(t, "2024-01-01T00:00:00Z", request.URL.Query().Get("since"))

		_ = json.NewEncoder(writer).Encode([]gitea.Comment{{ID: 1}, {ID: 2}})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	comments, err := c.Issues().ListComments(context.Background(), "acme", "widgets", 42, &gitea.ListCommentsOptions{
		Since: "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestIssuesClient_GetNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"message":"issue does not exist"}`))
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = c.Issues().Get(context.Background(), "acme", "widgets", 404)
	require.Error(t, err)
	assert.True(t, gitea.IsNotFound(err))

	apiErr := gitea.AsError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, gitea.ErrorKindHTTP, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "issue does not exist")
}

func TestIssuesClient_MalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"number": "not-a-number"`))
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = c.Issues().Get(context.Background(), "acme", "widgets", 1)
	require.Error(t, err)

	apiErr := gitea.AsError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, gitea.ErrorKindSerialization, apiErr.Kind)
}
