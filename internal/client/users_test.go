package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/steeped-dev/gitea-client/internal/client"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersClient_Current(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/user", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(gitea.User{ID: 1, Login: "alice", IsAdmin: true})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	user, err := c.Users().Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.True(t, user.IsAdmin)
}

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/users/bob", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(gitea.User{ID: 2, Login: "bob"})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	user, err := c.Users().Get(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
}

func TestUsersClient_CreateRepository(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/user/repos", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "notes", body["name"])
		assert.Equal(t, "sha256", body["object_format_name"])

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(gitea.Repository{Name: "notes"})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	repo, err := c.Users().CreateRepository(context.Background(), &gitea.CreateRepoRequest{
		Name:             "notes",
		ObjectFormatName: gitea.ObjectFormatSHA256,
	})
	require.NoError(t, err)
	assert.Equal(t, "notes", repo.Name)
}

func TestUsersClient_Settings(t *testing.T) {
	t.Parallel()

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/user/settings", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			_ = json.NewEncoder(writer).Encode(gitea.UserSettings{Theme: "arc-green", HideEmail: true})
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		settings, err := c.Users().GetSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "arc-green", settings.Theme)
		assert.True(t, settings.HideEmail)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PATCH", request.Method)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "they/them", body["pronouns"])
			assert.NotContains(t, body, "theme")
			assert.NotContains(t, body, "hide_email")

			_ = json.NewEncoder(writer).Encode(gitea.UserSettings{Pronouns: "they/them"})
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		settings, err := c.Users().UpdateSettings(context.Background(), &gitea.UpdateSettingsRequest{
			Pronouns: gitea.String("they/them"),
		})
		require.NoError(t, err)
		assert.Equal(t, "they/them", settings.Pronouns)
	})
}

func TestUsersClient_AccessTokens(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/users/alice/tokens", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "ci", body["name"])
			assert.Equal(t, []interface{}{"write:repository"}, body["scopes"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(gitea.AccessToken{ID: 8, Name: "ci", SHA1: "deadbeef"})
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		token, err := c.Users().CreateAccessToken(context.Background(), "alice", &gitea.CreateAccessTokenRequest{
			Name:   "ci",
			Scopes: []string{"write:repository"},
		})
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", token.SHA1)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/users/alice/tokens", request.URL.Path)

			_ = json.NewEncoder(writer).Encode([]gitea.AccessToken{{ID: 8, Name: "ci", TokenLastEight: "0badf00d"}})
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		tokens, err := c.Users().ListAccessTokens(context.Background(), "alice", nil)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, "0badf00d", tokens[0].TokenLastEight)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/users/alice/tokens/ci", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		err = c.Users().DeleteAccessToken(context.Background(), "alice", "ci")
		require.NoError(t, err)
	})
}

func TestUsersClient_Starring(t *testing.T) {
	t.Parallel()

	t.Run("star", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/user/starred/acme/widgets", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		err = c.Users().StarRepository(context.Background(), "acme", "widgets")
		require.NoError(t, err)
	})

	t.Run("is starred", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		starred, err := c.Users().IsStarred(context.Background(), "acme", "widgets")
		require.NoError(t, err)
		assert.True(t, starred)
	})

	t.Run("is not starred", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		starred, err := c.Users().IsStarred(context.Background(), "acme", "widgets")
		require.NoError(t, err)
		assert.False(t, starred)
	})

	t.Run("list starred for user", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/users/bob/starred", request.URL.Path)

			_ = json.NewEncoder(writer).Encode([]gitea.Repository{{FullName: "acme/widgets"}})
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		repos, err := c.Users().ListUserStarred(context.Background(), "bob", nil)
		require.NoError(t, err)
		require.Len(t, repos, 1)
		assert.Equal(t, "acme/widgets", repos[0].FullName)
	})
}

func TestUsersClient_ListOrganizations(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/users/bob/orgs", request.URL.Path)

		_ = json.NewEncoder(writer).Encode([]gitea.Organization{{Name: "tools"}})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	orgs, err := c.Users().ListUserOrganizations(context.Background(), "bob", nil)
	require.NoError(t, err)
	assert.Len(t, orgs, 1)
}
