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

func TestOrganizationsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/orgs", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		// The API names the org-name field "username".
		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "tools", body["username"])
		assert.Equal(t, "public", body["visibility"])
		assert.NotContains(t, body, "description")

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(gitea.Organization{ID: 4, Name: "tools", Visibility: gitea.VisibilityPublic})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	org, err := c.Organizations().Create(context.Background(), &gitea.CreateOrgRequest{
		Name:       "tools",
		Visibility: gitea.VisibilityPublic,
	})
	require.NoError(t, err)
	assert.Equal(t, "tools", org.Name)
}

func TestOrganizationsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/orgs/tools", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(gitea.Organization{ID: 4, Name: "tools"})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	org, err := c.Organizations().Get(context.Background(), "tools")
	require.NoError(t, err)
	assert.Equal(t, int64(4), org.ID)
}

func TestOrganizationsClient_IsMember(t *testing.T) {
	t.Parallel()

	t.Run("member", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/orgs/tools/members/alice", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		isMember, err := c.Organizations().IsMember(context.Background(), "tools", "alice")
		require.NoError(t, err)
		assert.True(t, isMember)
	})

	t.Run("not a member", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		isMember, err := c.Organizations().IsMember(context.Background(), "tools", "mallory")
		require.NoError(t, err)
		assert.False(t, isMember)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		_, err = c.Organizations().IsMember(context.Background(), "tools", "alice")
		require.Error(t, err)

		apiErr := gitea.AsError(err)
		require.NotNil(t, apiErr)
		assert.Equal(t, 500, apiErr.StatusCode)
	})
}

func TestOrganizationsClient_IsPublicMember(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/orgs/tools/public_members/bob", request.URL.Path)
		writer.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	isPublic, err := c.Organizations().IsPublicMember(context.Background(), "tools", "bob")
	require.NoError(t, err)
	assert.False(t, isPublic)
}

func TestOrganizationsClient_Membership(t *testing.T) {
	t.Parallel()

	t.Run("publicize", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/orgs/tools/public_members/alice", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		err = c.Organizations().PublicizeMembership(context.Background(), "tools", "alice")
		require.NoError(t, err)
	})

	t.Run("conceal", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/orgs/tools/public_members/alice", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		err = c.Organizations().ConcealMembership(context.Background(), "tools", "alice")
		require.NoError(t, err)
	})

	t.Run("remove member", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/orgs/tools/members/mallory", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		err = c.Organizations().RemoveMember(context.Background(), "tools", "mallory")
		require.NoError(t, err)
	})
}

func TestOrganizationsClient_CreateRepository(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/orgs/tools/repos", request.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "gadgets", body["name"])
		assert.Equal(t, true, body["private"])
		assert.NotContains(t, body, "auto_init")

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(gitea.Repository{Name: "gadgets", Private: true})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	repo, err := c.Organizations().CreateRepository(context.Background(), "tools", &gitea.CreateRepoRequest{
		Name:    "gadgets",
		Private: gitea.Bool(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "gadgets", repo.Name)
}

func TestOrganizationsClient_Teams(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/orgs/tools/teams", request.URL.Path)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "reviewers", body["name"])
			assert.Equal(t, "read", body["permission"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(gitea.Team{ID: 12, Name: "reviewers", Permission: gitea.PermissionRead})
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		team, err := c.Organizations().CreateTeam(context.Background(), "tools", &gitea.CreateTeamRequest{
			Name:       "reviewers",
			Permission: gitea.PermissionRead,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12), team.ID)
	})

	t.Run("edit", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/teams/12", request.URL.Path)
			assert.Equal(t, "PATCH", request.Method)

			_ = json.NewEncoder(writer).Encode(gitea.Team{ID: 12, Name: "maintainers"})
		}))
		defer server.Close()

		c, err := New(&gitea.Config{Endpoint: server.URL})
		require.NoError(t, err)

		team, err := c.Organizations().EditTeam(context.Background(), 12, &gitea.EditTeamRequest{
			Name: "maintainers",
		})
		require.NoError(t, err)
		assert.Equal(t, "maintainers", team.Name)
	})
}

func TestOrganizationsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/orgs", request.URL.Path)
		assert.Equal(t, "1", request.URL.Query().Get("page"))

		_ = json.NewEncoder(writer).Encode([]gitea.Organization{{Name: "tools"}, {Name: "infra"}})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	orgs, err := c.Organizations().List(context.Background(), &gitea.ListOptions{Page: 1})
	require.NoError(t, err)
	assert.Len(t, orgs, 2)
}
