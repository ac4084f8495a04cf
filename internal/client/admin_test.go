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

func TestAdminClient_CreateUser(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/admin/users", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "carol@example.com", body["email"])
		assert.Equal(t, "carol", body["username"])
		assert.Equal(t, false, body["must_change_password"])
		assert.NotContains(t, body, "full_name")

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(gitea.User{ID: 3, Login: "carol", Email: "carol@example.com"})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	user, err := c.Admin().CreateUser(context.Background(), &gitea.CreateUserRequest{
		Email:              "carol@example.com",
		Username:           "carol",
		Password:           "s3cret!pass",
		MustChangePassword: gitea.Bool(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Login)
}

func TestAdminClient_UpdateUser(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/admin/users/carol", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "carol", body["login_name"])
		assert.Equal(t, float64(0), body["source_id"])
		assert.Equal(t, true, body["admin"])

		_ = json.NewEncoder(writer).Encode(gitea.User{ID: 3, Login: "carol", IsAdmin: true})
	}))
	defer server.Close()

	c, err := New(&gitea.Config{Endpoint: server.URL})
	require.NoError(t, err)

	user, err := c.Admin().UpdateUser(context.Background(), "carol", &gitea.UpdateUserRequest{
		LoginName: "carol",
		SourceID:  0,
		Admin:     gitea.Bool(true),
	})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}
