package giteaclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/steeped-dev/gitea-client/pkg/giteaclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := giteaclient.New(context.Background(), nil)
		require.ErrorIs(t, err, gitea.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := giteaclient.New(context.Background(), &gitea.Config{})
		require.ErrorIs(t, err, gitea.ErrEndpointRequired)
	})

	t.Run("token and basic credentials together", func(t *testing.T) {
		t.Parallel()

		_, err := giteaclient.New(context.Background(), &gitea.Config{
			Endpoint: "https://gitea.example.com",
			Token:    "abc",
			Username: "user",
			Password: "pass",
		})
		require.ErrorIs(t, err, gitea.ErrAmbiguousCredentials)
	})

	t.Run("non-ascii token rejected", func(t *testing.T) {
		t.Parallel()

		_, err := giteaclient.New(context.Background(), &gitea.Config{
			Endpoint: "https://gitea.example.com",
			Token:    "café",
		})
		require.ErrorIs(t, err, gitea.ErrInvalidAuthHeader)
	})

	t.Run("endpoint without scheme gets https", func(t *testing.T) {
		t.Parallel()

		config := &gitea.Config{Endpoint: "gitea.example.com/"}

		_, err := giteaclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://gitea.example.com", config.Endpoint)
	})

	t.Run("token auth header on requests", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "token secret", request.Header.Get("Authorization"))
			assert.Equal(t, "/api/v1/user", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(gitea.User{ID: 1, Login: "octocat"})
		}))
		defer server.Close()

		client, err := giteaclient.New(context.Background(), &gitea.Config{
			Endpoint: server.URL,
			Token:    "secret",
		})
		require.NoError(t, err)

		user, err := client.Users().Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "octocat", user.Login)
	})

	t.Run("basic auth header on requests", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			username, password, ok := request.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "user", username)
			assert.Equal(t, "pass", password)
			_ = json.NewEncoder(writer).Encode(gitea.User{ID: 2, Login: "user"})
		}))
		defer server.Close()

		client, err := giteaclient.New(context.Background(), &gitea.Config{
			Endpoint: server.URL,
			Username: "user",
			Password: "pass",
		})
		require.NoError(t, err)

		user, err := client.Users().Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
	})
}
