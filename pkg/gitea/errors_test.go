package gitea_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := &gitea.Error{
		Kind:       gitea.ErrorKindHTTP,
		StatusCode: 404,
		Message:    `{"message":"repo does not exist"}`,
	}

	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "repo does not exist")
}

func TestAsError(t *testing.T) {
	t.Parallel()

	apiErr := &gitea.Error{Kind: gitea.ErrorKindHTTP, StatusCode: 403}
	wrapped := fmt.Errorf("getting repository: %w", apiErr)

	found := gitea.AsError(wrapped)
	require.NotNil(t, found)
	assert.Equal(t, 403, found.StatusCode)

	assert.Nil(t, gitea.AsError(errors.New("plain")))
	assert.Nil(t, gitea.AsError(nil))
}

func TestStatusPredicates(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("wrap: %w", &gitea.Error{Kind: gitea.ErrorKindHTTP, StatusCode: 404})
	unauthorized := &gitea.Error{Kind: gitea.ErrorKindHTTP, StatusCode: 401}
	forbidden := &gitea.Error{Kind: gitea.ErrorKindHTTP, StatusCode: 403}

	assert.True(t, gitea.IsNotFound(notFound))
	assert.False(t, gitea.IsNotFound(unauthorized))

	assert.True(t, gitea.IsUnauthorized(unauthorized))
	assert.True(t, gitea.IsForbidden(forbidden))
	assert.False(t, gitea.IsForbidden(unauthorized))
	assert.False(t, gitea.IsNotFound(errors.New("plain")))
}
