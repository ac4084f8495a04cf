package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReposCommand(t *testing.T) {
	cmd := NewReposCommand()
	assert.Equal(t, "repos", cmd.Use)
	assert.Equal(t, []string{"repo", "repositories"}, cmd.Aliases)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 7)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "delete")
	assert.Contains(t, commandNames, "fork")
	assert.Contains(t, commandNames, "search")
	assert.Contains(t, commandNames, "branches")
}

func TestReposCreateCommandFlags(t *testing.T) {
	cmd := newReposCreateCommand()
	assert.Equal(t, "create NAME", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("org"))
	assert.NotNil(t, cmd.Flags().Lookup("private"))
	assert.NotNil(t, cmd.Flags().Lookup("init"))
}

func TestSplitRepoPath(t *testing.T) {
	owner, name, err := splitRepoPath("acme/widgets")
	assert.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widgets", name)

	_, _, err = splitRepoPath("widgets")
	assert.ErrorIs(t, err, ErrRepoPathFormat)

	_, _, err = splitRepoPath("/widgets")
	assert.ErrorIs(t, err, ErrRepoPathFormat)

	_, _, err = splitRepoPath("acme/")
	assert.ErrorIs(t, err, ErrRepoPathFormat)
}
