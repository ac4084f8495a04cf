// Package giteaclient provides the main entry point for creating Gitea API clients
package giteaclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/steeped-dev/gitea-client/internal/client"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// New creates a new Gitea API client for the configured endpoint.
func New(ctx context.Context, config *gitea.Config) (gitea.Client, error) {
	if config == nil {
		return nil, gitea.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, gitea.ErrEndpointRequired
	}

	// Normalize endpoint
	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	// Use the internal client implementation
	giteaClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return giteaClient, nil
}
