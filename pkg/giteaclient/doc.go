// Package giteaclient provides the primary entry point for constructing a
// Gitea API client that implements the gitea.Client interface.
//
// It layers endpoint normalization, the HTTP transport, and the fixed
// Authorization header on top of the resource interfaces and types defined
// in the gitea package. Most applications should import giteaclient to
// build a client, then use the returned gitea.Client to access
// resource-specific clients, for example Repositories(), Issues(),
// Organizations().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/steeped-dev/gitea-client/pkg/gitea"
//	  "github.com/steeped-dev/gitea-client/pkg/giteaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an endpoint (no auth, public data only).
//	  cli, err := giteaclient.New(ctx, &gitea.Config{Endpoint: "https://gitea.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token:
//	  cli, err = giteaclient.New(ctx, &gitea.Config{
//	    Endpoint: "https://gitea.example.com",
//	    Token:    "f9d5c9a0...",
//	  })
//
//	  // Or with basic credentials:
//	  cli, err = giteaclient.New(ctx, &gitea.Config{
//	    Endpoint: "https://gitea.example.com",
//	    Username: "user",
//	    Password: "pass",
//	  })
//
//	  repo, err := cli.Repositories().Get(ctx, "acme", "widgets")
//	  _ = repo
//	}
//
// Credentials are baked into a single Authorization header when the client
// is built; supplying both a token and basic credentials is rejected with
// gitea.ErrAmbiguousCredentials.
package giteaclient
