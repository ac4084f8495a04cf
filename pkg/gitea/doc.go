// Package gitea defines the public API surface of the Gitea client
// library: the Client interface with its per-resource clients, the request
// and option structs for every operation, the domain models decoded from
// responses, and the structured Error type.
//
// Construct a client with the giteaclient package:
//
//	client, err := giteaclient.New(ctx, &gitea.Config{
//		Endpoint: "https://gitea.example.com",
//		Token:    os.Getenv("GITEA_TOKEN"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	repo, err := client.Repositories().Get(ctx, "acme", "widgets")
//
// Optional fields on request structs are pointers so an unset field is
// omitted from the request entirely; use the String, Bool, Int, and Int64
// helpers to set them inline.
package gitea
