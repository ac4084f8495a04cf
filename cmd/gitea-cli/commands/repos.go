package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrRepoPathFormat is returned for repository arguments that are not
// "owner/name".
var ErrRepoPathFormat = errors.New("repository must be given as OWNER/NAME")

// splitRepoPath splits an "owner/name" argument.
func splitRepoPath(path string) (string, string, error) {
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("'%s': %w", path, ErrRepoPathFormat)
	}

	return parts[0], parts[1], nil
}

// NewReposCommand creates the repositories command group.
func NewReposCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repos",
		Aliases: []string{"repo", "repositories"},
		Short:   "Manage repositories",
		Long:    "List, create, search, and delete repositories",
	}

	cmd.AddCommand(newReposListCommand())
	cmd.AddCommand(newReposGetCommand())
	cmd.AddCommand(newReposCreateCommand())
	cmd.AddCommand(newReposDeleteCommand())
	cmd.AddCommand(newReposForkCommand())
	cmd.AddCommand(newReposSearchCommand())
	cmd.AddCommand(newReposBranchesCommand())

	return cmd
}

func newReposListCommand() *cobra.Command {
	var (
		org     string
		user    string
		starred bool
		page    int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories",
		Long:  "List repositories of the authenticated user, another user, or an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := &gitea.ListOptions{Page: page, Limit: limit}

			var repos []gitea.Repository

			switch {
			case org != "":
				repos, err = client.Organizations().ListRepositories(ctx, org, opts)
			case starred && user != "":
				repos, err = client.Users().ListUserStarred(ctx, user, opts)
			case starred:
				repos, err = client.Users().ListStarred(ctx, opts)
			case user != "":
				repos, err = client.Users().ListUserRepositories(ctx, user, opts)
			default:
				repos, err = client.Users().ListRepositories(ctx, opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list repositories: %w", err)
			}

			return outputRepositories(repos)
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "list repositories of an organization")
	cmd.Flags().StringVar(&user, "user", "", "list repositories of another user")
	cmd.Flags().BoolVar(&starred, "starred", false, "list starred repositories instead")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func newReposGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OWNER/NAME",
		Short: "Show a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			repo, err := client.Repositories().Get(context.Background(), owner, name)
			if err != nil {
				return fmt.Errorf("failed to get repository: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(repo)
			case OutputFormatYAML:
				return StandardYAMLRenderer(repo)
			default:
				return renderRepositoryDetail(repo)
			}
		},
	}
}

func newReposCreateCommand() *cobra.Command {
	var (
		org         string
		description string
		private     bool
		autoInit    bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a repository",
		Long:  "Create a repository under the authenticated user or an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			request := &gitea.CreateRepoRequest{Name: args[0]}
			if description != "" {
				request.Description = gitea.String(description)
			}

			if private {
				request.Private = gitea.Bool(true)
			}

			if autoInit {
				request.AutoInit = gitea.Bool(true)
			}

			ctx := context.Background()

			var repo *gitea.Repository
			if org != "" {
				repo, err = client.Organizations().CreateRepository(ctx, org, request)
			} else {
				repo, err = client.Users().CreateRepository(ctx, request)
			}

			if err != nil {
				return fmt.Errorf("failed to create repository: %w", err)
			}

			fmt.Printf("Created repository %s\n", repo.FullName)

			return nil
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "create under an organization")
	cmd.Flags().StringVar(&description, "description", "", "repository description")
	cmd.Flags().BoolVar(&private, "private", false, "make the repository private")
	cmd.Flags().BoolVar(&autoInit, "init", false, "initialize with an initial commit")

	return cmd
}

func newReposDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete OWNER/NAME",
		Short: "Delete a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			err = client.Repositories().Delete(context.Background(), owner, name)
			if err != nil {
				return fmt.Errorf("failed to delete repository: %w", err)
			}

			fmt.Printf("Deleted repository %s/%s\n", owner, name)

			return nil
		},
	}
}

func newReposForkCommand() *cobra.Command {
	var (
		org     string
		newName string
	)

	cmd := &cobra.Command{
		Use:   "fork OWNER/NAME",
		Short: "Fork a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			request := &gitea.ForkRepoRequest{}
			if org != "" {
				request.Organization = gitea.String(org)
			}

			if newName != "" {
				request.Name = gitea.String(newName)
			}

			fork, err := client.Repositories().Fork(context.Background(), owner, name, request)
			if err != nil {
				return fmt.Errorf("failed to fork repository: %w", err)
			}

			fmt.Printf("Forked %s/%s to %s\n", owner, name, fork.FullName)

			return nil
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "fork into an organization")
	cmd.Flags().StringVar(&newName, "name", "", "name for the fork")

	return cmd
}

func newReposSearchCommand() *cobra.Command {
	var (
		private bool
		page    int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search repositories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			opts := &gitea.SearchRepositoriesOptions{
				Query:       args[0],
				ListOptions: gitea.ListOptions{Page: page, Limit: limit},
			}
			if private {
				opts.Private = gitea.Bool(true)
			}

			repos, err := client.Search().Repositories(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to search repositories: %w", err)
			}

			return outputRepositories(repos)
		},
	}

	cmd.Flags().BoolVar(&private, "private", false, "include only private repositories")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func newReposBranchesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "branches OWNER/NAME",
		Short: "List branches of a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			branches, err := client.Repositories().ListBranches(context.Background(), owner, name, nil)
			if err != nil {
				return fmt.Errorf("failed to list branches: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(branches)
			case OutputFormatYAML:
				return StandardYAMLRenderer(branches)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Commit", "Protected")

				for _, branch := range branches {
					sha := branch.Commit.ID
					if len(sha) > 10 {
						sha = sha[:10]
					}

					_ = table.Append(branch.Name, sha, boolLabel(branch.Protected))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func outputRepositories(repos []gitea.Repository) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(repos)
	case OutputFormatYAML:
		return StandardYAMLRenderer(repos)
	default:
		return renderRepositoryTable(repos)
	}
}

func renderRepositoryTable(repos []gitea.Repository) error {
	if len(repos) == 0 {
		fmt.Println("No repositories found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Private", "Stars", "Forks", "Description")

	for _, repo := range repos {
		_ = table.Append(repo.FullName, boolLabel(repo.Private),
			strconv.FormatInt(repo.StarsCount, 10),
			strconv.FormatInt(repo.ForksCount, 10),
			repo.Description)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderRepositoryDetail(repo *gitea.Repository) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("Name", repo.FullName)
	_ = table.Append("Description", repo.Description)
	_ = table.Append("Private", boolLabel(repo.Private))
	_ = table.Append("Fork", boolLabel(repo.Fork))
	_ = table.Append("Default Branch", repo.DefaultBranch)
	_ = table.Append("Stars", strconv.FormatInt(repo.StarsCount, 10))
	_ = table.Append("Forks", strconv.FormatInt(repo.ForksCount, 10))
	_ = table.Append("Open Issues", strconv.FormatInt(repo.OpenIssuesCount, 10))
	_ = table.Append("Clone URL", repo.CloneURL)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
