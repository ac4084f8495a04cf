package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewPullsCommand creates the pull requests command group.
func NewPullsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pulls",
		Aliases: []string{"pull", "pr"},
		Short:   "Manage pull requests",
		Long:    "List, create, and inspect pull requests",
	}

	cmd.AddCommand(newPullsListCommand())
	cmd.AddCommand(newPullsGetCommand())
	cmd.AddCommand(newPullsCreateCommand())
	cmd.AddCommand(newPullsCloseCommand())
	cmd.AddCommand(newPullsReviewsCommand())

	return cmd
}

func newPullsListCommand() *cobra.Command {
	var (
		state  string
		pinned bool
		page   int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list OWNER/NAME",
		Short: "List pull requests in a repository",
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

			ctx := context.Background()

			var pulls []gitea.PullRequest
			if pinned {
				pulls, err = client.PullRequests().ListPinned(ctx, owner, name)
			} else {
				opts := &gitea.ListPullRequestsOptions{
					State:       gitea.StateFilter(state),
					ListOptions: gitea.ListOptions{Page: page, Limit: limit},
				}
				pulls, err = client.PullRequests().List(ctx, owner, name, opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list pull requests: %w", err)
			}

			return outputPullRequests(pulls)
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "filter by state (open, closed, all)")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "list only pinned pull requests")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func newPullsGetCommand() *cobra.Command {
	var (
		base string
		head string
	)

	cmd := &cobra.Command{
		Use:   "get OWNER/NAME [INDEX]",
		Short: "Show a pull request",
		Long:  "Show a pull request by index, or by --base and --head branches",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			var pull *gitea.PullRequest
			if len(args) == 2 {
				index, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid pull request index '%s': %w", args[1], err)
				}

				pull, err = client.PullRequests().Get(ctx, owner, name, index)
				if err != nil {
					return fmt.Errorf("failed to get pull request: %w", err)
				}
			} else {
				if base == "" || head == "" {
					return ErrPullSelectorRequired
				}

				pull, err = client.PullRequests().GetByBranches(ctx, owner, name, base, head)
				if err != nil {
					return fmt.Errorf("failed to get pull request: %w", err)
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(pull)
			case OutputFormatYAML:
				return StandardYAMLRenderer(pull)
			default:
				return renderPullRequestDetail(pull)
			}
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base branch")
	cmd.Flags().StringVar(&head, "head", "", "head branch")

	return cmd
}

func newPullsCreateCommand() *cobra.Command {
	var (
		title string
		body  string
		base  string
		head  string
	)

	cmd := &cobra.Command{
		Use:   "create OWNER/NAME",
		Short: "Create a pull request",
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

			request := &gitea.CreatePullRequestRequest{
				Title: title,
				Base:  base,
				Head:  head,
			}
			if body != "" {
				request.Body = gitea.String(body)
			}

			pull, err := client.PullRequests().Create(context.Background(), owner, name, request)
			if err != nil {
				return fmt.Errorf("failed to create pull request: %w", err)
			}

			fmt.Printf("Created pull request #%d: %s\n", pull.Number, pull.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "pull request title")
	cmd.Flags().StringVar(&body, "body", "", "pull request body")
	cmd.Flags().StringVar(&base, "base", "", "base branch")
	cmd.Flags().StringVar(&head, "head", "", "head branch")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("head")

	return cmd
}

func newPullsCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close OWNER/NAME INDEX",
		Short: "Close a pull request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			index, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pull request index '%s': %w", args[1], err)
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			request := &gitea.EditPullRequestRequest{State: gitea.StateClosed}

			pull, err := client.PullRequests().Edit(context.Background(), owner, name, index, request)
			if err != nil {
				return fmt.Errorf("failed to close pull request: %w", err)
			}

			fmt.Printf("Closed pull request #%d\n", pull.Number)

			return nil
		},
	}
}

func newPullsReviewsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews OWNER/NAME INDEX",
		Short: "List reviews on a pull request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			index, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pull request index '%s': %w", args[1], err)
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			reviews, err := client.PullRequests().ListReviews(context.Background(), owner, name, index)
			if err != nil {
				return fmt.Errorf("failed to list reviews: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(reviews)
			case OutputFormatYAML:
				return StandardYAMLRenderer(reviews)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Reviewer", "State", "Submitted")

				for _, review := range reviews {
					reviewer := NotAvailable
					if review.User != nil {
						reviewer = review.User.Login
					}

					_ = table.Append(strconv.FormatInt(review.ID, 10), reviewer,
						string(review.State), review.SubmittedAt)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func outputPullRequests(pulls []gitea.PullRequest) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(pulls)
	case OutputFormatYAML:
		return StandardYAMLRenderer(pulls)
	default:
		return renderPullRequestTable(pulls)
	}
}

func renderPullRequestTable(pulls []gitea.PullRequest) error {
	if len(pulls) == 0 {
		fmt.Println("No pull requests found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Number", "State", "Title", "Author", "Base", "Head")

	for _, pull := range pulls {
		_ = table.Append(strconv.FormatInt(pull.Number, 10), string(pull.State),
			pull.Title, pull.User.Login, pull.Base.Ref, pull.Head.Ref)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderPullRequestDetail(pull *gitea.PullRequest) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("Number", strconv.FormatInt(pull.Number, 10))
	_ = table.Append("Title", pull.Title)
	_ = table.Append("State", string(pull.State))
	_ = table.Append("Author", pull.User.Login)
	_ = table.Append("Base", pull.Base.Ref)
	_ = table.Append("Head", pull.Head.Ref)
	_ = table.Append("Mergeable", boolLabel(pull.Mergeable))
	_ = table.Append("Merged", boolLabel(pull.Merged))
	_ = table.Append("Comments", strconv.FormatInt(pull.Comments, 10))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
