package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewIssuesCommand creates the issues command group.
func NewIssuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issues",
		Aliases: []string{"issue"},
		Short:   "Manage issues",
		Long:    "List, create, comment on, and close issues",
	}

	cmd.AddCommand(newIssuesListCommand())
	cmd.AddCommand(newIssuesGetCommand())
	cmd.AddCommand(newIssuesCreateCommand())
	cmd.AddCommand(newIssuesCloseCommand())
	cmd.AddCommand(newIssuesCommentCommand())
	cmd.AddCommand(newIssuesSearchCommand())

	return cmd
}

func newIssuesListCommand() *cobra.Command {
	var (
		state  string
		labels []string
		query  string
		page   int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list OWNER/NAME",
		Short: "List issues in a repository",
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

			opts := &gitea.ListIssuesOptions{
				State:       gitea.StateFilter(state),
				Labels:      labels,
				Query:       query,
				Type:        gitea.IssueTypeIssues,
				ListOptions: gitea.ListOptions{Page: page, Limit: limit},
			}

			issues, err := client.Issues().List(context.Background(), owner, name, opts)
			if err != nil {
				return fmt.Errorf("failed to list issues: %w", err)
			}

			return outputIssues(issues)
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "filter by state (open, closed, all)")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "filter by label (repeatable)")
	cmd.Flags().StringVar(&query, "query", "", "search string")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func newIssuesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OWNER/NAME INDEX",
		Short: "Show an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			index, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid issue index '%s': %w", args[1], err)
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			issue, err := client.Issues().Get(ctx, owner, name, index)
			if err != nil {
				return fmt.Errorf("failed to get issue: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(issue)
			case OutputFormatYAML:
				return StandardYAMLRenderer(issue)
			default:
				fmt.Printf("#%d %s (%s)\n", issue.Number, issue.Title, issue.State)
				fmt.Printf("Opened by %s on %s\n", issue.User.Login, issue.CreatedAt)

				if body := derefOrEmpty(issue.Body); body != "" {
					fmt.Printf("\n%s\n", body)
				}

				comments, err := client.Issues().ListComments(ctx, owner, name, index, nil)
				if err != nil {
					return fmt.Errorf("failed to list comments: %w", err)
				}

				for _, comment := range comments {
					fmt.Printf("\n--- %s on %s:\n%s\n", comment.User.Login, comment.CreatedAt, comment.Body)
				}

				return nil
			}
		},
	}
}

func newIssuesCreateCommand() *cobra.Command {
	var (
		title string
		body  string
	)

	cmd := &cobra.Command{
		Use:   "create OWNER/NAME",
		Short: "Create an issue",
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

			request := &gitea.CreateIssueRequest{Title: title}
			if body != "" {
				request.Body = gitea.String(body)
			}

			issue, err := client.Issues().Create(context.Background(), owner, name, request)
			if err != nil {
				return fmt.Errorf("failed to create issue: %w", err)
			}

			fmt.Printf("Created issue #%d: %s\n", issue.Number, issue.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "issue title")
	cmd.Flags().StringVar(&body, "body", "", "issue body")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newIssuesCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close OWNER/NAME INDEX",
		Short: "Close an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			index, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid issue index '%s': %w", args[1], err)
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			request := &gitea.EditIssueRequest{State: gitea.String(string(gitea.StateClosed))}

			issue, err := client.Issues().Edit(context.Background(), owner, name, index, request)
			if err != nil {
				return fmt.Errorf("failed to close issue: %w", err)
			}

			fmt.Printf("Closed issue #%d\n", issue.Number)

			return nil
		},
	}
}

func newIssuesCommentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comment OWNER/NAME INDEX BODY",
		Short: "Comment on an issue",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoPath(args[0])
			if err != nil {
				return err
			}

			index, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid issue index '%s': %w", args[1], err)
			}

			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			request := &gitea.CreateCommentRequest{Body: args[2]}

			comment, err := client.Issues().CreateComment(context.Background(), owner, name, index, request)
			if err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}

			fmt.Printf("Added comment %d\n", comment.ID)

			return nil
		},
	}
}

func newIssuesSearchCommand() *cobra.Command {
	var (
		state string
		owner string
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search issues across the instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			opts := &gitea.SearchIssuesOptions{
				Query:       args[0],
				State:       gitea.StateFilter(state),
				Owner:       owner,
				ListOptions: gitea.ListOptions{Page: page, Limit: limit},
			}

			issues, err := client.Search().Issues(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to search issues: %w", err)
			}

			return outputIssues(issues)
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "filter by state (open, closed, all)")
	cmd.Flags().StringVar(&owner, "owner", "", "restrict to repositories of an owner")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func outputIssues(issues []gitea.Issue) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(issues)
	case OutputFormatYAML:
		return StandardYAMLRenderer(issues)
	default:
		return renderIssueTable(issues)
	}
}

func renderIssueTable(issues []gitea.Issue) error {
	if len(issues) == 0 {
		fmt.Println("No issues found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Number", "State", "Title", "Author", "Labels")

	for _, issue := range issues {
		labels := make([]string, 0, len(issue.Labels))
		for _, label := range issue.Labels {
			labels = append(labels, label.Name)
		}

		_ = table.Append(strconv.FormatInt(issue.Number, 10), string(issue.State),
			issue.Title, issue.User.Login, strings.Join(labels, ", "))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
