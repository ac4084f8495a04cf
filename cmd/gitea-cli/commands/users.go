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

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "Inspect users and manage access tokens",
	}

	cmd.AddCommand(newUsersWhoamiCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersSearchCommand())
	cmd.AddCommand(newUsersTokensCommand())

	return cmd
}

func newUsersWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			user, err := client.Users().Current(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get current user: %w", err)
			}

			return outputUser(user)
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USERNAME",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return outputUser(user)
		},
	}
}

func newUsersSearchCommand() *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			opts := &gitea.SearchUsersOptions{
				Query:       args[0],
				ListOptions: gitea.ListOptions{Page: page, Limit: limit},
			}

			users, err := client.Search().Users(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to search users: %w", err)
			}

			return outputUsers(users)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func newUsersTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Manage access tokens",
	}

	cmd.AddCommand(newUsersTokensListCommand())
	cmd.AddCommand(newUsersTokensCreateCommand())
	cmd.AddCommand(newUsersTokensDeleteCommand())

	return cmd
}

// tokenUsername resolves the username the token endpoints operate on.
func tokenUsername(ctx context.Context, client gitea.Client, username string) (string, error) {
	if username != "" {
		return username, nil
	}

	user, err := client.Users().Current(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}

	return user.Login, nil
}

func newUsersTokensListCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List access tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			username, err := tokenUsername(ctx, client, username)
			if err != nil {
				return err
			}

			tokens, err := client.Users().ListAccessTokens(ctx, username, nil)
			if err != nil {
				return fmt.Errorf("failed to list access tokens: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(tokens)
			case OutputFormatYAML:
				return StandardYAMLRenderer(tokens)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Last Eight")

				for _, token := range tokens {
					_ = table.Append(strconv.FormatInt(token.ID, 10), token.Name, token.TokenLastEight)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "operate on another user (admin only)")

	return cmd
}

func newUsersTokensCreateCommand() *cobra.Command {
	var (
		username string
		scopes   []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an access token",
		Long:  "Create an access token. The token value is printed once and never stored.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			username, err := tokenUsername(ctx, client, username)
			if err != nil {
				return err
			}

			request := &gitea.CreateAccessTokenRequest{
				Name:   args[0],
				Scopes: scopes,
			}

			token, err := client.Users().CreateAccessToken(ctx, username, request)
			if err != nil {
				return fmt.Errorf("failed to create access token: %w", err)
			}

			fmt.Printf("Created token '%s': %s\n", token.Name, token.SHA1)

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "operate on another user (admin only)")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "token scope (repeatable)")

	return cmd
}

func newUsersTokensDeleteCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "delete NAME_OR_ID",
		Short: "Delete an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			username, err := tokenUsername(ctx, client, username)
			if err != nil {
				return err
			}

			err = client.Users().DeleteAccessToken(ctx, username, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete access token: %w", err)
			}

			fmt.Printf("Deleted token '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "operate on another user (admin only)")

	return cmd
}

func outputUser(user *gitea.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(user)
	case OutputFormatYAML:
		return StandardYAMLRenderer(user)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.FormatInt(user.ID, 10))
		_ = table.Append("Login", user.Login)
		_ = table.Append("Full Name", user.FullName)
		_ = table.Append("Email", user.Email)
		_ = table.Append("Admin", boolLabel(user.IsAdmin))
		_ = table.Append("Created", user.Created)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func outputUsers(users []gitea.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(users)
	case OutputFormatYAML:
		return StandardYAMLRenderer(users)
	default:
		if len(users) == 0 {
			fmt.Println("No users found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Login", "Full Name", "Email")

		for _, user := range users {
			_ = table.Append(strconv.FormatInt(user.ID, 10), user.Login, user.FullName, user.Email)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
