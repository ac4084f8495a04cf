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

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"org", "organizations"},
		Short:   "Manage organizations",
		Long:    "List, create, and delete organizations and manage their members",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsGetCommand())
	cmd.AddCommand(newOrgsCreateCommand())
	cmd.AddCommand(newOrgsDeleteCommand())
	cmd.AddCommand(newOrgsMembersCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var (
		user  string
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List all organizations, or the organizations a user belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := &gitea.ListOptions{Page: page, Limit: limit}

			var orgs []gitea.Organization
			if user != "" {
				orgs, err = client.Users().ListUserOrganizations(ctx, user, opts)
			} else {
				orgs, err = client.Organizations().List(ctx, opts)
			}

			if err != nil {
				return fmt.Errorf("failed to list organizations: %w", err)
			}

			return outputOrganizations(orgs)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "list organizations of a user")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func newOrgsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			org, err := client.Organizations().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get organization: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(org)
			case OutputFormatYAML:
				return StandardYAMLRenderer(org)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Name", org.Name)
				_ = table.Append("Full Name", derefOrEmpty(org.FullName))
				_ = table.Append("Description", derefOrEmpty(org.Description))
				_ = table.Append("Website", derefOrEmpty(org.Website))
				_ = table.Append("Location", derefOrEmpty(org.Location))
				_ = table.Append("Visibility", string(org.Visibility))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newOrgsCreateCommand() *cobra.Command {
	var (
		fullName    string
		description string
		visibility  string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			request := &gitea.CreateOrgRequest{
				Name:       args[0],
				Visibility: gitea.Visibility(visibility),
			}
			if fullName != "" {
				request.FullName = gitea.String(fullName)
			}

			if description != "" {
				request.Description = gitea.String(description)
			}

			org, err := client.Organizations().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create organization: %w", err)
			}

			fmt.Printf("Created organization %s\n", org.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "full-name", "", "display name")
	cmd.Flags().StringVar(&description, "description", "", "organization description")
	cmd.Flags().StringVar(&visibility, "visibility", "", "visibility (public, limited, private)")

	return cmd
}

func newOrgsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			err = client.Organizations().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete organization: %w", err)
			}

			fmt.Printf("Deleted organization %s\n", args[0])

			return nil
		},
	}
}

func newOrgsMembersCommand() *cobra.Command {
	var public bool

	cmd := &cobra.Command{
		Use:   "members NAME",
		Short: "List members of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			var members []gitea.User
			if public {
				members, err = client.Organizations().ListPublicMembers(ctx, args[0], nil)
			} else {
				members, err = client.Organizations().ListMembers(ctx, args[0], nil)
			}

			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			return outputUsers(members)
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "list only public members")

	return cmd
}

func outputOrganizations(orgs []gitea.Organization) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(orgs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(orgs)
	default:
		return renderOrganizationTable(orgs)
	}
}

func renderOrganizationTable(orgs []gitea.Organization) error {
	if len(orgs) == 0 {
		fmt.Println("No organizations found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Full Name", "Visibility")

	for _, org := range orgs {
		_ = table.Append(strconv.FormatInt(org.ID, 10), org.Name,
			derefOrEmpty(org.FullName), string(org.Visibility))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
