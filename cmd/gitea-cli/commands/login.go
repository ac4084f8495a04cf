package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/steeped-dev/gitea-client/pkg/giteaclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		serverURL string
		name      string
		token     string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a Gitea server",
		Long:  "Store credentials for a Gitea server and verify them",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if serverURL == "" {
				serverURL = viper.GetString("server")
			}

			if serverURL == "" {
				fmt.Print("Server URL: ")
				serverURL, _ = reader.ReadString('\n')
				serverURL = strings.TrimSpace(serverURL)
			}

			if serverURL == "" {
				return ErrServerEndpointRequired
			}

			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			clientConfig := &gitea.Config{
				Endpoint: serverURL,
				Token:    token,
			}

			client, err := giteaclient.New(context.Background(), clientConfig)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials before persisting them.
			user, err := client.Users().Current(context.Background())
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			// giteaclient.New normalized the endpoint in place.
			endpoint := clientConfig.Endpoint

			if name == "" {
				name = serverName(endpoint)
			}

			config := loadConfig()
			config.Servers[name] = &ServerConfig{
				Endpoint: endpoint,
				Token:    token,
				Username: user.Login,
			}
			config.CurrentServer = name

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in to %s as %s\n", endpoint, user.Login)

			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "url", "", "Gitea server URL")
	cmd.Flags().StringVar(&name, "name", "", "short name for this server (defaults to its host)")
	cmd.Flags().StringVar(&token, "access-token", "", "API access token (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout [SERVER]",
		Short: "Log out of a Gitea server",
		Long:  "Remove stored credentials for a server (the current one when unnamed)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			name := config.CurrentServer
			if len(args) > 0 {
				name = args[0]
			}

			if name == "" {
				return ErrServerNotConfigured
			}

			if _, exists := config.Servers[name]; !exists {
				return fmt.Errorf("server '%s': %w", name, ErrServerConfigNotFound)
			}

			delete(config.Servers, name)

			if config.CurrentServer == name {
				config.CurrentServer = ""
			}

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Printf("Logged out of '%s'\n", name)

			return nil
		},
	}
}

// serverName derives a short config key from an endpoint URL.
func serverName(endpoint string) string {
	name := endpoint
	if idx := strings.Index(name, "://"); idx >= 0 {
		name = name[idx+3:]
	}

	if idx := strings.IndexByte(name, '/'); idx >= 0 {
		name = name[:idx]
	}

	return name
}
