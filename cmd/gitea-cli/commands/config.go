package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/steeped-dev/gitea-client/internal/constants"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
	"github.com/steeped-dev/gitea-client/pkg/giteaclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the persisted CLI configuration.
type Config struct {
	// CurrentServer names the entry in Servers used when no --server flag
	// is given.
	CurrentServer string                   `yaml:"current_server,omitempty"`
	Servers       map[string]*ServerConfig `yaml:"servers,omitempty"`

	// Output is the default output format (table, json, yaml).
	Output string `yaml:"output,omitempty"`
}

// ServerConfig holds credentials for one Gitea server.
type ServerConfig struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token,omitempty"`
	Username string `yaml:"username,omitempty"`
}

// loadConfig builds the config from whatever viper has read.
func loadConfig() *Config {
	config := &Config{
		CurrentServer: viper.GetString("current_server"),
		Output:        viper.GetString("output"),
		Servers:       make(map[string]*ServerConfig),
	}

	serversRaw := viper.GetStringMap("servers")
	for name, raw := range serversRaw {
		serverMap, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		server := &ServerConfig{}
		if v, ok := serverMap["endpoint"].(string); ok {
			server.Endpoint = v
		}

		if v, ok := serverMap["token"].(string); ok {
			server.Token = v
		}

		if v, ok := serverMap["username"].(string); ok {
			server.Username = v
		}

		config.Servers[name] = server
	}

	return config
}

// saveConfigStruct writes the config back to the file viper loaded, or to
// the default location when no config file exists yet.
func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".gitea-cli")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Tokens live in this file, keep it private.
	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// resolveServer picks the server config for a command invocation. The
// --server flag wins, then the configured current server.
func resolveServer(serverFlag string) (*ServerConfig, error) {
	config := loadConfig()

	if serverFlag != "" {
		// A known short name, or a raw URL used directly.
		if server, exists := config.Servers[serverFlag]; exists {
			return server, nil
		}

		server := &ServerConfig{Endpoint: serverFlag}
		if token := viper.GetString("token"); token != "" {
			server.Token = token
		}

		return server, nil
	}

	if config.CurrentServer == "" {
		return nil, ErrServerNotConfigured
	}

	server, exists := config.Servers[config.CurrentServer]
	if !exists {
		return nil, fmt.Errorf("server '%s': %w", config.CurrentServer, ErrServerConfigNotFound)
	}

	return server, nil
}

// CreateClient builds a gitea.Client from the resolved server config and
// global flags.
func CreateClient(serverFlag string) (gitea.Client, error) {
	server, err := resolveServer(serverFlag)
	if err != nil {
		return nil, err
	}

	clientConfig := &gitea.Config{
		Endpoint: server.Endpoint,
		Token:    server.Token,
		Debug:    viper.GetBool("verbose"),
	}

	if token := viper.GetString("token"); token != "" {
		clientConfig.Token = token
	}

	client, err := giteaclient.New(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify gitea-cli configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUseCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(redactConfig(config))
			case OutputFormatYAML:
				return StandardYAMLRenderer(redactConfig(config))
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Server", "Endpoint", "User", "Current")

				for name, server := range config.Servers {
					_ = table.Append(name, server.Endpoint, server.Username,
						boolLabel(name == config.CurrentServer))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

// redactConfig strips tokens before printing.
func redactConfig(config *Config) *Config {
	redacted := &Config{
		CurrentServer: config.CurrentServer,
		Output:        config.Output,
		Servers:       make(map[string]*ServerConfig, len(config.Servers)),
	}

	for name, server := range config.Servers {
		copied := *server
		if copied.Token != "" {
			copied.Token = "***"
		}

		redacted.Servers[name] = &copied
	}

	return redacted
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Supported keys: output, current_server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			key, value := args[0], args[1]
			switch key {
			case "output":
				config.Output = value
			case "current_server":
				if _, exists := config.Servers[value]; !exists {
					return fmt.Errorf("server '%s': %w", value, ErrServerConfigNotFound)
				}

				config.CurrentServer = value
			default:
				return fmt.Errorf("'%s': %w", key, ErrConfigKeyUnknown)
			}

			return saveConfigStruct(config)
		},
	}
}

func newConfigUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use SERVER",
		Short: "Switch the current server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			name := args[0]
			if _, exists := config.Servers[name]; !exists {
				return fmt.Errorf("server '%s': %w", name, ErrServerConfigNotFound)
			}

			config.CurrentServer = name

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Printf("Now using server '%s'\n", name)

			return nil
		},
	}
}
