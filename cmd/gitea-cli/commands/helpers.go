package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrServerNotConfigured    = errors.New("no server configured, run 'gitea-cli login' first")
	ErrServerConfigNotFound   = errors.New("server configuration not found")
	ErrServerEndpointRequired = errors.New("server URL is required")
	ErrTokenRequired          = errors.New("token is required")
	ErrConfigKeyUnknown       = errors.New("unknown configuration key")
	ErrPullSelectorRequired   = errors.New("give an index or both --base and --head")
)

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// derefOrEmpty returns the pointed-to string or "" for nil.
func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// boolLabel renders a bool as "yes" or "no" for table cells.
func boolLabel(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
