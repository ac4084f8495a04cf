package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API paths and headers.
const (
	// APIPrefix is the versioned path prefix every endpoint lives under.
	APIPrefix = "/api/v1"

	// DefaultUserAgent identifies the client when no override is configured.
	DefaultUserAgent = "gitea-client/1.0"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retrying is off unless configured.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusBadRequest represents a client error. Transport failures
	// that never produce a server status are reported under this code.
	HTTPStatusBadRequest = 400
)
