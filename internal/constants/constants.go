package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under the user's home holding CLI state.
	ConfigDirName = ".citra"

	// ConfigFileName is the CLI configuration file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the CLI configuration file format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes every environment variable the CLI reads.
	EnvPrefix = "CITRA"

	// PATEnvVar holds the personal access token read by examples and integration tests.
	PATEnvVar = "CITRA_PAT"

	// DefaultProfile is the keyring profile used when none is configured.
	DefaultProfile = "default"
)

// HTTP defaults.
const (
	// DefaultUserAgent is sent when the caller does not set one.
	DefaultUserAgent = "citra-go/1.0"

	// DefaultHTTPTimeout bounds CLI requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as credential checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent requests issued by the CLI.
	DefaultConcurrencyLimit = 4
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of satellites per page.
	DefaultPageSize = 50

	// DemoDisplayLimit limits items shown in examples.
	DemoDisplayLimit = 10
)

// Unit conversions.
const (
	// MetersPerKilometer converts ground station altitude to kilometers.
	MetersPerKilometer = 1000.0
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)
