package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/citra-space/citra-go/internal/auth"
	"github.com/citra-space/citra-go/internal/constants"
	"github.com/citra-space/citra-go/pkg/citra"
	"github.com/citra-space/citra-go/pkg/citraclient"
)

// Configuration keys.
const (
	configKeyAPIKey  = "api-key"
	configKeyEnv     = "env"
	configKeyOutput  = "output"
	configKeyProfile = "profile"
)

// configKeys lists the keys accepted by `config get` and `config set`.
var configKeys = []string{configKeyAPIKey, configKeyEnv, configKeyOutput, configKeyProfile}

// Config represents the CLI configuration file.
type Config struct {
	APIKey  string `json:"api-key,omitempty" yaml:"api-key,omitempty"`
	Env     string `json:"env,omitempty"     yaml:"env,omitempty"`
	Output  string `json:"output,omitempty"  yaml:"output,omitempty"`
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Read and write settings in the Citra CLI configuration file",
	}

	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "show"},
		Short:   "List configuration values",
		Long:    "Display every configuration value with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.APIKey != "" {
				config.APIKey = maskSecret(config.APIKey)
			}

			return renderOutput(config, func(config *Config) error {
				return renderProperties([][]string{
					{configKeyAPIKey, valueOrNA(config.APIKey)},
					{configKeyEnv, valueOrNA(config.Env)},
					{configKeyOutput, valueOrNA(config.Output)},
					{configKeyProfile, valueOrNA(config.Profile)},
				})
			})
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Long:  "Print one value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := getConfigValue(loadConfig(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Write one value to the configuration file",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

// loadConfig reads the configuration file. Flags and environment variables
// are not merged in, so `config set` never persists them. A missing or
// unreadable file yields an empty configuration.
func loadConfig() *Config {
	config := &Config{}

	configFile, err := configFilePath()
	if err != nil {
		return config
	}

	// configFile is built from the user home dir or the --config flag
	// #nosec G304
	data, err := os.ReadFile(configFile)
	if err != nil {
		return config
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		log.Warn().Err(err).Str("file", configFile).Msg("Ignoring unreadable config file")

		return &Config{}
	}

	return config
}

func getConfigValue(config *Config, key string) (string, error) {
	var value string

	switch key {
	case configKeyAPIKey:
		value = config.APIKey
		if value != "" {
			value = maskSecret(value)
		}
	case configKeyEnv:
		value = config.Env
	case configKeyOutput:
		value = config.Output
	case configKeyProfile:
		value = config.Profile
	default:
		return "", fmt.Errorf("%w: %s (known keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys, ", "))
	}

	if value == "" {
		return "", fmt.Errorf("%w: %s", constants.ErrConfigKeyNotSet, key)
	}

	return value, nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case configKeyAPIKey:
		config.APIKey = strings.TrimSpace(value)
	case configKeyEnv:
		env, err := citra.ParseEnvironment(value)
		if err != nil {
			return fmt.Errorf("invalid env: %w", err)
		}

		config.Env = string(env)
	case configKeyOutput:
		err := ValidateOutputFormat(value)
		if err != nil {
			return err
		}

		config.Output = value
	case configKeyProfile:
		config.Profile = value
	default:
		return fmt.Errorf("%w: %s (known keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys, ", "))
	}

	return nil
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, constants.ConfigDirName)

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// currentProfile returns the keyring profile selected by config or env.
func currentProfile() string {
	profile := viper.GetString(configKeyProfile)
	if profile == "" {
		return constants.DefaultProfile
	}

	return profile
}

// newClientConfig builds the library configuration from CLI settings.
func newClientConfig() (*citra.Config, error) {
	env, err := citra.ParseEnvironment(viper.GetString(configKeyEnv))
	if err != nil {
		return nil, err
	}

	logger := log.Logger

	return &citra.Config{
		Environment: env,
		Logger:      &logger,
		Debug:       viper.GetBool("verbose"),
		Timeout:     constants.DefaultHTTPTimeout,
	}, nil
}

// CreateClient builds an API client. The API key comes from --api-key,
// CITRA_API_KEY or the config file, and otherwise from the OS keyring.
func CreateClient() (citra.Client, error) {
	config, err := newClientConfig()
	if err != nil {
		return nil, err
	}

	apiKey := strings.TrimSpace(viper.GetString(configKeyAPIKey))
	if apiKey != "" {
		config.APIKey = apiKey

		return citraclient.New(config)
	}

	profile := currentProfile()

	_, err = auth.NewKeyringStore().Load(profile)
	if errors.Is(err, auth.ErrNoStoredKey) {
		return nil, constants.ErrNoAPIKey
	}

	if err != nil {
		return nil, err
	}

	log.Debug().Str("profile", profile).Msg("Using API key from keyring")

	return citraclient.NewWithKeyring(config, profile)
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
