package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/citra-space/citra-go/internal/auth"
	"github.com/citra-space/citra-go/internal/constants"
	"github.com/citra-space/citra-go/pkg/citra"
	"github.com/citra-space/citra-go/pkg/citraclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key in the OS keyring",
		Long: `Verify a Citra personal access token against the API and store it in
the operating system keyring. Later commands read it from there when no
--api-key, CITRA_API_KEY or config file key is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				prompted, err := promptAPIKey()
				if err != nil {
					return err
				}

				apiKey = prompted
			}

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return constants.ErrEmptyAPIKeyInput
			}

			config, err := newClientConfig()
			if err != nil {
				return err
			}

			config.APIKey = apiKey

			client, err := citraclient.New(config)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.ShortHTTPTimeout)
			defer cancel()

			account, err := client.Account().Get(ctx)
			if citra.IsUnauthorized(err) || citra.IsForbidden(err) {
				return fmt.Errorf("%w: %w", constants.ErrAPIKeyVerifyFails, err)
			}

			if err != nil {
				return fmt.Errorf("failed to verify API key: %w", err)
			}

			profile := currentProfile()

			err = auth.NewKeyringStore().Save(profile, apiKey)
			if err != nil {
				return err
			}

			log.Debug().Str("profile", profile).Str("user", account.ID).Msg("Stored API key")

			name := account.ID
			if account.Username != nil && *account.Username != "" {
				name = *account.Username
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (profile %s)\n", name, profile)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key to store (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		Long:  "Remove the API key stored in the OS keyring for the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := currentProfile()

			err := auth.NewKeyringStore().Delete(profile)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged out (profile %s)\n", profile)

			return nil
		},
	}
}

// promptAPIKey reads the key without echo on a terminal and as a plain line otherwise.
func promptAPIKey() (string, error) {
	fd := int(syscall.Stdin) //nolint:unconvert // syscall.Stdin is not an int on every platform

	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return strings.TrimSpace(line), nil
	}

	_, _ = fmt.Fprint(os.Stderr, "API key: ")

	keyBytes, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return string(keyBytes), nil
}
