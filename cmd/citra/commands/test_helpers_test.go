package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/pkg/citra"
	"github.com/citra-space/citra-go/pkg/citraclient"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// subcommandNames lists the names of a command's children.
func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	return names
}

// newTestClient serves routes keyed by request path and returns a client pointed at them.
func newTestClient(t *testing.T, routes map[string]any) citra.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, ok := routes[request.URL.Path]
		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"not found"}`))

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(body)
	}))
	t.Cleanup(server.Close)

	client, err := citraclient.New(&citra.Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	return client
}
