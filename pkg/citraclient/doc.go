// Package citraclient provides the primary entry point for constructing a
// Citra API client that implements the citra.Client interface.
//
// It layers configuration, HTTP transport and bearer authentication on top of
// the resource interfaces and types defined in the citra package. Most
// applications should import citraclient to build a client, then use the
// returned citra.Client to reach the resource clients, for example
// Telescopes(), GroundStations(), Tasks(), Access().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "time"
//
//	  "github.com/citra-space/citra-go/pkg/citra"
//	  "github.com/citra-space/citra-go/pkg/citraclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // A personal access token against production.
//	  cli, err := citraclient.NewWithAPIKey("citra_pat_...", citra.EnvironmentProduction)
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with the full configuration.
//	  cli, err = citraclient.New(&citra.Config{
//	    APIKey:      "citra_pat_...",
//	    Environment: citra.EnvironmentDevelopment,
//	    Timeout:     10 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  station, err := cli.GroundStations().Get(ctx, "gs-id")
//	  if err != nil { log.Fatal(err) }
//	  _ = station
//	}
//
// # Helpers
//
// NewFromEnv reads the token from the CITRA_PAT environment variable, which is
// how the example programs authenticate. NewWithKeyring reads the token stored
// in the OS keyring by `citra login`.
//
// Building a client never touches the network. A client owns one connection
// pool for its lifetime and is safe for concurrent use by many goroutines.
package citraclient
