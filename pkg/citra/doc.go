// Package citra provides types, interfaces, and helpers for working with the
// Citra space domain awareness API.
//
// # Overview
//
// The citra package defines the domain types (Telescope, GroundStation,
// Antenna, Task, Satellite, Elset, and the access and observation records)
// and the interfaces for resource-oriented clients (TelescopesClient,
// TasksClient, SatellitesClient, and so on). A concrete implementation is
// provided by the citraclient package, which wires configuration, transport
// and authentication. Most consumers import citraclient to construct a
// client and then use the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/citra-space/citra-go/pkg/citra"
//	  "github.com/citra-space/citra-go/pkg/citraclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := citraclient.NewWithAPIKey(os.Getenv("CITRA_PAT"), citra.EnvironmentProduction)
//	  if err != nil { log.Fatal(err) }
//
//	  telescopes, err := cli.Telescopes().ListMine(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = telescopes
//	}
//
// # Units
//
// Ground stations carry latitude and longitude in degrees and altitude in
// meters. Access and field-of-view requests take the sensor altitude in
// kilometers. Timestamps are UTC and travel as RFC 3339 strings.
//
// # Batch endpoints
//
// Telescopes, ground stations, antennas, elsets and optical observations are
// created, updated and deleted through collection endpoints that accept
// arrays. The resource clients send a one-element array and return the first
// element of the response. An empty response array yields ErrEmptyBatchResponse.
//
// # Errors
//
// A non-2xx answer is reported as an *APIError carrying the status and the
// response body as received. Failures before a response arrives, and bodies that
// cannot be encoded or decoded, are reported as a *TransportError. Helpers
// such as IsNotFound, IsUnauthorized and IsTransportError make it easy to
// branch on the common cases.
//
// # Enumerations
//
// TaskStatus, SensorFrame, AlertType, TargetType and CollectionRequestType
// are closed sets. Marshalling or unmarshalling a value outside the set fails
// with the matching sentinel error, so an unknown task status in a response
// surfaces as a decode error instead of being passed through.
package citra
