package citra

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Environment selects which deployment of the API a client talks to.
type Environment string

// Environments.
const (
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
)

// Base URLs per environment.
const (
	ProductionBaseURL  = "https://api.citra.space/"
	DevelopmentBaseURL = "https://dev.api.citra.space/"
)

// BaseURL returns the base URL of the environment. The zero value selects production.
func (e Environment) BaseURL() (string, error) {
	switch e {
	case EnvironmentProduction, "":
		return ProductionBaseURL, nil
	case EnvironmentDevelopment:
		return DevelopmentBaseURL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, string(e))
	}
}

// ParseEnvironment accepts the names used on the command line and in config files.
func ParseEnvironment(value string) (Environment, error) {
	switch value {
	case "", "prod", "production":
		return EnvironmentProduction, nil
	case "dev", "development":
		return EnvironmentDevelopment, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, value)
	}
}

// Config represents client configuration for building a citra.Client.
//
// Building a client never performs network I/O. The client holds one
// connection pool for its lifetime and is safe for concurrent use.
// Per-call deadlines belong on the context passed to each operation.
type Config struct {
	// APIKey is sent as the bearer token on every request. Required.
	APIKey string
	// Environment picks the production or development host.
	Environment Environment
	// BaseURL overrides Environment when set.
	BaseURL string

	// Logger receives debug events from the transport. Nil disables logging.
	Logger *zerolog.Logger
	// Debug logs one event per request and one per response.
	Debug bool
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Timeout bounds each request on top of the context deadline. Zero means no extra bound.
	Timeout time.Duration
	// HTTPClient replaces the pooled default client.
	HTTPClient *http.Client
}

// Client provides access to every resource of the API.
type Client interface {
	Telescopes() TelescopesClient
	GroundStations() GroundStationsClient
	Antennas() AntennasClient
	Tasks() TasksClient
	Satellites() SatellitesClient
	SatelliteGroups() SatelliteGroupsClient
	Elsets() ElsetsClient
	RFCaptures() RFCapturesClient
	Maneuvers() ManeuversClient
	AlertSubscriptions() AlertSubscriptionsClient
	Observations() ObservationsClient
	CollectionRequests() CollectionRequestsClient
	Filters() FiltersClient
	Images() ImagesClient
	Weather() WeatherClient
	Account() AccountClient
	AccessTokens() AccessTokensClient
	OrbitDetermination() OrbitDeterminationClient
	Access() AccessClient
}

// TelescopesClient manages telescopes.
type TelescopesClient interface {
	Get(ctx context.Context, id string) (*Telescope, error)
	List(ctx context.Context) ([]Telescope, error)
	ListMine(ctx context.Context) ([]Telescope, error)
	Create(ctx context.Context, request *TelescopeRequest) (*Telescope, error)
	Update(ctx context.Context, request *TelescopeRequest) (*Telescope, error)
	Delete(ctx context.Context, id string) error
	ListTasks(ctx context.Context, id string) ([]Task, error)
	ListTasksByStatus(ctx context.Context, id string, statuses []TaskStatus) ([]Task, error)
}

// GroundStationsClient manages ground stations.
type GroundStationsClient interface {
	Get(ctx context.Context, id string) (*GroundStation, error)
	List(ctx context.Context) ([]GroundStation, error)
	ListMine(ctx context.Context) ([]GroundStation, error)
	Create(ctx context.Context, request *GroundStationRequest) (*GroundStation, error)
	Update(ctx context.Context, id string, request *GroundStationRequest) (*GroundStation, error)
	Delete(ctx context.Context, id string) error
	ListTelescopes(ctx context.Context, id string) ([]Telescope, error)
	ListAntennas(ctx context.Context, id string) ([]Antenna, error)
}

// AntennasClient manages antennas.
type AntennasClient interface {
	Get(ctx context.Context, id string) (*Antenna, error)
	List(ctx context.Context) ([]Antenna, error)
	ListMine(ctx context.Context) ([]Antenna, error)
	Create(ctx context.Context, request *AntennaRequest) (*Antenna, error)
	Update(ctx context.Context, request *AntennaRequest) (*Antenna, error)
	Delete(ctx context.Context, id string) error
	ListTasks(ctx context.Context, id string) ([]Task, error)
	ListTasksByStatus(ctx context.Context, id string, statuses []TaskStatus) ([]Task, error)
	ListRFCaptures(ctx context.Context, id string) ([]RFCaptureSummary, error)
}

// TasksClient manages tasks.
type TasksClient interface {
	Get(ctx context.Context, id string) (*Task, error)
	Create(ctx context.Context, request *CreateTaskRequest) (*Task, error)
	Update(ctx context.Context, request *TaskUpdateRequest) (*Task, error)
	ListMine(ctx context.Context) ([]Task, error)
}

// SatellitesClient reads the satellite catalog and derived products.
type SatellitesClient interface {
	List(ctx context.Context, query *SatelliteListQuery) ([]Satellite, error)
	Page(ctx context.Context, offset, limit int) (*SatellitePaginatedResponse, error)
	Overview(ctx context.Context) (*SatelliteOverview, error)
	Countries(ctx context.Context) ([]CountryCount, error)
	Get(ctx context.Context, id string) (*Satellite, error)
	ListGroups(ctx context.Context, id string) ([]SatelliteGroup, error)
	ListElsets(ctx context.Context, id string) ([]Elset, error)
	ElsetHistory(ctx context.Context, id string, query *ElsetHistoryQuery) ([]Elset, error)
	LatestElset(ctx context.Context, id string) (*Elset, error)
	CloseApproaches(ctx context.Context, id string, query *TimeRangeQuery) ([]CloseApproach, error)
	RelativeState(ctx context.Context, id, otherID string, query *TimeRangeQuery) ([]RelativeState, error)
	GroundTrack(ctx context.Context, id string, query *TimeRangeQuery) ([]GroundTrackPoint, error)
	ObservationBounds(ctx context.Context, id string) (*ObservationBounds, error)
	Residuals(ctx context.Context, id string, request *ResidualsRequest) ([]ResidualResult, error)
	OrbitalElements(ctx context.Context, id string) (*OrbitalElements, error)
	Ephemeris(ctx context.Context, id string, query *EphemerisQuery) ([]EphemerisPoint, error)
	ListRFCaptures(ctx context.Context, id string) ([]RFCaptureSummary, error)
	ListImages(ctx context.Context, id string, query *ImageListQuery) ([]ImageStatus, error)
	ListManeuvers(ctx context.Context, id string) ([]Maneuver, error)
	ListTasks(ctx context.Context, id string) ([]Task, error)
}

// SatelliteGroupsClient manages satellite groups.
type SatelliteGroupsClient interface {
	List(ctx context.Context) ([]SatelliteGroup, error)
	ListMine(ctx context.Context) ([]SatelliteGroup, error)
	ListFavorites(ctx context.Context) ([]SatelliteGroup, error)
	Get(ctx context.Context, id string) (*SatelliteGroup, error)
	Create(ctx context.Context, request *CreateSatelliteGroupRequest) (string, error)
	Update(ctx context.Context, request *UpdateSatelliteGroupRequest) (*SatelliteGroup, error)
	Delete(ctx context.Context, id string) error
	ListSatellites(ctx context.Context, id string) ([]Satellite, error)
	AddSatellites(ctx context.Context, id string, satelliteIDs []string) error
	RemoveSatellites(ctx context.Context, id string, satelliteIDs []string) error
	Favorite(ctx context.Context, id string) error
	Unfavorite(ctx context.Context, id string) error
}

// ElsetsClient reads and submits element sets.
type ElsetsClient interface {
	Counts(ctx context.Context) ([]ElsetCount, error)
	NearGeoScatter(ctx context.Context) ([]GeoScatterPoint, error)
	LeoScatter(ctx context.Context, minSemiMajorAxisKm, maxSemiMajorAxisKm *float64) ([]LeoScatterPoint, error)
	Create(ctx context.Context, request *CreateElsetRequest) (*Elset, error)
	Get(ctx context.Context, id string) (*Elset, error)
}

// RFCapturesClient manages RF captures.
type RFCapturesClient interface {
	Create(ctx context.Context, request *CreateRFCaptureRequest) (*RFCapture, error)
	Get(ctx context.Context, id string) (*RFCapture, error)
	Delete(ctx context.Context, id string) error
}

// ManeuversClient manages maneuvers.
type ManeuversClient interface {
	List(ctx context.Context, query *ManeuverListQuery) ([]Maneuver, error)
	Get(ctx context.Context, id string) (*Maneuver, error)
	Create(ctx context.Context, request *CreateManeuverRequest) (*Maneuver, error)
	Update(ctx context.Context, id string, request *UpdateManeuverRequest) (*Maneuver, error)
	Delete(ctx context.Context, id string) error
}

// AlertSubscriptionsClient manages alert subscriptions.
type AlertSubscriptionsClient interface {
	List(ctx context.Context) ([]AlertSubscription, error)
	Get(ctx context.Context, id string) (*AlertSubscription, error)
	Create(ctx context.Context, request *CreateAlertSubscriptionRequest) (*AlertSubscription, error)
	Update(ctx context.Context, id string, request *UpdateAlertSubscriptionRequest) (*AlertSubscription, error)
	Delete(ctx context.Context, id string) error
}

// ObservationsClient manages optical observations.
type ObservationsClient interface {
	List(ctx context.Context, query *ObservationQuery) ([]OpticalObservation, error)
	Get(ctx context.Context, id string) (*OpticalObservation, error)
	Create(ctx context.Context, request *CreateOpticalObservationRequest) (*OpticalObservation, error)
	Counts(ctx context.Context) ([]ObservationCount, error)
}

// CollectionRequestsClient manages collection requests.
type CollectionRequestsClient interface {
	List(ctx context.Context) ([]CollectionRequest, error)
	Get(ctx context.Context, id string) (*CollectionRequest, error)
	Create(ctx context.Context, request *CreateCollectionRequest) (*CollectionRequest, error)
	Delete(ctx context.Context, id string) error
}

// FiltersClient reads photometric filters.
type FiltersClient interface {
	List(ctx context.Context) ([]Filter, error)
	Expand(ctx context.Context, names []string) ([]Filter, error)
}

// ImagesClient manages telescope images.
type ImagesClient interface {
	Upload(ctx context.Context, request *ImageUploadRequest) (*ImageUploadResponse, error)
	Get(ctx context.Context, uploadID string) (*ImageStatus, error)
	ListMine(ctx context.Context, query *ImageListQuery) ([]ImageStatus, error)
	Data(ctx context.Context, uploadID string, request *ImageDataRequest) (*ImageData, error)
	Delete(ctx context.Context, uploadID string) error
}

// WeatherClient reads forecasts.
type WeatherClient interface {
	Get(ctx context.Context, query *WeatherQuery) (*WeatherResponse, error)
}

// AccountClient manages the authenticated user and their group.
type AccountClient interface {
	Get(ctx context.Context) (*UserAccount, error)
	Preferences(ctx context.Context) (*UserPreferences, error)
	UpdatePreferences(ctx context.Context, request *UpdatePreferencesRequest) (*UserPreferences, error)
	GroupMembers(ctx context.Context) ([]GroupMember, error)
	AddGroupMember(ctx context.Context, request *AddGroupMemberRequest) (*GroupMember, error)
	RemoveGroupMember(ctx context.Context, memberID string) error
}

// AccessTokensClient manages personal access tokens.
type AccessTokensClient interface {
	List(ctx context.Context) ([]PersonalAccessToken, error)
	Create(ctx context.Context, request *CreatePersonalAccessTokenRequest) (*CreatePersonalAccessTokenResponse, error)
	Revoke(ctx context.Context, id string) error
}

// OrbitDeterminationClient fits orbits to observations.
type OrbitDeterminationClient interface {
	Solve(ctx context.Context, request *ODRequest) (*ODResult, error)
}

// AccessClient solves visibility windows.
type AccessClient interface {
	GroundStation(ctx context.Context, request *SatelliteAccessToGroundStationRequest) ([]HorizonAccess, error)
	FOV(ctx context.Context, request *FOVAccessRequest) ([]FOVAccessResponse, error)
	Geo(ctx context.Context, query *GeoAccessQuery) ([]GeoAccess, error)
	Location(ctx context.Context, request *LocationAccessRequest) ([]LocationAccess, error)
}
