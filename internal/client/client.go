package client

import (
	"github.com/citra-space/citra-go/internal/auth"
	"github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// Client implements the citra.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string

	// Resource clients
	telescopes         *TelescopesClient
	groundStations     *GroundStationsClient
	antennas           *AntennasClient
	tasks              *TasksClient
	satellites         *SatellitesClient
	satelliteGroups    *SatelliteGroupsClient
	elsets             *ElsetsClient
	rfCaptures         *RFCapturesClient
	maneuvers          *ManeuversClient
	alertSubscriptions *AlertSubscriptionsClient
	observations       *ObservationsClient
	collectionRequests *CollectionRequestsClient
	filters            *FiltersClient
	images             *ImagesClient
	weather            *WeatherClient
	account            *AccountClient
	accessTokens       *AccessTokensClient
	orbitDetermination *OrbitDeterminationClient
	access             *AccessClient
}

var _ citra.Client = (*Client)(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *citra.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(*config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	return httpOpts
}

// resolveBaseURL prefers an explicit base URL over the environment.
func resolveBaseURL(config *citra.Config) (string, error) {
	if config.BaseURL != "" {
		return config.BaseURL, nil
	}

	baseURL, err := config.Environment.BaseURL()
	if err != nil {
		return "", err
	}

	return baseURL, nil
}

// New creates a new API client. It performs no network I/O.
func New(config *citra.Config) (*Client, error) {
	if config == nil {
		return nil, citra.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, citra.ErrAPIKeyRequired
	}

	return NewWithTokenManager(config, auth.NewStaticTokenManager(config.APIKey))
}

// NewWithTokenManager creates a new API client that asks tokenManager for the
// bearer token on every request. config.APIKey is ignored.
func NewWithTokenManager(config *citra.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, citra.ErrConfigRequired
	}

	baseURL, err := resolveBaseURL(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      httpClient.BaseURL(),
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.telescopes = NewTelescopesClient(c.httpClient)
	c.groundStations = NewGroundStationsClient(c.httpClient)
	c.antennas = NewAntennasClient(c.httpClient)
	c.tasks = NewTasksClient(c.httpClient)
	c.satellites = NewSatellitesClient(c.httpClient)
	c.satelliteGroups = NewSatelliteGroupsClient(c.httpClient)
	c.elsets = NewElsetsClient(c.httpClient)
	c.rfCaptures = NewRFCapturesClient(c.httpClient)
	c.maneuvers = NewManeuversClient(c.httpClient)
	c.alertSubscriptions = NewAlertSubscriptionsClient(c.httpClient)
	c.observations = NewObservationsClient(c.httpClient)
	c.collectionRequests = NewCollectionRequestsClient(c.httpClient)
	c.filters = NewFiltersClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
	c.weather = NewWeatherClient(c.httpClient)
	c.account = NewAccountClient(c.httpClient)
	c.accessTokens = NewAccessTokensClient(c.httpClient)
	c.orbitDetermination = NewOrbitDeterminationClient(c.httpClient)
	c.access = NewAccessClient(c.httpClient)
}

// BaseURL returns the base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Resource client accessors

// Telescopes implements citra.Client.Telescopes.
func (c *Client) Telescopes() citra.TelescopesClient {
	return c.telescopes
}

// GroundStations implements citra.Client.GroundStations.
func (c *Client) GroundStations() citra.GroundStationsClient {
	return c.groundStations
}

// Antennas implements citra.Client.Antennas.
func (c *Client) Antennas() citra.AntennasClient {
	return c.antennas
}

// Tasks implements citra.Client.Tasks.
func (c *Client) Tasks() citra.TasksClient {
	return c.tasks
}

// Satellites implements citra.Client.Satellites.
func (c *Client) Satellites() citra.SatellitesClient {
	return c.satellites
}

// SatelliteGroups implements citra.Client.SatelliteGroups.
func (c *Client) SatelliteGroups() citra.SatelliteGroupsClient {
	return c.satelliteGroups
}

// Elsets implements citra.Client.Elsets.
func (c *Client) Elsets() citra.ElsetsClient {
	return c.elsets
}

// RFCaptures implements citra.Client.RFCaptures.
func (c *Client) RFCaptures() citra.RFCapturesClient {
	return c.rfCaptures
}

// Maneuvers implements citra.Client.Maneuvers.
func (c *Client) Maneuvers() citra.ManeuversClient {
	return c.maneuvers
}

// AlertSubscriptions implements citra.Client.AlertSubscriptions.
func (c *Client) AlertSubscriptions() citra.AlertSubscriptionsClient {
	return c.alertSubscriptions
}

// Observations implements citra.Client.Observations.
func (c *Client) Observations() citra.ObservationsClient {
	return c.observations
}

// CollectionRequests implements citra.Client.CollectionRequests.
func (c *Client) CollectionRequests() citra.CollectionRequestsClient {
	return c.collectionRequests
}

// Filters implements citra.Client.Filters.
func (c *Client) Filters() citra.FiltersClient {
	return c.filters
}

// Images implements citra.Client.Images.
func (c *Client) Images() citra.ImagesClient {
	return c.images
}

// Weather implements citra.Client.Weather.
func (c *Client) Weather() citra.WeatherClient {
	return c.weather
}

// Account implements citra.Client.Account.
func (c *Client) Account() citra.AccountClient {
	return c.account
}

// AccessTokens implements citra.Client.AccessTokens.
func (c *Client) AccessTokens() citra.AccessTokensClient {
	return c.accessTokens
}

// OrbitDetermination implements citra.Client.OrbitDetermination.
func (c *Client) OrbitDetermination() citra.OrbitDeterminationClient {
	return c.orbitDetermination
}

// Access implements citra.Client.Access.
func (c *Client) Access() citra.AccessClient {
	return c.access
}
