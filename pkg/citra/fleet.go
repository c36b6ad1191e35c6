package citra

import "time"

// Telescope is an optical sensor registered with the API.
type Telescope struct {
	ID                  string     `json:"id"                            yaml:"id"`
	Name                string     `json:"name"                          yaml:"name"`
	GroundStationID     *string    `json:"groundStationId,omitempty"     yaml:"groundStationId,omitempty"`
	UserID              string     `json:"userId"                        yaml:"userId"`
	SatelliteID         *string    `json:"satelliteId,omitempty"         yaml:"satelliteId,omitempty"`
	CreationEpoch       time.Time  `json:"creationEpoch"                 yaml:"creationEpoch"`
	LastConnectionEpoch *time.Time `json:"lastConnectionEpoch,omitempty" yaml:"lastConnectionEpoch,omitempty"`
	// AngularNoiseArcsec is the astrometric noise floor in arcseconds.
	AngularNoiseArcsec float64 `json:"angularNoise"        yaml:"angularNoise"`
	FieldOfViewDeg     float64 `json:"fieldOfView"         yaml:"fieldOfView"`
	// LimitingMagnitude is the faintest visual magnitude the telescope detects.
	LimitingMagnitude   float64 `json:"maxMagnitude"        yaml:"maxMagnitude"`
	MinElevationDeg     float64 `json:"minElevation"        yaml:"minElevation"`
	MaxSlewRateDegS     float64 `json:"maxSlewRate"         yaml:"maxSlewRate"`
	HomeAzimuthDeg      float64 `json:"homeAzimuth"         yaml:"homeAzimuth"`
	HomeElevationDeg    float64 `json:"homeElevation"       yaml:"homeElevation"`
	AutomatedScheduling bool    `json:"automatedScheduling" yaml:"automatedScheduling"`
}

// TelescopeRequest holds the caller-settable telescope fields. ID is only
// sent on update.
type TelescopeRequest struct {
	ID                  string  `json:"id,omitempty"`
	Name                string  `json:"name"`
	GroundStationID     *string `json:"groundStationId,omitempty"`
	SatelliteID         *string `json:"satelliteId,omitempty"`
	AngularNoiseArcsec  float64 `json:"angularNoise"`
	FieldOfViewDeg      float64 `json:"fieldOfView"`
	LimitingMagnitude   float64 `json:"maxMagnitude"`
	MinElevationDeg     float64 `json:"minElevation"`
	MaxSlewRateDegS     float64 `json:"maxSlewRate"`
	HomeAzimuthDeg      float64 `json:"homeAzimuth"`
	HomeElevationDeg    float64 `json:"homeElevation"`
	AutomatedScheduling bool    `json:"automatedScheduling"`
}

// GroundStation is a fixed terrestrial site hosting telescopes and antennas.
type GroundStation struct {
	ID                  string     `json:"id"                            yaml:"id"`
	Name                string     `json:"name"                          yaml:"name"`
	LatitudeDeg         float64    `json:"latitude"                      yaml:"latitude"`
	LongitudeDeg        float64    `json:"longitude"                     yaml:"longitude"`
	AltitudeM           float64    `json:"altitude"                      yaml:"altitude"`
	UserID              string     `json:"userId"                        yaml:"userId"`
	CreationEpoch       time.Time  `json:"creationEpoch"                 yaml:"creationEpoch"`
	LastConnectionEpoch *time.Time `json:"lastConnectionEpoch,omitempty" yaml:"lastConnectionEpoch,omitempty"`
}

// GroundStationRequest holds the caller-settable ground station fields.
type GroundStationRequest struct {
	Name         string  `json:"name"`
	LatitudeDeg  float64 `json:"latitude"`
	LongitudeDeg float64 `json:"longitude"`
	AltitudeM    float64 `json:"altitude"`
}

// GroundStationListResponse is the envelope returned by the ground station list endpoint.
type GroundStationListResponse struct {
	GroundStations []GroundStation `json:"groundStations"`
}

// Antenna is an RF sensor registered with the API.
type Antenna struct {
	ID                  string     `json:"id"                            yaml:"id"`
	UserID              string     `json:"userId"                        yaml:"userId"`
	UserGroupID         *string    `json:"userGroupId,omitempty"         yaml:"userGroupId,omitempty"`
	GroundStationID     *string    `json:"groundStationId,omitempty"     yaml:"groundStationId,omitempty"`
	SatelliteID         *string    `json:"satelliteId,omitempty"         yaml:"satelliteId,omitempty"`
	CreationEpoch       time.Time  `json:"creationEpoch"                 yaml:"creationEpoch"`
	LastConnectionEpoch *time.Time `json:"lastConnectionEpoch,omitempty" yaml:"lastConnectionEpoch,omitempty"`
	Name                string     `json:"name"                          yaml:"name"`
	MinFrequencyHz      float64    `json:"minFrequency"                  yaml:"minFrequency"`
	MaxFrequencyHz      float64    `json:"maxFrequency"                  yaml:"maxFrequency"`
	MinElevationDeg     float64    `json:"minElevation"                  yaml:"minElevation"`
	MaxSlewRateDegS     float64    `json:"maxSlewRate"                   yaml:"maxSlewRate"`
	HomeAzimuthDeg      float64    `json:"homeAzimuth"                   yaml:"homeAzimuth"`
	HomeElevationDeg    float64    `json:"homeElevation"                 yaml:"homeElevation"`
	HalfPowerBeamWidth  float64    `json:"halfPowerBeamWidth"            yaml:"halfPowerBeamWidth"`
}

// AntennaRequest holds the caller-settable antenna fields. ID is only sent on update.
type AntennaRequest struct {
	ID                 string  `json:"id,omitempty"`
	Name               string  `json:"name"`
	GroundStationID    *string `json:"groundStationId,omitempty"`
	SatelliteID        *string `json:"satelliteId,omitempty"`
	MinFrequencyHz     float64 `json:"minFrequency"`
	MaxFrequencyHz     float64 `json:"maxFrequency"`
	MinElevationDeg    float64 `json:"minElevation"`
	MaxSlewRateDegS    float64 `json:"maxSlewRate"`
	HomeAzimuthDeg     float64 `json:"homeAzimuth"`
	HomeElevationDeg   float64 `json:"homeElevation"`
	HalfPowerBeamWidth float64 `json:"halfPowerBeamWidth"`
}

// Task is a scheduled observation of a satellite by a sensor.
type Task struct {
	ID                 string     `json:"id"                           yaml:"id"`
	Type               string     `json:"type"                         yaml:"type"`
	Status             TaskStatus `json:"status"                       yaml:"status"`
	CreationEpoch      time.Time  `json:"creationEpoch"                yaml:"creationEpoch"`
	UpdateEpoch        time.Time  `json:"updateEpoch"                  yaml:"updateEpoch"`
	TaskStart          time.Time  `json:"taskStart"                    yaml:"taskStart"`
	TaskStop           time.Time  `json:"taskStop"                     yaml:"taskStop"`
	UserID             *string    `json:"userId,omitempty"             yaml:"userId,omitempty"`
	Username           *string    `json:"username,omitempty"           yaml:"username,omitempty"`
	SatelliteID        string     `json:"satelliteId"                  yaml:"satelliteId"`
	SatelliteName      *string    `json:"satelliteName,omitempty"      yaml:"satelliteName,omitempty"`
	TelescopeID        string     `json:"telescopeId"                  yaml:"telescopeId"`
	TelescopeName      *string    `json:"telescopeName,omitempty"      yaml:"telescopeName,omitempty"`
	GroundStationID    string     `json:"groundStationId"              yaml:"groundStationId"`
	GroundStationName  *string    `json:"groundStationName,omitempty"  yaml:"groundStationName,omitempty"`
	Priority           int32      `json:"priority"                     yaml:"priority"`
	ScheduledStart     *time.Time `json:"scheduledStart,omitempty"     yaml:"scheduledStart,omitempty"`
	ScheduledStop      *time.Time `json:"scheduledStop,omitempty"      yaml:"scheduledStop,omitempty"`
	RangeKm            *float64   `json:"rangeKm,omitempty"            yaml:"rangeKm,omitempty"`
	RangeRateKmS       *float64   `json:"rangeRateKmS,omitempty"       yaml:"rangeRateKmS,omitempty"`
	RightAscension     *float64   `json:"rightAscension,omitempty"     yaml:"rightAscension,omitempty"`
	RightAscensionRate *float64   `json:"rightAscensionRate,omitempty" yaml:"rightAscensionRate,omitempty"`
	Declination        *float64   `json:"declination,omitempty"        yaml:"declination,omitempty"`
	DeclinationRate    *float64   `json:"declinationRate,omitempty"    yaml:"declinationRate,omitempty"`
}

// TaskUpdateRequest changes the state of an existing task. ID selects the task.
type TaskUpdateRequest struct {
	ID             string     `json:"id"`
	Status         TaskStatus `json:"status"`
	Priority       *int32     `json:"priority,omitempty"`
	ScheduledStart *time.Time `json:"scheduledStart,omitempty"`
	ScheduledStop  *time.Time `json:"scheduledStop,omitempty"`
}

// CreateTaskRequest asks the API to observe a satellite with a telescope or antenna.
type CreateTaskRequest struct {
	TelescopeID *string   `json:"telescopeId,omitempty"`
	SatelliteID string    `json:"satelliteId"`
	AntennaID   *string   `json:"antennaId,omitempty"`
	TaskStart   time.Time `json:"taskStart"`
	TaskStop    time.Time `json:"taskStop"`
}

// TaskStatusQuery filters task lists by status. Statuses are sent as
// repeated parameters in the order given; an empty slice sends none.
type TaskStatusQuery struct {
	Statuses []TaskStatus `url:"statuses,omitempty"`
}
