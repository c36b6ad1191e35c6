package citra

import "time"

// SatelliteAccessToGroundStationRequest asks for the windows in which a
// satellite rises above a ground station's horizon mask.
type SatelliteAccessToGroundStationRequest struct {
	GroundStationID    string    `json:"groundStationId"`
	Start              time.Time `json:"start"`
	End                time.Time `json:"end"`
	MinElevationDeg    float64   `json:"minElevation"`
	MinDurationMinutes float64   `json:"minDuration"`
	MinFrequencyMHz    *float64  `json:"minFrequencyMhz,omitempty"`
	MaxFrequencyMHz    *float64  `json:"maxFrequencyMhz,omitempty"`
}

// TrackingParameters is the look angle to a satellite at an instant.
type TrackingParameters struct {
	Epoch            time.Time `json:"epoch"                   yaml:"epoch"`
	AzimuthDeg       float64   `json:"azimuth"                 yaml:"azimuth"`
	ElevationDeg     float64   `json:"elevation"               yaml:"elevation"`
	AzimuthRateDegS  *float64  `json:"azimuthRate,omitempty"   yaml:"azimuthRate,omitempty"`
	ElevationRateDeg *float64  `json:"elevationRate,omitempty" yaml:"elevationRate,omitempty"`
	RangeKm          *float64  `json:"range,omitempty"         yaml:"range,omitempty"`
	RangeRateKmS     *float64  `json:"rangeRate,omitempty"     yaml:"rangeRate,omitempty"`
}

// HorizonAccess is one pass of a satellite over a ground station.
type HorizonAccess struct {
	SatelliteID       string             `json:"satelliteId"                 yaml:"satelliteId"`
	SatelliteName     *string            `json:"satelliteName,omitempty"     yaml:"satelliteName,omitempty"`
	GroundStationID   string             `json:"groundStationId"             yaml:"groundStationId"`
	GroundStationName *string            `json:"groundStationName,omitempty" yaml:"groundStationName,omitempty"`
	Start             TrackingParameters `json:"start"                       yaml:"start"`
	End               TrackingParameters `json:"end"                         yaml:"end"`
	DurationMinutes   float64            `json:"duration"                    yaml:"duration"`
}

// FOVAccessRequest asks which catalog objects fall inside a sensor's field of view.
type FOVAccessRequest struct {
	Epoch              time.Time   `json:"epoch"`
	RightAscensionDeg  float64     `json:"rightAscension"`
	DeclinationDeg     float64     `json:"declination"`
	FieldOfViewDeg     float64     `json:"fieldOfView"`
	SensorLatitudeDeg  float64     `json:"sensorLatitude"`
	SensorLongitudeDeg float64     `json:"sensorLongitude"`
	SensorAltitudeKm   float64     `json:"sensorAltitude"`
	SensorFrame        SensorFrame `json:"sensorFrame"`
}

// FOVAccessResponse is a catalog object inside the requested field of view.
type FOVAccessResponse struct {
	SatelliteID       string  `json:"satelliteId"    yaml:"satelliteId"`
	SatelliteName     *string `json:"name,omitempty" yaml:"name,omitempty"`
	RightAscensionDeg float64 `json:"rightAscension" yaml:"rightAscension"`
	DeclinationDeg    float64 `json:"declination"    yaml:"declination"`
}

// GeoAccessQuery bounds a search of the geosynchronous belt.
type GeoAccessQuery struct {
	MinLongitudeDeg    *float64 `url:"minLongitude,omitempty"`
	MaxLongitudeDeg    *float64 `url:"maxLongitude,omitempty"`
	MinSemiMajorAxisKm *float64 `url:"minSemiMajorAxis,omitempty"`
	MaxSemiMajorAxisKm *float64 `url:"maxSemiMajorAxis,omitempty"`
	MaxInclinationDeg  *float64 `url:"maxInclination,omitempty"`
}

// GeoAccess is a geosynchronous object matching a GeoAccessQuery.
type GeoAccess struct {
	SatelliteID     string   `json:"satelliteId"`
	SatelliteName   *string  `json:"satelliteName,omitempty"`
	LongitudeDeg    float64  `json:"longitude"`
	InclinationDeg  float64  `json:"inclination"`
	SemiMajorAxisKm *float64 `json:"semiMajorAxis,omitempty"`
}

// LocationAccessRequest asks for passes over an arbitrary geodetic point.
type LocationAccessRequest struct {
	LatitudeDeg        float64   `json:"latitude"`
	LongitudeDeg       float64   `json:"longitude"`
	AltitudeKm         float64   `json:"altitude"`
	SatelliteIDs       []string  `json:"satelliteIds,omitempty"`
	Start              time.Time `json:"start"`
	End                time.Time `json:"end"`
	MinElevationDeg    float64   `json:"minElevation"`
	MinDurationMinutes float64   `json:"minDuration"`
}

// LocationAccess is one pass of a satellite over a geodetic point.
type LocationAccess struct {
	SatelliteID     string             `json:"satelliteId"`
	SatelliteName   *string            `json:"satelliteName,omitempty"`
	LatitudeDeg     float64            `json:"latitude"`
	LongitudeDeg    float64            `json:"longitude"`
	Start           TrackingParameters `json:"start"`
	End             TrackingParameters `json:"end"`
	DurationMinutes float64            `json:"duration"`
}
