package citra

import "time"

// Satellite is a catalog entry.
type Satellite struct {
	ID                      string     `json:"id"                                yaml:"id"`
	Name                    string     `json:"name"                              yaml:"name"`
	NoradCatID              *int64     `json:"noradCatId,omitempty"              yaml:"noradCatId,omitempty"`
	CreationEpoch           *time.Time `json:"creationEpoch,omitempty"           yaml:"creationEpoch,omitempty"`
	DecayEpoch              *time.Time `json:"decayEpoch,omitempty"              yaml:"decayEpoch,omitempty"`
	LaunchDateEpoch         *time.Time `json:"launchDateEpoch,omitempty"         yaml:"launchDateEpoch,omitempty"`
	Type                    *string    `json:"type,omitempty"                    yaml:"type,omitempty"`
	OriginType              *string    `json:"originType,omitempty"              yaml:"originType,omitempty"`
	ManeuverCapability      *string    `json:"maneuverCapability,omitempty"      yaml:"maneuverCapability,omitempty"`
	OpticalCrossSection     *float64   `json:"opticalCrossSection,omitempty"     yaml:"opticalCrossSection,omitempty"`
	RadarCrossSection       *float64   `json:"radarCrossSection,omitempty"       yaml:"radarCrossSection,omitempty"`
	AliasCount              *int64     `json:"aliasCount,omitempty"              yaml:"aliasCount,omitempty"`
	ElsetCount              *int64     `json:"elsetCount,omitempty"              yaml:"elsetCount,omitempty"`
	TransmissionCount       *int64     `json:"transmissionCount,omitempty"       yaml:"transmissionCount,omitempty"`
	CountryCode             *string    `json:"countryCode,omitempty"             yaml:"countryCode,omitempty"`
	CountryName             *string    `json:"countryName,omitempty"             yaml:"countryName,omitempty"`
	CountryISO              *string    `json:"countryIso,omitempty"              yaml:"countryIso,omitempty"`
	Site                    *string    `json:"site,omitempty"                    yaml:"site,omitempty"`
	LaunchSiteName          *string    `json:"launchSiteName,omitempty"          yaml:"launchSiteName,omitempty"`
	OrbitRegime             *string    `json:"orbitRegime,omitempty"             yaml:"orbitRegime,omitempty"`
	OrbitRegimeFullName     *string    `json:"orbitRegimeFullName,omitempty"     yaml:"orbitRegimeFullName,omitempty"`
	AltitudeKm              *float64   `json:"altitudeKm,omitempty"              yaml:"altitudeKm,omitempty"`
	AltitudeDisplay         *string    `json:"altitudeDisplay,omitempty"         yaml:"altitudeDisplay,omitempty"`
	CoverageType            *string    `json:"coverageType,omitempty"            yaml:"coverageType,omitempty"`
	CoverageDescription     *string    `json:"coverageDescription,omitempty"     yaml:"coverageDescription,omitempty"`
	InternationalDesignator *string    `json:"internationalDesignator,omitempty" yaml:"internationalDesignator,omitempty"`
	RCSSize                 *string    `json:"rcsSize,omitempty"                 yaml:"rcsSize,omitempty"`
	PeriodMinutes           *float64   `json:"periodMinutes,omitempty"           yaml:"periodMinutes,omitempty"`
	InclinationDeg          *float64   `json:"inclinationDeg,omitempty"          yaml:"inclinationDeg,omitempty"`
	ApogeeKm                *float64   `json:"apogeeKm,omitempty"                yaml:"apogeeKm,omitempty"`
	PerigeeKm               *float64   `json:"perigeeKm,omitempty"               yaml:"perigeeKm,omitempty"`
	SemiMajorAxisKm         *float64   `json:"semiMajorAxisKm,omitempty"         yaml:"semiMajorAxisKm,omitempty"`
	Eccentricity            *float64   `json:"eccentricity,omitempty"            yaml:"eccentricity,omitempty"`
	UpdateEpoch             *time.Time `json:"updateEpoch,omitempty"             yaml:"updateEpoch,omitempty"`
}

// SatelliteOverview summarises the catalog and sensor network.
type SatelliteOverview struct {
	ActiveSatelliteCount  int64 `json:"activeSatelliteCount"  yaml:"activeSatelliteCount"`
	DecayedSatelliteCount int64 `json:"decayedSatelliteCount" yaml:"decayedSatelliteCount"`
	AntennaCount          int64 `json:"antennaCount"          yaml:"antennaCount"`
	TelescopeCount        int64 `json:"telescopeCount"        yaml:"telescopeCount"`
}

// SatelliteListQuery filters the satellite catalog.
type SatelliteListQuery struct {
	IDs            []string `url:"ids,omitempty,comma"`
	Search         *string  `url:"search,omitempty"`
	Country        *string  `url:"country,omitempty"`
	ObjectType     *string  `url:"objectType,omitempty"`
	IncludeDecayed *bool    `url:"includeDecayed,omitempty"`
	SortBy         *string  `url:"sortBy,omitempty"`
	SortOrder      *string  `url:"sortOrder,omitempty"`
	Offset         *int     `url:"offset,omitempty"`
	Limit          *int     `url:"limit,omitempty"`
}

// SatellitePageQuery selects one page of the catalog.
type SatellitePageQuery struct {
	Offset int `url:"offset"`
	Limit  int `url:"limit"`
}

// SatellitePageResponse is the envelope returned by the satellite list endpoint.
type SatellitePageResponse struct {
	Items []Satellite `json:"items"`
}

// SatellitePaginatedResponse is one page of the catalog.
type SatellitePaginatedResponse struct {
	Satellites []Satellite `json:"satellites" yaml:"satellites"`
	TotalPages int         `json:"totalPages" yaml:"totalPages"`
}

// CountryCount is the number of catalog objects attributed to a country.
type CountryCount struct {
	Country *string `json:"country,omitempty" yaml:"country,omitempty"`
	Name    *string `json:"name,omitempty"    yaml:"name,omitempty"`
	Code    *string `json:"code,omitempty"    yaml:"code,omitempty"`
	Count   int64   `json:"count"             yaml:"count"`
}

// TimeRangeQuery bounds a time-series request. Nil bounds are left to the server.
type TimeRangeQuery struct {
	Start *time.Time `url:"start,omitempty"`
	End   *time.Time `url:"end,omitempty"`
}

// CloseApproach is a predicted conjunction between two objects.
type CloseApproach struct {
	SatelliteID         string    `json:"satelliteId"`
	SatelliteName       *string   `json:"satelliteName,omitempty"`
	OtherSatelliteID    string    `json:"otherSatelliteId"`
	OtherSatelliteName  *string   `json:"otherSatelliteName,omitempty"`
	Epoch               time.Time `json:"epoch"`
	DistanceKm          float64   `json:"distanceKm"`
	RelativeVelocityKmS *float64  `json:"relativeVelocityKmS,omitempty"`
}

// RelativeState is the position of one object relative to another.
type RelativeState struct {
	Epoch        time.Time `json:"epoch"`
	RangeKm      float64   `json:"rangeKm"`
	RangeRateKmS float64   `json:"rangeRateKmS"`
	InTrackKm    *float64  `json:"inTrackKm,omitempty"`
	CrossTrackKm *float64  `json:"crossTrackKm,omitempty"`
	RadialKm     *float64  `json:"radialKm,omitempty"`
}

// GroundTrackPoint is the sub-satellite point at an epoch.
type GroundTrackPoint struct {
	Epoch        time.Time `json:"epoch"`
	LatitudeDeg  float64   `json:"latitudeDeg"`
	LongitudeDeg float64   `json:"longitudeDeg"`
	AltitudeKm   float64   `json:"altitudeKm"`
}

// ObservationBounds is the span of observations held for a satellite.
type ObservationBounds struct {
	SatelliteID      string     `json:"satelliteId"`
	FirstObservation *time.Time `json:"firstObservation,omitempty"`
	LastObservation  *time.Time `json:"lastObservation,omitempty"`
	ObservationCount *int64     `json:"observationCount,omitempty"`
}

// ObservationResidual is one angles-only observation to score against the current orbit.
type ObservationResidual struct {
	Epoch              time.Time `json:"epoch"`
	RightAscensionDeg  float64   `json:"rightAscensionDeg"`
	DeclinationDeg     float64   `json:"declinationDeg"`
	SensorLatitudeDeg  float64   `json:"sensorLatitudeDeg"`
	SensorLongitudeDeg float64   `json:"sensorLongitudeDeg"`
	SensorAltitudeKm   float64   `json:"sensorAltitudeKm"`
}

// ResidualsRequest is the body of a residuals computation.
type ResidualsRequest struct {
	Observations []ObservationResidual `json:"observations"`
}

// ResidualResult is the angular error of one observation.
type ResidualResult struct {
	Epoch                        time.Time `json:"epoch"`
	RightAscensionResidualArcsec float64   `json:"rightAscensionResidualArcsec"`
	DeclinationResidualArcsec    float64   `json:"declinationResidualArcsec"`
	TotalResidualArcsec          float64   `json:"totalResidualArcsec"`
}

// OrbitalElements is the classical element set of a satellite.
type OrbitalElements struct {
	Epoch                time.Time `json:"epoch"`
	SemiMajorAxisKm      float64   `json:"semiMajorAxisKm"`
	Eccentricity         float64   `json:"eccentricity"`
	InclinationDeg       float64   `json:"inclinationDeg"`
	RAANDeg              float64   `json:"raanDeg"`
	ArgumentOfPerigeeDeg float64   `json:"argumentOfPerigeeDeg"`
	MeanAnomalyDeg       float64   `json:"meanAnomalyDeg"`
	PeriodMinutes        *float64  `json:"periodMinutes,omitempty"`
	ApogeeKm             *float64  `json:"apogeeKm,omitempty"`
	PerigeeKm            *float64  `json:"perigeeKm,omitempty"`
}

// EphemerisQuery selects the span and spacing of generated ephemeris.
type EphemerisQuery struct {
	Start       *time.Time `url:"start,omitempty"`
	End         *time.Time `url:"end,omitempty"`
	StepSeconds *float64   `url:"stepSeconds,omitempty"`
}

// EphemerisPoint is an inertial state vector.
type EphemerisPoint struct {
	Epoch          time.Time  `json:"epoch"`
	PositionECIKm  [3]float64 `json:"positionEciKm"`
	VelocityECIKmS [3]float64 `json:"velocityEciKmS"`
}

// SatelliteGroup is a named collection of satellites.
type SatelliteGroup struct {
	ID            string     `json:"id"                      yaml:"id"`
	Title         string     `json:"title"                   yaml:"title"`
	Details       *string    `json:"details,omitempty"       yaml:"details,omitempty"`
	UserID        *string    `json:"userId,omitempty"        yaml:"userId,omitempty"`
	UserGroupID   *string    `json:"userGroupId,omitempty"   yaml:"userGroupId,omitempty"`
	Username      *string    `json:"username,omitempty"      yaml:"username,omitempty"`
	SatelliteIDs  []string   `json:"satelliteIds,omitempty"  yaml:"satelliteIds,omitempty"`
	IsFavorited   *bool      `json:"isFavorited,omitempty"   yaml:"isFavorited,omitempty"`
	CreationEpoch *time.Time `json:"creationEpoch,omitempty" yaml:"creationEpoch,omitempty"`
	UpdateEpoch   *time.Time `json:"updateEpoch,omitempty"   yaml:"updateEpoch,omitempty"`
}

// CreateSatelliteGroupRequest is the body of a group creation.
type CreateSatelliteGroupRequest struct {
	Title        string   `json:"title"`
	Details      *string  `json:"details,omitempty"`
	SatelliteIDs []string `json:"satelliteIds"`
}

// CreateSatelliteGroupResponse carries the id of a newly created group.
type CreateSatelliteGroupResponse struct {
	ID string `json:"id"`
}

// UpdateSatelliteGroupRequest renames or redescribes a group. ID selects the group.
type UpdateSatelliteGroupRequest struct {
	ID      string  `json:"id"`
	Title   *string `json:"title,omitempty"`
	Details *string `json:"details,omitempty"`
}

// SatelliteGroupMembersRequest adds or removes members of a group.
type SatelliteGroupMembersRequest struct {
	SatelliteIDs []string `json:"satelliteIds"`
}
