package citra

import "time"

// Elset is a set of mean orbital elements for a satellite at an epoch.
type Elset struct {
	ID                   string     `json:"id"                             yaml:"id"`
	SatelliteID          string     `json:"satelliteId"                    yaml:"satelliteId"`
	SatelliteName        *string    `json:"satelliteName,omitempty"        yaml:"satelliteName,omitempty"`
	UserID               *string    `json:"userId,omitempty"               yaml:"userId,omitempty"`
	UserGroupID          *string    `json:"userGroupId,omitempty"          yaml:"userGroupId,omitempty"`
	UserGroupName        *string    `json:"userGroupName,omitempty"        yaml:"userGroupName,omitempty"`
	Username             *string    `json:"username,omitempty"             yaml:"username,omitempty"`
	UserTier             *string    `json:"userTier,omitempty"             yaml:"userTier,omitempty"`
	ReviewStatus         *string    `json:"reviewStatus,omitempty"         yaml:"reviewStatus,omitempty"`
	Epoch                time.Time  `json:"epoch"                          yaml:"epoch"`
	Type                 *string    `json:"type,omitempty"                 yaml:"type,omitempty"`
	MeanMotion           float64    `json:"meanMotion"                     yaml:"meanMotion"`
	Eccentricity         float64    `json:"eccentricity"                   yaml:"eccentricity"`
	Inclination          float64    `json:"inclination"                    yaml:"inclination"`
	RAAN                 float64    `json:"raan"                           yaml:"raan"`
	ArgumentOfPerigee    float64    `json:"argumentOfPerigee"              yaml:"argumentOfPerigee"`
	MeanAnomaly          float64    `json:"meanAnomaly"                    yaml:"meanAnomaly"`
	BStar                *float64   `json:"bStar,omitempty"                yaml:"bStar,omitempty"`
	MeanMotionDot        *float64   `json:"meanMotionDot,omitempty"        yaml:"meanMotionDot,omitempty"`
	MeanMotionDotDot     *float64   `json:"meanMotionDotDot,omitempty"     yaml:"meanMotionDotDot,omitempty"`
	BallisticCoefficient *float64   `json:"ballisticCoefficient,omitempty" yaml:"ballisticCoefficient,omitempty"`
	SRPCoefficient       *float64   `json:"srpCoefficient,omitempty"       yaml:"srpCoefficient,omitempty"`
	RMS                  *float64   `json:"rms,omitempty"                  yaml:"rms,omitempty"`
	TLE                  []string   `json:"tle,omitempty"                  yaml:"tle,omitempty"`
	SemiMajorAxis        *float64   `json:"semiMajorAxis,omitempty"        yaml:"semiMajorAxis,omitempty"`
	NoradID              *int64     `json:"noradId,omitempty"              yaml:"noradId,omitempty"`
	ElementSetNo         *int32     `json:"elementSetNo,omitempty"         yaml:"elementSetNo,omitempty"`
	RevAtEpoch           *int32     `json:"revAtEpoch,omitempty"           yaml:"revAtEpoch,omitempty"`
	PeriodMinutes        *float64   `json:"periodMinutes,omitempty"        yaml:"periodMinutes,omitempty"`
	ApogeeKm             *float64   `json:"apogeeKm,omitempty"             yaml:"apogeeKm,omitempty"`
	PerigeeKm            *float64   `json:"perigeeKm,omitempty"            yaml:"perigeeKm,omitempty"`
	Source               *string    `json:"source,omitempty"               yaml:"source,omitempty"`
	IsXP                 *bool      `json:"isXp,omitempty"                 yaml:"isXp,omitempty"`
	Rejected             *bool      `json:"rejected,omitempty"             yaml:"rejected,omitempty"`
	CreationEpoch        *time.Time `json:"creationEpoch,omitempty"        yaml:"creationEpoch,omitempty"`
}

// CreateElsetRequest submits a new element set.
type CreateElsetRequest struct {
	SatelliteID       string    `json:"satelliteId"`
	Epoch             time.Time `json:"epoch"`
	MeanMotion        float64   `json:"meanMotion"`
	Eccentricity      float64   `json:"eccentricity"`
	Inclination       float64   `json:"inclination"`
	RAAN              float64   `json:"raan"`
	ArgumentOfPerigee float64   `json:"argumentOfPerigee"`
	MeanAnomaly       float64   `json:"meanAnomaly"`
	BStar             *float64  `json:"bStar,omitempty"`
	MeanMotionDot     *float64  `json:"meanMotionDot,omitempty"`
	MeanMotionDotDot  *float64  `json:"meanMotionDotDot,omitempty"`
	Source            *string   `json:"source,omitempty"`
}

// ElsetCount is the number of element sets ingested in an hour.
type ElsetCount struct {
	Hour  time.Time `json:"hour"  yaml:"hour"`
	Count int64     `json:"count" yaml:"count"`
}

// GeoScatterPoint places a near-geosynchronous object on the longitude/inclination plane.
type GeoScatterPoint struct {
	SatelliteID   string   `json:"satelliteId"`
	SatelliteName *string  `json:"satelliteName,omitempty"`
	Longitude     float64  `json:"longitude"`
	Inclination   float64  `json:"inclination"`
	Eccentricity  *float64 `json:"eccentricity,omitempty"`
}

// LeoScatterPoint places a low-earth-orbit object on the altitude/inclination plane.
type LeoScatterPoint struct {
	SatelliteID   string   `json:"satelliteId"`
	SatelliteName *string  `json:"satelliteName,omitempty"`
	SemiMajorAxis float64  `json:"semiMajorAxis"`
	Inclination   float64  `json:"inclination"`
	Eccentricity  float64  `json:"eccentricity"`
	ApogeeKm      *float64 `json:"apogeeKm,omitempty"`
	PerigeeKm     *float64 `json:"perigeeKm,omitempty"`
}

// LeoScatterQuery bounds the LEO scatter by semi-major axis in kilometres.
type LeoScatterQuery struct {
	MinSemiMajorAxisKm *float64 `url:"minSemiMajorAxis,omitempty"`
	MaxSemiMajorAxisKm *float64 `url:"maxSemiMajorAxis,omitempty"`
}

// ElsetHistoryQuery filters a satellite's element set history.
type ElsetHistoryQuery struct {
	Start  *time.Time `url:"start,omitempty"`
	End    *time.Time `url:"end,omitempty"`
	Source *string    `url:"source,omitempty"`
	Limit  *int       `url:"limit,omitempty"`
}
