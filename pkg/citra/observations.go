package citra

import "time"

// OpticalObservation is an angles-only measurement of a satellite.
type OpticalObservation struct {
	ID                 *string    `json:"id,omitempty"`
	SatelliteID        string     `json:"satelliteId"`
	Epoch              time.Time  `json:"epoch"`
	RightAscensionDeg  float64    `json:"rightAscensionDeg"`
	DeclinationDeg     float64    `json:"declinationDeg"`
	RightAscensionRate *float64   `json:"rightAscensionRate,omitempty"`
	DeclinationRate    *float64   `json:"declinationRate,omitempty"`
	Magnitude          *float64   `json:"magnitude,omitempty"`
	SensorLatitudeDeg  float64    `json:"sensorLatitudeDeg"`
	SensorLongitudeDeg float64    `json:"sensorLongitudeDeg"`
	SensorAltitudeKm   float64    `json:"sensorAltitudeKm"`
	TelescopeID        *string    `json:"telescopeId,omitempty"`
	UploadID           *string    `json:"uploadId,omitempty"`
	UserID             *string    `json:"userId,omitempty"`
	CreationEpoch      *time.Time `json:"creationEpoch,omitempty"`
}

// CreateOpticalObservationRequest submits one angles-only measurement.
type CreateOpticalObservationRequest struct {
	SatelliteID        string    `json:"satelliteId"`
	Epoch              time.Time `json:"epoch"`
	RightAscensionDeg  float64   `json:"rightAscensionDeg"`
	DeclinationDeg     float64   `json:"declinationDeg"`
	RightAscensionRate *float64  `json:"rightAscensionRate,omitempty"`
	DeclinationRate    *float64  `json:"declinationRate,omitempty"`
	Magnitude          *float64  `json:"magnitude,omitempty"`
	SensorLatitudeDeg  float64   `json:"sensorLatitudeDeg"`
	SensorLongitudeDeg float64   `json:"sensorLongitudeDeg"`
	SensorAltitudeKm   float64   `json:"sensorAltitudeKm"`
	TelescopeID        *string   `json:"telescopeId,omitempty"`
}

// ObservationCount is the number of observations ingested in an hour.
type ObservationCount struct {
	Hour  time.Time `json:"hour"`
	Count int64     `json:"count"`
}

// ObservationQuery filters optical observations.
type ObservationQuery struct {
	SatelliteID *string    `url:"satelliteId,omitempty"`
	TelescopeID *string    `url:"telescopeId,omitempty"`
	Start       *time.Time `url:"start,omitempty"`
	End         *time.Time `url:"end,omitempty"`
	Offset      *int       `url:"offset,omitempty"`
	Limit       *int       `url:"limit,omitempty"`
}

// ODObservation is one input to an orbit determination.
type ODObservation struct {
	Epoch              time.Time `json:"epoch"`
	RightAscensionDeg  float64   `json:"rightAscensionDeg"`
	DeclinationDeg     float64   `json:"declinationDeg"`
	SensorLatitudeDeg  float64   `json:"sensorLatitudeDeg"`
	SensorLongitudeDeg float64   `json:"sensorLongitudeDeg"`
	SensorAltitudeKm   float64   `json:"sensorAltitudeKm"`
}

// ODRequest asks the API to fit an orbit to a set of observations.
type ODRequest struct {
	SatelliteID  *string         `json:"satelliteId,omitempty"`
	Observations []ODObservation `json:"observations"`
}

// ODResult is a fitted orbit.
type ODResult struct {
	Epoch                time.Time   `json:"epoch"`
	SemiMajorAxisKm      float64     `json:"semiMajorAxisKm"`
	Eccentricity         float64     `json:"eccentricity"`
	InclinationDeg       float64     `json:"inclinationDeg"`
	RAANDeg              float64     `json:"raanDeg"`
	ArgumentOfPerigeeDeg float64     `json:"argumentOfPerigeeDeg"`
	MeanAnomalyDeg       float64     `json:"meanAnomalyDeg"`
	PositionECIKm        [3]float64  `json:"positionEciKm"`
	VelocityECIKmS       [3]float64  `json:"velocityEciKmS"`
	RMSResidualArcsec    *float64    `json:"rmsResidualArcsec,omitempty"`
	Covariance           [][]float64 `json:"covariance,omitempty"`
}

// RFDetection is a signal found in a capture.
type RFDetection struct {
	CenterFrequencyHz int64   `json:"centerFrequencyHz"`
	BandwidthHz       int64   `json:"bandwidthHz"`
	StrengthDBm       float64 `json:"strengthDbm"`
	SNRdB             float64 `json:"snrDb"`
}

// RFPowerSpectralDensity is the sampled spectrum of a capture.
type RFPowerSpectralDensity struct {
	FrequencyHz   []int64   `json:"frequencyHz"`
	PowerDBmPerHz []float64 `json:"powerDbmPerHz"`
}

// RFCaptureData is the payload of a capture.
type RFCaptureData struct {
	Detections           []RFDetection          `json:"detections"`
	PowerSpectralDensity RFPowerSpectralDensity `json:"powerSpectralDensity"`
}

// CreateRFCaptureRequest uploads a capture from an antenna.
type CreateRFCaptureRequest struct {
	AntennaID    string        `json:"antennaId"`
	CaptureStart time.Time     `json:"captureStart"`
	CaptureEnd   time.Time     `json:"captureEnd"`
	Data         RFCaptureData `json:"data"`
	TaskID       *string       `json:"taskId,omitempty"`
}

// RFCapture is a stored capture including its payload.
type RFCapture struct {
	ID             string        `json:"id"`
	AntennaID      string        `json:"antennaId"`
	UserID         string        `json:"userId"`
	CaptureStart   time.Time     `json:"captureStart"`
	CaptureEnd     time.Time     `json:"captureEnd"`
	Data           RFCaptureData `json:"data"`
	DetectionCount int           `json:"detectionCount"`
	TaskID         *string       `json:"taskId,omitempty"`
	CreationEpoch  time.Time     `json:"creationEpoch"`
}

// RFCaptureSummary is a stored capture without its payload.
type RFCaptureSummary struct {
	ID             string    `json:"id"`
	AntennaID      string    `json:"antennaId"`
	UserID         string    `json:"userId"`
	CaptureStart   time.Time `json:"captureStart"`
	CaptureEnd     time.Time `json:"captureEnd"`
	DetectionCount int       `json:"detectionCount"`
	TaskID         *string   `json:"taskId,omitempty"`
	CreationEpoch  time.Time `json:"creationEpoch"`
}

// CollectionRequest asks the network to collect on a satellite.
type CollectionRequest struct {
	ID            string                `json:"id"`
	Type          CollectionRequestType `json:"type"`
	SatelliteID   string                `json:"satelliteId"`
	SatelliteName *string               `json:"satelliteName,omitempty"`
	UserID        string                `json:"userId"`
	Status        string                `json:"status"`
	Priority      *int32                `json:"priority,omitempty"`
	Start         time.Time             `json:"start"`
	End           time.Time             `json:"end"`
	Notes         *string               `json:"notes,omitempty"`
	CreationEpoch time.Time             `json:"creationEpoch"`
	UpdateEpoch   *time.Time            `json:"updateEpoch,omitempty"`
}

// CreateCollectionRequest is the body of a collection request submission.
type CreateCollectionRequest struct {
	Type        CollectionRequestType `json:"type"`
	SatelliteID string                `json:"satelliteId"`
	Start       time.Time             `json:"start"`
	End         time.Time             `json:"end"`
	Priority    *int32                `json:"priority,omitempty"`
	Notes       *string               `json:"notes,omitempty"`
}

// Maneuver is a detected change in a satellite's orbit.
type Maneuver struct {
	ID                  string     `json:"id"`
	SatelliteID         string     `json:"satelliteId"`
	SatelliteName       *string    `json:"satelliteName,omitempty"`
	Status              *string    `json:"status,omitempty"`
	Epoch               *time.Time `json:"epoch,omitempty"`
	Magnitude           *float64   `json:"magnitude,omitempty"`
	RadialMagnitude     *float64   `json:"radialMagnitude,omitempty"`
	InTrackMagnitude    *float64   `json:"inTrackMagnitude,omitempty"`
	CrossTrackMagnitude *float64   `json:"crossTrackMagnitude,omitempty"`
	CreationEpoch       *time.Time `json:"creationEpoch,omitempty"`
	UpdateEpoch         *time.Time `json:"updateEpoch,omitempty"`
}

// CreateManeuverRequest reports a maneuver.
type CreateManeuverRequest struct {
	SatelliteID         string     `json:"satelliteId"`
	Epoch               *time.Time `json:"epoch,omitempty"`
	Magnitude           *float64   `json:"magnitude,omitempty"`
	RadialMagnitude     *float64   `json:"radialMagnitude,omitempty"`
	InTrackMagnitude    *float64   `json:"inTrackMagnitude,omitempty"`
	CrossTrackMagnitude *float64   `json:"crossTrackMagnitude,omitempty"`
}

// UpdateManeuverRequest patches a maneuver. Nil fields are left unchanged.
type UpdateManeuverRequest struct {
	Status              *string    `json:"status,omitempty"`
	Epoch               *time.Time `json:"epoch,omitempty"`
	Magnitude           *float64   `json:"magnitude,omitempty"`
	RadialMagnitude     *float64   `json:"radialMagnitude,omitempty"`
	InTrackMagnitude    *float64   `json:"inTrackMagnitude,omitempty"`
	CrossTrackMagnitude *float64   `json:"crossTrackMagnitude,omitempty"`
}

// ManeuverListQuery filters maneuvers.
type ManeuverListQuery struct {
	SatelliteID *string    `url:"satelliteId,omitempty"`
	Status      *string    `url:"status,omitempty"`
	Start       *time.Time `url:"start,omitempty"`
	End         *time.Time `url:"end,omitempty"`
	Offset      *int       `url:"offset,omitempty"`
	Limit       *int       `url:"limit,omitempty"`
}
