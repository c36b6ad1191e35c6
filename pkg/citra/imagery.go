package citra

import "time"

// ImageUploadRequest reserves an upload slot for a telescope image.
type ImageUploadRequest struct {
	Filename       string   `json:"filename"`
	TelescopeID    string   `json:"telescopeId"`
	Filesize       int64    `json:"filesize"`
	TaskID         *string  `json:"taskId,omitempty"`
	FieldOfViewDeg *float64 `json:"fieldOfViewDeg,omitempty"`
	SourceLimit    *int32   `json:"sourceLimit,omitempty"`
}

// ImageUploadResponse carries the presigned URL the image bytes are PUT to.
type ImageUploadResponse struct {
	UploadID     string    `json:"uploadId"`
	PresignedURL string    `json:"presignedUrl"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ImageStatus is the processing state of an uploaded image.
type ImageStatus struct {
	UploadID        string     `json:"uploadId"                  yaml:"uploadId"`
	Filename        string     `json:"filename"                  yaml:"filename"`
	TelescopeID     string     `json:"telescopeId"               yaml:"telescopeId"`
	TelescopeName   *string    `json:"telescopeName,omitempty"   yaml:"telescopeName,omitempty"`
	TaskID          *string    `json:"taskId,omitempty"          yaml:"taskId,omitempty"`
	UserID          string     `json:"userId"                    yaml:"userId"`
	Status          string     `json:"status"                    yaml:"status"`
	ProcessingStage *string    `json:"processingStage,omitempty" yaml:"processingStage,omitempty"`
	ErrorMessage    *string    `json:"errorMessage,omitempty"    yaml:"errorMessage,omitempty"`
	SourceCount     *int32     `json:"sourceCount,omitempty"     yaml:"sourceCount,omitempty"`
	SatelliteCount  *int32     `json:"satelliteCount,omitempty"  yaml:"satelliteCount,omitempty"`
	Filesize        int64      `json:"filesize"                  yaml:"filesize"`
	CreationEpoch   time.Time  `json:"creationEpoch"             yaml:"creationEpoch"`
	UpdateEpoch     *time.Time `json:"updateEpoch,omitempty"     yaml:"updateEpoch,omitempty"`
	ProcessedEpoch  *time.Time `json:"processedEpoch,omitempty"  yaml:"processedEpoch,omitempty"`
}

// ImageDataRequest controls how pixel data is rendered.
type ImageDataRequest struct {
	Binning  *int32  `url:"binning,omitempty"`
	Contrast *string `url:"contrast,omitempty"`
}

// ImageData is a rendered pixel grid.
type ImageData struct {
	UploadID string      `json:"uploadId"`
	Width    int32       `json:"width"`
	Height   int32       `json:"height"`
	Data     [][]float64 `json:"data"`
	MinValue float64     `json:"minValue"`
	MaxValue float64     `json:"maxValue"`
}

// ImageListQuery filters and pages image listings.
type ImageListQuery struct {
	Offset *int64  `url:"offset,omitempty"`
	Limit  *int64  `url:"limit,omitempty"`
	Status *string `url:"status,omitempty"`
}

// Filter is a photometric filter known to the API.
type Filter struct {
	Name               string   `json:"name"                         yaml:"name"`
	Category           *string  `json:"category,omitempty"           yaml:"category,omitempty"`
	CenterWavelengthNm *float64 `json:"centerWavelengthNm,omitempty" yaml:"centerWavelengthNm,omitempty"`
	BandwidthNm        *float64 `json:"bandwidthNm,omitempty"        yaml:"bandwidthNm,omitempty"`
	MinWavelengthNm    *float64 `json:"minWavelengthNm,omitempty"    yaml:"minWavelengthNm,omitempty"`
	MaxWavelengthNm    *float64 `json:"maxWavelengthNm,omitempty"    yaml:"maxWavelengthNm,omitempty"`
}

// FilterExpandRequest resolves filter names into full definitions.
type FilterExpandRequest struct {
	FilterNames []string `json:"filterNames"`
}

// FilterExpandResponse holds the resolved filters.
type FilterExpandResponse struct {
	Filters []Filter `json:"filters"`
}

// WeatherQuery selects the location of a forecast. Latitude and longitude are always sent.
type WeatherQuery struct {
	LatitudeDeg  float64 `url:"lat"`
	LongitudeDeg float64 `url:"lon"`
	Units        *string `url:"units,omitempty"`
}

// WeatherCondition is a coded weather description.
type WeatherCondition struct {
	ID          *int64  `json:"id,omitempty"          yaml:"id,omitempty"`
	Main        *string `json:"main,omitempty"        yaml:"main,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"        yaml:"icon,omitempty"`
}

// CurrentWeather is the observed weather at the forecast location.
type CurrentWeather struct {
	DT         *int64             `json:"dt,omitempty"         yaml:"dt,omitempty"`
	Sunrise    *int64             `json:"sunrise,omitempty"    yaml:"sunrise,omitempty"`
	Sunset     *int64             `json:"sunset,omitempty"     yaml:"sunset,omitempty"`
	Temp       float64            `json:"temp"                 yaml:"temp"`
	FeelsLike  *float64           `json:"feelsLike,omitempty"  yaml:"feelsLike,omitempty"`
	Pressure   *int64             `json:"pressure,omitempty"   yaml:"pressure,omitempty"`
	Humidity   *int64             `json:"humidity,omitempty"   yaml:"humidity,omitempty"`
	DewPoint   *float64           `json:"dewPoint,omitempty"   yaml:"dewPoint,omitempty"`
	UVI        *float64           `json:"uvi,omitempty"        yaml:"uvi,omitempty"`
	Clouds     *int64             `json:"clouds,omitempty"     yaml:"clouds,omitempty"`
	Visibility *int64             `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	WindSpeed  *float64           `json:"windSpeed,omitempty"  yaml:"windSpeed,omitempty"`
	WindDeg    *int64             `json:"windDeg,omitempty"    yaml:"windDeg,omitempty"`
	WindGust   *float64           `json:"windGust,omitempty"   yaml:"windGust,omitempty"`
	Weather    []WeatherCondition `json:"weather,omitempty"    yaml:"weather,omitempty"`
}

// MinutelyForecast is the precipitation forecast for one minute.
type MinutelyForecast struct {
	DT            int64   `json:"dt"            yaml:"dt"`
	Precipitation float64 `json:"precipitation" yaml:"precipitation"`
}

// WeatherResponse is the forecast for a location.
type WeatherResponse struct {
	Lat            float64            `json:"lat"                      yaml:"lat"`
	Lon            float64            `json:"lon"                      yaml:"lon"`
	Timezone       *string            `json:"timezone,omitempty"       yaml:"timezone,omitempty"`
	TimezoneOffset *int64             `json:"timezoneOffset,omitempty" yaml:"timezoneOffset,omitempty"`
	Current        CurrentWeather     `json:"current"                  yaml:"current"`
	Minutely       []MinutelyForecast `json:"minutely,omitempty"       yaml:"minutely,omitempty"`
}
