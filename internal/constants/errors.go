package constants

import "errors"

// Authentication errors.
var (
	ErrNoAPIKey          = errors.New("no API key configured, use 'citra login' or set CITRA_API_KEY")
	ErrEmptyAPIKeyInput  = errors.New("API key cannot be empty")
	ErrAPIKeyVerifyFails = errors.New("API key was rejected by the server")
)

// Configuration errors.
var (
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrConfigKeyNotSet     = errors.New("configuration key is not set")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
)

// Validation errors.
var (
	ErrInvalidFilter       = errors.New("filter expression must evaluate to a boolean")
	ErrInvalidPriority     = errors.New("priority must not be negative")
	ErrNothingToUpdate     = errors.New("nothing to update, pass at least one of --status or --priority")
	ErrLatitudeOutOfRange  = errors.New("latitude must be between -90 and 90 degrees")
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180 degrees")
)
