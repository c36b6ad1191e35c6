package citra

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	for _, status := range TaskStatuses {
		parsed, err := ParseTaskStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseTaskStatus("pending")
	require.ErrorIs(t, err, ErrInvalidTaskStatus)

	_, err = ParseTaskStatus("")
	require.ErrorIs(t, err, ErrInvalidTaskStatus)
}

func TestTaskStatus_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(struct {
		Status TaskStatus `json:"status"`
	}{Status: TaskStatusCanceled})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Canceled"}`, string(data))

	_, err = json.Marshal(struct {
		Status TaskStatus `json:"status"`
	}{})
	require.ErrorIs(t, err, ErrInvalidTaskStatus)

	var task struct {
		Status TaskStatus `json:"status"`
	}

	err = json.Unmarshal([]byte(`{"status":"Exploded"}`), &task)
	require.ErrorIs(t, err, ErrInvalidTaskStatus)
}

func TestEnums_RejectUnknownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   interface{}
		wantErr error
	}{
		{name: "sensor frame", value: SensorFrame("ICRF"), wantErr: ErrInvalidSensorFrame},
		{name: "alert type", value: AlertType("eclipse"), wantErr: ErrInvalidAlertType},
		{name: "target type", value: TargetType("constellation"), wantErr: ErrInvalidTargetType},
		{name: "collection request type", value: CollectionRequestType("track"), wantErr: ErrInvalidRequestType},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := json.Marshal(testCase.value)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestEnums_WireValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value interface{}
		want  string
	}{
		{value: SensorFrameJ2000, want: `"J2000"`},
		{value: SensorFrameTEME, want: `"TEME"`},
		{value: AlertTypeCloseApproach, want: `"closeapproach"`},
		{value: TargetTypeSatelliteGroup, want: `"satellitegroup"`},
		{value: CollectionRequestTypeTDOA, want: `"TDOA"`},
	}

	for _, testCase := range tests {
		data, err := json.Marshal(testCase.value)
		require.NoError(t, err)
		assert.Equal(t, testCase.want, string(data))
	}

	var frame SensorFrame

	require.NoError(t, json.Unmarshal([]byte(`"TEME"`), &frame))
	assert.Equal(t, SensorFrameTEME, frame)
}

func TestEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Environment
		wantURL string
		wantErr bool
	}{
		{input: "", want: EnvironmentProduction, wantURL: ProductionBaseURL},
		{input: "prod", want: EnvironmentProduction, wantURL: ProductionBaseURL},
		{input: "production", want: EnvironmentProduction, wantURL: ProductionBaseURL},
		{input: "dev", want: EnvironmentDevelopment, wantURL: DevelopmentBaseURL},
		{input: "development", want: EnvironmentDevelopment, wantURL: DevelopmentBaseURL},
		{input: "staging", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			env, err := ParseEnvironment(testCase.input)
			if testCase.wantErr {
				require.ErrorIs(t, err, ErrUnknownEnvironment)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, env)

			baseURL, err := env.BaseURL()
			require.NoError(t, err)
			assert.Equal(t, testCase.wantURL, baseURL)
		})
	}

	_, err := Environment("staging").BaseURL()
	require.ErrorIs(t, err, ErrUnknownEnvironment)
}
