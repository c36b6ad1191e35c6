package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/internal/constants"
	"github.com/citra-space/citra-go/pkg/citra"
)

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		value   string
		want    Config
		wantErr error
	}{
		{name: "api key is trimmed", key: "api-key", value: "  citra_pat_123 \n", want: Config{APIKey: "citra_pat_123"}},
		{name: "env alias", key: "env", value: "dev", want: Config{Env: "development"}},
		{name: "unknown env", key: "env", value: "staging", wantErr: citra.ErrUnknownEnvironment},
		{name: "output", key: "output", value: "yaml", want: Config{Output: "yaml"}},
		{name: "bad output", key: "output", value: "xml", wantErr: constants.ErrInvalidOutputFormat},
		{name: "profile", key: "profile", value: "work", want: Config{Profile: "work"}},
		{name: "unknown key", key: "token", value: "x", wantErr: constants.ErrUnknownConfigKey},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &Config{}

			err := setConfigValue(config, testCase.key, testCase.value)
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, *config)
		})
	}
}

func TestGetConfigValue(t *testing.T) {
	t.Parallel()

	config := &Config{APIKey: "citra_pat_abcdef", Env: "production"}

	value, err := getConfigValue(config, "api-key")
	require.NoError(t, err)
	assert.Equal(t, "***cdef", value)

	value, err = getConfigValue(config, "env")
	require.NoError(t, err)
	assert.Equal(t, "production", value)

	_, err = getConfigValue(config, "output")
	require.ErrorIs(t, err, constants.ErrConfigKeyNotSet)

	_, err = getConfigValue(config, "space")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
}

func TestValidateOutputFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"", "table", "json", "yaml"} {
		require.NoError(t, ValidateOutputFormat(format), format)
	}

	require.ErrorIs(t, ValidateOutputFormat("csv"), constants.ErrInvalidOutputFormat)
}
