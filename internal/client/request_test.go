package client

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/pkg/citra"
)

func TestResourcePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		segments []string
		want     string
		wantErr  error
	}{
		{name: "single segment", segments: []string{"telescopes"}, want: "telescopes"},
		{name: "nested", segments: []string{"satellites", "sat-1", "elsets", "latest"}, want: "satellites/sat-1/elsets/latest"},
		{name: "slash is escaped", segments: []string{"telescopes", "a/b"}, want: "telescopes/a%2Fb"},
		{name: "space is escaped", segments: []string{"telescopes", "a b"}, want: "telescopes/a%20b"},
		{name: "empty id", segments: []string{"telescopes", ""}, wantErr: citra.ErrIDRequired},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := resourcePath(testCase.segments...)

			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestEncodeQuery(t *testing.T) {
	t.Parallel()

	t.Run("nil pointer is empty", func(t *testing.T) {
		t.Parallel()

		var query *citra.TimeRangeQuery

		values, err := encodeQuery(query)
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("times render as RFC 3339", func(t *testing.T) {
		t.Parallel()

		start := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

		values, err := encodeQuery(&citra.TimeRangeQuery{Start: &start})
		require.NoError(t, err)
		assert.Equal(t, url.Values{"start": {"2025-06-01T12:30:00Z"}}, values)
	})

	t.Run("non-struct is a transport error", func(t *testing.T) {
		t.Parallel()

		_, err := encodeQuery(42)
		require.Error(t, err)
		assert.True(t, citra.IsTransportError(err))
	})
}
