package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/internal/auth"
	citrahttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// Static errors for err113 compliance.
var errTokenUnavailable = errors.New("token unavailable")

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/telescopes/tel-1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("Content-Type"))
			assert.NotEmpty(t, request.Header.Get("User-Agent"))

			response := map[string]string{"id": "tel-1", "name": "Backyard"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := citrahttp.NewClient(server.URL, auth.NewStaticTokenManager("test-token"))

		req := &citrahttp.Request{
			Method: "GET",
			Path:   "telescopes/tel-1",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "tel-1", result["id"])
		assert.Equal(t, "Backyard", result["name"])
	})

	t.Run("base url with trailing slash", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/my/account", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := citrahttp.NewClient(server.URL+"/", nil)

		resp, err := client.Get(context.Background(), "/my/account", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/telescopes/tel-1/tasks", request.URL.Path)
			assert.Equal(t, []string{"Pending", "Scheduled"}, request.URL.Query()["statuses"])
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := citrahttp.NewClient(server.URL, nil)

		req := &citrahttp.Request{
			Method: "GET",
			Path:   "telescopes/tel-1/tasks",
			Query:  url.Values{"statuses": []string{"Pending", "Scheduled"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body []map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			if assert.Len(t, body, 1) {
				assert.Equal(t, "Backyard", body[0]["name"])
			}

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := citrahttp.NewClient(server.URL, nil)

		req := &citrahttp.Request{
			Method: "POST",
			Path:   "telescopes",
			Body:   []map[string]string{{"name": "Backyard"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte("  telescope not found\n"))
		}))
		defer server.Close()

		client := citrahttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "telescopes/missing", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 404, resp.StatusCode)

		var apiErr *citra.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "  telescope not found\n", apiErr.Message)
		assert.True(t, citra.IsNotFound(err))
	})

	t.Run("error response with empty body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := citrahttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "my/account", nil)
		require.Error(t, err)
		assert.True(t, citra.IsUnauthorized(err))

		var apiErr *citra.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Empty(t, apiErr.Message)
	})

	t.Run("error response body is kept verbatim", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte("  bad\n  input\n"))
		}))
		defer server.Close()

		client := citrahttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "telescopes", nil)

		var apiErr *citra.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "  bad\n  input\n", apiErr.Message)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "citra-test/0.1", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := citrahttp.NewClient(server.URL, nil, citrahttp.WithUserAgent("citra-test/0.1"))

		req := &citrahttp.Request{
			Method: "GET",
			Path:   "telescopes",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("token manager failure", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			hits.Add(1)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := citrahttp.NewClient(server.URL, &MockTokenManager{err: errTokenUnavailable})

		_, err := client.Get(context.Background(), "telescopes", nil)
		require.ErrorIs(t, err, errTokenUnavailable)
		assert.Equal(t, int32(0), hits.Load())
	})

	t.Run("unencodable body", func(t *testing.T) {
		t.Parallel()

		client := citrahttp.NewClient("http://127.0.0.1:0", nil)

		_, err := client.Post(context.Background(), "tasks", map[string]interface{}{"bad": make(chan int)})
		require.Error(t, err)

		var transportErr *citra.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "encoding request body", transportErr.Op)
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := citrahttp.NewClient(serverURL, nil)

		resp, err := client.Get(context.Background(), "telescopes", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, citra.IsTransportError(err))
		assert.True(t, strings.HasPrefix(err.Error(), "HTTP error: "))
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		var buf bytes.Buffer

		logger := zerolog.New(&buf)
		client := citrahttp.NewClient(server.URL, nil, citrahttp.WithLogger(logger), citrahttp.WithDebug(true))

		_, err := client.Get(context.Background(), "telescopes", nil)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)

		var first, second map[string]interface{}

		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
		assert.Equal(t, "HTTP Request", first["message"])
		assert.Equal(t, "HTTP Response", second["message"])
	})

	t.Run("without debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		var buf bytes.Buffer

		client := citrahttp.NewClient(server.URL, nil, citrahttp.WithLogger(zerolog.New(&buf)))

		_, err := client.Get(context.Background(), "telescopes", nil)
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		wantBody string
		fn       func(*citrahttp.Client, context.Context) (*citrahttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *citrahttp.Client, ctx context.Context) (*citrahttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:     "POST",
			method:   "POST",
			wantBody: `{"key":"value"}`,
			fn: func(c *citrahttp.Client, ctx context.Context) (*citrahttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:     "PUT",
			method:   "PUT",
			wantBody: `{"key":"value"}`,
			fn: func(c *citrahttp.Client, ctx context.Context) (*citrahttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:     "PATCH",
			method:   "PATCH",
			wantBody: `{"key":"value"}`,
			fn: func(c *citrahttp.Client, ctx context.Context) (*citrahttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *citrahttp.Client, ctx context.Context) (*citrahttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
		{
			name:     "DELETE with body",
			method:   "DELETE",
			wantBody: `["id-1"]`,
			fn: func(c *citrahttp.Client, ctx context.Context) (*citrahttp.Response, error) {
				return c.DeleteWithBody(ctx, "/test", []string{"id-1"})
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)

				body, _ := io.ReadAll(request.Body)
				assert.Equal(t, testCase.wantBody, string(body))

				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := citrahttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_NoRetry(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusInternalServerError, http.StatusTooManyRequests, http.StatusBadRequest} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				attempts.Add(1)
				writer.WriteHeader(status)
			}))
			defer server.Close()

			client := citrahttp.NewClient(server.URL, nil)

			resp, err := client.Get(context.Background(), "/test", nil)
			require.Error(t, err)
			assert.Equal(t, status, resp.StatusCode)
			assert.Equal(t, int32(1), attempts.Load())
		})
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-request.Context().Done():
		case <-time.After(2 * time.Second):
		}

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := citrahttp.NewClient(server.URL, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/slow", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-request.Context().Done():
		case <-time.After(2 * time.Second):
		}

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := citrahttp.NewClient(server.URL, nil, citrahttp.WithTimeout(50*time.Millisecond))

	_, err := client.Get(context.Background(), "/slow", nil)
	require.Error(t, err)
	assert.True(t, citra.IsTransportError(err))
}
