package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/pkg/citra"
)

// NewTestClient creates a new test client talking to baseURL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&citra.Config{APIKey: "test-key", BaseURL: baseURL})
	require.NoError(t, err)

	return client
}

// writeTestResponse writes a JSON body, or a plain-text error body when the status is not 2xx.
func writeTestResponse(writer http.ResponseWriter, statusCode int, response interface{}) {
	if statusCode >= http.StatusBadRequest {
		writer.WriteHeader(statusCode)
		_, _ = writer.Write([]byte(http.StatusText(statusCode)))

		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)

	if response != nil {
		_ = json.NewEncoder(writer).Encode(response)
	}
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// TestListOperation represents a generic list operation test case.
type TestListOperation struct {
	Name          string
	ExpectedPath  string
	ExpectedQuery url.Values
	StatusCode    int
	Response      interface{}
	WantLen       int
	WantErr       bool
	ErrMessage    string
}

// TestBatchCreateOperation represents a create or update sent as a one-element array.
type TestBatchCreateOperation[TRequest, TResponse any] struct {
	Name           string
	Request        *TRequest
	ExpectedMethod string
	ExpectedPath   string
	StatusCode     int
	Response       interface{}
	WantErr        bool
	ErrIs          error
	ErrMessage     string
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	ExpectedBody string
	StatusCode   int
	WantErr      bool
	ErrIs        error
	ErrMessage   string
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				assert.Equal(t, "Bearer test-key", request.Header.Get("Authorization"))
				writeTestResponse(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			getFn := getFunc(NewTestClient(t, server.URL))
			result, err := getFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, testCase.Response, result)
			}
		})
	}
}

// RunListTests runs a series of list operation tests.
func RunListTests[TResource any](
	t *testing.T,
	tests []TestListOperation,
	listFunc func(*Client) func(context.Context) ([]TResource, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)

				if testCase.ExpectedQuery != nil {
					assert.Equal(t, testCase.ExpectedQuery, request.URL.Query())
				}

				writeTestResponse(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			listFn := listFunc(NewTestClient(t, server.URL))
			result, err := listFn(context.Background())

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Len(t, result, testCase.WantLen)
			}
		})
	}
}

// RunBatchCreateTests runs create or update tests against endpoints that take and return arrays.
// The request body must be an array holding exactly one element.
func RunBatchCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestBatchCreateOperation[TRequest, TResponse],
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, testCase.ExpectedMethod, request.Method)
				assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

				var body []json.RawMessage

				assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
				assert.Len(t, body, 1)

				writeTestResponse(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			createFn := createFunc(NewTestClient(t, server.URL))
			result, err := createFn(context.Background(), testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrIs != nil {
					require.ErrorIs(t, err, testCase.ErrIs)
				}

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunDeleteTests runs a series of delete operation tests. When ExpectedBody is set the
// request body must match it, as for batch deletes.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodDelete, request.Method)

				body, _ := io.ReadAll(request.Body)
				assert.Equal(t, testCase.ExpectedBody, string(body))

				writeTestResponse(writer, testCase.StatusCode, nil)
			}))
			defer server.Close()

			deleteFn := deleteFunc(NewTestClient(t, server.URL))
			err := deleteFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrIs != nil {
					require.ErrorIs(t, err, testCase.ErrIs)
				}

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 {
	return &f
}
