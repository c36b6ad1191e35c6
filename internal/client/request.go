package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// resourcePath joins path segments, escaping each one. Empty segments are rejected
// so an empty identifier never collapses into a collection path.
func resourcePath(segments ...string) (string, error) {
	escaped := make([]string, 0, len(segments))

	for _, segment := range segments {
		if segment == "" {
			return "", citra.ErrIDRequired
		}

		escaped = append(escaped, url.PathEscape(segment))
	}

	return strings.Join(escaped, "/"), nil
}

// encodeQuery renders a query DTO. Nil pointers and omitempty fields contribute nothing.
func encodeQuery(params interface{}) (url.Values, error) {
	values, err := query.Values(params)
	if err != nil {
		return nil, &citra.TransportError{Op: "encoding query", Err: err}
	}

	return values, nil
}

// decode parses a response body. Malformed JSON is reported as a transport error.
func decode[T any](resp *http.Response) (*T, error) {
	var result T

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &citra.TransportError{Op: "decoding response", Err: err}
	}

	return &result, nil
}

func getOne[T any](ctx context.Context, httpClient *http.Client, path string, params url.Values, what string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	result, err := decode[T](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return result, nil
}

func getList[T any](ctx context.Context, httpClient *http.Client, path string, params url.Values, what string) ([]T, error) {
	resp, err := httpClient.Get(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	items, err := decode[[]T](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", what, err)
	}

	return *items, nil
}

// send issues a request with a JSON body and decodes the response into T.
func send[T any](ctx context.Context, httpClient *http.Client, method, path string, body interface{}, action string) (*T, error) {
	resp, err := httpClient.Do(ctx, &http.Request{Method: method, Path: path, Body: body})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	result, err := decode[T](resp)
	if err != nil {
		return nil, fmt.Errorf("%s: parsing response: %w", action, err)
	}

	return result, nil
}

// postList POSTs a request and decodes an array response.
func postList[T any](ctx context.Context, httpClient *http.Client, path string, request interface{}, action string) ([]T, error) {
	items, err := send[[]T](ctx, httpClient, "POST", path, request, action)
	if err != nil {
		return nil, err
	}

	return *items, nil
}

// sendNoContent issues a request whose response body is ignored.
func sendNoContent(ctx context.Context, httpClient *http.Client, method, path string, body interface{}, action string) error {
	_, err := httpClient.Do(ctx, &http.Request{Method: method, Path: path, Body: body})
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	return nil
}

// batchOne sends a single item to an endpoint that accepts and returns arrays,
// and returns the first element of the response.
func batchOne[T, R any](ctx context.Context, httpClient *http.Client, method, path string, item *R, action string) (*T, error) {
	if item == nil {
		return nil, citra.ErrRequestRequired
	}

	items, err := send[[]T](ctx, httpClient, method, path, []*R{item}, action)
	if err != nil {
		return nil, err
	}

	if len(*items) == 0 {
		return nil, fmt.Errorf("%s: %w", action, citra.ErrEmptyBatchResponse)
	}

	return &(*items)[0], nil
}

// batchDelete removes one resource through a collection endpoint that takes an array of ids.
func batchDelete(ctx context.Context, httpClient *http.Client, path, id, action string) error {
	if id == "" {
		return citra.ErrIDRequired
	}

	_, err := httpClient.DeleteWithBody(ctx, path, []string{id})
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	return nil
}
