package subformer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// httpClient handles HTTP communication with the Subformer API. It is the
// single component that performs network I/O; every service method goes
// through request.
type httpClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// newHTTPClient creates a new HTTP client.
func newHTTPClient(cfg *clientConfig) *httpClient {
	return &httpClient{
		client:  cfg.httpClient,
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		apiKey:  cfg.apiKey,
	}
}

// errorBody is the error envelope returned by the API on failure.
type errorBody struct {
	Message string          `json:"message"`
	Code    string          `json:"code,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// request performs a single HTTP exchange against baseURL+path.
//
// body, when non-nil, is marshaled as the JSON request body. query, when
// non-nil, is encoded into the URL. On a 2xx response the body is decoded
// into result (skipped for 204 or a nil result). On any other status the
// error envelope is classified into the error taxonomy and returned.
func (h *httpClient) request(ctx context.Context, method, path string, query url.Values, body, result any) error {
	u := h.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("x-api-key", h.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	return h.handleResponse(resp, result)
}

// handleResponse decides success or failure for one exchange.
func (h *httpClient) handleResponse(resp *http.Response, result any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return h.parseError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || result == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// parseError reads the error envelope and classifies it by status code.
// A non-JSON body degrades to the raw response text with no machine code.
func (h *httpClient) parseError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error response: %w", err)
	}

	var envelope errorBody
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Message == "" {
		envelope = errorBody{Message: string(data)}
	}

	return classifyError(resp.StatusCode, envelope)
}
