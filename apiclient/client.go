// Package apiclient - apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-campus-events/logger"
)

// Client is the HTTP client for the backend event-management API. The bearer
// credential is injected per request; the client itself holds no session
// state, so one instance serves every browser session.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL. A zero timeout falls back to
// 30 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
}

// doJSON performs one API call. A non-empty token is attached as an
// Authorization bearer header. body (if non-nil) is sent as JSON; out (if
// non-nil) receives the decoded response body.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setBearer(req, token)

	return c.send(req, path, out)
}

// doMultipart performs one API call with a multipart/form-data body, used for
// the event creation form with its photo upload.
func (c *Client) doMultipart(ctx context.Context, method, path, token string, fields map[string]string, fileField, fileName string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write form field %s: %w", key, err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy form file: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	setBearer(req, token)

	return c.send(req, path, out)
}

// send executes the request and decodes either the response body into out or
// the backend's error envelope into a typed error.
func (c *Client) send(req *http.Request, path string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn.Printf("send: transport failure on %s %s: %v", req.Method, path, err)
		return fmt.Errorf("%s %s: %w: %v", req.Method, path, ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		var envelope errorBody
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		apiErr := statusError(resp.StatusCode, envelope.Message)
		logger.Debug.Printf("send: %s %s -> %d (%s)", req.Method, path, resp.StatusCode, envelope.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

// setBearer attaches the credential to a single outgoing request. Header
// injection happens here and nowhere else; there is no shared default header.
func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// withQuery appends non-empty params to path.
func withQuery(path string, params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		if value != "" {
			values.Set(key, value)
		}
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
