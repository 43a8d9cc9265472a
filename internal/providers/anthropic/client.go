package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"outing-advisor/internal/types"
)

// API Docs: https://docs.anthropic.com/en/api/messages
const (
	defaultBaseURL = "https://api.anthropic.com"
	messagesPath   = "/v1/messages"

	defaultAPIVersion = "2023-06-01"
)

const providerName = "anthropic"

// Client is a Messages API client. Clients carry caller-supplied
// credentials and are constructed per request, never shared across
// callers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiVersion string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		apiVersion: defaultAPIVersion,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string, timeout time.Duration) *Client {
	c := NewClient(apiKey, timeout)
	c.baseURL = baseURL
	return c
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", c.apiVersion)
	req.Header.Set("Content-Type", "application/json")
}

// SendMessage sends a message request and returns the response.
// Authentication failures are reported as *types.AuthenticationError so
// the caller can prompt for new credentials; everything else surfaces as
// *types.UpstreamError.
func (c *Client) SendMessage(ctx context.Context, req *MessageRequest) (*MessageResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &types.UpstreamError{Provider: providerName, Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		// a 401 is an auth failure even when the body is empty or not
		// the documented error envelope
		var errorResp ErrorResponse
		_ = json.Unmarshal(respBody, &errorResp)
		if resp.StatusCode == http.StatusUnauthorized || errorResp.Error.Type == "authentication_error" {
			message := errorResp.Error.Message
			if message == "" {
				message = "credentials rejected"
			}
			return nil, &types.AuthenticationError{
				Provider: providerName,
				Message:  message,
			}
		}
		return nil, &types.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var messageResp MessageResponse
	if unmarshalErr := json.Unmarshal(respBody, &messageResp); unmarshalErr != nil {
		return nil, &types.UpstreamError{
			Provider: providerName,
			Err:      fmt.Errorf("failed to decode response: %w", unmarshalErr),
		}
	}

	return &messageResp, nil
}
