package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is an HTTP client for the Telegram Bot API
type Client struct {
	apiURL      string
	token       string
	pollTimeout time.Duration
	httpClient  *http.Client
}

// NewClient creates a new Bot API client. pollTimeout is the server-side
// long-poll wait passed to getUpdates; the HTTP client timeout is padded
// past it so the transport never cuts a poll short.
func NewClient(apiURL, token string, pollTimeout time.Duration) *Client {
	return &Client{
		apiURL:      apiURL,
		token:       token,
		pollTimeout: pollTimeout,
		httpClient: &http.Client{
			Timeout: pollTimeout + 15*time.Second,
		},
	}
}

// methodURL builds the URL for a Bot API method call
func (c *Client) methodURL(method string) string {
	return c.apiURL + "/bot" + c.token + "/" + method
}

// GetUpdates long-polls the backend for updates at or after offset. A nil
// error with an empty slice means the poll timed out with nothing new.
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	params := url.Values{}
	params.Set("offset", strconv.FormatInt(offset, 10))
	params.Set("timeout", strconv.FormatInt(int64(c.pollTimeout/time.Second), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.methodURL("getUpdates")+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("getUpdates returned status %d", resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.OK {
		return nil, &APIError{Code: envelope.ErrorCode, Description: envelope.Description}
	}

	var updates []Update
	if err := json.Unmarshal(envelope.Result, &updates); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}

	return updates, nil
}

// SendMessage sends a text message to the given chat
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendMessage"), bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("sendMessage returned status %d: %w", resp.StatusCode, err)
	}
	if !envelope.OK {
		return &APIError{Code: envelope.ErrorCode, Description: envelope.Description}
	}

	return nil
}

// Ensure Client implements the interfaces
var _ UpdateSource = (*Client)(nil)
var _ Sender = (*Client)(nil)
