// internal/widget/client.go
package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

const fallbackErrorMessage = "Something went wrong"

// Client calls the comment HTTP API on behalf of a widget.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// FetchComments retrieves the comment list for the widget's origin.
func (c *Client) FetchComments(ctx context.Context) ([]Comment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/comment", nil)
	if err != nil {
		return nil, err
	}
	env, err := c.do(req)
	if err != nil {
		return nil, err
	}

	comments := []Comment{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &comments); err != nil {
			return nil, errors.New(fallbackErrorMessage)
		}
	}
	return comments, nil
}

// SubmitComment posts a new comment and returns the created row.
func (c *Client) SubmitComment(ctx context.Context, author, body string) (*Comment, error) {
	payload, err := json.Marshal(map[string]string{
		"author": author,
		"body":   body,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/comment", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	env, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, errors.New(fallbackErrorMessage)
	}

	var comment Comment
	if err := json.Unmarshal(env.Data, &comment); err != nil {
		return nil, errors.New(fallbackErrorMessage)
	}
	return &comment, nil
}

// do executes the request and decodes the shared envelope, converting error
// statuses into errors carrying the envelope message.
func (c *Client) do(req *http.Request) (*envelope, error) {
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.New(fallbackErrorMessage)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, errors.New(fallbackErrorMessage)
	}

	if res.StatusCode >= http.StatusBadRequest || env.Error {
		message := env.Message
		if message == "" {
			message = fallbackErrorMessage
		}
		return nil, errors.New(message)
	}
	return &env, nil
}
