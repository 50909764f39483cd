package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cbodonnell/tictaccube/pkg/verify"
	"github.com/cbodonnell/tictaccube/pkg/workers"
)

// ErrMalformedResponse is returned when the proxy answers with something that
// is not the expected JSON document.
var ErrMalformedResponse = errors.New("malformed response")

// Client talks to the messaging proxy over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ verify.Checker = &Client{}
var _ workers.Sender = &Client{}

type NewClientOptions struct {
	// BaseURL is the root of the proxy, e.g. http://localhost:8080.
	BaseURL string
	// HTTPClient defaults to a client with a 10 second timeout.
	HTTPClient *http.Client
}

func NewClient(opts NewClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
	}
}

type checkResponse struct {
	ChatID *int64 `json:"chat_id"`
	Error  string `json:"error,omitempty"`
}

type sendRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type sendResponse struct {
	OK        bool   `json:"ok"`
	MessageID int    `json:"message_id"`
	Error     string `json:"error,omitempty"`
}

// Check asks the proxy whether the session token was confirmed by a chat.
func (c *Client) Check(ctx context.Context, token string) (verify.Verification, error) {
	endpoint := fmt.Sprintf("%s/check?session=%s", c.baseURL, url.QueryEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return verify.Verification{}, fmt.Errorf("failed to create check request: %v", err)
	}

	resp := &checkResponse{}
	if err := c.do(req, resp); err != nil {
		return verify.Verification{}, err
	}
	if resp.ChatID == nil {
		return verify.Verification{}, nil
	}
	return verify.Verification{ChatID: *resp.ChatID, Confirmed: true}, nil
}

// Send delivers an HTML formatted message to a chat through the proxy.
func (c *Client) Send(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(sendRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create send request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp := &sendResponse{}
	if err := c.do(req, resp); err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("proxy did not accept the message: %w", ErrMalformedResponse)
	}
	return nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %v", req.URL.Path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %v", req.URL.Path, err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d: %s", req.URL.Path, res.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.URL.Path, ErrMalformedResponse)
	}
	return nil
}
