// Package leadsapi is the HTTP implementation of the views' remote lead
// client, speaking to the server's /api/leads routes.
package leadsapi

import (
	"agent-server/internal/leads/view"
	"agent-server/internal/observability"
	"agent-server/internal/store"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const leadsPath = "/api/leads"

var _ view.RemoteClient = (*Client)(nil)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("leads api returned %d", e.StatusCode)
	}
	return e.Message
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a client for the server at baseURL. token, when set, is
// sent as a bearer token.
func NewClient(baseURL, token string, logger *observability.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// WithHTTPClient swaps the underlying http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) List(ctx context.Context) ([]store.Lead, error) {
	var resp struct {
		Leads []store.Lead `json:"leads"`
	}
	if err := c.do(ctx, http.MethodGet, leadsPath, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Leads == nil {
		return []store.Lead{}, nil
	}
	return resp.Leads, nil
}

func (c *Client) Insert(ctx context.Context, fields view.LeadFields) (store.Lead, error) {
	var lead store.Lead
	if err := c.do(ctx, http.MethodPost, leadsPath, fields, &lead); err != nil {
		return store.Lead{}, err
	}
	return lead, nil
}

func (c *Client) Update(ctx context.Context, leadID uuid.UUID, fields view.LeadFields) error {
	return c.do(ctx, http.MethodPatch, leadsPath+"/"+leadID.String(), fields, nil)
}

func (c *Client) Delete(ctx context.Context, leadID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, leadsPath+"/"+leadID.String(), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "method", Value: method},
		observability.Field{Key: "path", Value: path},
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.logger.Error(ctx, "failed to marshal leads api request", err)
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		c.logger.Error(ctx, "failed to create leads api request", err)
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call leads api", err)
		return fmt.Errorf("failed to call leads api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		c.logger.Info(ctx, fmt.Sprintf("leads api returned %d: %s", resp.StatusCode, apiErr.Error))
		return &StatusError{StatusCode: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Error}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error(ctx, "failed to parse leads api response", err)
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
