/**
 * @description
 * HTTP Client for the JSONBin.io v3 API.
 * Stores and retrieves whole-store snapshots as private JSON bins.
 *
 * @dependencies
 * - net/http
 * - encoding/json
 * - backend/internal/config
 *
 * @notes
 * - Every request carries the X-Master-Key header; a missing key is reported
 *   as ErrNoMasterKey before any network call.
 */

package jsonbin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paintcompare/backend/internal/config"
	"github.com/paintcompare/backend/internal/models"
)

const (
	DefaultTimeout = 10 * time.Second
)

// ErrNoMasterKey indicates the JSONBIN_MASTER_KEY variable is not configured
var ErrNoMasterKey = errors.New("jsonbin master key is not configured")

type Client struct {
	BaseURL    string
	MasterKey  string
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:   cfg.JSONBin.BaseURL,
		MasterKey: cfg.JSONBin.MasterKey,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

func (c *Client) do(ctx context.Context, method, url string, body []byte, extraHeaders map[string]string) ([]byte, error) {
	if c.MasterKey == "" {
		return nil, ErrNoMasterKey
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Master-Key", c.MasterKey)
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("jsonbin api error: status %d - %s", resp.StatusCode, string(payload))
	}
	return payload, nil
}

// CreateBin creates a new private bin holding the snapshot and returns its id
func (c *Client) CreateBin(ctx context.Context, name string, snap models.Snapshot) (string, error) {
	body, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}

	payload, err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/b", c.BaseURL), body, map[string]string{
		"X-Bin-Name":    name,
		"X-Bin-Private": "true",
	})
	if err != nil {
		return "", err
	}

	var res BinResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return "", err
	}
	return res.Metadata.ID, nil
}

// UpdateBin replaces the contents of an existing bin with the snapshot
func (c *Client) UpdateBin(ctx context.Context, binID string, snap models.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPut, fmt.Sprintf("%s/b/%s", c.BaseURL, binID), body, nil)
	return err
}

// GetBin fetches the snapshot stored in a bin
func (c *Client) GetBin(ctx context.Context, binID string) (models.Snapshot, error) {
	payload, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/b/%s", c.BaseURL, binID), nil, nil)
	if err != nil {
		return models.Snapshot{}, err
	}

	var res BinResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return models.Snapshot{}, err
	}
	return res.Record, nil
}

// DeleteBin removes a bin
func (c *Client) DeleteBin(ctx context.Context, binID string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/b/%s", c.BaseURL, binID), nil, nil)
	return err
}

// TestConnection verifies the key works against the collections endpoint
func (c *Client) TestConnection(ctx context.Context) bool {
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/c", c.BaseURL), nil, nil)
	return err == nil
}
