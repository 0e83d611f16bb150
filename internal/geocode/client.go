package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client resolves coordinates to a display address through a
// Nominatim-compatible provider. Best-effort: the caller falls back to manual
// address entry on any error. Empty baseURL disables lookups.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Reverse returns the display address for lat/lng.
func (c *Client) Reverse(ctx context.Context, lat, lng string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("geocode: not configured")
	}
	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lng)
	q.Set("format", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("geocode: new request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode: status %d", resp.StatusCode)
	}
	var out reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("geocode: decode: %w", err)
	}
	if out.DisplayName == "" {
		return "", fmt.Errorf("geocode: empty result")
	}
	return out.DisplayName, nil
}
