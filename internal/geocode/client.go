package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Result is a reverse-geocoded point with its display address.
type Result struct {
	FormattedAddress string  `json:"formatted_address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// Geocoder resolves a geographic point to a human-readable address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (Result, error)
}

// Client implements Geocoder against a Nominatim-compatible reverse endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// ReverseGeocode is a one-shot request-response; failures carry the underlying
// reason and are never retried here.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (Result, error) {
	params := url.Values{
		"lat":    {fmt.Sprintf("%.6f", lat)},
		"lon":    {fmt.Sprintf("%.6f", lng)},
		"format": {"jsonv2"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "go-flood-safety")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("geocoder error: status %d: %s", resp.StatusCode, body)
	}

	var data nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if data.Error != "" {
		return Result{}, fmt.Errorf("geocoder error: %s", data.Error)
	}

	return Result{
		FormattedAddress: data.DisplayName,
		Latitude:         lat,
		Longitude:        lng,
	}, nil
}
