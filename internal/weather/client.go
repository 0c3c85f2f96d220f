package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/mr1hm/go-flood-safety/internal/models"
)

// ErrNoAPIKey marks the guarded short-circuit taken when no credential is
// configured. No request is issued in that case.
var ErrNoAPIKey = errors.New("no weather API key configured")

// Client fetches current conditions from the OpenWeatherMap API.
type Client struct {
	apiKey      string
	baseURL     string
	iconURL     string
	defaultCity string
	httpClient  *http.Client
}

func NewClient(apiKey, baseURL, iconURL, defaultCity string, timeout time.Duration) *Client {
	return &Client{
		apiKey:      apiKey,
		baseURL:     baseURL,
		iconURL:     iconURL,
		defaultCity: defaultCity,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type owmResponse struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain"`
	Name string             `json:"name"`
}

// Current fetches conditions for the given city in metric units. A blank city
// falls back to the configured default. One attempt, no retry.
func (c *Client) Current(ctx context.Context, city string) (*models.WeatherSnapshot, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if city == "" {
		city = c.defaultCity
	}

	params := url.Values{
		"q":     {city},
		"units": {"metric"},
		"appid": {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	var data owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}
	if len(data.Weather) == 0 {
		return nil, fmt.Errorf("response missing weather conditions for %q", city)
	}

	snap := &models.WeatherSnapshot{
		City:        data.Name,
		Description: data.Weather[0].Description,
		Icon:        data.Weather[0].Icon,
		IconURL:     fmt.Sprintf(c.iconURL, data.Weather[0].Icon),
		TempC:       int(math.Round(data.Main.Temp)),
		FeelsLikeC:  int(math.Round(data.Main.FeelsLike)),
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
		Pressure:    data.Main.Pressure,
	}
	if mm, ok := data.Rain["1h"]; ok {
		snap.RainOneH = &mm
	}

	return snap, nil
}
