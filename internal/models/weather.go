package models

// WeatherSnapshot is the display model for one current-conditions lookup.
// Snapshots are fetched fresh per request and never cached or persisted.
type WeatherSnapshot struct {
	City        string   `json:"city"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	IconURL     string   `json:"icon_url"`
	TempC       int      `json:"temp_c"`
	FeelsLikeC  int      `json:"feels_like_c"`
	Humidity    int      `json:"humidity"`
	WindSpeed   float64  `json:"wind_speed"`
	Pressure    int      `json:"pressure"`
	RainOneH    *float64 `json:"rain_1h,omitempty"` // mm over the last hour, when reported
}
