package risk

import "strings"

// Input holds the four categorical factors plus informational extras. The
// location fields are carried through as metadata and never scored.
type Input struct {
	Elevation      string   `json:"elevation"`
	WaterProximity string   `json:"water_distance"`
	Drainage       string   `json:"drainage"`
	History        string   `json:"history"`
	Notes          string   `json:"notes,omitempty"`
	Location       Location `json:"location,omitempty"`
}

type Location struct {
	Street    string  `json:"street,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude,omitempty" validate:"omitempty,lat"`
	Longitude float64 `json:"longitude,omitempty" validate:"omitempty,lng"`
}

type Level string

const (
	LevelLow    Level = "Low Risk"
	LevelMedium Level = "Medium Risk"
	LevelHigh   Level = "High Risk"

	MaxScore = 12
)

type Result struct {
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Level    Level    `json:"level"`
	Class    string   `json:"class"`
	Advice   string   `json:"advice"`
	Factors  []string `json:"factors"`
	Notes    string   `json:"notes,omitempty"`
	Location Location `json:"location,omitempty"`
}

const (
	adviceHigh   = "Immediate action recommended. Consider flood protection measures and stay alert to weather warnings."
	adviceMedium = "Monitor weather conditions closely and have an emergency plan ready."
	adviceLow    = "Your area appears to be at lower risk, but staying prepared is still important."
)

// Assess scores the input additively, one independent contribution per factor.
// It is total over its inputs: unrecognized values contribute zero points and
// no factor bullet.
func Assess(in Input) Result {
	score := 0
	var factors []string

	switch norm(in.Elevation) {
	case "low":
		score += 3
		factors = append(factors, "Your area's low elevation increases flood risk")
	case "medium":
		score += 2
	}

	switch norm(in.WaterProximity) {
	case "very-close":
		score += 3
		factors = append(factors, "Close proximity to water body is a significant risk factor")
	case "close":
		score += 2
	}

	switch norm(in.Drainage) {
	case "poor":
		score += 3
		factors = append(factors, "Poor drainage system increases vulnerability")
	case "average":
		score += 1
	}

	switch norm(in.History) {
	case "frequent":
		score += 3
		factors = append(factors, "History of frequent flooding indicates high risk")
	case "occasional":
		score += 2
	}

	res := Result{
		Score:    score,
		MaxScore: MaxScore,
		Factors:  factors,
		Notes:    in.Notes,
		Location: in.Location,
	}

	switch {
	case score >= 8:
		res.Level = LevelHigh
		res.Class = "high-risk"
		res.Advice = adviceHigh
	case score >= 5:
		res.Level = LevelMedium
		res.Class = "medium-risk"
		res.Advice = adviceMedium
	default:
		res.Level = LevelLow
		res.Class = "low-risk"
		res.Advice = adviceLow
	}

	return res
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
