package models

import (
	"strings"
	"time"
)

type AlertSeverity string

const (
	AlertSeverityLow    AlertSeverity = "low"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityHigh   AlertSeverity = "high"
)

// ParseAlertSeverity maps free-form input onto the closed severity set.
// Anything unrecognized (including empty) falls back to low.
func ParseAlertSeverity(s string) AlertSeverity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return AlertSeverityMedium
	case "high":
		return AlertSeverityHigh
	default:
		return AlertSeverityLow
	}
}

// Alert is one community-reported flood alert. Records are immutable once
// created; the stored collection only ever grows by one or is cleared wholesale.
type Alert struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location,omitempty"`
	Severity    AlertSeverity `json:"severity"`
	CreatedAt   time.Time     `json:"created_at"`
}
