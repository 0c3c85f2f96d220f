package repository

import (
	"context"

	"github.com/mr1hm/go-flood-safety/internal/models"
)

// AlertStore reads and writes the full alert collection as one unit. The
// backing slot is overwritten wholesale on every save; there are no partial
// writes and no per-record updates or deletes.
type AlertStore interface {
	// Load returns the stored collection oldest-first. An absent or
	// malformed slot yields an empty collection, never an error.
	Load(ctx context.Context) ([]models.Alert, error)
	// Save serializes the full ordered collection and overwrites the slot.
	Save(ctx context.Context, alerts []models.Alert) error
	// Append adds one record to the end of the collection.
	Append(ctx context.Context, alert models.Alert) error
	// Clear removes the slot entirely.
	Clear(ctx context.Context) error
}
