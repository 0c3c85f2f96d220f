package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mr1hm/go-flood-safety/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	return db
}

func TestSQLiteDB_LoadEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	alerts, err := db.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("expected empty collection, got %d alerts", len(alerts))
	}
}

func TestSQLiteDB_SaveLoadRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	alerts := []models.Alert{
		{ID: "a1", Title: "River rising", Description: "Water over the footpath", Location: "Mill Lane", Severity: models.AlertSeverityMedium, CreatedAt: now},
		{ID: "a2", Title: "Drain blocked", Description: "Standing water on the road", Severity: models.AlertSeverityLow, CreatedAt: now.Add(time.Minute)},
	}

	if err := db.Save(ctx, alerts); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(got))
	}

	// Storage order is preserved, oldest first.
	if got[0].ID != "a1" || got[1].ID != "a2" {
		t.Errorf("expected order [a1 a2], got [%s %s]", got[0].ID, got[1].ID)
	}
	if got[0].Title != "River rising" {
		t.Errorf("expected title 'River rising', got '%s'", got[0].Title)
	}
	if got[0].Severity != models.AlertSeverityMedium {
		t.Errorf("expected severity medium, got '%s'", got[0].Severity)
	}
	if !got[1].CreatedAt.Equal(alerts[1].CreatedAt) {
		t.Errorf("timestamp did not round-trip: want %v, got %v", alerts[1].CreatedAt, got[1].CreatedAt)
	}
}

func TestSQLiteDB_Append(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	for i, title := range []string{"first", "second", "third"} {
		err := db.Append(ctx, models.Alert{
			ID:          title,
			Title:       title,
			Description: "desc",
			CreatedAt:   time.Now().UTC().Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(got))
	}
	if got[0].ID != "first" || got[2].ID != "third" {
		t.Errorf("append order not preserved: got [%s %s %s]", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSQLiteDB_MalformedSlotTreatedAsEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	_, err := db.db.ExecContext(ctx, `INSERT INTO slots(name, value) VALUES(?, ?)`, alertSlot, `{not json]`)
	if err != nil {
		t.Fatalf("failed to corrupt slot: %v", err)
	}

	alerts, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load should not fail on malformed data: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("expected empty collection for malformed slot, got %d", len(alerts))
	}

	// The store still accepts new writes afterwards.
	if err := db.Append(ctx, models.Alert{ID: "a1", Title: "t", Description: "d", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Append after corruption failed: %v", err)
	}
	alerts, err = db.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(alerts) != 1 {
		t.Errorf("expected 1 alert after recovery, got %d", len(alerts))
	}
}

func TestSQLiteDB_Clear(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	db.Append(ctx, models.Alert{ID: "a1", Title: "t", Description: "d", CreatedAt: time.Now()})

	if err := db.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	alerts, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("expected empty collection after clear, got %d", len(alerts))
	}

	// Clearing an already-empty store is fine.
	if err := db.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty store failed: %v", err)
	}
}
