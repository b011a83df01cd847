package core

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
)

func TestExportAllDataEmptyAccount(t *testing.T) {
	store := db.NewSyntheticStore(nil)
	svc := NewExportService(store.Vitals, store.Reports, store.Profiles, store.Goals)

	doc, err := svc.ExportAllData(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ExportAllData: %v", err)
	}
	// A missing profile is tolerated; collections must still be
	// present and non-null.
	if doc.Profile != nil {
		t.Errorf("expected nil profile for an account that never signed in")
	}
	if doc.Vitals == nil || doc.Reports == nil || doc.Goals == nil {
		t.Fatalf("collections must never be nil: %+v", doc)
	}
	if doc.ExportAt.IsZero() {
		t.Error("export timestamp missing")
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"profile", "vitals", "reports", "goals", "exportDate"} {
		if _, ok := keys[key]; !ok {
			t.Errorf("export document missing key %q", key)
		}
	}
	for _, key := range []string{"vitals", "reports", "goals"} {
		if string(keys[key]) == "null" {
			t.Errorf("collection %q serialised as null", key)
		}
	}
}

func TestExportAllDataCollectsEverything(t *testing.T) {
	owner := &models.Identity{ID: "demo-user", Email: "demo@example.com", DisplayName: "Demo User"}
	store := db.NewSyntheticStore(owner)
	svc := NewExportService(store.Vitals, store.Reports, store.Profiles, store.Goals)
	ctx := context.Background()

	err := store.Goals.Create(ctx, &models.HealthGoal{
		OwnerID:     owner.ID,
		Kind:        models.VitalWeight,
		TargetValue: 72,
		TargetDate:  time.Now().UTC().AddDate(0, 3, 0),
	})
	if err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	doc, err := svc.ExportAllData(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ExportAllData: %v", err)
	}
	if doc.Profile == nil || doc.Profile.UserID != owner.ID {
		t.Fatalf("profile missing from export: %+v", doc.Profile)
	}
	if len(doc.Vitals) == 0 {
		t.Error("seeded vitals missing from export")
	}
	if len(doc.Reports) != 2 {
		t.Errorf("expected 2 seeded reports, got %d", len(doc.Reports))
	}
	if len(doc.Goals) != 1 {
		t.Errorf("expected the saved goal, got %d", len(doc.Goals))
	}
	for _, v := range doc.Vitals {
		if v.OwnerID != owner.ID {
			t.Fatalf("export leaked a foreign reading: %s", v.OwnerID)
		}
	}
}
