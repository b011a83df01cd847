package db

import (
	"context"
	"testing"
	"time"

	"healthtrack-backend-go/internal/models"
)

var demoOwner = &models.Identity{ID: "demo-user", Email: "demo@example.com", DisplayName: "Demo User"}

func countKind(vitals []*models.VitalReading, kind models.VitalKind) int {
	n := 0
	for _, v := range vitals {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

func TestSeedShape(t *testing.T) {
	s := NewSyntheticStore(demoOwner)
	ctx := context.Background()

	vitals, err := s.Vitals.ListByOwner(ctx, demoOwner.ID, VitalQuery{})
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if got := countKind(vitals, models.VitalBloodPressure); got != 30 {
		t.Errorf("expected 30 blood pressure readings, got %d", got)
	}
	if got := countKind(vitals, models.VitalHeartRate); got != 15 {
		t.Errorf("expected 15 heart rate readings, got %d", got)
	}
	if got := countKind(vitals, models.VitalWeight); got != 5 {
		t.Errorf("expected 5 weight readings, got %d", got)
	}

	reports, err := s.Reports.ListByOwner(ctx, demoOwner.ID, 0)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(reports) != 2 {
		t.Errorf("expected 2 seeded reports, got %d", len(reports))
	}

	family, err := s.Family.ListByAdmin(ctx, demoOwner.ID)
	if err != nil {
		t.Fatalf("list family: %v", err)
	}
	if len(family) != 2 {
		t.Fatalf("expected 2 seeded family links, got %d", len(family))
	}
	statuses := map[string]bool{}
	for _, l := range family {
		statuses[l.Status] = true
	}
	if !statuses[models.LinkStatusActive] || !statuses[models.LinkStatusPending] {
		t.Errorf("expected one active and one pending link, got %v", statuses)
	}

	if _, err := s.Profiles.Get(ctx, demoOwner.ID); err != nil {
		t.Errorf("seeded profile missing: %v", err)
	}
}

func TestSeedValuesInsideClinicalRanges(t *testing.T) {
	s := NewSyntheticStore(demoOwner)
	vitals, err := s.Vitals.ListByOwner(context.Background(), demoOwner.ID, VitalQuery{})
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	for _, v := range vitals {
		switch v.Kind {
		case models.VitalBloodPressure:
			bp := v.BloodPressure
			if bp == nil {
				t.Fatalf("blood pressure reading %s has no components", v.ID)
			}
			if bp.Systolic < 110 || bp.Systolic > 129 || bp.Diastolic < 70 || bp.Diastolic > 84 {
				t.Errorf("reading %s outside range: %d/%d", v.ID, bp.Systolic, bp.Diastolic)
			}
			if v.Value != float64(bp.Systolic) {
				t.Errorf("reading %s Value %v does not mirror systolic %d", v.ID, v.Value, bp.Systolic)
			}
		case models.VitalHeartRate:
			if v.Value < 65 || v.Value > 84 {
				t.Errorf("heart rate %s outside range: %v", v.ID, v.Value)
			}
		case models.VitalWeight:
			if v.Value < 70 || v.Value > 79 {
				t.Errorf("weight %s outside range: %v", v.ID, v.Value)
			}
		}
	}
}

func TestSeedSupportsWindowedChartQuery(t *testing.T) {
	s := NewSyntheticStore(demoOwner)
	now := time.Now().UTC()

	got, err := s.Vitals.ListByOwner(context.Background(), demoOwner.ID, VitalQuery{
		Kind:  models.VitalBloodPressure,
		Since: now.AddDate(0, 0, -7),
		Limit: 5,
	})
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 readings, got %d", len(got))
	}
	for i, v := range got {
		if v.Kind != models.VitalBloodPressure {
			t.Errorf("reading %d has kind %s", i, v.Kind)
		}
		if i > 0 && got[i].RecordedAt.After(got[i-1].RecordedAt) {
			t.Errorf("readings not newest first at index %d", i)
		}
	}
	if got[0].Notes != "Latest reading" {
		t.Errorf("expected the newest seeded reading first, got notes %q", got[0].Notes)
	}
}

func TestSeedIsScopedToSeededIdentity(t *testing.T) {
	s := NewSyntheticStore(demoOwner)
	got, err := s.Vitals.ListByOwner(context.Background(), "someone-else", VitalQuery{})
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("seed leaked into a foreign identity: %d readings", len(got))
	}
}
