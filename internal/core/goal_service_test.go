package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
)

func TestSaveGoalValidation(t *testing.T) {
	store := db.NewSyntheticStore(nil)
	svc := NewGoalService(store.Goals)
	ctx := context.Background()

	_, err := svc.SaveGoal(ctx, "alice", models.SaveGoalRequest{Kind: "steps", TargetValue: 10000})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown kind should be ErrValidation, got %v", err)
	}
	_, err = svc.SaveGoal(ctx, "alice", models.SaveGoalRequest{Kind: models.VitalWeight})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("zero target should be ErrValidation, got %v", err)
	}
}

func TestSaveAndListGoals(t *testing.T) {
	store := db.NewSyntheticStore(nil)
	svc := NewGoalService(store.Goals)
	ctx := context.Background()

	goal, err := svc.SaveGoal(ctx, "alice", models.SaveGoalRequest{
		Kind:        models.VitalWeight,
		TargetValue: 68,
		TargetDate:  time.Now().UTC().AddDate(0, 6, 0),
		Description: "Summer target",
	})
	if err != nil {
		t.Fatalf("SaveGoal: %v", err)
	}
	if goal.ID == "" {
		t.Error("saved goal should have an id")
	}

	goals, err := svc.ListGoals(ctx, "alice")
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 1 || goals[0].Description != "Summer target" {
		t.Errorf("unexpected goals: %+v", goals)
	}

	foreign, err := svc.ListGoals(ctx, "bob")
	if err != nil {
		t.Fatalf("ListGoals (foreign): %v", err)
	}
	if len(foreign) != 0 {
		t.Errorf("goals leaked across owners: %+v", foreign)
	}
}
