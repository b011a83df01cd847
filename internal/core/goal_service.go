package core

import (
	"context"
	"fmt"
	"time"

	"healthtrack-backend-go/internal/config"
	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
)

// goalService implements GoalService.
type goalService struct {
	goals db.GoalRepository
}

// NewGoalService creates a GoalService.
func NewGoalService(goals db.GoalRepository) GoalService {
	return &goalService{goals: goals}
}

func (s *goalService) SaveGoal(ctx context.Context, ownerID string, req models.SaveGoalRequest) (*models.HealthGoal, error) {
	if _, ok := config.VitalInfoFor(req.Kind); !ok {
		return nil, validationErr("unknown vital type %q", req.Kind)
	}
	if req.TargetValue <= 0 {
		return nil, validationErr("target value must be positive")
	}

	goal := &models.HealthGoal{
		OwnerID:     ownerID,
		Kind:        req.Kind,
		TargetValue: req.TargetValue,
		TargetDate:  req.TargetDate,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, ownerID string) ([]*models.HealthGoal, error) {
	goals, err := s.goals.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}
