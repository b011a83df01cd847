package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
)

// Export pulls up to two years of vitals and up to exportReportLimit
// report rows.
const (
	exportWindowDays  = 365 * 2
	exportVitalLimit  = 10000
	exportReportLimit = 1000
)

// exportService implements ExportService as a fan-out read across all
// entity kinds. There is no transaction; consistency is kept "good
// enough" by computing every time window from one shared instant.
type exportService struct {
	vitals   db.VitalRepository
	reports  db.ReportRepository
	profiles db.ProfileRepository
	goals    db.GoalRepository
}

// NewExportService creates an ExportService.
func NewExportService(vitals db.VitalRepository, reports db.ReportRepository, profiles db.ProfileRepository, goals db.GoalRepository) ExportService {
	return &exportService{vitals: vitals, reports: reports, profiles: profiles, goals: goals}
}

func (s *exportService) ExportAllData(ctx context.Context, ownerID string) (*models.ExportDocument, error) {
	now := time.Now().UTC()

	vitals, err := s.vitals.ListByOwner(ctx, ownerID, db.VitalQuery{
		Since: now.AddDate(0, 0, -exportWindowDays),
		Limit: exportVitalLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("export: failed to read vitals: %w", err)
	}

	reports, err := s.reports.ListByOwner(ctx, ownerID, exportReportLimit)
	if err != nil {
		return nil, fmt.Errorf("export: failed to read reports: %w", err)
	}

	profile, err := s.profiles.Get(ctx, ownerID)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("export: failed to read profile: %w", err)
	}

	goals, err := s.goals.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("export: failed to read goals: %w", err)
	}

	// The backup key set is a stable contract: every key is present,
	// collections are never null.
	if vitals == nil {
		vitals = []*models.VitalReading{}
	}
	if reports == nil {
		reports = []*models.Report{}
	}
	if goals == nil {
		goals = []*models.HealthGoal{}
	}
	return &models.ExportDocument{
		Profile:  profile,
		Vitals:   vitals,
		Reports:  reports,
		Goals:    goals,
		ExportAt: now,
	}, nil
}
