package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"healthtrack-backend-go/internal/config"
	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
	"healthtrack-backend-go/pkg/cache"
)

// statsQueryCap bounds how many readings a statistics computation pulls.
const statsQueryCap = 1000

// dashboardTTL is how long a computed dashboard summary may be served
// from cache before being recomputed.
const dashboardTTL = time.Minute

// dashboardKinds are the vital kinds the dashboard summarises, in
// display order.
var dashboardKinds = []models.VitalKind{
	models.VitalBloodPressure,
	models.VitalHeartRate,
	models.VitalWeight,
	models.VitalTemperature,
}

// vitalService implements VitalService.
type vitalService struct {
	vitals db.VitalRepository
	cache  cache.Cache
	logger *zap.Logger
}

// NewVitalService creates a VitalService over the given repository. The
// cache holds dashboard summaries and is invalidated on every write.
func NewVitalService(vitals db.VitalRepository, c cache.Cache, logger *zap.Logger) VitalService {
	return &vitalService{vitals: vitals, cache: c, logger: logger}
}

// validateVitalRequest enforces the per-kind payload shape: a blood
// pressure reading must carry both components and no scalar; every
// other kind must carry the scalar and no components.
func validateVitalRequest(req models.RecordVitalRequest) error {
	info, ok := config.VitalInfoFor(req.Kind)
	if !ok {
		return validationErr("unknown vital type %q", req.Kind)
	}
	if info.Composite {
		if req.Systolic == nil || req.Diastolic == nil {
			return validationErr("blood_pressure requires both systolic and diastolic")
		}
		if *req.Systolic <= 0 || *req.Diastolic <= 0 {
			return validationErr("systolic and diastolic must be positive")
		}
		return nil
	}
	if req.Value == nil {
		return validationErr("%s requires a value", req.Kind)
	}
	if req.Systolic != nil || req.Diastolic != nil {
		return validationErr("systolic/diastolic are only valid for blood_pressure")
	}
	return nil
}

func (s *vitalService) RecordVital(ctx context.Context, ownerID string, req models.RecordVitalRequest) (*models.VitalReading, error) {
	if err := validateVitalRequest(req); err != nil {
		return nil, err
	}

	recordedAt := req.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	reading := &models.VitalReading{
		OwnerID:    ownerID,
		Kind:       req.Kind,
		RecordedAt: recordedAt,
		Notes:      req.Notes,
		CreatedAt:  time.Now().UTC(),
	}
	if req.Kind == models.VitalBloodPressure {
		reading.BloodPressure = &models.BloodPressure{
			Systolic:  *req.Systolic,
			Diastolic: *req.Diastolic,
		}
		// Value mirrors systolic so all kinds sort and chart uniformly.
		reading.Value = float64(*req.Systolic)
	} else {
		reading.Value = *req.Value
	}

	if err := s.vitals.Create(ctx, reading); err != nil {
		return nil, fmt.Errorf("failed to record vital: %w", err)
	}
	s.invalidateDashboard(ownerID)
	return reading, nil
}

func (s *vitalService) ListVitals(ctx context.Context, ownerID string, kind models.VitalKind, limit, windowDays int) ([]*models.VitalReading, error) {
	if kind != "" {
		if _, ok := config.VitalInfoFor(kind); !ok {
			return nil, validationErr("unknown vital type %q", kind)
		}
	}
	q := db.VitalQuery{Kind: kind, Limit: limit}
	if windowDays > 0 {
		q.Since = time.Now().UTC().AddDate(0, 0, -windowDays)
	}
	vitals, err := s.vitals.ListByOwner(ctx, ownerID, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list vitals: %w", err)
	}
	return vitals, nil
}

func (s *vitalService) LatestVital(ctx context.Context, ownerID string, kind models.VitalKind) (*models.VitalReading, error) {
	vitals, err := s.ListVitals(ctx, ownerID, kind, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(vitals) == 0 {
		return nil, nil
	}
	return vitals[0], nil
}

func (s *vitalService) DeleteVital(ctx context.Context, ownerID, id string) error {
	if err := s.vitals.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("failed to delete vital: %w", err)
	}
	s.invalidateDashboard(ownerID)
	return nil
}

func (s *vitalService) ComputeStatistics(ctx context.Context, ownerID string, kind models.VitalKind, windowDays int) (*models.VitalStatistics, error) {
	vitals, err := s.ListVitals(ctx, ownerID, kind, statsQueryCap, windowDays)
	if err != nil {
		return nil, err
	}
	if len(vitals) == 0 {
		// No data inside the window is a normal outcome.
		return nil, nil
	}

	series := make([]models.StatPoint, 0, len(vitals))
	for _, v := range vitals {
		series = append(series, models.StatPoint{
			Date:          v.RecordedAt,
			Value:         v.Value,
			BloodPressure: v.BloodPressure,
		})
	}
	return &models.VitalStatistics{
		Count:  len(vitals),
		Latest: series[0],
		Oldest: series[len(series)-1],
		Series: series,
	}, nil
}

func (s *vitalService) DashboardSummary(ctx context.Context, ownerID string) ([]*models.VitalSummary, error) {
	key := dashboardCacheKey(ownerID)
	if cached, err := s.cache.Get(key); err == nil && cached != "" {
		var summaries []*models.VitalSummary
		if err := json.Unmarshal([]byte(cached), &summaries); err == nil {
			return summaries, nil
		}
	}

	var summaries []*models.VitalSummary
	for _, kind := range dashboardKinds {
		latest, err := s.LatestVital(ctx, ownerID, kind)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			continue
		}
		info, _ := config.VitalInfoFor(kind)
		summaries = append(summaries, &models.VitalSummary{
			Kind:        kind,
			Display:     formatVital(latest),
			Unit:        info.Unit,
			Status:      config.ClassifyVital(latest),
			LastUpdated: latest.RecordedAt,
		})
	}

	if encoded, err := json.Marshal(summaries); err == nil {
		if err := s.cache.Set(key, string(encoded), dashboardTTL); err != nil {
			s.logger.Warn("failed to cache dashboard summary", zap.Error(err))
		}
	}
	return summaries, nil
}

func (s *vitalService) RecentVitals(ctx context.Context, ownerID string, limit int) ([]*models.RecentVital, error) {
	vitals, err := s.ListVitals(ctx, ownerID, "", limit, 30)
	if err != nil {
		return nil, err
	}
	recents := make([]*models.RecentVital, 0, len(vitals))
	for _, v := range vitals {
		info, _ := config.VitalInfoFor(v.Kind)
		recents = append(recents, &models.RecentVital{
			Kind:    info.Name,
			Display: fmt.Sprintf("%s %s", formatVital(v), info.Unit),
			Date:    v.RecordedAt,
		})
	}
	return recents, nil
}

func (s *vitalService) invalidateDashboard(ownerID string) {
	if err := s.cache.Delete(dashboardCacheKey(ownerID)); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache",
			zap.String("owner", ownerID), zap.Error(err))
	}
}

func dashboardCacheKey(ownerID string) string {
	return "dashboard:" + ownerID
}

// formatVital renders a reading for display: "120/80" for blood
// pressure, the bare value otherwise.
func formatVital(v *models.VitalReading) string {
	if v.Kind == models.VitalBloodPressure && v.BloodPressure != nil {
		return fmt.Sprintf("%d/%d", v.BloodPressure.Systolic, v.BloodPressure.Diastolic)
	}
	return trimFloat(v.Value)
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.1f", f)
}
