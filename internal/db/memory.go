package db

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"healthtrack-backend-go/internal/models"
)

// MemoryStore is the synthetic-mode backing store: plain slices guarded
// by one mutex. The HTTP server handles requests on concurrent
// goroutines, so every collection access is serialised here to keep the
// no-lost-update property.
//
// Its lifetime is the process; nothing survives a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	vitals   []*models.VitalReading
	reports  []*models.Report
	docs     []*models.MediaItem
	photos   []*models.MediaItem
	family   []*models.FamilyLink
	goals    []*models.HealthGoal
	profiles map[string]*models.UserProfile
}

// NewSyntheticStore builds the synthetic Store for one session and
// seeds it once with the demo dataset for the given identity.
func NewSyntheticStore(owner *models.Identity) *Store {
	m := &MemoryStore{profiles: make(map[string]*models.UserProfile)}
	if owner != nil {
		seedDemoData(m, owner)
	}
	return &Store{
		Mode:      ModeSynthetic,
		Vitals:    &memoryVitalRepository{store: m},
		Reports:   &memoryReportRepository{store: m},
		Documents: &memoryMediaRepository{store: m, photos: false},
		Photos:    &memoryMediaRepository{store: m, photos: true},
		Family:    &memoryFamilyRepository{store: m},
		Profiles:  &memoryProfileRepository{store: m},
		Goals:     &memoryGoalRepository{store: m},
		Blobs:     &memoryBlobStore{},
	}
}

// memoryVitalRepository implements VitalRepository over MemoryStore.
type memoryVitalRepository struct {
	store *MemoryStore
}

func (r *memoryVitalRepository) Create(_ context.Context, v *models.VitalReading) error {
	if v.OwnerID == "" {
		return errors.New("vital reading owner cannot be empty")
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	// Prepend, matching the newest-first array discipline of the
	// original demo dataset.
	r.store.vitals = append([]*models.VitalReading{v}, r.store.vitals...)
	return nil
}

// ListByOwner applies the same owner/window/kind/sort/limit pipeline the
// live store expresses as query parameters.
func (r *memoryVitalRepository) ListByOwner(_ context.Context, ownerID string, q VitalQuery) ([]*models.VitalReading, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty")
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*models.VitalReading
	for _, v := range r.store.vitals {
		if v.OwnerID != ownerID {
			continue
		}
		if !q.Since.IsZero() && v.RecordedAt.Before(q.Since) {
			continue
		}
		if q.Kind != "" && v.Kind != q.Kind {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *memoryVitalRepository) Delete(_ context.Context, ownerID, id string) error {
	if ownerID == "" || id == "" {
		return errors.New("ownerID and id cannot be empty")
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, v := range r.store.vitals {
		if v.ID == id && v.OwnerID == ownerID {
			r.store.vitals = append(r.store.vitals[:i], r.store.vitals[i+1:]...)
			return nil
		}
	}
	// Missing or foreign: silent no-op.
	return nil
}

// memoryReportRepository implements ReportRepository.
type memoryReportRepository struct {
	store *MemoryStore
}

func (r *memoryReportRepository) Create(_ context.Context, rep *models.Report) error {
	if rep.OwnerID == "" {
		return errors.New("report owner cannot be empty")
	}
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.reports = append([]*models.Report{rep}, r.store.reports...)
	return nil
}

func (r *memoryReportRepository) ListByOwner(_ context.Context, ownerID string, limit int) ([]*models.Report, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty")
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*models.Report
	for _, rep := range r.store.reports {
		if rep.OwnerID == ownerID {
			out = append(out, rep)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReportDate.After(out[j].ReportDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryReportRepository) GetByID(_ context.Context, ownerID, id string) (*models.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, rep := range r.store.reports {
		if rep.ID == id && rep.OwnerID == ownerID {
			return rep, nil
		}
	}
	return nil, fmt.Errorf("report '%s': %w", id, ErrNotFound)
}

func (r *memoryReportRepository) Delete(_ context.Context, ownerID, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, rep := range r.store.reports {
		if rep.ID == id && rep.OwnerID == ownerID {
			r.store.reports = append(r.store.reports[:i], r.store.reports[i+1:]...)
			return nil
		}
	}
	return nil
}

// memoryMediaRepository implements MediaRepository; photos selects which
// slice it operates on.
type memoryMediaRepository struct {
	store  *MemoryStore
	photos bool
}

func (r *memoryMediaRepository) items() *[]*models.MediaItem {
	if r.photos {
		return &r.store.photos
	}
	return &r.store.docs
}

func (r *memoryMediaRepository) Create(_ context.Context, m *models.MediaItem) error {
	if m.OwnerID == "" {
		return errors.New("media item owner cannot be empty")
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	items := r.items()
	*items = append([]*models.MediaItem{m}, *items...)
	return nil
}

func (r *memoryMediaRepository) ListByOwner(_ context.Context, ownerID string, limit int) ([]*models.MediaItem, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty")
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*models.MediaItem
	for _, m := range *r.items() {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryMediaRepository) GetByID(_ context.Context, ownerID, id string) (*models.MediaItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, m := range *r.items() {
		if m.ID == id && m.OwnerID == ownerID {
			return m, nil
		}
	}
	return nil, fmt.Errorf("media item '%s': %w", id, ErrNotFound)
}

func (r *memoryMediaRepository) Delete(_ context.Context, ownerID, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	items := r.items()
	for i, m := range *items {
		if m.ID == id && m.OwnerID == ownerID {
			*items = append((*items)[:i], (*items)[i+1:]...)
			return nil
		}
	}
	return nil
}

// memoryFamilyRepository implements FamilyRepository.
type memoryFamilyRepository struct {
	store *MemoryStore
}

func (r *memoryFamilyRepository) Create(_ context.Context, l *models.FamilyLink) error {
	if l.AdminID == "" {
		return errors.New("family link admin cannot be empty")
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.family = append([]*models.FamilyLink{l}, r.store.family...)
	return nil
}

func (r *memoryFamilyRepository) ListByAdmin(_ context.Context, adminID string) ([]*models.FamilyLink, error) {
	if adminID == "" {
		return nil, errors.New("adminID cannot be empty")
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*models.FamilyLink
	for _, l := range r.store.family {
		if l.AdminID == adminID {
			out = append(out, l)
		}
	}
	return out, nil
}

// memoryProfileRepository implements ProfileRepository.
type memoryProfileRepository struct {
	store *MemoryStore
}

func (r *memoryProfileRepository) Get(_ context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile '%s': %w", userID, ErrNotFound)
	}
	return p, nil
}

func (r *memoryProfileRepository) Create(_ context.Context, p *models.UserProfile) error {
	if p.UserID == "" {
		return errors.New("profile userID cannot be empty")
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.profiles[p.UserID]; exists {
		return fmt.Errorf("profile '%s' already exists", p.UserID)
	}
	r.store.profiles[p.UserID] = p
	return nil
}

func (r *memoryProfileRepository) Update(_ context.Context, p *models.UserProfile) error {
	if p.UserID == "" {
		return errors.New("profile userID cannot be empty")
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.profiles[p.UserID] = p
	return nil
}

// memoryGoalRepository implements GoalRepository.
type memoryGoalRepository struct {
	store *MemoryStore
}

func (r *memoryGoalRepository) Create(_ context.Context, g *models.HealthGoal) error {
	if g.OwnerID == "" {
		return errors.New("goal owner cannot be empty")
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.goals = append([]*models.HealthGoal{g}, r.store.goals...)
	return nil
}

func (r *memoryGoalRepository) ListByOwner(_ context.Context, ownerID string) ([]*models.HealthGoal, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty")
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*models.HealthGoal
	for _, g := range r.store.goals {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	return out, nil
}
