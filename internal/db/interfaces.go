package db

import (
	"context"
	"time"

	"healthtrack-backend-go/internal/models"
)

// Mode identifies which store implementation is active for the session.
// The mode is chosen once at startup and never upgraded back to live.
type Mode string

const (
	ModeLive      Mode = "live"
	ModeSynthetic Mode = "synthetic"
)

// VitalQuery narrows a vitals listing. The zero value returns everything
// the owner has, newest first.
type VitalQuery struct {
	Kind  models.VitalKind // empty selects all kinds
	Since time.Time        // zero means no lower bound on RecordedAt
	Limit int              // <= 0 means no cap
}

// VitalRepository stores vital readings. Listings are always scoped to
// one owner and sorted descending by RecordedAt; both implementations
// must produce identical results for the same query.
type VitalRepository interface {
	Create(ctx context.Context, v *models.VitalReading) error
	ListByOwner(ctx context.Context, ownerID string, q VitalQuery) ([]*models.VitalReading, error)
	// Delete removes a reading only when it belongs to ownerID. A
	// missing or foreign id is a silent no-op, never an error, so the
	// existence of other identities' records cannot be probed.
	Delete(ctx context.Context, ownerID, id string) error
}

// ReportRepository stores lab report metadata rows.
type ReportRepository interface {
	Create(ctx context.Context, r *models.Report) error
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Report, error)
	// GetByID returns ErrNotFound for ids that are missing or owned by
	// another identity.
	GetByID(ctx context.Context, ownerID, id string) (*models.Report, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// MediaRepository stores documents or photos; one instance per
// collection.
type MediaRepository interface {
	Create(ctx context.Context, m *models.MediaItem) error
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.MediaItem, error)
	GetByID(ctx context.Context, ownerID, id string) (*models.MediaItem, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// FamilyRepository stores family links keyed by the admin identity.
type FamilyRepository interface {
	Create(ctx context.Context, l *models.FamilyLink) error
	ListByAdmin(ctx context.Context, adminID string) ([]*models.FamilyLink, error)
}

// ProfileRepository stores one profile per identity.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	Create(ctx context.Context, p *models.UserProfile) error
	Update(ctx context.Context, p *models.UserProfile) error
}

// GoalRepository stores health goals.
type GoalRepository interface {
	Create(ctx context.Context, g *models.HealthGoal) error
	ListByOwner(ctx context.Context, ownerID string) ([]*models.HealthGoal, error)
}

// UploadResult describes a stored blob.
type UploadResult struct {
	Ref       string `json:"ref"`
	PublicURL string `json:"publicUrl"`
	FileName  string `json:"fileName"`
	FileType  string `json:"fileType"`
}

// BlobStore stores uploaded files outside the structured row store.
type BlobStore interface {
	Upload(ctx context.Context, ownerID, fileName, contentType string, data []byte) (*UploadResult, error)
	Remove(ctx context.Context, ref string) error
}

// Store bundles one coherent set of repositories. Exactly one Store,
// live or synthetic, is built at startup and injected everywhere, so no
// per-operation mode branching exists downstream.
type Store struct {
	Mode      Mode
	Vitals    VitalRepository
	Reports   ReportRepository
	Documents MediaRepository
	Photos    MediaRepository
	Family    FamilyRepository
	Profiles  ProfileRepository
	Goals     GoalRepository
	Blobs     BlobStore
}
