package core

import (
	"context"
	"mime/multipart"

	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
)

// VitalService is the typed operation surface for vital readings.
type VitalService interface {
	RecordVital(ctx context.Context, ownerID string, req models.RecordVitalRequest) (*models.VitalReading, error)
	// ListVitals returns the owner's readings recorded within the last
	// windowDays (0 disables the window), optionally narrowed to one
	// kind, newest first, capped at limit.
	ListVitals(ctx context.Context, ownerID string, kind models.VitalKind, limit, windowDays int) ([]*models.VitalReading, error)
	// LatestVital returns nil when the owner has no reading of the kind.
	LatestVital(ctx context.Context, ownerID string, kind models.VitalKind) (*models.VitalReading, error)
	DeleteVital(ctx context.Context, ownerID, id string) error
	// ComputeStatistics returns nil when no readings fall in the window.
	ComputeStatistics(ctx context.Context, ownerID string, kind models.VitalKind, windowDays int) (*models.VitalStatistics, error)
	DashboardSummary(ctx context.Context, ownerID string) ([]*models.VitalSummary, error)
	RecentVitals(ctx context.Context, ownerID string, limit int) ([]*models.RecentVital, error)
}

// ReportService manages lab reports and their blobs.
type ReportService interface {
	SaveReport(ctx context.Context, ownerID string, req models.SaveReportRequest) (*models.Report, error)
	ListReports(ctx context.Context, ownerID string, limit int) ([]*models.Report, error)
	// DeleteReport removes the referenced blob first; when blob removal
	// fails the metadata row is kept.
	DeleteReport(ctx context.Context, ownerID, id string) error
	Upload(ctx context.Context, ownerID string, header *multipart.FileHeader) (*db.UploadResult, error)
}

// MediaService manages documents and photos.
type MediaService interface {
	SaveDocument(ctx context.Context, ownerID string, req models.SaveMediaRequest) (*models.MediaItem, error)
	ListDocuments(ctx context.Context, ownerID string, limit int) ([]*models.MediaItem, error)
	DeleteDocument(ctx context.Context, ownerID, id string) error
	SavePhoto(ctx context.Context, ownerID string, req models.SaveMediaRequest) (*models.MediaItem, error)
	ListPhotos(ctx context.Context, ownerID string, limit int) ([]*models.MediaItem, error)
	DeletePhoto(ctx context.Context, ownerID, id string) error
}

// FamilyService manages family links.
type FamilyService interface {
	ListMembers(ctx context.Context, adminID string) ([]*models.FamilyLink, error)
	Invite(ctx context.Context, adminID string, req models.InviteFamilyRequest) (*models.FamilyLink, error)
}

// UserService manages profiles.
type UserService interface {
	// EnsureProfile creates the profile on first sign-in; the bool is
	// true when a profile was created.
	EnsureProfile(ctx context.Context, identity *models.Identity) (*models.UserProfile, bool, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.UserProfile, error)
}

// GoalService manages health goals.
type GoalService interface {
	SaveGoal(ctx context.Context, ownerID string, req models.SaveGoalRequest) (*models.HealthGoal, error)
	ListGoals(ctx context.Context, ownerID string) ([]*models.HealthGoal, error)
}

// ExportService produces the downloadable backup document.
type ExportService interface {
	ExportAllData(ctx context.Context, ownerID string) (*models.ExportDocument, error)
}
