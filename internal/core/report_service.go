package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"go.uber.org/zap"

	"healthtrack-backend-go/internal/config"
	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
)

const defaultReportLimit = 50

// reportService implements ReportService.
type reportService struct {
	reports db.ReportRepository
	blobs   db.BlobStore
	logger  *zap.Logger
}

// NewReportService creates a ReportService.
func NewReportService(reports db.ReportRepository, blobs db.BlobStore, logger *zap.Logger) ReportService {
	return &reportService{reports: reports, blobs: blobs, logger: logger}
}

func (s *reportService) SaveReport(ctx context.Context, ownerID string, req models.SaveReportRequest) (*models.Report, error) {
	if req.Title == "" {
		return nil, validationErr("report title is required")
	}
	if req.FileRef == "" {
		return nil, validationErr("report file reference is required")
	}
	reportDate := req.ReportDate
	if reportDate.IsZero() {
		reportDate = time.Now().UTC()
	}

	report := &models.Report{
		OwnerID:    ownerID,
		Title:      req.Title,
		ReportDate: reportDate,
		FileRef:    req.FileRef,
		FileURL:    req.FileURL,
		FileName:   req.FileName,
		FileType:   req.FileType,
		Notes:      req.Notes,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, ownerID string, limit int) ([]*models.Report, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	reports, err := s.reports.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// DeleteReport removes the blob before the metadata row. If the blob
// cannot be removed the row survives: an orphaned blob is recoverable,
// a metadata row pointing at nothing is not.
func (s *reportService) DeleteReport(ctx context.Context, ownerID, id string) error {
	report, err := s.reports.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Missing or foreign rows delete as a silent no-op.
			return nil
		}
		return fmt.Errorf("failed to fetch report for delete: %w", err)
	}

	if report.FileRef != "" {
		if err := s.blobs.Remove(ctx, report.FileRef); err != nil {
			s.logger.Error("blob removal failed, keeping report row",
				zap.String("report", id), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrBlobDeleteFailed, err)
		}
	}

	if err := s.reports.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// Upload validates and stores a multipart file, returning the blob
// locator the subsequent SaveReport / SaveDocument / SavePhoto call
// references.
func (s *reportService) Upload(ctx context.Context, ownerID string, header *multipart.FileHeader) (*db.UploadResult, error) {
	if header == nil || header.Filename == "" {
		return nil, validationErr("a file is required")
	}
	if header.Size > config.MaxUploadSize {
		return nil, validationErr("file exceeds the %d byte limit", config.MaxUploadSize)
	}
	contentType := header.Header.Get("Content-Type")
	if !config.AllowedUploadTypes[contentType] {
		return nil, validationErr("file type %q is not allowed", contentType)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	result, err := s.blobs.Upload(ctx, ownerID, header.Filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	return result, nil
}
