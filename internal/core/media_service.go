package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
)

const defaultMediaLimit = 50

// documentCategories is the closed tag set for documents and photos.
var documentCategories = map[string]bool{
	"prescription": true,
	"vaccination":  true,
	"insurance":    true,
	"scan":         true,
	"condition":    true,
	"treatment":    true,
	"other":        true,
}

// mediaService implements MediaService for both documents and photos;
// the two repositories share every behavior except their collection.
type mediaService struct {
	docs   db.MediaRepository
	photos db.MediaRepository
	blobs  db.BlobStore
	logger *zap.Logger
}

// NewMediaService creates a MediaService.
func NewMediaService(docs, photos db.MediaRepository, blobs db.BlobStore, logger *zap.Logger) MediaService {
	return &mediaService{docs: docs, photos: photos, blobs: blobs, logger: logger}
}

func validateMediaRequest(req models.SaveMediaRequest) error {
	if req.Title == "" {
		return validationErr("title is required")
	}
	if req.FileRef == "" {
		return validationErr("file reference is required")
	}
	if req.Category != "" && !documentCategories[strings.ToLower(req.Category)] {
		return validationErr("unknown category %q", req.Category)
	}
	return nil
}

func (s *mediaService) save(ctx context.Context, repo db.MediaRepository, ownerID string, req models.SaveMediaRequest) (*models.MediaItem, error) {
	if err := validateMediaRequest(req); err != nil {
		return nil, err
	}
	itemDate := req.ItemDate
	if itemDate.IsZero() {
		itemDate = time.Now().UTC()
	}
	item := &models.MediaItem{
		OwnerID:      ownerID,
		Title:        req.Title,
		Category:     strings.ToLower(req.Category),
		FamilyMember: req.FamilyMember,
		ItemDate:     itemDate,
		Tags:         req.Tags,
		FileRef:      req.FileRef,
		FileURL:      req.FileURL,
		FileName:     req.FileName,
		FileType:     req.FileType,
		Notes:        req.Notes,
		Preview:      req.Preview,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save media item: %w", err)
	}
	return item, nil
}

func (s *mediaService) list(ctx context.Context, repo db.MediaRepository, ownerID string, limit int) ([]*models.MediaItem, error) {
	if limit <= 0 {
		limit = defaultMediaLimit
	}
	items, err := repo.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}
	return items, nil
}

// delete applies the same blob-first rule as report deletion.
func (s *mediaService) delete(ctx context.Context, repo db.MediaRepository, ownerID, id string) error {
	item, err := repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to fetch media item for delete: %w", err)
	}
	if item.FileRef != "" {
		if err := s.blobs.Remove(ctx, item.FileRef); err != nil {
			s.logger.Error("blob removal failed, keeping media row",
				zap.String("item", id), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrBlobDeleteFailed, err)
		}
	}
	if err := repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("failed to delete media item: %w", err)
	}
	return nil
}

func (s *mediaService) SaveDocument(ctx context.Context, ownerID string, req models.SaveMediaRequest) (*models.MediaItem, error) {
	return s.save(ctx, s.docs, ownerID, req)
}

func (s *mediaService) ListDocuments(ctx context.Context, ownerID string, limit int) ([]*models.MediaItem, error) {
	return s.list(ctx, s.docs, ownerID, limit)
}

func (s *mediaService) DeleteDocument(ctx context.Context, ownerID, id string) error {
	return s.delete(ctx, s.docs, ownerID, id)
}

func (s *mediaService) SavePhoto(ctx context.Context, ownerID string, req models.SaveMediaRequest) (*models.MediaItem, error) {
	return s.save(ctx, s.photos, ownerID, req)
}

func (s *mediaService) ListPhotos(ctx context.Context, ownerID string, limit int) ([]*models.MediaItem, error) {
	return s.list(ctx, s.photos, ownerID, limit)
}

func (s *mediaService) DeletePhoto(ctx context.Context, ownerID, id string) error {
	return s.delete(ctx, s.photos, ownerID, id)
}
