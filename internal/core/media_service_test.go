package core

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
)

func newMediaFixture(t *testing.T) (MediaService, *db.Store) {
	t.Helper()
	store := db.NewSyntheticStore(nil)
	return NewMediaService(store.Documents, store.Photos, store.Blobs, zap.NewNop()), store
}

func TestSaveDocumentRejectsUnknownCategory(t *testing.T) {
	svc, _ := newMediaFixture(t)
	_, err := svc.SaveDocument(context.Background(), "alice", models.SaveMediaRequest{
		Title:    "X-Ray",
		FileRef:  "ref",
		Category: "miscellany",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSaveDocumentNormalisesCategory(t *testing.T) {
	svc, _ := newMediaFixture(t)
	item, err := svc.SaveDocument(context.Background(), "alice", models.SaveMediaRequest{
		Title:    "Flu shot record",
		FileRef:  "ref",
		Category: "Vaccination",
	})
	if err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	if item.Category != "vaccination" {
		t.Errorf("category should be lowercased, got %q", item.Category)
	}
	if item.ItemDate.IsZero() {
		t.Error("item date should default to now")
	}
}

func TestDocumentsAndPhotosDoNotMix(t *testing.T) {
	svc, _ := newMediaFixture(t)
	ctx := context.Background()

	if _, err := svc.SaveDocument(ctx, "alice", models.SaveMediaRequest{Title: "Doc", FileRef: "r1"}); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	if _, err := svc.SavePhoto(ctx, "alice", models.SaveMediaRequest{Title: "Photo", FileRef: "r2"}); err != nil {
		t.Fatalf("SavePhoto: %v", err)
	}

	docs, err := svc.ListDocuments(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	photos, err := svc.ListPhotos(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("ListPhotos: %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "Doc" {
		t.Errorf("unexpected documents: %+v", docs)
	}
	if len(photos) != 1 || photos[0].Title != "Photo" {
		t.Errorf("unexpected photos: %+v", photos)
	}
}

func TestDeletePhotoBlobFirst(t *testing.T) {
	store := db.NewSyntheticStore(nil)
	svc := NewMediaService(store.Documents, store.Photos, failingBlobStore{}, zap.NewNop())
	ctx := context.Background()

	photo := &models.MediaItem{OwnerID: "alice", Title: "Rash photo", FileRef: "ref"}
	if err := store.Photos.Create(ctx, photo); err != nil {
		t.Fatalf("seed photo: %v", err)
	}

	if err := svc.DeletePhoto(ctx, "alice", photo.ID); !errors.Is(err, ErrBlobDeleteFailed) {
		t.Fatalf("expected ErrBlobDeleteFailed, got %v", err)
	}
	if _, err := store.Photos.GetByID(ctx, "alice", photo.ID); err != nil {
		t.Fatalf("row should have survived the failed blob delete: %v", err)
	}

	// Missing rows never touch the blob store.
	if err := svc.DeletePhoto(ctx, "alice", "missing"); err != nil {
		t.Fatalf("missing id should be a silent no-op, got %v", err)
	}
}
