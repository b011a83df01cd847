package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"healthtrack-backend-go/internal/models"
)

// firestoreReportRepository implements ReportRepository over the
// blood_reports collection.
type firestoreReportRepository struct {
	client *firestore.Client
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.OwnerID == "" {
		return errors.New("report owner cannot be empty")
	}
	docRef := r.client.Collection(reportsCollection).NewDoc()
	report.ID = docRef.ID
	if _, err := docRef.Create(ctx, report); err != nil {
		return translateRemoteErr("create report", err)
	}
	return nil
}

func (r *firestoreReportRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Report, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty")
	}
	query := r.client.Collection(reportsCollection).
		Where("userId", "==", ownerID).
		OrderBy("reportDate", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var reports []*models.Report
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateRemoteErr("list reports", err)
		}
		var rep models.Report
		if err := doc.DataTo(&rep); err != nil {
			return nil, translateRemoteErr("decode report", err)
		}
		rep.ID = doc.Ref.ID
		reports = append(reports, &rep)
	}
	return reports, nil
}

func (r *firestoreReportRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Report, error) {
	snap, err := r.client.Collection(reportsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("report '%s': %w", id, ErrNotFound)
		}
		return nil, translateRemoteErr("get report", err)
	}
	var rep models.Report
	if err := snap.DataTo(&rep); err != nil {
		return nil, translateRemoteErr("decode report", err)
	}
	if rep.OwnerID != ownerID {
		// Foreign rows are reported as missing, not forbidden.
		return nil, fmt.Errorf("report '%s': %w", id, ErrNotFound)
	}
	rep.ID = snap.Ref.ID
	return &rep, nil
}

func (r *firestoreReportRepository) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := r.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if _, err := r.client.Collection(reportsCollection).Doc(id).Delete(ctx); err != nil {
		return translateRemoteErr("delete report", err)
	}
	return nil
}

// firestoreMediaRepository implements MediaRepository for one
// collection; it is instantiated once for documents and once for
// photos.
type firestoreMediaRepository struct {
	client     *firestore.Client
	collection string
}

func (r *firestoreMediaRepository) Create(ctx context.Context, m *models.MediaItem) error {
	if m.OwnerID == "" {
		return errors.New("media item owner cannot be empty")
	}
	docRef := r.client.Collection(r.collection).NewDoc()
	m.ID = docRef.ID
	if _, err := docRef.Create(ctx, m); err != nil {
		return translateRemoteErr("create "+r.collection, err)
	}
	return nil
}

func (r *firestoreMediaRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.MediaItem, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty")
	}
	query := r.client.Collection(r.collection).
		Where("userId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var items []*models.MediaItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateRemoteErr("list "+r.collection, err)
		}
		var item models.MediaItem
		if err := doc.DataTo(&item); err != nil {
			return nil, translateRemoteErr("decode "+r.collection, err)
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}
	return items, nil
}

func (r *firestoreMediaRepository) GetByID(ctx context.Context, ownerID, id string) (*models.MediaItem, error) {
	snap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%s '%s': %w", r.collection, id, ErrNotFound)
		}
		return nil, translateRemoteErr("get "+r.collection, err)
	}
	var item models.MediaItem
	if err := snap.DataTo(&item); err != nil {
		return nil, translateRemoteErr("decode "+r.collection, err)
	}
	if item.OwnerID != ownerID {
		return nil, fmt.Errorf("%s '%s': %w", r.collection, id, ErrNotFound)
	}
	item.ID = snap.Ref.ID
	return &item, nil
}

func (r *firestoreMediaRepository) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := r.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if _, err := r.client.Collection(r.collection).Doc(id).Delete(ctx); err != nil {
		return translateRemoteErr("delete "+r.collection, err)
	}
	return nil
}
