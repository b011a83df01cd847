package db

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"healthtrack-backend-go/internal/models"
)

// firestoreVitalRepository implements VitalRepository over the
// vital_signs collection.
type firestoreVitalRepository struct {
	client *firestore.Client
}

func (r *firestoreVitalRepository) Create(ctx context.Context, v *models.VitalReading) error {
	if v.OwnerID == "" {
		return errors.New("vital reading owner cannot be empty")
	}
	docRef := r.client.Collection(vitalsCollection).NewDoc()
	v.ID = docRef.ID
	if _, err := docRef.Create(ctx, v); err != nil {
		return translateRemoteErr("create vital reading", err)
	}
	return nil
}

// ListByOwner pushes the whole filter/sort/limit pipeline into query
// parameters so the backend returns exactly what the synthetic store
// would compute locally for the same VitalQuery.
func (r *firestoreVitalRepository) ListByOwner(ctx context.Context, ownerID string, q VitalQuery) ([]*models.VitalReading, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty")
	}

	query := r.client.Collection(vitalsCollection).
		Where("userId", "==", ownerID)
	if !q.Since.IsZero() {
		query = query.Where("recordedAt", ">=", q.Since)
	}
	if q.Kind != "" {
		query = query.Where("vitalType", "==", string(q.Kind))
	}
	query = query.OrderBy("recordedAt", firestore.Desc)
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var vitals []*models.VitalReading
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateRemoteErr("list vital readings", err)
		}
		var v models.VitalReading
		if err := doc.DataTo(&v); err != nil {
			return nil, translateRemoteErr("decode vital reading", err)
		}
		v.ID = doc.Ref.ID
		vitals = append(vitals, &v)
	}
	return vitals, nil
}

// Delete fetches the row first to enforce the ownership scope locally;
// rows that are missing or foreign are skipped without error.
func (r *firestoreVitalRepository) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" || id == "" {
		return errors.New("ownerID and id cannot be empty")
	}
	docRef := r.client.Collection(vitalsCollection).Doc(id)
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return translateRemoteErr("fetch vital reading for delete", err)
	}
	var v models.VitalReading
	if err := snap.DataTo(&v); err != nil {
		return translateRemoteErr("decode vital reading for delete", err)
	}
	if v.OwnerID != ownerID {
		return nil
	}
	if _, err := docRef.Delete(ctx); err != nil {
		return translateRemoteErr("delete vital reading", err)
	}
	return nil
}
