package db

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"healthtrack-backend-go/internal/models"
)

// firestoreFamilyRepository implements FamilyRepository over the
// family_members collection.
type firestoreFamilyRepository struct {
	client *firestore.Client
}

func (r *firestoreFamilyRepository) Create(ctx context.Context, l *models.FamilyLink) error {
	if l.AdminID == "" {
		return errors.New("family link admin cannot be empty")
	}
	docRef := r.client.Collection(familyCollection).NewDoc()
	l.ID = docRef.ID
	if _, err := docRef.Create(ctx, l); err != nil {
		return translateRemoteErr("create family link", err)
	}
	return nil
}

func (r *firestoreFamilyRepository) ListByAdmin(ctx context.Context, adminID string) ([]*models.FamilyLink, error) {
	if adminID == "" {
		return nil, errors.New("adminID cannot be empty")
	}
	iter := r.client.Collection(familyCollection).
		Where("familyAdminId", "==", adminID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var links []*models.FamilyLink
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateRemoteErr("list family links", err)
		}
		var l models.FamilyLink
		if err := doc.DataTo(&l); err != nil {
			return nil, translateRemoteErr("decode family link", err)
		}
		l.ID = doc.Ref.ID
		links = append(links, &l)
	}
	return links, nil
}
