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

// firestoreProfileRepository implements ProfileRepository. The identity
// id is the document ID, one profile per identity.
type firestoreProfileRepository struct {
	client *firestore.Client
}

func (r *firestoreProfileRepository) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}
	snap, err := r.client.Collection(profilesCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("profile '%s': %w", userID, ErrNotFound)
		}
		return nil, translateRemoteErr("get profile", err)
	}
	var p models.UserProfile
	if err := snap.DataTo(&p); err != nil {
		return nil, translateRemoteErr("decode profile", err)
	}
	p.UserID = snap.Ref.ID
	return &p, nil
}

func (r *firestoreProfileRepository) Create(ctx context.Context, p *models.UserProfile) error {
	if p.UserID == "" {
		return errors.New("profile userID cannot be empty")
	}
	if _, err := r.client.Collection(profilesCollection).Doc(p.UserID).Create(ctx, p); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("profile '%s' already exists: %w", p.UserID, err)
		}
		return translateRemoteErr("create profile", err)
	}
	return nil
}

func (r *firestoreProfileRepository) Update(ctx context.Context, p *models.UserProfile) error {
	if p.UserID == "" {
		return errors.New("profile userID cannot be empty")
	}
	if _, err := r.client.Collection(profilesCollection).Doc(p.UserID).Set(ctx, p, firestore.MergeAll); err != nil {
		return translateRemoteErr("update profile", err)
	}
	return nil
}

// firestoreGoalRepository implements GoalRepository over health_goals.
type firestoreGoalRepository struct {
	client *firestore.Client
}

func (r *firestoreGoalRepository) Create(ctx context.Context, g *models.HealthGoal) error {
	if g.OwnerID == "" {
		return errors.New("goal owner cannot be empty")
	}
	docRef := r.client.Collection(goalsCollection).NewDoc()
	g.ID = docRef.ID
	if _, err := docRef.Create(ctx, g); err != nil {
		return translateRemoteErr("create goal", err)
	}
	return nil
}

func (r *firestoreGoalRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.HealthGoal, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty")
	}
	iter := r.client.Collection(goalsCollection).
		Where("userId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var goals []*models.HealthGoal
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateRemoteErr("list goals", err)
		}
		var g models.HealthGoal
		if err := doc.DataTo(&g); err != nil {
			return nil, translateRemoteErr("decode goal", err)
		}
		g.ID = doc.Ref.ID
		goals = append(goals, &g)
	}
	return goals, nil
}
