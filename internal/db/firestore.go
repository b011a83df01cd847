package db

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	gcs "cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"healthtrack-backend-go/internal/config"
)

// Firestore collection names. The table names mirror the hosted schema
// the browser client was built against.
const (
	vitalsCollection   = "vital_signs"
	reportsCollection  = "blood_reports"
	docsCollection     = "medical_documents"
	photosCollection   = "medical_photos"
	familyCollection   = "family_members"
	profilesCollection = "user_profiles"
	goalsCollection    = "health_goals"
)

// FirebaseClients bundles the handles obtained from one Firebase app:
// the Firestore row store, the Auth token verifier, and the default
// storage bucket for blobs.
type FirebaseClients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	Bucket    *gcs.BucketHandle
	BucketURL string // bucket name, used to build public object URLs
}

// NewFirebaseClients initialises the Firebase Admin SDK from the
// configured credential source: a service account file, a base64
// encoded service account JSON, or Application Default Credentials.
func NewFirebaseClients(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*FirebaseClients, error) {
	var opts []option.ClientOption
	switch {
	case cfg.GoogleApplicationCredentials != "":
		logger.Info("initialising Firebase with credentials file",
			zap.String("path", cfg.GoogleApplicationCredentials))
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleApplicationCredentials))
	case cfg.FirebaseServiceAccountJSONBase64 != "":
		logger.Info("initialising Firebase with inline service account JSON")
		decoded, err := base64.StdEncoding.DecodeString(cfg.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	default:
		logger.Info("initialising Firebase with Application Default Credentials")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.FirebaseProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("app.Auth: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("app.Storage: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("storage.DefaultBucket: %w", err)
	}

	return &FirebaseClients{
		Firestore: fsClient,
		Auth:      authClient,
		Bucket:    bucket,
		BucketURL: cfg.StorageBucket,
	}, nil
}

// Probe performs the single startup connectivity check: one bounded
// read against the profiles collection. Failures are translated so the
// caller can distinguish an unreachable backend from a misconfigured
// one.
func (c *FirebaseClients) Probe(ctx context.Context) error {
	iter := c.Firestore.Collection(profilesCollection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.GetAll(); err != nil {
		return translateRemoteErr("probe user_profiles", err)
	}
	return nil
}

// Close releases the Firestore client. The auth and storage handles
// share the app's underlying connections.
func (c *FirebaseClients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}

// NewLiveStore assembles the full live-mode Store over one set of
// Firebase clients.
func NewLiveStore(clients *FirebaseClients) *Store {
	fs := clients.Firestore
	return &Store{
		Mode:      ModeLive,
		Vitals:    &firestoreVitalRepository{client: fs},
		Reports:   &firestoreReportRepository{client: fs},
		Documents: &firestoreMediaRepository{client: fs, collection: docsCollection},
		Photos:    &firestoreMediaRepository{client: fs, collection: photosCollection},
		Family:    &firestoreFamilyRepository{client: fs},
		Profiles:  &firestoreProfileRepository{client: fs},
		Goals:     &firestoreGoalRepository{client: fs},
		Blobs:     &gcsBlobStore{bucket: clients.Bucket, bucketName: clients.BucketURL},
	}
}
