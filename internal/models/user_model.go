package models

import "time"

// Identity is the authenticated principal supplied by the identity
// provider (Firebase Auth in live mode, a fixed demo identity in
// synthetic mode). Only this shape is consumed; authentication itself
// happens upstream.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// UserProfile is the stored profile for one identity, created lazily on
// first successful sign-in. The identity id is the document ID.
type UserProfile struct {
	UserID    string    `json:"userId" firestore:"-"`
	FullName  string    `json:"fullName" firestore:"fullName"`
	Age       *int      `json:"age,omitempty" firestore:"age,omitempty"`
	Gender    string    `json:"gender,omitempty" firestore:"gender,omitempty"`
	Email     string    `json:"email" firestore:"email"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ExportDocument is the downloadable backup. Its key set is a stable
// user-facing contract; Goals is always present, empty when none exist.
type ExportDocument struct {
	Profile  *UserProfile    `json:"profile"`
	Vitals   []*VitalReading `json:"vitals"`
	Reports  []*Report       `json:"reports"`
	Goals    []*HealthGoal   `json:"goals"`
	ExportAt time.Time       `json:"exportDate"`
}
