package models

import "time"

// Report is an uploaded lab report: a metadata row plus an opaque blob
// locator. FileRef points into the blob store; in synthetic mode it holds
// the data-URI sentinel produced by the in-memory blob store.
type Report struct {
	ID         string    `json:"id" firestore:"-"`
	OwnerID    string    `json:"userId" firestore:"userId"`
	Title      string    `json:"title" firestore:"title"`
	ReportDate time.Time `json:"reportDate" firestore:"reportDate"`
	FileRef    string    `json:"fileRef" firestore:"fileRef"`
	FileURL    string    `json:"fileUrl" firestore:"fileUrl"`
	FileName   string    `json:"fileName" firestore:"fileName"`
	FileType   string    `json:"fileType" firestore:"fileType"`
	Notes      string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
}

// MediaItem is a medical document or photo. Same shape as Report plus a
// category tag and a free-text family member association.
//
// FamilyMember is deliberately a display string rather than a FamilyLink
// reference; the exported backup format records it as text.
type MediaItem struct {
	ID           string    `json:"id" firestore:"-"`
	OwnerID      string    `json:"userId" firestore:"userId"`
	Title        string    `json:"title" firestore:"title"`
	Category     string    `json:"category" firestore:"category"`
	FamilyMember string    `json:"familyMember,omitempty" firestore:"familyMember,omitempty"`
	ItemDate     time.Time `json:"date" firestore:"itemDate"`
	Tags         []string  `json:"tags,omitempty" firestore:"tags,omitempty"`
	FileRef      string    `json:"fileRef" firestore:"fileRef"`
	FileURL      string    `json:"fileUrl" firestore:"fileUrl"`
	FileName     string    `json:"fileName" firestore:"fileName"`
	FileType     string    `json:"fileType" firestore:"fileType"`
	Notes        string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	// Preview holds an inline image payload in synthetic mode only;
	// it is never written to Firestore.
	Preview   string    `json:"preview,omitempty" firestore:"-"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// HealthGoal is a user-defined target for a vital kind.
type HealthGoal struct {
	ID          string    `json:"id" firestore:"-"`
	OwnerID     string    `json:"userId" firestore:"userId"`
	Kind        VitalKind `json:"vitalType" firestore:"vitalType"`
	TargetValue float64   `json:"targetValue" firestore:"targetValue"`
	TargetDate  time.Time `json:"targetDate" firestore:"targetDate"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}
