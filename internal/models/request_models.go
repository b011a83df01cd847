package models

import "time"

// RecordVitalRequest is the payload for recording a vital reading.
// Value is required for scalar kinds; Systolic and Diastolic are
// required for blood_pressure and rejected elsewhere.
type RecordVitalRequest struct {
	Kind       VitalKind `json:"vitalType"`
	Value      *float64  `json:"value,omitempty"`
	Systolic   *int      `json:"systolic,omitempty"`
	Diastolic  *int      `json:"diastolic,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
	Notes      string    `json:"notes,omitempty"`
}

// SaveReportRequest is the payload for attaching an uploaded lab report.
type SaveReportRequest struct {
	Title      string    `json:"title"`
	ReportDate time.Time `json:"reportDate"`
	FileRef    string    `json:"fileRef"`
	FileURL    string    `json:"fileUrl"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	Notes      string    `json:"notes,omitempty"`
}

// SaveMediaRequest is the payload for saving a document or photo row.
type SaveMediaRequest struct {
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	FamilyMember string    `json:"familyMember,omitempty"`
	ItemDate     time.Time `json:"date"`
	Tags         []string  `json:"tags,omitempty"`
	FileRef      string    `json:"fileRef"`
	FileURL      string    `json:"fileUrl"`
	FileName     string    `json:"fileName"`
	FileType     string    `json:"fileType"`
	Notes        string    `json:"notes,omitempty"`
	Preview      string    `json:"preview,omitempty"`
}

// InviteFamilyRequest creates a pending family link.
type InviteFamilyRequest struct {
	Email        string      `json:"email"`
	FullName     string      `json:"fullName"`
	Relationship string      `json:"relationship"`
	Permissions  Permissions `json:"permissions"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Age      *int   `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
}

// SaveGoalRequest creates a health goal.
type SaveGoalRequest struct {
	Kind        VitalKind `json:"vitalType"`
	TargetValue float64   `json:"targetValue"`
	TargetDate  time.Time `json:"targetDate"`
	Description string    `json:"description,omitempty"`
}
