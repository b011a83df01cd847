package models

import "time"

// VitalKind identifies a physiological quantity being tracked.
type VitalKind string

const (
	VitalBloodPressure VitalKind = "blood_pressure"
	VitalHeartRate     VitalKind = "heart_rate"
	VitalWeight        VitalKind = "weight"
	VitalGlucose       VitalKind = "glucose"
	VitalTemperature   VitalKind = "temperature"
	VitalOxygen        VitalKind = "oxygen"
)

// BloodPressure is the composite payload carried only by blood_pressure readings.
type BloodPressure struct {
	Systolic  int `json:"systolic" firestore:"systolic"`
	Diastolic int `json:"diastolic" firestore:"diastolic"`
}

// VitalReading is a single timestamped measurement owned by one user.
//
// Readings are discriminated by Kind: blood_pressure readings carry the
// BloodPressure payload and Value mirrors the systolic component so every
// kind sorts and charts through the same scalar; all other kinds carry
// Value alone and BloodPressure is nil. Readings are immutable once
// created; the only mutation is deletion.
type VitalReading struct {
	ID            string         `json:"id" firestore:"-"` // document ID
	OwnerID       string         `json:"userId" firestore:"userId"`
	Kind          VitalKind      `json:"vitalType" firestore:"vitalType"`
	Value         float64        `json:"value" firestore:"value"`
	BloodPressure *BloodPressure `json:"bloodPressure,omitempty" firestore:"bloodPressure,omitempty"`
	RecordedAt    time.Time      `json:"recordedAt" firestore:"recordedAt"`
	Notes         string         `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt     time.Time      `json:"createdAt" firestore:"createdAt"`
}

// StatPoint is one entry of a statistics series.
type StatPoint struct {
	Date          time.Time      `json:"date"`
	Value         float64        `json:"value"`
	BloodPressure *BloodPressure `json:"bloodPressure,omitempty"`
}

// VitalStatistics summarises the readings of one kind inside a time window.
type VitalStatistics struct {
	Count  int         `json:"count"`
	Latest StatPoint   `json:"latest"`
	Oldest StatPoint   `json:"oldest"`
	Series []StatPoint `json:"series"`
}

// VitalSummary is a dashboard row: the latest reading of a kind with its
// display form and a normal/warning classification.
type VitalSummary struct {
	Kind        VitalKind `json:"vitalType"`
	Display     string    `json:"display"`
	Unit        string    `json:"unit"`
	Status      string    `json:"status"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// RecentVital is a formatted entry for the dashboard's recent-activity list.
type RecentVital struct {
	Kind    string    `json:"type"`
	Display string    `json:"value"`
	Date    time.Time `json:"date"`
}
