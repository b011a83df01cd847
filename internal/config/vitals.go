package config

import "healthtrack-backend-go/internal/models"

// VitalInfo is the static metadata for one vital kind.
type VitalInfo struct {
	Name string
	Unit string
	// Composite is true for kinds measured as a pair (blood pressure).
	Composite bool
}

// vitalInfos is the closed set of recognised vital kinds.
var vitalInfos = map[models.VitalKind]VitalInfo{
	models.VitalBloodPressure: {Name: "Blood Pressure", Unit: "mmHg", Composite: true},
	models.VitalHeartRate:     {Name: "Heart Rate", Unit: "bpm"},
	models.VitalWeight:        {Name: "Weight", Unit: "kg"},
	models.VitalGlucose:       {Name: "Blood Glucose", Unit: "mg/dL"},
	models.VitalTemperature:   {Name: "Temperature", Unit: "°F"},
	models.VitalOxygen:        {Name: "Oxygen Saturation", Unit: "%"},
}

// VitalInfoFor returns metadata for a kind; ok is false for unknown kinds.
func VitalInfoFor(kind models.VitalKind) (VitalInfo, bool) {
	info, ok := vitalInfos[kind]
	return info, ok
}

// Vital status values used by the dashboard summary.
const (
	StatusNormal  = "normal"
	StatusWarning = "warning"
)

// ClassifyVital flags readings outside the broad clinical bands:
// BP above 140/90, heart rate outside 60..100 bpm, temperature above
// 99.9 °F, glucose outside 70..125 mg/dL, oxygen below 95%. Weight has
// no absolute band and is always normal.
func ClassifyVital(v *models.VitalReading) string {
	switch v.Kind {
	case models.VitalBloodPressure:
		if v.BloodPressure != nil && (v.BloodPressure.Systolic > 140 || v.BloodPressure.Diastolic > 90) {
			return StatusWarning
		}
	case models.VitalHeartRate:
		if v.Value > 100 || v.Value < 60 {
			return StatusWarning
		}
	case models.VitalTemperature:
		if v.Value > 99.9 {
			return StatusWarning
		}
	case models.VitalGlucose:
		if v.Value >= 126 || v.Value < 70 {
			return StatusWarning
		}
	case models.VitalOxygen:
		if v.Value < 95 {
			return StatusWarning
		}
	}
	return StatusNormal
}

// Upload limits shared by the report/document/photo endpoints.
const MaxUploadSize = 10 * 1024 * 1024 // 10MB

// AllowedUploadTypes lists the accepted upload MIME types.
var AllowedUploadTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
}
