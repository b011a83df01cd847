package db

import (
	"fmt"
	"math/rand"
	"time"

	"healthtrack-backend-go/internal/models"
)

// demoSeedDays is how far back the synthetic dataset reaches.
const demoSeedDays = 30

// seedDemoData populates a fresh MemoryStore with a plausible dataset
// for one identity: a blood pressure reading every day, a heart rate
// reading every other day, a weight reading every seventh day, two
// sample reports and two family links. Values are randomised inside
// clinically ordinary ranges; the counts and date spread are fixed.
//
// It runs exactly once, at synthetic-mode entry.
func seedDemoData(m *MemoryStore, owner *models.Identity) {
	now := time.Now().UTC()

	var vitals []*models.VitalReading
	for i := 0; i < demoSeedDays; i++ {
		day := now.AddDate(0, 0, -i)

		systolic := 110 + rand.Intn(20)
		diastolic := 70 + rand.Intn(15)
		notes := ""
		if i == 0 {
			notes = "Latest reading"
		}
		vitals = append(vitals, &models.VitalReading{
			ID:      fmt.Sprintf("demo-bp-%d", i),
			OwnerID: owner.ID,
			Kind:    models.VitalBloodPressure,
			Value:   float64(systolic),
			BloodPressure: &models.BloodPressure{
				Systolic:  systolic,
				Diastolic: diastolic,
			},
			RecordedAt: day,
			Notes:      notes,
			CreatedAt:  day,
		})

		if i%2 == 0 {
			vitals = append(vitals, &models.VitalReading{
				ID:         fmt.Sprintf("demo-hr-%d", i),
				OwnerID:    owner.ID,
				Kind:       models.VitalHeartRate,
				Value:      float64(65 + rand.Intn(20)),
				RecordedAt: day,
				CreatedAt:  day,
			})
		}

		if i%7 == 0 {
			vitals = append(vitals, &models.VitalReading{
				ID:         fmt.Sprintf("demo-weight-%d", i),
				OwnerID:    owner.ID,
				Kind:       models.VitalWeight,
				Value:      float64(70 + rand.Intn(10)),
				RecordedAt: day,
				CreatedAt:  day,
			})
		}
	}
	m.vitals = vitals

	m.reports = []*models.Report{
		{
			ID:         "demo-report-1",
			OwnerID:    owner.ID,
			Title:      "Annual Physical Exam",
			ReportDate: now.AddDate(0, 0, -30),
			FileRef:    dataURIPrefix + "application/pdf;base64,",
			FileURL:    "#",
			FileName:   "annual-physical.pdf",
			FileType:   "application/pdf",
			Notes:      "All values within normal range",
			CreatedAt:  now.AddDate(0, 0, -30),
		},
		{
			ID:         "demo-report-2",
			OwnerID:    owner.ID,
			Title:      "Lipid Panel",
			ReportDate: now.AddDate(0, 0, -60),
			FileRef:    dataURIPrefix + "application/pdf;base64,",
			FileURL:    "#",
			FileName:   "lipid-panel.pdf",
			FileType:   "application/pdf",
			Notes:      "Cholesterol slightly elevated",
			CreatedAt:  now.AddDate(0, 0, -60),
		},
	}

	m.family = []*models.FamilyLink{
		{
			ID:           "demo-family-1",
			AdminID:      owner.ID,
			MemberRef:    "demo-spouse",
			Email:        "jane@demo.com",
			FullName:     "Jane Demo",
			Relationship: "spouse",
			Status:       models.LinkStatusActive,
			Permissions:  models.Permissions{CanViewFamily: true},
			CreatedAt:    now.AddDate(0, 0, -90),
		},
		{
			ID:           "demo-family-2",
			AdminID:      owner.ID,
			Email:        "john@demo.com",
			FullName:     "John Demo Jr.",
			Relationship: "child",
			Status:       models.LinkStatusPending,
			CreatedAt:    now.AddDate(0, 0, -10),
		},
	}

	m.profiles[owner.ID] = &models.UserProfile{
		UserID:    owner.ID,
		FullName:  owner.DisplayName,
		Email:     owner.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
