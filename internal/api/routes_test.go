package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthtrack-backend-go/internal/core"
	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/middleware"
	"healthtrack-backend-go/internal/models"
	"healthtrack-backend-go/pkg/cache"
	"healthtrack-backend-go/pkg/messagequeue"
)

var testIdentity = &models.Identity{ID: "demo-user", Email: "demo@example.com", DisplayName: "Demo User"}

// newTestServer wires the full stack over a seeded synthetic store,
// exactly as main does in synthetic mode.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	store := db.NewSyntheticStore(testIdentity)

	services := Services{
		Vitals:  core.NewVitalService(store.Vitals, cache.NewMemoryCache(), logger),
		Reports: core.NewReportService(store.Reports, store.Blobs, logger),
		Media:   core.NewMediaService(store.Documents, store.Photos, store.Blobs, logger),
		Family:  core.NewFamilyService(store.Family, messagequeue.NoopQueue{}, "family-invitations", logger),
		Users:   core.NewUserService(store.Profiles),
		Goals:   core.NewGoalService(store.Goals),
		Export:  core.NewExportService(store.Vitals, store.Reports, store.Profiles, store.Goals),
	}

	router := gin.New()
	SetupRoutes(router, middleware.NewDemoAuthMiddleware(testIdentity, logger), services, store.Mode, logger)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealthReportsMode(t *testing.T) {
	router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["mode"] != string(db.ModeSynthetic) {
		t.Errorf("expected synthetic mode, got %q", body["mode"])
	}
}

func TestListVitalsWithQueryParams(t *testing.T) {
	router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/v1/vitals?type=blood_pressure&limit=5&days=7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list vitals returned %d: %s", w.Code, w.Body.String())
	}
	var vitals []*models.VitalReading
	decode(t, w, &vitals)
	if len(vitals) != 5 {
		t.Fatalf("expected the 5 newest readings, got %d", len(vitals))
	}
	for _, v := range vitals {
		if v.Kind != models.VitalBloodPressure {
			t.Errorf("kind filter leaked %q", v.Kind)
		}
	}
}

func TestListVitalsUnknownTypeIs400(t *testing.T) {
	router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/v1/vitals?type=cholesterol", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRecordAndDeleteVital(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/vitals", map[string]interface{}{
		"vitalType": "heart_rate",
		"value":     74,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("record vital returned %d: %s", w.Code, w.Body.String())
	}
	var reading models.VitalReading
	decode(t, w, &reading)
	if reading.ID == "" {
		t.Fatal("created reading has no id")
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/vitals/"+reading.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete vital returned %d", w.Code)
	}
	// Deleting the same id again is still a no-op success.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/vitals/"+reading.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("repeat delete returned %d", w.Code)
	}
}

func TestRecordVitalValidationError(t *testing.T) {
	router := newTestServer(t)
	w := doJSON(t, router, http.MethodPost, "/api/v1/vitals", map[string]interface{}{
		"vitalType": "blood_pressure",
		"systolic":  120,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for partial blood pressure, got %d: %s", w.Code, w.Body.String())
	}
	var resp ErrorResponse
	decode(t, w, &resp)
	if resp.Error == "" {
		t.Error("error payload should carry a message")
	}
}

func TestLatestVitalAndStats(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/vitals/latest/blood_pressure", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("latest returned %d", w.Code)
	}
	var latest models.VitalReading
	decode(t, w, &latest)
	if latest.BloodPressure == nil {
		t.Fatal("latest blood pressure reading lost its components")
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/vitals/stats/blood_pressure?days=7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats returned %d", w.Code)
	}
	var stats models.VitalStatistics
	decode(t, w, &stats)
	if stats.Count == 0 || len(stats.Series) != stats.Count {
		t.Fatalf("inconsistent statistics: %+v", stats)
	}
}

func TestDashboard(t *testing.T) {
	router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/v1/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard returned %d", w.Code)
	}
	var body struct {
		Latest  []*models.VitalSummary `json:"latestVitals"`
		Recents []*models.RecentVital  `json:"recentVitals"`
	}
	decode(t, w, &body)
	if len(body.Latest) == 0 {
		t.Error("seeded data should produce summary rows")
	}
	if len(body.Recents) == 0 || len(body.Recents) > 5 {
		t.Errorf("expected 1..5 recent entries, got %d", len(body.Recents))
	}
}

func TestReportLifecycle(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/reports", models.SaveReportRequest{
		Title:   "CBC",
		FileRef: "data:application/pdf;base64,",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("save report returned %d: %s", w.Code, w.Body.String())
	}
	var report models.Report
	decode(t, w, &report)

	w = doJSON(t, router, http.MethodGet, "/api/v1/reports", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list reports returned %d", w.Code)
	}
	var reports []*models.Report
	decode(t, w, &reports)
	if len(reports) != 3 { // two seeded plus the new one
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/reports/"+report.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete report returned %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	router := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="malware.zip"`},
		"Content-Type":        {"application/zip"},
	})
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	fmt.Fprint(part, "not really a zip")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a zip upload, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadAcceptsPDF(t *testing.T) {
	router := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="report.pdf"`},
		"Content-Type":        {"application/pdf"},
	})
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	fmt.Fprint(part, "%PDF-1.4")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload returned %d: %s", w.Code, w.Body.String())
	}
	var result db.UploadResult
	decode(t, w, &result)
	if result.Ref == "" || result.FileName != "report.pdf" {
		t.Fatalf("unexpected upload result: %+v", result)
	}
}

func TestFamilyEndpoints(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/family", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list family returned %d", w.Code)
	}
	var members []*models.FamilyLink
	decode(t, w, &members)
	if len(members) != 2 {
		t.Fatalf("expected 2 seeded links, got %d", len(members))
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/family/invitations", models.InviteFamilyRequest{
		Email:        "sister@example.com",
		FullName:     "Sue Demo",
		Relationship: "sister",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("invite returned %d: %s", w.Code, w.Body.String())
	}
	var link models.FamilyLink
	decode(t, w, &link)
	if link.Status != models.LinkStatusPending {
		t.Errorf("new invitations must be pending, got %q", link.Status)
	}
}

func TestProfileEndpoints(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get profile returned %d: %s", w.Code, w.Body.String())
	}
	var profile models.UserProfile
	decode(t, w, &profile)
	if profile.UserID != testIdentity.ID {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	w = doJSON(t, router, http.MethodPut, "/api/v1/users/me", models.UpdateProfileRequest{FullName: "Updated Name"})
	if w.Code != http.StatusOK {
		t.Fatalf("update profile returned %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &profile)
	if profile.FullName != "Updated Name" {
		t.Errorf("update not reflected: %+v", profile)
	}

	// Initialize is idempotent against an existing profile.
	w = doJSON(t, router, http.MethodPost, "/api/v1/users/initialize", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("initialize returned %d: %s", w.Code, w.Body.String())
	}
}

func TestExportEndpoint(t *testing.T) {
	router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/v1/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export returned %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("export should be served as an attachment")
	}
	var doc models.ExportDocument
	decode(t, w, &doc)
	if doc.Profile == nil || len(doc.Vitals) == 0 || len(doc.Reports) != 2 {
		t.Fatalf("incomplete export: profile=%v vitals=%d reports=%d", doc.Profile, len(doc.Vitals), len(doc.Reports))
	}
	if doc.Goals == nil {
		t.Fatal("goals must serialise as an empty array, not null")
	}
}

func TestGoalEndpoints(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/goals", models.SaveGoalRequest{
		Kind:        models.VitalWeight,
		TargetValue: 70,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("save goal returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/goals", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list goals returned %d", w.Code)
	}
	var goals []*models.HealthGoal
	decode(t, w, &goals)
	if len(goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(goals))
	}
}
