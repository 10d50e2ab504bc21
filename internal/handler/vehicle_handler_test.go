package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alcha/dashboard-api/internal/db"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T) (*API, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.Vehicle{},
		&db.DailyMetric{},
		&db.VehicleScoreDaily{},
		&db.DrivingHabitMonthly{},
		&db.UsedCarEvaluation{},
		&db.InsuranceRisk{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb
	api := NewAPI(gdb, nil, nil)

	return api, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedVehicle(t *testing.T, vehicleID string) {
	t.Helper()
	if err := db.DB.Create(&db.Vehicle{VehicleID: vehicleID, Model: "Sonata DN8"}).Error; err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}
}

func seedScore(t *testing.T, vehicleID string, date time.Time, engineStartCount int) {
	t.Helper()
	final := 85
	if err := db.DB.Create(&db.VehicleScoreDaily{
		VehicleID:        vehicleID,
		AnalysisDate:     date,
		FinalScore:       &final,
		EngineStartCount: &engineStartCount,
	}).Error; err != nil {
		t.Fatalf("failed to seed score: %v", err)
	}
}

func getRequest(t *testing.T, target string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestGetScoreHistoryDefaultWindow(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	seedVehicle(t, "VHC-001")
	for d := 1; d <= 30; d++ {
		seedScore(t, "VHC-001", day(2025, 9, d), 1)
	}

	c, w := getRequest(t, "/api/vehicles/VHC-001/score-history",
		gin.Params{{Key: "vehicle_id", Value: "VHC-001"}})
	api.GetScoreHistory(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["start_date"] != "2025-09-17" {
		t.Fatalf("expected start_date 2025-09-17, got %v", body["start_date"])
	}
	if body["end_date"] != "2025-09-30" {
		t.Fatalf("expected end_date 2025-09-30, got %v", body["end_date"])
	}

	records, ok := body["records"].([]any)
	if !ok || len(records) != 14 {
		t.Fatalf("expected 14 records, got %v", body["records"])
	}
	first := records[0].(map[string]any)
	if first["analysis_date"] != "2025-09-17" {
		t.Fatalf("expected first record 2025-09-17, got %v", first["analysis_date"])
	}
}

func TestGetScoreHistoryEmptyForNewVehicle(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	seedVehicle(t, "VHC-002")

	c, w := getRequest(t, "/api/vehicles/VHC-002/score-history",
		gin.Params{{Key: "vehicle_id", Value: "VHC-002"}})
	api.GetScoreHistory(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["start_date"] != nil || body["end_date"] != nil {
		t.Fatalf("expected null range, got %v..%v", body["start_date"], body["end_date"])
	}
	if records := body["records"].([]any); len(records) != 0 {
		t.Fatalf("expected empty records, got %d", len(records))
	}
}

func TestGetScoreHistoryInvalidDays(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	seedVehicle(t, "VHC-001")

	for _, query := range []string{"days=0", "days=-5", "days=abc"} {
		c, w := getRequest(t, "/api/vehicles/VHC-001/score-history?"+query,
			gin.Params{{Key: "vehicle_id", Value: "VHC-001"}})
		api.GetScoreHistory(c)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q expected status 400, got %d", query, w.Code)
		}
	}
}

func TestGetScoreHistoryInvalidDateParams(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	seedVehicle(t, "VHC-001")

	c, w := getRequest(t, "/api/vehicles/VHC-001/score-history?start_date=2025/09/01",
		gin.Params{{Key: "vehicle_id", Value: "VHC-001"}})
	api.GetScoreHistory(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	// start > end
	c, w = getRequest(t, "/api/vehicles/VHC-001/score-history?start_date=2025-09-10&end_date=2025-09-01",
		gin.Params{{Key: "vehicle_id", Value: "VHC-001"}})
	api.GetScoreHistory(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for inverted range, got %d", w.Code)
	}
}

func TestGetScoreHistoryUnknownVehicle(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	c, w := getRequest(t, "/api/vehicles/VHC-404/score-history",
		gin.Params{{Key: "vehicle_id", Value: "VHC-404"}})
	api.GetScoreHistory(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestGetVehicleScoreByDateInvalidFormat(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	seedVehicle(t, "VHC-001")

	c, w := getRequest(t, "/api/vehicles/VHC-001/score/20250915",
		gin.Params{
			{Key: "vehicle_id", Value: "VHC-001"},
			{Key: "analysis_date", Value: "20250915"},
		})
	api.GetVehicleScoreByDate(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestVehiclesSummary(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	seedVehicle(t, "VHC-001")
	seedVehicle(t, "VHC-002")

	c, w := getRequest(t, "/api/vehicles/summary", nil)
	api.VehiclesSummary(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["total_vehicles"] != float64(2) {
		t.Fatalf("expected 2 vehicles, got %v", body["total_vehicles"])
	}
}
