package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alcha/dashboard-api/internal/db"
)

func seedDailyMetric(t *testing.T, vehicleID string, date time.Time, distance float64) {
	t.Helper()
	if err := db.DB.Create(&db.DailyMetric{
		VehicleID:     vehicleID,
		AnalysisDate:  date,
		TotalDistance: &distance,
	}).Error; err != nil {
		t.Fatalf("failed to seed daily metric: %v", err)
	}
}

func TestVehicleListOrderedByID(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	seedVehicle(t, "VHC-003")
	seedVehicle(t, "VHC-001")
	seedVehicle(t, "VHC-002")

	svc := NewVehicleService(db.DB)
	vehicles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(vehicles) != 3 {
		t.Fatalf("expected 3 vehicles, got %d", len(vehicles))
	}
	if vehicles[0].VehicleID != "VHC-001" || vehicles[2].VehicleID != "VHC-003" {
		t.Fatalf("unexpected order: %s..%s", vehicles[0].VehicleID, vehicles[2].VehicleID)
	}
}

func TestVehicleCount(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	seedVehicle(t, "VHC-001")
	seedVehicle(t, "VHC-002")

	svc := NewVehicleService(db.DB)
	total, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 vehicles, got %d", total)
	}
}

func TestVehicleDetailRecentMetrics(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	seedVehicle(t, "VHC-001")
	for d := 1; d <= 35; d++ {
		seedDailyMetric(t, "VHC-001", day(2025, 8, 1).AddDate(0, 0, d-1), float64(d))
	}

	svc := NewVehicleService(db.DB)
	detail, err := svc.Detail(context.Background(), "VHC-001")
	if err != nil {
		t.Fatalf("Detail returned error: %v", err)
	}

	// 最多 30 条，按日期倒序，最新一条同时作为 latest
	if len(detail.Recent) != 30 {
		t.Fatalf("expected 30 recent metrics, got %d", len(detail.Recent))
	}
	if detail.Latest == nil {
		t.Fatal("expected latest metric")
	}
	if !detail.Latest.AnalysisDate.Equal(detail.Recent[0].AnalysisDate) {
		t.Fatalf("latest should match first recent metric")
	}
	if detail.Recent[0].AnalysisDate.Before(detail.Recent[1].AnalysisDate) {
		t.Fatal("recent metrics not descending")
	}
}

func TestVehicleDetailNoMetrics(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	seedVehicle(t, "VHC-001")

	svc := NewVehicleService(db.DB)
	detail, err := svc.Detail(context.Background(), "VHC-001")
	if err != nil {
		t.Fatalf("Detail returned error: %v", err)
	}
	if detail.Latest != nil {
		t.Fatalf("expected nil latest, got %+v", detail.Latest)
	}
	if len(detail.Recent) != 0 {
		t.Fatalf("expected no recent metrics, got %d", len(detail.Recent))
	}
}

func TestVehicleDetailNotFound(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewVehicleService(db.DB)
	if _, err := svc.Detail(context.Background(), "VHC-404"); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}
