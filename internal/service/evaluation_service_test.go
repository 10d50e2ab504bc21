package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alcha/dashboard-api/internal/db"
)

func TestUsedCarEvaluation(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	if err := db.DB.Create(&db.UsedCarEvaluation{
		VehicleID:    "VHC-001",
		EngineScore:  intPtr(85),
		OverallGrade: intPtr(2),
	}).Error; err != nil {
		t.Fatalf("failed to seed evaluation: %v", err)
	}

	svc := NewEvaluationService(db.DB)
	row, err := svc.UsedCar(context.Background(), "VHC-001")
	if err != nil {
		t.Fatalf("UsedCar returned error: %v", err)
	}
	if intOrZero(row.EngineScore) != 85 {
		t.Fatalf("unexpected engine score: %v", row.EngineScore)
	}

	if _, err := svc.UsedCar(context.Background(), "VHC-404"); !errors.Is(err, ErrUsedCarNotFound) {
		t.Fatalf("expected ErrUsedCarNotFound, got %v", err)
	}
}

func TestInsuranceRisk(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	if err := db.DB.Create(&db.InsuranceRisk{
		VehicleID:      "VHC-001",
		NightDriveRisk: intPtr(3),
	}).Error; err != nil {
		t.Fatalf("failed to seed risk: %v", err)
	}

	svc := NewEvaluationService(db.DB)
	row, err := svc.Insurance(context.Background(), "VHC-001")
	if err != nil {
		t.Fatalf("Insurance returned error: %v", err)
	}
	if intOrZero(row.NightDriveRisk) != 3 {
		t.Fatalf("unexpected night drive risk: %v", row.NightDriveRisk)
	}

	if _, err := svc.Insurance(context.Background(), "VHC-404"); !errors.Is(err, ErrInsuranceNotFound) {
		t.Fatalf("expected ErrInsuranceNotFound, got %v", err)
	}
}
