package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alcha/dashboard-api/internal/events"
)

type fakeTelemetryStore struct {
	points []events.TelemetryPoint
	err    error
}

func (f *fakeTelemetryStore) TelemetryRange(_ context.Context, _ string, _, _ *time.Time) ([]events.TelemetryPoint, error) {
	return f.points, f.err
}

func TestTelemetrySummarize(t *testing.T) {
	store := &fakeTelemetryStore{points: []events.TelemetryPoint{
		{VehicleSpeed: 60, EngineRpm: 2000},
		{VehicleSpeed: 90, EngineRpm: 3100},
		{VehicleSpeed: 30.5, EngineRpm: 1500},
	}}

	svc := NewTelemetryService(store)
	summary, err := svc.Summarize(context.Background(), "VHC-001", nil, nil)
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if summary.Count != 3 {
		t.Fatalf("expected count 3, got %d", summary.Count)
	}
	if summary.AvgSpeed != 60.17 {
		t.Fatalf("expected avg speed 60.17, got %v", summary.AvgSpeed)
	}
	if summary.MaxSpeed != 90 || summary.MinSpeed != 30.5 {
		t.Fatalf("unexpected speed bounds: %v..%v", summary.MinSpeed, summary.MaxSpeed)
	}
	if summary.AvgRpm != 2200 {
		t.Fatalf("expected avg rpm 2200, got %v", summary.AvgRpm)
	}
	if summary.MaxRpm != 3100 || summary.MinRpm != 1500 {
		t.Fatalf("unexpected rpm bounds: %v..%v", summary.MinRpm, summary.MaxRpm)
	}
}

func TestTelemetrySummarizeEmpty(t *testing.T) {
	svc := NewTelemetryService(&fakeTelemetryStore{})
	summary, err := svc.Summarize(context.Background(), "VHC-001", nil, nil)
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if summary.Count != 0 || summary.AvgSpeed != 0 || summary.MaxRpm != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
}

func TestTelemetryStoreUnavailable(t *testing.T) {
	svc := NewTelemetryService(nil)
	if _, err := svc.Range(context.Background(), "VHC-001", nil, nil); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := svc.Summarize(context.Background(), "VHC-001", nil, nil); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
