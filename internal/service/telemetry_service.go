package service

import (
	"context"
	"math"
	"time"

	"github.com/alcha/dashboard-api/internal/events"
)

// TelemetryStore 抽象原始遥测序列的只读查询，目前由 TimescaleDB 实现
type TelemetryStore interface {
	TelemetryRange(ctx context.Context, vehicleID string, start, end *time.Time) ([]events.TelemetryPoint, error)
}

// TelemetryService 提供遥测序列查询与统计汇总
type TelemetryService struct {
	store TelemetryStore
}

// TelemetrySummary 汇总一段遥测序列的速度与转速统计
type TelemetrySummary struct {
	Count    int
	AvgSpeed float64
	MaxSpeed float64
	MinSpeed float64
	AvgRpm   float64
	MaxRpm   float64
	MinRpm   float64
}

// NewTelemetryService 构造 TelemetryService
func NewTelemetryService(store TelemetryStore) *TelemetryService {
	return &TelemetryService{store: store}
}

// Range 返回车辆在可选时间窗内的遥测采样，按时间升序
func (s *TelemetryService) Range(ctx context.Context, vehicleID string, start, end *time.Time) ([]events.TelemetryPoint, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.store.TelemetryRange(ctx, vehicleID, start, end)
}

// Summarize 返回遥测序列的统计信息，序列为空时各项为 0
func (s *TelemetryService) Summarize(ctx context.Context, vehicleID string, start, end *time.Time) (*TelemetrySummary, error) {
	points, err := s.Range(ctx, vehicleID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &TelemetrySummary{Count: len(points)}
	if len(points) == 0 {
		return summary, nil
	}

	var speedSum, rpmSum float64
	summary.MinSpeed = points[0].VehicleSpeed
	summary.MaxSpeed = points[0].VehicleSpeed
	summary.MinRpm = points[0].EngineRpm
	summary.MaxRpm = points[0].EngineRpm

	for _, p := range points {
		speedSum += p.VehicleSpeed
		rpmSum += p.EngineRpm
		summary.MaxSpeed = math.Max(summary.MaxSpeed, p.VehicleSpeed)
		summary.MinSpeed = math.Min(summary.MinSpeed, p.VehicleSpeed)
		summary.MaxRpm = math.Max(summary.MaxRpm, p.EngineRpm)
		summary.MinRpm = math.Min(summary.MinRpm, p.EngineRpm)
	}

	summary.AvgSpeed = round2(speedSum / float64(len(points)))
	summary.AvgRpm = round2(rpmSum / float64(len(points)))
	return summary, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
