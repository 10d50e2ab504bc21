package service

import (
	"context"
	"time"

	"github.com/alcha/dashboard-api/internal/events"
)

// EventStore 抽象事件数据的只读查询，由 TimescaleDB 或 MongoDB 实现
type EventStore interface {
	EventsForVehicle(ctx context.Context, vehicleID string, start, end *time.Time) (*events.VehicleEvents, error)
	EventSummary(ctx context.Context, vehicleID string) (*events.EventSummary, error)
}

// EventService 提供车辆事件的查询与汇总
// store 为 nil 表示部署未配置事件存储，所有查询返回 ErrStoreUnavailable
type EventService struct {
	store EventStore
}

// NewEventService 构造 EventService
func NewEventService(store EventStore) *EventService {
	return &EventService{store: store}
}

// Events 返回车辆在可选时间窗内的全部事件
func (s *EventService) Events(ctx context.Context, vehicleID string, start, end *time.Time) (*events.VehicleEvents, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.store.EventsForVehicle(ctx, vehicleID, start, end)
}

// Summary 返回车辆的事件数量汇总
func (s *EventService) Summary(ctx context.Context, vehicleID string) (*events.EventSummary, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.store.EventSummary(ctx, vehicleID)
}
