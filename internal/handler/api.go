package handler

import (
	"github.com/alcha/dashboard-api/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	vehicles    *service.VehicleService
	scores      *service.ScoreService
	habits      *service.DrivingHabitService
	evaluations *service.EvaluationService
	events      *service.EventService
	telemetry   *service.TelemetryService
}

// NewAPI constructs a handler set with shared services.
// eventStore/telemetryStore 允许为 nil：对应端点会返回 503。
func NewAPI(gdb *gorm.DB, eventStore service.EventStore, telemetryStore service.TelemetryStore) *API {
	return &API{
		db:          gdb,
		vehicles:    service.NewVehicleService(gdb),
		scores:      service.NewScoreService(gdb),
		habits:      service.NewDrivingHabitService(gdb),
		evaluations: service.NewEvaluationService(gdb),
		events:      service.NewEventService(eventStore),
		telemetry:   service.NewTelemetryService(telemetryStore),
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}
