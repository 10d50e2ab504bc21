package events

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TimescaleStore 基于 TimescaleDB 超表提供事件与遥测查询
type TimescaleStore struct {
	db *gorm.DB
}

// OpenTimescale 连接 TimescaleDB 并确保超表与索引存在
func OpenTimescale(dsn string) (*TimescaleStore, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect timescaledb: %w", err)
	}

	store := &TimescaleStore{db: gdb}
	if err := store.init(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *TimescaleStore) init() error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS timescaledb`,
		`CREATE TABLE IF NOT EXISTS engine_off_events (
			id SERIAL,
			vehicle_id VARCHAR(50) NOT NULL,
			speed FLOAT,
			gear_status VARCHAR(10),
			gyro FLOAT,
			side VARCHAR(20),
			ignition BOOLEAN,
			timestamp TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			PRIMARY KEY (id, timestamp)
		)`,
		`CREATE TABLE IF NOT EXISTS collision_events (
			id SERIAL,
			vehicle_id VARCHAR(50) NOT NULL,
			damage INTEGER,
			timestamp TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			PRIMARY KEY (id, timestamp)
		)`,
		`CREATE TABLE IF NOT EXISTS vehicle_telemetry (
			vehicle_id VARCHAR(50) NOT NULL,
			vehicle_speed FLOAT,
			engine_rpm FLOAT,
			throttle_position FLOAT,
			timestamp TIMESTAMPTZ NOT NULL
		)`,
		`SELECT create_hypertable('engine_off_events', 'timestamp', if_not_exists => TRUE)`,
		`SELECT create_hypertable('collision_events', 'timestamp', if_not_exists => TRUE)`,
		`SELECT create_hypertable('vehicle_telemetry', 'timestamp', if_not_exists => TRUE)`,
		`CREATE INDEX IF NOT EXISTS idx_engine_off_vehicle_id ON engine_off_events(vehicle_id)`,
		`CREATE INDEX IF NOT EXISTS idx_collision_vehicle_id ON collision_events(vehicle_id)`,
		`CREATE INDEX IF NOT EXISTS idx_telemetry_vehicle_id ON vehicle_telemetry(vehicle_id)`,
	}

	for _, stmt := range statements {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("init timescaledb: %w", err)
		}
	}
	return nil
}

// EventsForVehicle 返回车辆在可选时间窗内的事件，按时间升序
func (s *TimescaleStore) EventsForVehicle(ctx context.Context, vehicleID string, start, end *time.Time) (*VehicleEvents, error) {
	result := &VehicleEvents{
		EngineOff:  []EngineOffEvent{},
		Collisions: []CollisionEvent{},
	}

	engineOff := s.db.WithContext(ctx).
		Table("engine_off_events").
		Select("vehicle_id, speed, gear_status, gyro, side, ignition, timestamp").
		Where("vehicle_id = ?", vehicleID)
	if err := applyTimeWindow(engineOff, start, end).
		Order("timestamp ASC").
		Find(&result.EngineOff).Error; err != nil {
		return nil, fmt.Errorf("query engine off events: %w", err)
	}

	collisions := s.db.WithContext(ctx).
		Table("collision_events").
		Select("vehicle_id, damage, timestamp").
		Where("vehicle_id = ?", vehicleID)
	if err := applyTimeWindow(collisions, start, end).
		Order("timestamp ASC").
		Find(&result.Collisions).Error; err != nil {
		return nil, fmt.Errorf("query collision events: %w", err)
	}

	return result, nil
}

// EventSummary 返回车辆的事件数量汇总
func (s *TimescaleStore) EventSummary(ctx context.Context, vehicleID string) (*EventSummary, error) {
	var summary EventSummary

	if err := s.db.WithContext(ctx).
		Table("engine_off_events").
		Where("vehicle_id = ?", vehicleID).
		Count(&summary.EngineOffCount).Error; err != nil {
		return nil, fmt.Errorf("count engine off events: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Table("collision_events").
		Where("vehicle_id = ?", vehicleID).
		Count(&summary.CollisionCount).Error; err != nil {
		return nil, fmt.Errorf("count collision events: %w", err)
	}

	return &summary, nil
}

// TelemetryRange 返回车辆在可选时间窗内的遥测采样，按时间升序
func (s *TimescaleStore) TelemetryRange(ctx context.Context, vehicleID string, start, end *time.Time) ([]TelemetryPoint, error) {
	points := []TelemetryPoint{}

	query := s.db.WithContext(ctx).
		Table("vehicle_telemetry").
		Select("vehicle_id, vehicle_speed, engine_rpm, throttle_position, timestamp").
		Where("vehicle_id = ?", vehicleID)
	if err := applyTimeWindow(query, start, end).
		Order("timestamp ASC").
		Find(&points).Error; err != nil {
		return nil, fmt.Errorf("query telemetry: %w", err)
	}

	return points, nil
}

func applyTimeWindow(query *gorm.DB, start, end *time.Time) *gorm.DB {
	if start != nil {
		query = query.Where("timestamp >= ?", *start)
	}
	if end != nil {
		query = query.Where("timestamp <= ?", *end)
	}
	return query
}
