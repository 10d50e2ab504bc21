// Package events 封装事件与遥测数据的外部存储访问。
// 原始事件可存放在 TimescaleDB 超表或 MongoDB 集合中，两个实现
// 对外暴露同一组只读查询。
package events

import "time"

// EngineOffEvent 表示一次熄火事件
type EngineOffEvent struct {
	VehicleID  string    `json:"vehicle_id" bson:"vehicle_id"`
	Speed      *float64  `json:"speed" bson:"speed"`
	GearStatus string    `json:"gear_status" bson:"gear_status"`
	Gyro       *float64  `json:"gyro" bson:"gyro"`
	Side       string    `json:"side" bson:"side"`
	Ignition   *bool     `json:"ignition" bson:"ignition"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// CollisionEvent 表示一次碰撞事件
type CollisionEvent struct {
	VehicleID string    `json:"vehicle_id" bson:"vehicle_id"`
	Damage    *int      `json:"damage" bson:"damage"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// VehicleEvents 汇总一辆车的全部事件，均按时间升序
type VehicleEvents struct {
	EngineOff  []EngineOffEvent
	Collisions []CollisionEvent
}

// EventSummary 汇总事件数量
type EventSummary struct {
	EngineOffCount int64
	CollisionCount int64
}

// Total 返回事件总数
func (s EventSummary) Total() int64 {
	return s.EngineOffCount + s.CollisionCount
}

// TelemetryPoint 表示一条原始遥测采样
type TelemetryPoint struct {
	VehicleID        string    `json:"vehicle_id"`
	VehicleSpeed     float64   `json:"vehicle_speed"`
	EngineRpm        float64   `json:"engine_rpm"`
	ThrottlePosition float64   `json:"throttle_position"`
	Timestamp        time.Time `json:"timestamp"`
}
