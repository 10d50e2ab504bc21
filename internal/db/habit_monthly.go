package db

import "time"

// DrivingHabitMonthly 汇总车辆单月的驾驶习惯指标
// AnalysisMonth 约定存储该月第一天，VehicleID + AnalysisMonth 复合主键保证每车每月至多一行
type DrivingHabitMonthly struct {
	VehicleID     string    `gorm:"primaryKey;size:50"`
	AnalysisMonth time.Time `gorm:"primaryKey;type:date"`

	AccelerationEvents      *int
	LaneDepartureEvents     *int
	NightDriveRatio         *float64
	AvgDriveDurationMinutes *float64
	AvgSpeed                *float64
	AvgDistance             *float64

	CreatedAt time.Time
}

// TableName 指定自定义表名。
func (DrivingHabitMonthly) TableName() string {
	return "driving_habit_monthly"
}
