package db

import "time"

// Vehicle 表示一辆接入车辆的基础信息
// VehicleID 为外部采集系统下发的唯一编号（如 VHC-001），由摄取流程创建，后端只读
type Vehicle struct {
	VehicleID string `gorm:"primaryKey;size:50"`
	Model     string `gorm:"size:100;not null"`
	Year      *int
	CreatedAt time.Time
}

// TableName 指定自定义表名，避免自动复数化导致的歧义。
func (Vehicle) TableName() string {
	return "vehicles"
}

// DailyMetric 记录车辆每日行驶指标，用于详情页的近况展示
type DailyMetric struct {
	ID             uint   `gorm:"primaryKey"`
	VehicleID      string `gorm:"size:50;index;not null"`
	TotalDistance  *float64
	AverageSpeed   *float64
	FuelEfficiency *float64
	AnalysisDate   time.Time `gorm:"type:date;not null"`
	CreatedAt      time.Time
}

// TableName 指定自定义表名。
func (DailyMetric) TableName() string {
	return "daily_metrics"
}
