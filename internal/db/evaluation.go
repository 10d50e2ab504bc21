package db

import "time"

// UsedCarEvaluation 记录二手车评估分数，每车一行
type UsedCarEvaluation struct {
	VehicleID           string `gorm:"primaryKey;size:50"`
	EngineScore         *int
	BatteryScore        *int
	TireScore           *int
	BrakeScore          *int
	FuelEfficiencyScore *int
	OverallGrade        *int
	AnalysisDate        *time.Time `gorm:"type:date"`
	CreatedAt           time.Time
}

// TableName 指定自定义表名。
func (UsedCarEvaluation) TableName() string {
	return "used_car_evaluations"
}

// InsuranceRisk 记录保险风险评估分数，每车一行
type InsuranceRisk struct {
	VehicleID       string `gorm:"primaryKey;size:50"`
	OverSpeedRisk   *int
	SuddenAccelRisk *int
	SuddenTurnRisk  *int
	NightDriveRisk  *int
	OverallGrade    *int
	AnalysisDate    *time.Time `gorm:"type:date"`
	CreatedAt       time.Time
}

// TableName 指定自定义表名。
func (InsuranceRisk) TableName() string {
	return "insurance_risks"
}
