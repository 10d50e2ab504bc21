package db

import "time"

// VehicleScoreDaily 汇总车辆单日的健康评分与传感器统计
// VehicleID + AnalysisDate 为复合主键，保证每车每天至多一行
// 所有评分与计数列均可能缺失，统一使用指针表达 NULL
type VehicleScoreDaily struct {
	VehicleID    string    `gorm:"primaryKey;size:50"`
	AnalysisDate time.Time `gorm:"primaryKey;type:date"`

	FinalScore                  *int
	EnginePowertrainScore       *int
	TransmissionDrivetrainScore *int
	BrakeSuspensionScore        *int
	AdasSafetyScore             *int
	ElectricalBatteryScore      *int
	OtherScore                  *int

	EngineRpmAvg           *int
	EngineCoolantTempAvg   *float64
	TransmissionOilTempAvg *float64
	BatteryVoltageAvg      *float64
	AlternatorOutputAvg    *float64
	TemperatureAmbientAvg  *float64
	DtcCount               *int
	GearChangeCount        *int
	AbsActivationCount     *int
	SuspensionShockCount   *int
	AdasSensorFaultCount   *int
	AebActivationCount     *int
	EngineStartCount       *int
	SuddenaccCount         *int

	CreatedAt time.Time
}

// TableName 指定自定义表名。
func (VehicleScoreDaily) TableName() string {
	return "vehicle_score_daily"
}
