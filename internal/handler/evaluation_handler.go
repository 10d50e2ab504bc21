package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUsedCar 返回车辆的二手车评估
func (a *API) GetUsedCar(c *gin.Context) {
	row, err := a.evaluations.UsedCar(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id":            row.VehicleID,
		"engine_score":          row.EngineScore,
		"battery_score":         row.BatteryScore,
		"tire_score":            row.TireScore,
		"brake_score":           row.BrakeScore,
		"fuel_efficiency_score": row.FuelEfficiencyScore,
		"overall_grade":         row.OverallGrade,
		"analysis_date":         fmtDatePtr(row.AnalysisDate),
	})
}

// GetInsurance 返回车辆的保险风险评估
func (a *API) GetInsurance(c *gin.Context) {
	row, err := a.evaluations.Insurance(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id":        row.VehicleID,
		"over_speed_risk":   row.OverSpeedRisk,
		"sudden_accel_risk": row.SuddenAccelRisk,
		"sudden_turn_risk":  row.SuddenTurnRisk,
		"night_drive_risk":  row.NightDriveRisk,
		"overall_grade":     row.OverallGrade,
		"analysis_date":     fmtDatePtr(row.AnalysisDate),
	})
}
