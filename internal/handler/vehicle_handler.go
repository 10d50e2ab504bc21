package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alcha/dashboard-api/internal/db"
	"github.com/gin-gonic/gin"
)

const defaultHistoryDays = 14

// ListVehicles 返回按编号排序的车辆列表
func (a *API) ListVehicles(c *gin.Context) {
	vehicles, err := a.vehicles.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, gin.H{
			"vehicle_id": v.VehicleID,
			"model":      v.Model,
			"year":       v.Year,
		})
	}
	c.JSON(http.StatusOK, items)
}

// VehiclesSummary 返回车辆总数
func (a *API) VehiclesSummary(c *gin.Context) {
	total, err := a.vehicles.Count(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_vehicles": total})
}

// GetVehicleDetail 返回车辆详情与最近 30 天的每日指标
func (a *API) GetVehicleDetail(c *gin.Context) {
	detail, err := a.vehicles.Detail(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recent := make([]gin.H, 0, len(detail.Recent))
	for i := range detail.Recent {
		recent = append(recent, dailyMetricPayload(&detail.Recent[i]))
	}

	var latest gin.H
	if detail.Latest != nil {
		latest = dailyMetricPayload(detail.Latest)
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id":     detail.Vehicle.VehicleID,
		"model":          detail.Vehicle.Model,
		"year":           detail.Vehicle.Year,
		"latest_metrics": latest,
		"recent_metrics": recent,
	})
}

// GetVehicleScores 返回车辆全部每日评分（按日期倒序）
func (a *API) GetVehicleScores(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")
	scores, err := a.scores.ListAll(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	records := make([]gin.H, 0, len(scores))
	for i := range scores {
		records = append(records, scoreRecordPayload(&scores[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id": vehicleID,
		"records":    records,
	})
}

// GetVehicleScoreByDate 返回车辆指定日期的评分，按评分/指标分组
func (a *API) GetVehicleScoreByDate(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")
	raw := strings.TrimSpace(c.Param("analysis_date"))

	date, err := time.Parse(dateFormat, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}

	score, err := a.scores.ByDate(c.Request.Context(), vehicleID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id":    vehicleID,
		"analysis_date": fmtDate(score.AnalysisDate),
		"scores": gin.H{
			"final_score":                   score.FinalScore,
			"engine_powertrain_score":       score.EnginePowertrainScore,
			"transmission_drivetrain_score": score.TransmissionDrivetrainScore,
			"brake_suspension_score":        score.BrakeSuspensionScore,
			"adas_safety_score":             score.AdasSafetyScore,
			"electrical_battery_score":      score.ElectricalBatteryScore,
			"other_score":                   score.OtherScore,
		},
		"metrics": gin.H{
			"engine_rpm_avg":            score.EngineRpmAvg,
			"engine_coolant_temp_avg":   score.EngineCoolantTempAvg,
			"transmission_oil_temp_avg": score.TransmissionOilTempAvg,
			"battery_voltage_avg":       score.BatteryVoltageAvg,
			"alternator_output_avg":     score.AlternatorOutputAvg,
			"temperature_ambient_avg":   score.TemperatureAmbientAvg,
			"dtc_count":                 score.DtcCount,
			"gear_change_count":         score.GearChangeCount,
			"abs_activation_count":      score.AbsActivationCount,
			"suspension_shock_count":    score.SuspensionShockCount,
			"adas_sensor_fault_count":   score.AdasSensorFaultCount,
			"aeb_activation_count":      score.AebActivationCount,
			"engine_start_count":        score.EngineStartCount,
			"suddenacc_count":           score.SuddenaccCount,
		},
	})
}

// GetScoreHistory 返回归一化区间内的评分历史（默认最近 14 天，按日期升序）
func (a *API) GetScoreHistory(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	days := defaultHistoryDays
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	history, err := a.scores.History(c.Request.Context(), vehicleID, days, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	records := make([]gin.H, 0, len(history.Records))
	for i := range history.Records {
		records = append(records, scoreHistoryItemPayload(&history.Records[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id": history.VehicleID,
		"start_date": fmtDatePtr(history.Start),
		"end_date":   fmtDatePtr(history.End),
		"records":    records,
	})
}

func dailyMetricPayload(m *db.DailyMetric) gin.H {
	return gin.H{
		"analysis_date":   fmtDate(m.AnalysisDate),
		"total_distance":  m.TotalDistance,
		"average_speed":   m.AverageSpeed,
		"fuel_efficiency": m.FuelEfficiency,
	}
}

// scoreHistoryItemPayload 只投影评分列，供历史曲线使用
func scoreHistoryItemPayload(s *db.VehicleScoreDaily) gin.H {
	return gin.H{
		"analysis_date":                 fmtDate(s.AnalysisDate),
		"final_score":                   s.FinalScore,
		"engine_powertrain_score":       s.EnginePowertrainScore,
		"transmission_drivetrain_score": s.TransmissionDrivetrainScore,
		"brake_suspension_score":        s.BrakeSuspensionScore,
		"adas_safety_score":             s.AdasSafetyScore,
		"electrical_battery_score":      s.ElectricalBatteryScore,
		"other_score":                   s.OtherScore,
	}
}

func scoreRecordPayload(s *db.VehicleScoreDaily) gin.H {
	payload := scoreHistoryItemPayload(s)
	payload["engine_rpm_avg"] = s.EngineRpmAvg
	payload["engine_coolant_temp_avg"] = s.EngineCoolantTempAvg
	payload["transmission_oil_temp_avg"] = s.TransmissionOilTempAvg
	payload["battery_voltage_avg"] = s.BatteryVoltageAvg
	payload["alternator_output_avg"] = s.AlternatorOutputAvg
	payload["temperature_ambient_avg"] = s.TemperatureAmbientAvg
	payload["dtc_count"] = s.DtcCount
	payload["gear_change_count"] = s.GearChangeCount
	payload["abs_activation_count"] = s.AbsActivationCount
	payload["suspension_shock_count"] = s.SuspensionShockCount
	payload["adas_sensor_fault_count"] = s.AdasSensorFaultCount
	payload["aeb_activation_count"] = s.AebActivationCount
	payload["engine_start_count"] = s.EngineStartCount
	payload["suddenacc_count"] = s.SuddenaccCount
	return payload
}
