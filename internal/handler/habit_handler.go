package handler

import (
	"net/http"

	"github.com/alcha/dashboard-api/internal/db"
	"github.com/alcha/dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
)

// GetDrivingHabits 返回最近两个月的习惯对比与完整历史
func (a *API) GetDrivingHabits(c *gin.Context) {
	summary, err := a.habits.Summary(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	history := make([]gin.H, 0, len(summary.History))
	for i := range summary.History {
		history = append(history, habitRecordPayload(&summary.History[i]))
	}

	var latest, previous gin.H
	if summary.Latest != nil {
		latest = habitRecordPayload(summary.Latest)
	}
	if summary.Previous != nil {
		previous = habitRecordPayload(summary.Previous)
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id": summary.VehicleID,
		"latest":     latest,
		"previous":   previous,
		"delta":      habitDeltaPayload(summary.Delta),
		"history":    history,
	})
}

// GetHabitMonthly 返回月度习惯记录及各月运转天数，支持 month=YYYY-MM 筛选
func (a *API) GetHabitMonthly(c *gin.Context) {
	habits, err := a.habits.MonthlyHabits(c.Request.Context(), c.Param("vehicle_id"), c.Query("month"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(habits))
	for i := range habits {
		record := &habits[i].Record
		payload := habitRecordPayload(record)
		payload["vehicle_id"] = record.VehicleID
		payload["driving_days"] = habits[i].DrivingDays
		payload["created_at"] = record.CreatedAt
		items = append(items, payload)
	}

	c.JSON(http.StatusOK, items)
}

func habitRecordPayload(r *db.DrivingHabitMonthly) gin.H {
	return gin.H{
		"analysis_month":             fmtDate(r.AnalysisMonth),
		"acceleration_events":        r.AccelerationEvents,
		"lane_departure_events":      r.LaneDepartureEvents,
		"night_drive_ratio":          r.NightDriveRatio,
		"avg_drive_duration_minutes": r.AvgDriveDurationMinutes,
		"avg_speed":                  r.AvgSpeed,
		"avg_distance":               r.AvgDistance,
	}
}

func habitDeltaPayload(d *service.HabitDelta) gin.H {
	if d == nil {
		return nil
	}
	return gin.H{
		"acceleration_events":        d.AccelerationEvents,
		"lane_departure_events":      d.LaneDepartureEvents,
		"night_drive_ratio":          d.NightDriveRatio,
		"avg_drive_duration_minutes": d.AvgDriveDurationMinutes,
		"avg_speed":                  d.AvgSpeed,
		"avg_distance":               d.AvgDistance,
	}
}
