package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTelemetry 返回车辆在可选时间窗内的原始遥测序列
func (a *API) GetTelemetry(c *gin.Context) {
	start, err := parseTimeQuery(c, "start_time")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseTimeQuery(c, "end_time")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	points, err := a.telemetry.Range(c.Request.Context(), c.Param("vehicle_id"), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

// GetTelemetrySummary 返回遥测序列的速度/转速统计
func (a *API) GetTelemetrySummary(c *gin.Context) {
	start, err := parseTimeQuery(c, "start_time")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseTimeQuery(c, "end_time")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := a.telemetry.Summarize(c.Request.Context(), c.Param("vehicle_id"), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     summary.Count,
		"avg_speed": summary.AvgSpeed,
		"max_speed": summary.MaxSpeed,
		"min_speed": summary.MinSpeed,
		"avg_rpm":   summary.AvgRpm,
		"max_rpm":   summary.MaxRpm,
		"min_rpm":   summary.MinRpm,
	})
}
