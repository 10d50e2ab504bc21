package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetVehicleEvents 返回车辆的熄火与碰撞事件（按时间升序）
func (a *API) GetVehicleEvents(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

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

	result, err := a.events.Events(c.Request.Context(), vehicleID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id":        vehicleID,
		"engine_off_events": result.EngineOff,
		"collision_events":  result.Collisions,
	})
}

// GetVehicleEventsSummary 返回车辆的事件数量汇总
func (a *API) GetVehicleEventsSummary(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	summary, err := a.events.Summary(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id":              vehicleID,
		"total_engine_off_events": summary.EngineOffCount,
		"total_collision_events":  summary.CollisionCount,
		"total_events":            summary.Total(),
	})
}
