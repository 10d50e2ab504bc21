package router

import (
	"net/http"

	"github.com/alcha/dashboard-api/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	// 仪表盘前端跨域访问
	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	r.Use(cors.New(corsConfig))
	r.Use(requestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		vehicles := apiGroup.Group("/vehicles")
		{
			vehicles.GET("", api.ListVehicles)
			vehicles.GET("/summary", api.VehiclesSummary)
			vehicles.GET("/:vehicle_id", api.GetVehicleDetail)
			vehicles.GET("/:vehicle_id/scores", api.GetVehicleScores)
			vehicles.GET("/:vehicle_id/score/:analysis_date", api.GetVehicleScoreByDate)
			vehicles.GET("/:vehicle_id/score-history", api.GetScoreHistory)
			vehicles.GET("/:vehicle_id/driving-habits", api.GetDrivingHabits)
			vehicles.GET("/:vehicle_id/habit-monthly", api.GetHabitMonthly)
		}

		apiGroup.GET("/used-car/:vehicle_id", api.GetUsedCar)
		apiGroup.GET("/insurance/:vehicle_id", api.GetInsurance)

		events := apiGroup.Group("/events")
		{
			events.GET("/:vehicle_id", api.GetVehicleEvents)
			events.GET("/:vehicle_id/summary", api.GetVehicleEventsSummary)
		}

		telemetry := apiGroup.Group("/telemetry")
		{
			telemetry.GET("/:vehicle_id", api.GetTelemetry)
			telemetry.GET("/:vehicle_id/summary", api.GetTelemetrySummary)
		}
	}

	return r
}

// requestID 为每个请求生成追踪编号，写入响应头便于排查
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
