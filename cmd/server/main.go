package main

import (
	"context"
	"log"
	"time"

	"github.com/alcha/dashboard-api/internal/config"
	"github.com/alcha/dashboard-api/internal/db"
	"github.com/alcha/dashboard-api/internal/events"
	"github.com/alcha/dashboard-api/internal/handler"
	"github.com/alcha/dashboard-api/internal/router"
	"github.com/alcha/dashboard-api/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化关系型数据库
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	var (
		eventStore     service.EventStore
		telemetryStore service.TelemetryStore
	)

	// 事件/遥测存储按配置接入，缺省时对应端点返回 503
	if cfg.TimescaleDSN != "" {
		tsStore, err := events.OpenTimescale(cfg.TimescaleDSN)
		if err != nil {
			log.Fatalf("failed to connect timescaledb: %v", err)
		}
		telemetryStore = tsStore
		if cfg.EventsBackend == "timescaledb" {
			eventStore = tsStore
		}
	}

	if cfg.EventsBackend == "mongodb" {
		if cfg.MongoURI == "" {
			log.Fatal("EVENTS_BACKEND=mongodb requires MONGODB_URI")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoStore, err := events.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		cancel()
		if err != nil {
			log.Fatalf("failed to connect mongodb: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoStore.Close(ctx); err != nil {
				log.Printf("failed to close mongodb: %v", err)
			}
		}()
		eventStore = mongoStore
	}

	api := handler.NewAPI(db.DB, eventStore, telemetryStore)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.CORSAllowOrigins)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
