package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr       string
	Port             string
	DatabaseURL      string
	GinMode          string
	TimescaleDSN     string
	MongoURI         string
	MongoDatabase    string
	EventsBackend    string
	CORSAllowOrigins []string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8000"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		databaseURL = "dashboard.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	timescaleDSN := strings.TrimSpace(os.Getenv("TIMESCALEDB_DSN"))

	mongoURI := strings.TrimSpace(os.Getenv("MONGODB_URI"))

	mongoDatabase := strings.TrimSpace(os.Getenv("MONGODB_DATABASE"))
	if mongoDatabase == "" {
		mongoDatabase = "alcha_events"
	}

	// 事件存储后端：timescaledb / mongodb。未显式指定时按已配置的连接串推断。
	eventsBackend := strings.ToLower(strings.TrimSpace(os.Getenv("EVENTS_BACKEND")))
	if eventsBackend == "" {
		switch {
		case timescaleDSN != "":
			eventsBackend = "timescaledb"
		case mongoURI != "":
			eventsBackend = "mongodb"
		}
	}

	corsOrigins := splitCSV(os.Getenv("CORS_ALLOW_ORIGINS"))
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	return AppConfig{
		ListenAddr:       listenAddr,
		Port:             port,
		DatabaseURL:      databaseURL,
		GinMode:          ginMode,
		TimescaleDSN:     timescaleDSN,
		MongoURI:         mongoURI,
		MongoDatabase:    mongoDatabase,
		EventsBackend:    eventsBackend,
		CORSAllowOrigins: corsOrigins,
	}
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
