package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 初始化关系型数据库连接并执行自动迁移。
// databaseURL 以 postgres:// 开头时使用 PostgreSQL，否则按 SQLite 文件路径处理；
// 为空时回退到默认值 dashboard.db。
func Init(databaseURL string) error {
	dsn := strings.TrimSpace(databaseURL)
	if dsn == "" {
		dsn = "dashboard.db"
	}

	dialector, err := openDialector(dsn)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	// 自动迁移模式，为核心模型创建表
	return DB.AutoMigrate(
		&Vehicle{},
		&DailyMetric{},
		&VehicleScoreDaily{},
		&DrivingHabitMonthly{},
		&UsedCarEvaluation{},
		&InsuranceRisk{},
	)
}

func openDialector(dsn string) (gorm.Dialector, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn), nil
	}

	if err := ensureParentDir(dsn); err != nil {
		return nil, err
	}
	return sqlite.Open(dsn), nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
