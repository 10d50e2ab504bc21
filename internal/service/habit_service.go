package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alcha/dashboard-api/internal/db"
	"gorm.io/gorm"
)

// DrivingHabitService 提供月度驾驶习惯的查询、运转天数推导与环比计算
type DrivingHabitService struct {
	db *gorm.DB
}

// MonthlyHabit 组合一条月度习惯记录与当月推导出的运转天数
// DrivingDays 每次请求重新计算，从不落库
type MonthlyHabit struct {
	Record      db.DrivingHabitMonthly
	DrivingDays int
}

// HabitDelta 表示最近两个月各习惯指标的差值（latest - previous），缺失值按 0 处理
type HabitDelta struct {
	AccelerationEvents      int
	LaneDepartureEvents     int
	NightDriveRatio         float64
	AvgDriveDurationMinutes float64
	AvgSpeed                float64
	AvgDistance             float64
}

// HabitSummary 汇总最近月份、上一月份、环比差值与完整历史（按月倒序）
type HabitSummary struct {
	VehicleID string
	Latest    *db.DrivingHabitMonthly
	Previous  *db.DrivingHabitMonthly
	Delta     *HabitDelta
	History   []db.DrivingHabitMonthly
}

// NewDrivingHabitService 构造 DrivingHabitService
func NewDrivingHabitService(gdb *gorm.DB) *DrivingHabitService {
	return &DrivingHabitService{db: gdb}
}

// MonthlyHabits 返回车辆的月度习惯记录（按月倒序），并为每个月推导运转天数。
// monthFilter 为 YYYY-MM 时只保留该月；格式不合法返回 ErrInvalidMonth；
// 筛选后没有任何记录返回 ErrHabitNotFound。
func (s *DrivingHabitService) MonthlyHabits(ctx context.Context, vehicleID, monthFilter string) ([]MonthlyHabit, error) {
	filterStart, filterEnd, err := parseMonthFilter(monthFilter)
	if err != nil {
		return nil, err
	}

	if err := ensureVehicle(ctx, s.db, vehicleID); err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID)
	if filterStart != nil {
		// 月份筛选采用 [月初, 次月初) 显式区间，不依赖字符串前缀匹配
		query = query.Where("analysis_month >= ? AND analysis_month < ?", *filterStart, *filterEnd)
	}

	var records []db.DrivingHabitMonthly
	if err := query.Order("analysis_month DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list monthly habits: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrHabitNotFound
	}

	counts, err := s.drivingDaysByMonth(ctx, vehicleID, records)
	if err != nil {
		return nil, err
	}

	habits := make([]MonthlyHabit, 0, len(records))
	for _, record := range records {
		habits = append(habits, MonthlyHabit{
			Record:      record,
			DrivingDays: counts[monthKey(record.AnalysisMonth)],
		})
	}
	return habits, nil
}

// Summary 返回最近两个月的对比与完整历史。
// 没有任何记录不视为错误：latest/previous/delta 为空、history 为空序列。
func (s *DrivingHabitService) Summary(ctx context.Context, vehicleID string) (*HabitSummary, error) {
	if err := ensureVehicle(ctx, s.db, vehicleID); err != nil {
		return nil, err
	}

	var history []db.DrivingHabitMonthly
	if err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("analysis_month DESC").
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("list habit history: %w", err)
	}

	summary := &HabitSummary{VehicleID: vehicleID, History: history}
	if len(history) > 0 {
		summary.Latest = &history[0]
	}
	if len(history) > 1 {
		summary.Previous = &history[1]
	}
	summary.Delta = habitDelta(history)
	return summary, nil
}

// drivingDaysByMonth 统计各月份中 engine_start_count > 0 的日历天数。
// 评分表以 (vehicle_id, analysis_date) 为主键，逐行即逐天；一次取回覆盖
// 全部月份的合格日期再在内存里按月归类，避免逐月发起计数查询。
func (s *DrivingHabitService) drivingDaysByMonth(ctx context.Context, vehicleID string, records []db.DrivingHabitMonthly) (map[string]int, error) {
	counts := make(map[string]int, len(records))
	if len(records) == 0 {
		return counts, nil
	}

	// records 按月倒序：末尾是最早月份，首位是最晚月份
	windowStart, _ := monthRange(records[len(records)-1].AnalysisMonth)
	_, windowEnd := monthRange(records[0].AnalysisMonth)

	var dates []time.Time
	if err := s.db.WithContext(ctx).
		Model(&db.VehicleScoreDaily{}).
		Where("vehicle_id = ?", vehicleID).
		Where("analysis_date >= ? AND analysis_date < ?", windowStart, windowEnd).
		Where("engine_start_count > 0").
		Pluck("analysis_date", &dates).Error; err != nil {
		return nil, fmt.Errorf("count driving days: %w", err)
	}

	for _, date := range dates {
		counts[monthKey(date)]++
	}
	return counts, nil
}

// habitDelta 计算最近两个月各指标的差值，历史不足两条时返回 nil。
// 缺失值按 0 参与减法：存储的 0 与缺失在差值里不可区分，与线上行为保持一致。
func habitDelta(history []db.DrivingHabitMonthly) *HabitDelta {
	if len(history) < 2 {
		return nil
	}

	latest, previous := history[0], history[1]
	return &HabitDelta{
		AccelerationEvents:      intOrZero(latest.AccelerationEvents) - intOrZero(previous.AccelerationEvents),
		LaneDepartureEvents:     intOrZero(latest.LaneDepartureEvents) - intOrZero(previous.LaneDepartureEvents),
		NightDriveRatio:         floatOrZero(latest.NightDriveRatio) - floatOrZero(previous.NightDriveRatio),
		AvgDriveDurationMinutes: floatOrZero(latest.AvgDriveDurationMinutes) - floatOrZero(previous.AvgDriveDurationMinutes),
		AvgSpeed:                floatOrZero(latest.AvgSpeed) - floatOrZero(previous.AvgSpeed),
		AvgDistance:             floatOrZero(latest.AvgDistance) - floatOrZero(previous.AvgDistance),
	}
}

// parseMonthFilter 解析 YYYY-MM 筛选，返回该月的 [月初, 次月初) 区间
func parseMonthFilter(monthFilter string) (*time.Time, *time.Time, error) {
	trimmed := strings.TrimSpace(monthFilter)
	if trimmed == "" {
		return nil, nil, nil
	}

	month, err := time.Parse("2006-01", trimmed)
	if err != nil {
		return nil, nil, ErrInvalidMonth
	}

	first, next := monthRange(month)
	return &first, &next, nil
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
