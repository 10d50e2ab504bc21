package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alcha/dashboard-api/internal/db"
	"gorm.io/gorm"
)

// ScoreService 提供车辆每日评分的查询与历史聚合
// 所有方法都先校验车辆存在，再发起评分查询
type ScoreService struct {
	db *gorm.DB
}

// ScoreHistory 表示一次历史查询的结果区间与按日期升序的评分序列
// 当无法确定区间（车辆尚无任何评分且未显式指定区间）时 Start/End 为 nil、Records 为空
type ScoreHistory struct {
	VehicleID string
	Start     *time.Time
	End       *time.Time
	Records   []db.VehicleScoreDaily
}

// NewScoreService 构造 ScoreService
func NewScoreService(gdb *gorm.DB) *ScoreService {
	return &ScoreService{db: gdb}
}

// ListAll 返回车辆全部每日评分，按日期倒序
func (s *ScoreService) ListAll(ctx context.Context, vehicleID string) ([]db.VehicleScoreDaily, error) {
	if err := ensureVehicle(ctx, s.db, vehicleID); err != nil {
		return nil, err
	}

	var scores []db.VehicleScoreDaily
	if err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("analysis_date DESC").
		Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return scores, nil
}

// ByDate 返回车辆指定日期的评分记录
func (s *ScoreService) ByDate(ctx context.Context, vehicleID string, date time.Time) (*db.VehicleScoreDaily, error) {
	if err := ensureVehicle(ctx, s.db, vehicleID); err != nil {
		return nil, err
	}

	var score db.VehicleScoreDaily
	if err := s.db.WithContext(ctx).
		Where("vehicle_id = ? AND analysis_date = ?", vehicleID, normalizeToDate(date)).
		First(&score).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, fmt.Errorf("get score: %w", err)
	}
	return &score, nil
}

// LatestScoreDate 返回车辆最近一条评分的分析日期，没有数据时返回 nil
func (s *ScoreService) LatestScoreDate(ctx context.Context, vehicleID string) (*time.Time, error) {
	var score db.VehicleScoreDaily
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("analysis_date DESC").
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest score date: %w", err)
	}
	return &score.AnalysisDate, nil
}

// History 返回车辆在归一化区间内的评分历史（默认 days 天），按日期升序。
// 车辆尚无任何评分且未显式给出区间时返回空历史而非错误——新接入车辆的常态。
func (s *ScoreService) History(ctx context.Context, vehicleID string, days int, start, end *time.Time) (*ScoreHistory, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}
	if start != nil && end != nil && normalizeToDate(*start).After(normalizeToDate(*end)) {
		return nil, ErrInvalidRange
	}

	if err := ensureVehicle(ctx, s.db, vehicleID); err != nil {
		return nil, err
	}

	latest, err := s.LatestScoreDate(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	rng, err := ResolveDateRange(days, start, end, latest)
	if err != nil {
		return nil, err
	}
	if rng.IsZero() {
		return &ScoreHistory{VehicleID: vehicleID}, nil
	}

	var records []db.VehicleScoreDaily
	if err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Where("analysis_date BETWEEN ? AND ?", rng.Start, rng.End).
		Order("analysis_date ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list score history: %w", err)
	}

	return &ScoreHistory{
		VehicleID: vehicleID,
		Start:     &rng.Start,
		End:       &rng.End,
		Records:   records,
	}, nil
}
