package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alcha/dashboard-api/internal/db"
	"gorm.io/gorm"
)

// VehicleService 提供车辆基础信息与近况指标的查询
type VehicleService struct {
	db *gorm.DB
}

// VehicleDetail 组合车辆信息与最近 30 天的每日指标
type VehicleDetail struct {
	Vehicle db.Vehicle
	Latest  *db.DailyMetric
	Recent  []db.DailyMetric
}

// NewVehicleService 构造 VehicleService
func NewVehicleService(gdb *gorm.DB) *VehicleService {
	return &VehicleService{db: gdb}
}

// List 返回按编号排序的全部车辆
func (s *VehicleService) List(ctx context.Context) ([]db.Vehicle, error) {
	var vehicles []db.Vehicle
	if err := s.db.WithContext(ctx).Order("vehicle_id ASC").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

// Count 返回车辆总数
func (s *VehicleService) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&db.Vehicle{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count vehicles: %w", err)
	}
	return total, nil
}

// Detail 返回车辆详情及最近 30 条每日指标（按日期倒序）
func (s *VehicleService) Detail(ctx context.Context, vehicleID string) (*VehicleDetail, error) {
	var vehicle db.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, "vehicle_id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	var recent []db.DailyMetric
	if err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("analysis_date DESC").
		Limit(30).
		Find(&recent).Error; err != nil {
		return nil, fmt.Errorf("list daily metrics: %w", err)
	}

	detail := &VehicleDetail{Vehicle: vehicle, Recent: recent}
	if len(recent) > 0 {
		detail.Latest = &recent[0]
	}
	return detail, nil
}

// ensureVehicle 校验车辆存在；评分与习惯查询前都会先做这一步
func ensureVehicle(ctx context.Context, gdb *gorm.DB, vehicleID string) error {
	var vehicle db.Vehicle
	if err := gdb.WithContext(ctx).Select("vehicle_id").First(&vehicle, "vehicle_id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("check vehicle: %w", err)
	}
	return nil
}
