package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alcha/dashboard-api/internal/db"
	"gorm.io/gorm"
)

// EvaluationService 提供二手车评估与保险风险的单行查询
type EvaluationService struct {
	db *gorm.DB
}

// NewEvaluationService 构造 EvaluationService
func NewEvaluationService(gdb *gorm.DB) *EvaluationService {
	return &EvaluationService{db: gdb}
}

// UsedCar 返回车辆的二手车评估
func (s *EvaluationService) UsedCar(ctx context.Context, vehicleID string) (*db.UsedCarEvaluation, error) {
	var row db.UsedCarEvaluation
	if err := s.db.WithContext(ctx).First(&row, "vehicle_id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsedCarNotFound
		}
		return nil, fmt.Errorf("get used car evaluation: %w", err)
	}
	return &row, nil
}

// Insurance 返回车辆的保险风险评估
func (s *EvaluationService) Insurance(ctx context.Context, vehicleID string) (*db.InsuranceRisk, error) {
	var row db.InsuranceRisk
	if err := s.db.WithContext(ctx).First(&row, "vehicle_id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsuranceNotFound
		}
		return nil, fmt.Errorf("get insurance risk: %w", err)
	}
	return &row, nil
}
