package service

import "errors"

var (
	// ErrVehicleNotFound 在车辆编号不存在时返回
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrScoreNotFound 在指定日期没有评分数据时返回
	ErrScoreNotFound = errors.New("score record not found")
	// ErrHabitNotFound 在筛选后没有任何月度习惯数据时返回
	ErrHabitNotFound = errors.New("no driving habit data")
	// ErrUsedCarNotFound 在二手车评估不存在时返回
	ErrUsedCarNotFound = errors.New("used car evaluation not found")
	// ErrInsuranceNotFound 在保险风险评估不存在时返回
	ErrInsuranceNotFound = errors.New("insurance risk not found")

	// ErrInvalidDays 当 days 参数不为正数时返回
	ErrInvalidDays = errors.New("days must be greater than 0")
	// ErrInvalidRange 当显式区间 start > end 时返回
	ErrInvalidRange = errors.New("start date must be before or equal to end date")
	// ErrInvalidMonth 当月份筛选不是 YYYY-MM 格式时返回
	ErrInvalidMonth = errors.New("invalid month format")

	// ErrStoreUnavailable 在事件/遥测存储未配置时返回
	ErrStoreUnavailable = errors.New("event store not configured")
)
