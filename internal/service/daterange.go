package service

import "time"

// DateRange 表示闭合日期区间 [Start, End]，两端均为日历日零点。
// 零值作为“无法确定范围”的哨兵：调用方应返回空结果而非报错。
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero 判断是否为空哨兵值。
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Days 返回区间覆盖的日历天数（含两端）。
func (r DateRange) Days() int {
	if r.IsZero() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// ResolveDateRange 将部分区间输入归一化为闭合日期区间。
// 规则：
//   - days <= 0 返回 ErrInvalidDays
//   - start 与 end 同时给出时以显式区间为准（忽略 days），start > end 返回 ErrInvalidRange
//   - 只给 start：end = start + (days-1)
//   - 只给 end：start = end - (days-1)
//   - 均未给出：end 取 latest；latest 缺失时返回空哨兵
//
// 日期运算按日历日进行，不做时区偏移。
func ResolveDateRange(days int, start, end, latest *time.Time) (DateRange, error) {
	if days <= 0 {
		return DateRange{}, ErrInvalidDays
	}

	switch {
	case start != nil && end != nil:
		s, e := normalizeToDate(*start), normalizeToDate(*end)
		if s.After(e) {
			return DateRange{}, ErrInvalidRange
		}
		return DateRange{Start: s, End: e}, nil
	case start != nil:
		s := normalizeToDate(*start)
		return DateRange{Start: s, End: s.AddDate(0, 0, days-1)}, nil
	case end != nil:
		e := normalizeToDate(*end)
		return DateRange{Start: e.AddDate(0, 0, -(days - 1)), End: e}, nil
	default:
		if latest == nil {
			return DateRange{}, nil
		}
		e := normalizeToDate(*latest)
		return DateRange{Start: e.AddDate(0, 0, -(days - 1)), End: e}, nil
	}
}

// monthRange 返回 month 所在月份的 [首日, 次月首日) 半开区间。
func monthRange(month time.Time) (time.Time, time.Time) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, 0)
}

func normalizeToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
