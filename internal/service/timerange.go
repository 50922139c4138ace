package service

import (
	"Inkstone/internal/pkg/util"
	"time"
)

// TimeRange 统计窗口预设
type TimeRange string

const (
	TimeRange7Days  TimeRange = "7days"
	TimeRange30Days TimeRange = "30days"
	TimeRange90Days TimeRange = "90days"
	TimeRangeYear   TimeRange = "year"
	TimeRangeAll    TimeRange = "all"
	TimeRangeCustom TimeRange = "custom"
)

// SortBy 作品榜单排序维度
type SortBy string

const (
	SortByReads    SortBy = "reads"
	SortByLikes    SortBy = "likes"
	SortByComments SortBy = "comments"
	SortByEarnings SortBy = "earnings"
)

// allTimeAnchor 全量窗口的起点锚定在远古日期，保证所有窗口都有具体边界
var allTimeAnchor = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// ParseTimeRange 宽容解析，未知取值回退到 30 天，避免打断报表渲染
func ParseTimeRange(s string) TimeRange {
	switch TimeRange(s) {
	case TimeRange7Days, TimeRange30Days, TimeRange90Days, TimeRangeYear, TimeRangeAll:
		return TimeRange(s)
	default:
		return TimeRange30Days
	}
}

// ParseSortBy 宽容解析，未知取值回退到阅读量
func ParseSortBy(s string) SortBy {
	switch SortBy(s) {
	case SortByReads, SortByLikes, SortByComments, SortByEarnings:
		return SortBy(s)
	default:
		return SortByReads
	}
}

// Window 当前窗口与等长的前置对比窗口，PrevEnd == Start
type Window struct {
	Start     time.Time
	End       time.Time
	PrevStart time.Time
	PrevEnd   time.Time
}

// ResolveWindow 把窗口预设解析为具体边界。前置窗口与当前窗口等长且紧邻
func ResolveWindow(rng TimeRange, now time.Time) Window {
	if rng == TimeRangeAll {
		return Window{
			Start:     allTimeAnchor,
			End:       now,
			PrevStart: allTimeAnchor.AddDate(-10, 0, 0),
			PrevEnd:   allTimeAnchor,
		}
	}

	days := rangeDays(rng)
	start := now.AddDate(0, 0, -days)
	return Window{
		Start:     start,
		End:       now,
		PrevStart: start.AddDate(0, 0, -days),
		PrevEnd:   start,
	}
}

func rangeDays(rng TimeRange) int {
	switch rng {
	case TimeRange7Days:
		return 7
	case TimeRange90Days:
		return 90
	case TimeRangeYear:
		return 365
	default:
		return 30
	}
}

// PercentageChange 环比变化。上期为 0 时：本期有量记 100，否则记 0，规避除零
func PercentageChange(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// MonthBucket 单个自然月的 [Start, End) 区间
type MonthBucket struct {
	Start time.Time
	End   time.Time
	Label string
}

// MonthBuckets 生成截止当前月（含）的尾部 count 个自然月，时间升序
func MonthBuckets(now time.Time, count int) []MonthBucket {
	buckets := make([]MonthBucket, 0, count)
	currentMonth := util.GetMonthStart(now)
	for i := count - 1; i >= 0; i-- {
		start := currentMonth.AddDate(0, -i, 0)
		buckets = append(buckets, MonthBucket{
			Start: start,
			End:   start.AddDate(0, 1, 0),
			Label: start.Format("2006-01"),
		})
	}
	return buckets
}
