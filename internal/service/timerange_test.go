package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeRange(t *testing.T) {
	assert.Equal(t, TimeRange7Days, ParseTimeRange("7days"))
	assert.Equal(t, TimeRange90Days, ParseTimeRange("90days"))
	assert.Equal(t, TimeRangeYear, ParseTimeRange("year"))
	assert.Equal(t, TimeRangeAll, ParseTimeRange("all"))

	// 未知取值回退到 30 天
	assert.Equal(t, TimeRange30Days, ParseTimeRange(""))
	assert.Equal(t, TimeRange30Days, ParseTimeRange("fortnight"))
	assert.Equal(t, TimeRange30Days, ParseTimeRange("custom"))
}

func TestParseSortBy(t *testing.T) {
	assert.Equal(t, SortByLikes, ParseSortBy("likes"))
	assert.Equal(t, SortByComments, ParseSortBy("comments"))
	assert.Equal(t, SortByEarnings, ParseSortBy("earnings"))

	assert.Equal(t, SortByReads, ParseSortBy(""))
	assert.Equal(t, SortByReads, ParseSortBy("stars"))
}

func TestResolveWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		rng  TimeRange
		days int
	}{
		{TimeRange7Days, 7},
		{TimeRange30Days, 30},
		{TimeRange90Days, 90},
		{TimeRangeYear, 365},
	}
	for _, c := range cases {
		w := ResolveWindow(c.rng, now)
		assert.Equal(t, now, w.End)
		assert.Equal(t, now.AddDate(0, 0, -c.days), w.Start)
		// 前置窗口等长且紧邻
		assert.Equal(t, w.Start, w.PrevEnd)
		assert.Equal(t, w.End.Sub(w.Start), w.PrevEnd.Sub(w.PrevStart))
	}
}

func TestResolveWindowAll(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w := ResolveWindow(TimeRangeAll, now)

	assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, now, w.End)
	assert.Equal(t, w.Start, w.PrevEnd)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), w.PrevStart)
}

func TestPercentageChange(t *testing.T) {
	assert.Equal(t, float64(0), PercentageChange(0, 0))
	assert.Equal(t, float64(100), PercentageChange(5, 0))
	assert.Equal(t, float64(50), PercentageChange(150, 100))
	assert.Equal(t, float64(-50), PercentageChange(50, 100))
	assert.Equal(t, float64(-100), PercentageChange(0, 100))
}

func TestMonthBuckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	buckets := MonthBuckets(now, 7)

	assert.Len(t, buckets, 7)
	assert.Equal(t, "2024-12", buckets[0].Label)
	assert.Equal(t, "2025-06", buckets[6].Label)

	for i, b := range buckets {
		assert.Equal(t, b.Start.AddDate(0, 1, 0), b.End)
		if i > 0 {
			// 月份升序且无缝衔接
			assert.Equal(t, buckets[i-1].End, b.Start)
		}
	}
}

func TestMonthBucketsYearBoundary(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	buckets := MonthBuckets(now, 7)

	labels := make([]string, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"2024-08", "2024-09", "2024-10", "2024-11", "2024-12", "2025-01", "2025-02"}, labels)
}
