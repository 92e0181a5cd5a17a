package model

import (
	"errors"
	"time"
)

// ContentStats holds the popularity counters for one catalog entry.
//
// Views and Likes are cumulative all-time totals and only ever grow. The
// weekly and monthly figures are windowed estimates: each refresh recomputes
// them wholesale from the entry's current metadata and age, so they project
// the current rate over the window rather than accumulate history.
type ContentStats struct {
	ContentID    string    `json:"contentId"`
	Views        int64     `json:"views"`
	Likes        int64     `json:"likes"`
	WeeklyViews  int64     `json:"weeklyViews"`
	WeeklyLikes  int64     `json:"weeklyLikes"`
	MonthlyViews int64     `json:"monthlyViews"`
	MonthlyLikes int64     `json:"monthlyLikes"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// RankedContent joins a catalog entry with its current stats. It is built on
// demand and never stored. Rank is 1-based and only set on ranking responses.
type RankedContent struct {
	Content
	Stats ContentStats `json:"stats"`
	Rank  int          `json:"rank,omitempty"`
}

// RankingPeriod selects which stats fields score a ranking.
type RankingPeriod string

const (
	PeriodWeekly  RankingPeriod = "weekly"
	PeriodMonthly RankingPeriod = "monthly"
	PeriodAllTime RankingPeriod = "alltime"
)

// ErrInvalidPeriod is returned for period strings outside the known set.
var ErrInvalidPeriod = errors.New("invalid ranking period")

// ParsePeriod validates a ranking period string.
func ParsePeriod(s string) (RankingPeriod, error) {
	switch RankingPeriod(s) {
	case PeriodWeekly, PeriodMonthly, PeriodAllTime:
		return RankingPeriod(s), nil
	}
	return "", ErrInvalidPeriod
}

// Score returns the period-scoped popularity score for these stats.
func (s ContentStats) Score(period RankingPeriod) int64 {
	switch period {
	case PeriodWeekly:
		return s.WeeklyViews + s.WeeklyLikes
	case PeriodMonthly:
		return s.MonthlyViews + s.MonthlyLikes
	default:
		return s.Views + s.Likes
	}
}
