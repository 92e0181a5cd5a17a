package service

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/justintdct/CineVault/cinevault-go/internal/model"
)

const (
	// Daily accrual bases, scaled by quality rating.
	baseDailyViews       = 1000.0
	dailyViewsPerQuality = 50.0
	baseDailyLikes       = 100.0
	dailyLikesPerQuality = 5.0

	// Series accrue faster than movies (longer engagement).
	seriesTypeFactor = 1.3

	// Titles younger than 30 days get a flat weekly boost.
	recentWindowDays  = 30
	recentBoostFactor = 1.5

	// Weekly boost kicks in above 0.8 hype; monthly uses a linear
	// dampened hype term instead. The two policies are independent.
	hypeBoostThreshold = 0.8
	hypeBoostFactor    = 1.3
	monthlyHypeWeight  = 0.3

	// Per-refresh increments vary uniformly within [0.8, 1.2).
	varianceMin    = 0.8
	varianceSpread = 0.4

	hoursPerDay  = 24.0
	daysPerWeek  = 7.0
	daysPerMonth = 30.0
)

// VarianceFunc supplies the stochastic multiplier for refresh increments.
type VarianceFunc func() float64

// StatsService derives popularity stats from content metadata. Both entry
// points are pure over their inputs apart from the injected clock and
// variance source, so tests can pin them and assert exact arithmetic.
//
// ComputeInitialStats models all history since release at day granularity
// (the one-shot backfill for a freshly seeded catalog); ComputeStatsUpdate
// advances an existing record by one hour-granularity increment.
type StatsService struct {
	now      func() time.Time
	variance VarianceFunc
}

func NewStatsService() *StatsService {
	return &StatsService{
		now: time.Now,
		variance: func() float64 {
			return varianceMin + rand.Float64()*varianceSpread
		},
	}
}

// NewStatsServiceWith builds a service with a fixed clock and variance
// source. Used in tests.
func NewStatsServiceWith(now func() time.Time, variance VarianceFunc) *StatsService {
	return &StatsService{now: now, variance: variance}
}

// DaysSinceRelease returns ceil(|now - release|) in days.
func DaysSinceRelease(release, now time.Time) int {
	diff := now.Sub(release)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / hoursPerDay))
}

// ComputeInitialStats seeds stats for newly registered content. Cumulative
// totals model the full accrual since release; the windowed figures project
// the current daily rate over a week and a month. Floor is applied at the
// end of each chain only.
func (s *StatsService) ComputeInitialStats(content *model.Content) model.ContentStats {
	now := s.now()
	days := float64(DaysSinceRelease(content.ReleaseDate, now))
	quality := qualityFactor(content)
	hype := hypeFactor(content)

	dailyViews := dailyViewsBase(content)
	dailyLikes := dailyLikesBase(content)

	recentBoost := recentBoostFor(content, now)
	hypeBoost := hypeBoostFor(hype)

	return model.ContentStats{
		ContentID:    content.ID,
		Views:        floor(dailyViews * days * quality),
		Likes:        floor(dailyLikes * days * quality),
		WeeklyViews:  floor(dailyViews * daysPerWeek * quality * recentBoost * hypeBoost),
		WeeklyLikes:  floor(dailyLikes * daysPerWeek * quality * recentBoost * hypeBoost),
		MonthlyViews: floor(dailyViews * daysPerMonth * quality * (1 + hype*monthlyHypeWeight)),
		MonthlyLikes: floor(dailyLikes * daysPerMonth * quality * (1 + hype*monthlyHypeWeight)),
		LastUpdated:  now,
	}
}

// ComputeStatsUpdate folds one refresh tick onto the previous record. Totals
// grow by an hourly increment scaled by the variance draw; the windowed
// figures are recomputed from scratch and discard the previous windowed
// values entirely.
func (s *StatsService) ComputeStatsUpdate(content *model.Content, previous model.ContentStats) model.ContentStats {
	now := s.now()
	quality := qualityFactor(content)
	hype := hypeFactor(content)

	hourlyViews := dailyViewsBase(content) / hoursPerDay
	hourlyLikes := dailyLikesBase(content) / hoursPerDay

	recentBoost := recentBoostFor(content, now)
	hypeBoost := hypeBoostFor(hype)
	variance := s.variance()

	viewsIncrement := floor(hourlyViews * quality * recentBoost * hypeBoost * variance)
	likesIncrement := floor(hourlyLikes * quality * recentBoost * hypeBoost * variance)

	return model.ContentStats{
		ContentID:    content.ID,
		Views:        previous.Views + viewsIncrement,
		Likes:        previous.Likes + likesIncrement,
		WeeklyViews:  floor(hourlyViews * hoursPerDay * daysPerWeek * quality * recentBoost * hypeBoost),
		WeeklyLikes:  floor(hourlyLikes * hoursPerDay * daysPerWeek * quality * recentBoost * hypeBoost),
		MonthlyViews: floor(hourlyViews * hoursPerDay * daysPerMonth * quality * (1 + hype*monthlyHypeWeight)),
		MonthlyLikes: floor(hourlyLikes * hoursPerDay * daysPerMonth * quality * (1 + hype*monthlyHypeWeight)),
		LastUpdated:  now,
	}
}

func qualityFactor(content *model.Content) float64 {
	return float64(content.QualityRating) / 100
}

func hypeFactor(content *model.Content) float64 {
	return float64(content.HypeLevel) / 100
}

func typeFactor(content *model.Content) float64 {
	if content.Type == model.TypeSeries {
		return seriesTypeFactor
	}
	return 1.0
}

func dailyViewsBase(content *model.Content) float64 {
	return (baseDailyViews + float64(content.QualityRating)*dailyViewsPerQuality) * typeFactor(content)
}

func dailyLikesBase(content *model.Content) float64 {
	return (baseDailyLikes + float64(content.QualityRating)*dailyLikesPerQuality) * typeFactor(content)
}

func recentBoostFor(content *model.Content, now time.Time) float64 {
	if DaysSinceRelease(content.ReleaseDate, now) < recentWindowDays {
		return recentBoostFactor
	}
	return 1.0
}

func hypeBoostFor(hype float64) float64 {
	if hype > hypeBoostThreshold {
		return hypeBoostFactor
	}
	return 1.0
}

func floor(v float64) int64 {
	return int64(math.Floor(v))
}
