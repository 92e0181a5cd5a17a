package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/justintdct/CineVault/cinevault-go/internal/model"
	"github.com/justintdct/CineVault/cinevault-go/internal/store"
)

// cannedComputer hands back preset stats per content id, so ranking tests
// control scores directly instead of going through the accrual math.
type cannedComputer struct {
	stats map[string]model.ContentStats
}

func (c *cannedComputer) ComputeInitialStats(content *model.Content) model.ContentStats {
	s := c.stats[content.ID]
	s.ContentID = content.ID
	return s
}

func (c *cannedComputer) ComputeStatsUpdate(content *model.Content, previous model.ContentStats) model.ContentStats {
	return c.ComputeInitialStats(content)
}

func rankingFixtureContent(id, category string) model.Content {
	return model.Content{
		ID:            id,
		Type:          model.TypeMovie,
		Title:         "Título " + id,
		Description:   "Descripción de prueba para " + id,
		Category:      category,
		QualityRating: 70,
		HypeLevel:     50,
		ReleaseDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Director:      "N. Alguien",
		Cast:          []string{"A. Actor"},
		Production:    "Estudios Prueba",
		PosterURL:     "https://img.example.com/" + id + ".jpg",
	}
}

func newRankingFixture(t *testing.T, canned map[string]model.ContentStats, register []string) *RankingService {
	t.Helper()

	contents := []model.Content{
		rankingFixtureContent("alfa", "Drama"),
		rankingFixtureContent("bravo", "Drama"),
		rankingFixtureContent("charlie", "Comedia"),
		rankingFixtureContent("delta", "Comedia"),
	}

	catalog := store.NewCatalog()
	if err := catalog.Load(contents); err != nil {
		t.Fatalf("catalog load: %v", err)
	}

	stats := store.NewStatsStore(catalog, &cannedComputer{stats: canned})
	for _, id := range register {
		content, ok := catalog.Get(id)
		if !ok {
			t.Fatalf("fixture content %q not in catalog", id)
		}
		stats.Register(content)
	}

	return NewRankingService(catalog, stats, nil)
}

func TestRankOrdersByPeriodScore(t *testing.T) {
	canned := map[string]model.ContentStats{
		"alfa":    {Views: 100, Likes: 10, WeeklyViews: 5, WeeklyLikes: 1, MonthlyViews: 900, MonthlyLikes: 90},
		"bravo":   {Views: 300, Likes: 30, WeeklyViews: 50, WeeklyLikes: 5, MonthlyViews: 100, MonthlyLikes: 10},
		"charlie": {Views: 200, Likes: 20, WeeklyViews: 20, WeeklyLikes: 2, MonthlyViews: 500, MonthlyLikes: 50},
		"delta":   {Views: 50, Likes: 5, WeeklyViews: 80, WeeklyLikes: 8, MonthlyViews: 200, MonthlyLikes: 20},
	}
	svc := newRankingFixture(t, canned, []string{"alfa", "bravo", "charlie", "delta"})

	tests := []struct {
		period string
		want   []string
	}{
		{"alltime", []string{"bravo", "charlie", "alfa", "delta"}},
		{"weekly", []string{"delta", "bravo", "charlie", "alfa"}},
		{"monthly", []string{"alfa", "charlie", "delta", "bravo"}},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			ranked, err := svc.Rank(context.Background(), tt.period, 0)
			if err != nil {
				t.Fatalf("Rank: %v", err)
			}
			if len(ranked) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(ranked), len(tt.want))
			}
			for i, id := range tt.want {
				if ranked[i].ID != id {
					t.Errorf("position %d = %q, want %q", i, ranked[i].ID, id)
				}
				if ranked[i].Rank != i+1 {
					t.Errorf("rank of %q = %d, want %d", ranked[i].ID, ranked[i].Rank, i+1)
				}
			}
		})
	}
}

func TestRankBreaksTiesByID(t *testing.T) {
	canned := map[string]model.ContentStats{
		"alfa":    {Views: 100, Likes: 10},
		"bravo":   {Views: 100, Likes: 10},
		"charlie": {Views: 100, Likes: 10},
		"delta":   {Views: 500, Likes: 10},
	}
	svc := newRankingFixture(t, canned, []string{"alfa", "bravo", "charlie", "delta"})

	ranked, err := svc.Rank(context.Background(), "alltime", 0)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	want := []string{"delta", "alfa", "bravo", "charlie"}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, ranked[i].ID, id)
		}
	}
}

func TestRankTruncatesToLimit(t *testing.T) {
	canned := map[string]model.ContentStats{
		"alfa":    {Views: 400},
		"bravo":   {Views: 300},
		"charlie": {Views: 200},
		"delta":   {Views: 100},
	}
	svc := newRankingFixture(t, canned, []string{"alfa", "bravo", "charlie", "delta"})

	ranked, err := svc.Rank(context.Background(), "alltime", 2)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("got %d entries, want 2", len(ranked))
	}
	if ranked[0].ID != "alfa" || ranked[1].ID != "bravo" {
		t.Errorf("top 2 = %q, %q, want alfa, bravo", ranked[0].ID, ranked[1].ID)
	}
}

func TestRankRejectsUnknownPeriod(t *testing.T) {
	svc := newRankingFixture(t, nil, nil)

	for _, period := range []string{"yearly", "", "WEEKLY", "all-time"} {
		if _, err := svc.Rank(context.Background(), period, 0); !errors.Is(err, model.ErrInvalidPeriod) {
			t.Errorf("Rank(%q) error = %v, want ErrInvalidPeriod", period, err)
		}
	}
}

func TestAllRankedSkipsUnregistered(t *testing.T) {
	canned := map[string]model.ContentStats{
		"alfa":  {Views: 100},
		"bravo": {Views: 200},
	}
	svc := newRankingFixture(t, canned, []string{"alfa", "bravo"})

	all := svc.AllRanked()
	if len(all) != 2 {
		t.Fatalf("got %d entries, want 2 (charlie, delta have no stats)", len(all))
	}
	for _, rc := range all {
		if rc.Rank != 0 {
			t.Errorf("unranked listing set rank %d on %q, want 0", rc.Rank, rc.ID)
		}
	}
}

func TestAllRankedByCategory(t *testing.T) {
	canned := map[string]model.ContentStats{
		"alfa":    {Views: 100},
		"bravo":   {Views: 200},
		"charlie": {Views: 300},
		"delta":   {Views: 400},
	}
	svc := newRankingFixture(t, canned, []string{"alfa", "bravo", "charlie", "delta"})

	comedia := svc.AllRankedByCategory("Comedia")
	if len(comedia) != 2 {
		t.Fatalf("Comedia: got %d entries, want 2", len(comedia))
	}
	for _, rc := range comedia {
		if rc.Category != "Comedia" {
			t.Errorf("entry %q has category %q", rc.ID, rc.Category)
		}
	}

	if got := svc.AllRankedByCategory("Inexistente"); len(got) != 0 {
		t.Errorf("unknown category returned %d entries, want 0", len(got))
	}
}

func TestCategoriesSortedDistinct(t *testing.T) {
	svc := newRankingFixture(t, nil, nil)

	got := svc.Categories()
	want := []string{"Comedia", "Drama"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}
