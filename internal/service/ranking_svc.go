package service

import (
	"context"
	"log"
	"sort"

	"github.com/goccy/go-json"

	"github.com/justintdct/CineVault/cinevault-go/internal/metrics"
	"github.com/justintdct/CineVault/cinevault-go/internal/model"
	"github.com/justintdct/CineVault/cinevault-go/internal/store"
)

// DefaultRankingLimit is the top-N cutoff for ranking responses.
const DefaultRankingLimit = 10

// RankingService computes period-scoped orderings over the joined catalog
// and stats maps. Reads are snapshot reads: a ranking is current enough
// without being linearizable with in-flight refreshes.
type RankingService struct {
	catalog *store.Catalog
	stats   *store.StatsStore
	cache   *CacheService
}

func NewRankingService(catalog *store.Catalog, stats *store.StatsStore, cache *CacheService) *RankingService {
	return &RankingService{catalog: catalog, stats: stats, cache: cache}
}

// Rank returns the top entries for a period, descending by period score.
// Equal scores break ties by content id ascending, so rankings are
// deterministic. Unknown periods fail with model.ErrInvalidPeriod before the
// store is touched. Default-limit results go through the cache-aside layer.
func (s *RankingService) Rank(ctx context.Context, period string, limit int) ([]model.RankedContent, error) {
	p, err := model.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	cacheable := limit == DefaultRankingLimit
	if cacheable && s.cache != nil {
		cached, err := s.cache.GetRankings(ctx, p)
		if err != nil {
			log.Printf("cache: rankings get error: %v", err)
		} else if cached != nil {
			var ranked []model.RankedContent
			if err := json.Unmarshal(cached, &ranked); err == nil {
				metrics.Metrics.CacheHits.Inc()
				return ranked, nil
			}
		}
		metrics.Metrics.CacheMisses.Inc()
	}

	ranked := s.join()
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := ranked[i].Stats.Score(p), ranked[j].Stats.Score(p)
		if si != sj {
			return si > sj
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if cacheable && s.cache != nil {
		if err := s.cache.SetRankings(ctx, p, ranked); err != nil {
			log.Printf("cache: rankings set error: %v", err)
		}
	}

	return ranked, nil
}

// AllRanked returns the unsorted join of every catalog entry with its stats.
// Entries without stats are skipped; they cannot be ranked.
func (s *RankingService) AllRanked() []model.RankedContent {
	return s.join()
}

// AllRankedByCategory filters the unsorted join to one category. An unknown
// category yields an empty result, not an error.
func (s *RankingService) AllRankedByCategory(category string) []model.RankedContent {
	joined := s.join()
	filtered := make([]model.RankedContent, 0, len(joined))
	for _, rc := range joined {
		if rc.Category == category {
			filtered = append(filtered, rc)
		}
	}
	return filtered
}

// Categories returns the catalog's distinct category set, sorted.
func (s *RankingService) Categories() []string {
	return s.catalog.Categories()
}

func (s *RankingService) join() []model.RankedContent {
	all := s.catalog.All()
	ranked := make([]model.RankedContent, 0, len(all))
	for _, content := range all {
		stats, ok := s.stats.Get(content.ID)
		if !ok {
			continue
		}
		ranked = append(ranked, model.RankedContent{Content: *content, Stats: stats})
	}
	return ranked
}
