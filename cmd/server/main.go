package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"

	"github.com/justintdct/CineVault/cinevault-go/internal/config"
	"github.com/justintdct/CineVault/cinevault-go/internal/handler"
	"github.com/justintdct/CineVault/cinevault-go/internal/metrics"
	"github.com/justintdct/CineVault/cinevault-go/internal/middleware"
	"github.com/justintdct/CineVault/cinevault-go/internal/router"
	"github.com/justintdct/CineVault/cinevault-go/internal/service"
	"github.com/justintdct/CineVault/cinevault-go/internal/store"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "cinevault-api")

	catalog := store.NewCatalog()
	if err := catalog.Load(store.SeedContent()); err != nil {
		log.Fatalf("failed to load content catalog: %v", err)
	}

	statsSvc := service.NewStatsService()
	statsStore := store.NewStatsStore(catalog, statsSvc)
	for _, content := range catalog.All() {
		statsStore.Register(content)
	}
	log.Printf("catalog loaded: %d entries, %d stats registered", catalog.Len(), statsStore.Len())

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	ranking := service.NewRankingService(catalog, statsStore, cache)
	metrics.Init(catalog, statsStore)

	app := fiber.New(fiber.Config{
		AppName:      "CineVault API",
		ServerHeader: "CineVault",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	h := &router.Handlers{
		Content: handler.NewContentHandler(catalog, statsStore, ranking, cache),
		Ranking: handler.NewRankingHandler(ranking, cfg.RankingLimit),
		Health:  handler.NewHealthHandler(catalog, statsStore, cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := service.NewRefreshWorker(catalog, statsStore, cache, cfg.RefreshInterval)
	go worker.Start(ctx)

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("CineVault Go backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
