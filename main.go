package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"futureself/config"
	httpLayer "futureself/http"
	"futureself/repository"
	"futureself/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var scenarioRepo repository.ScenarioRepository
	var shareRepo repository.ShareRepository
	if cfg.SQLitePath != "" {
		db, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Error opening sqlite store: %v", err)
		}
		defer db.Close()
		scenarioRepo = repository.NewScenarioRepositorySQLite(db)
		shareRepo = repository.NewShareRepositorySQLite(db)
		log.Printf("Using sqlite store at %s", cfg.SQLitePath)
	} else {
		scenarioRepo = repository.NewScenarioRepositoryMemory()
		shareRepo = repository.NewShareRepositoryMemory()
		log.Println("Using in-memory store")
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		log.Printf("Using redis cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	simulationService := service.NewSimulationService()
	simulationHandler := httpLayer.NewSimulationHandler(simulationService)

	scenarioService := service.NewScenarioService(scenarioRepo)
	scenarioHandler := httpLayer.NewScenarioHandler(scenarioService)

	shareService := service.NewShareService(shareRepo, cache)
	shareHandler := httpLayer.NewShareHandler(shareService)

	storyService := service.NewStoryService(cfg.OpenAIAPIKey)
	storyHandler := httpLayer.NewStoryHandler(storyService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	limited := func(h http.HandlerFunc) http.Handler {
		return httpLayer.RateLimitMiddleware(rateLimiter, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/simulate", limited(simulationHandler.Simulate))
	mux.Handle("/scenarios", limited(scenarioHandler.Scenarios))
	mux.Handle("/scenarios/", limited(scenarioHandler.ScenarioByID))
	mux.Handle("/share", limited(shareHandler.Share))
	mux.Handle("/share/", limited(shareHandler.ShareByID))
	mux.Handle("/story", limited(storyHandler.GenerateStory))
	mux.Handle("/suggestions", limited(storyHandler.GenerateSuggestions))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
