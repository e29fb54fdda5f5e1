package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"

	"github.com/motohub/moto-catalog/internal/auth"
	"github.com/motohub/moto-catalog/internal/config"
	"github.com/motohub/moto-catalog/internal/db"
	"github.com/motohub/moto-catalog/internal/http"
	"github.com/motohub/moto-catalog/internal/http/handlers"
	rl "github.com/motohub/moto-catalog/internal/http/rate_limiter"
	"github.com/motohub/moto-catalog/internal/models"
	"github.com/motohub/moto-catalog/internal/redissvc"
	"github.com/motohub/moto-catalog/internal/repo"
	"github.com/motohub/moto-catalog/internal/session"
	"github.com/motohub/moto-catalog/internal/store"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// @title Moto Catalog API
// @version 1.0
// @description REST API for browsing a motorcycle catalog with session-scoped cart, comparison and wishlist.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	go rl.StartVisitorCleanupLoop()

	// Refresh tokens live in Redis when an address is configured, in memory
	// otherwise.
	var refreshStore auth.RefreshTokenStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		refreshStore = redissvc.NewRedisService(rdb, ctx)
	} else {
		memStore := auth.NewMemoryRefreshTokenStore()
		go memStore.StartCleanupLoop(cfg.SessionTTL)
		refreshStore = memStore
	}
	handlers.SetRefreshTokenStore(refreshStore)

	categories := repo.DefaultCategories()
	brands := repo.DefaultBrands()

	var catalogRepo repo.CatalogRepository
	var changeRepo repo.ChangeRepository
	var userRepo repo.UserRepository

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Could not connect to database:", err)
		}
		defer database.Close()

		catalogRepo = repo.NewPostgresCatalogRepository(database, categories, brands)
		changeRepo = repo.NewPostgresChangeRepository(database)
		userRepo = repo.NewPostgresUserRepository(database)
	} else {
		memCatalog := repo.NewInMemoryCatalogRepository(categories, brands)
		if cfg.SeedCatalog {
			if err := repo.SeedCatalog(memCatalog); err != nil {
				log.Fatalf("Could not seed catalog: %v", err)
			}
		}
		catalogRepo = memCatalog
		changeRepo = repo.NewInMemoryChangeRepository()
		userRepo = repo.NewInMemoryUserRepository()
	}

	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(catalogRepo, changeRepo)

	if cfg.AdminPassword != "" {
		seedAdmin(userRepo, cfg.AdminUsername, cfg.AdminPassword)
	}

	sessions := session.NewManager(cfg.SessionTTL, store.DefaultDiscounts())
	go sessions.StartCleanupLoop()

	handlers.SetCatalogRepo(catalogRepo)
	handlers.SetChangeRepo(changeRepo)
	handlers.SetUserRepo(userRepo)
	handlers.SetMetricsRepo(metricsRepo)
	handlers.SetSessionManager(sessions)

	r := http.NewRouter()
	log.Printf("✅ Server running on %s", cfg.ListenAddr)
	if err := nethttp.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin makes sure the configured admin account exists. An already
// registered username is left untouched.
func seedAdmin(userRepo repo.UserRepository, username, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Could not hash admin password: %v", err)
	}
	_, err = userRepo.CreateUser(models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
	})
	if err != nil && !errors.Is(err, repo.ErrDuplicatedValueUnique) {
		log.Fatalf("Could not seed admin user: %v", err)
	}
}
