package handlers

import (
	"github.com/motohub/moto-catalog/internal/auth"
	"github.com/motohub/moto-catalog/internal/repo"
	"github.com/motohub/moto-catalog/internal/session"
)

var (
	catalogRepo  repo.CatalogRepository
	changeRepo   repo.ChangeRepository
	metricsRepo  repo.MetricsRepository
	userRepo     repo.UserRepository
	sessions     *session.Manager
	refreshStore auth.RefreshTokenStore
)

func SetCatalogRepo(r repo.CatalogRepository) {
	catalogRepo = r
}

func SetChangeRepo(r repo.ChangeRepository) {
	changeRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetSessionManager(m *session.Manager) {
	sessions = m
}

func SetRefreshTokenStore(s auth.RefreshTokenStore) {
	refreshStore = s
}
