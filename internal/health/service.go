package health

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// HealthStatus represents the health status of the system
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Storage string `json:"storage"`
	Uptime  string `json:"uptime"`
}

// Healthy reports whether every component is up
func (h *HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}

// Service handles health business logic
type Service struct {
	repo      *Repository
	logger    *zap.Logger
	startTime time.Time
}

// ProvideService creates a new health service
func ProvideService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		logger:    logger.Named("health"),
		startTime: time.Now(),
	}
}

// GetHealth returns the current health status of the system
func (s *Service) GetHealth(ctx context.Context) *HealthStatus {
	status := "healthy"
	if err := s.repo.CheckSystemHealth(ctx); err != nil {
		s.logger.Warn("Storage health check failed", zap.Error(err))
		status = "unhealthy"
	}

	return &HealthStatus{
		Status:  status,
		Service: "storefront",
		Storage: s.repo.Storage(),
		Uptime:  time.Since(s.startTime).Round(time.Second).String(),
	}
}
