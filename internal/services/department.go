package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"frota-backend/internal/models"
	"frota-backend/internal/repository"
	"frota-backend/pkg/cache"
)

const (
	departmentCacheKey = "departments:active"
	departmentCacheTTL = 5 * time.Minute
)

// DepartmentsService serves the seeded, read-mostly department catalog.
// The listing is cached; any cache failure falls through to the store.
type DepartmentsService struct {
	departmentRepo *repository.DepartmentRepository
	cache          *cache.Cache
	logger         *zap.Logger
}

func NewDepartmentsService(departmentRepo *repository.DepartmentRepository, c *cache.Cache, logger *zap.Logger) *DepartmentsService {
	return &DepartmentsService{
		departmentRepo: departmentRepo,
		cache:          c,
		logger:         logger,
	}
}

func (s *DepartmentsService) FindAllActive(ctx context.Context) ([]models.DepartmentSummary, error) {
	if s.cache != nil {
		var cached []models.DepartmentSummary
		err := s.cache.Get(ctx, departmentCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if err != cache.ErrCacheMiss {
			s.logger.Warn("department cache read failed", zap.Error(err))
		}
	}

	departments, err := s.departmentRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, departmentCacheKey, departments, departmentCacheTTL); err != nil {
			s.logger.Warn("department cache write failed", zap.Error(err))
		}
	}
	return departments, nil
}
